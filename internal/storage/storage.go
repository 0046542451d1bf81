package storage

import "context"

type Type string

const (
	FS     Type = "fs"
	PG     Type = "pg"
	ES     Type = "es"
	SQLite Type = "sqlite"
	InMem  Type = "in_mem"
)

var Types = []Type{FS, PG, ES, SQLite, InMem}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storage type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

// Pinger is implemented by stores that can report backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}
