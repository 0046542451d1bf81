package domain

import (
	"bytes"
	"encoding/json"
)

const (
	StatusMet    = "MET"
	StatusNotMet = "NOT MET"
)

type Contribution struct {
	Assessment string  `json:"assessment"`
	Value      float64 `json:"value"`
}

// CLOResult is the achievement of one CLO. Contributions follow assessment declaration order.
type CLOResult struct {
	CLO           string
	Contributions []Contribution
	Total         float64
	Met           bool
}

func (r CLOResult) Status() string {
	if r.Met {
		return StatusMet
	}
	return StatusNotMet
}

func (r CLOResult) Contribution(assessment string) (float64, bool) {
	for _, c := range r.Contributions {
		if c.Assessment == assessment {
			return c.Value, true
		}
	}
	return 0, false
}

// MarshalJSON writes the flattened record {"CLO", <assessments...>, "TOTAL", "MET"} keeping key order.
func (r CLOResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeField(&buf, "CLO", r.CLO); err != nil {
		return nil, err
	}
	for _, c := range r.Contributions {
		buf.WriteByte(',')
		if err := writeField(&buf, c.Assessment, c.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(',')
	if err := writeField(&buf, "TOTAL", r.Total); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeField(&buf, "MET", r.Status()); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
