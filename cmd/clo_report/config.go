package main

import (
	"errors"
	"flag"
	"fmt"
	"unicode/utf8"

	"github.com/peterbourgon/ff/v3"
)

const envPrefix = "CLO_REPORT"

type cliConfig struct {
	Course    string
	Grades    string
	Delimiter string
	ConfigDir string
	Output    string
	Format    string
}

func parseFlags(args []string) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("clo_report", flag.ContinueOnError)
	_ = fs.String("config", "", "Config file (optional), json format")
	fs.StringVar(&cfg.Course, "course", "", "Course code to compute CLO achievement for")
	fs.StringVar(&cfg.Grades, "grades", "", "Path to the grades CSV file")
	fs.StringVar(&cfg.Delimiter, "delimiter", ",", "Grades CSV field delimiter, 'tab' for tab separated files")
	fs.StringVar(&cfg.ConfigDir, "config-dir", "", "Directory of course config files; overrides STORAGE_TYPE when set")
	fs.StringVar(&cfg.Output, "output", "", "Write the JSON report to this path instead of printing")
	fs.StringVar(&cfg.Format, "format", "table", "Output format when printing: table or json")

	err := ff.Parse(fs, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix(envPrefix),
	)
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

func (c cliConfig) validate() error {
	if c.Course == "" {
		return errors.New("-course is required")
	}
	if c.Grades == "" {
		return errors.New("-grades is required")
	}
	if c.Format != "table" && c.Format != "json" {
		return fmt.Errorf("unknown format %q, expected table or json", c.Format)
	}
	if _, err := c.comma(); err != nil {
		return err
	}
	return nil
}

func (c cliConfig) comma() (rune, error) {
	if c.Delimiter == "tab" || c.Delimiter == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r, nil
}
