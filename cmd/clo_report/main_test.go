package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const misyGrades = `Student ID,Name,Quiz,Assignment,Midterm,Final
1001,Amal,8,18,24,30
1002,Badr,6,14,21,28
1003,Chen,10,16,27,36
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-course", "MISY2313", "-grades", "g.csv", "-delimiter", "tab"})
	require.NoError(t, err)

	assert.Equal(t, "MISY2313", cfg.Course)
	assert.Equal(t, "table", cfg.Format)
	comma, err := cfg.comma()
	require.NoError(t, err)
	assert.Equal(t, '\t', comma)
}

func TestParseFlags_EnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "report.json", `{"grades": "from-file.csv", "format": "json"}`)
	t.Setenv("CLO_REPORT_COURSE", "ACCT1101")

	cfg, err := parseFlags([]string{"-config", cfgPath})
	require.NoError(t, err)

	assert.Equal(t, "ACCT1101", cfg.Course)
	assert.Equal(t, "from-file.csv", cfg.Grades)
	assert.Equal(t, "json", cfg.Format)
}

func TestParseFlags_Invalid(t *testing.T) {
	_, err := parseFlags([]string{"-grades", "g.csv"})
	assert.ErrorContains(t, err, "-course is required")

	_, err = parseFlags([]string{"-course", "X", "-grades", "g.csv", "-delimiter", ";;"})
	assert.ErrorContains(t, err, "single character")

	_, err = parseFlags([]string{"-course", "X", "-grades", "g.csv", "-format", "xml"})
	assert.ErrorContains(t, err, "unknown format")
}

func TestRun_PrintsTable(t *testing.T) {
	dir := t.TempDir()
	cfg := cliConfig{
		Course:    "MISY2313",
		Grades:    writeFile(t, dir, "grades.csv", misyGrades),
		Delimiter: ",",
		ConfigDir: "../../internal/course/testdata",
		Format:    "table",
	}

	var out bytes.Buffer
	require.NoError(t, run(t.Context(), cfg, &out))

	assert.Contains(t, out.String(), "=== CLO Achievement: MISY2313 ===")
	assert.Contains(t, out.String(), "Students: 3")
	assert.Contains(t, out.String(), "CLO3")
}

func TestRun_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.json")
	cfg := cliConfig{
		Course:    "MISY2313",
		Grades:    writeFile(t, dir, "grades.csv", misyGrades),
		Delimiter: ",",
		ConfigDir: "../../internal/course/testdata",
		Output:    outPath,
		Format:    "table",
	}

	var out bytes.Buffer
	require.NoError(t, run(t.Context(), cfg, &out))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var decoded struct {
		Course  string           `json:"course"`
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "MISY2313", decoded.Course)
	assert.Len(t, decoded.Results, 3)
}

func TestRun_UnknownCourse(t *testing.T) {
	dir := t.TempDir()
	cfg := cliConfig{
		Course:    "NOPE1000",
		Grades:    writeFile(t, dir, "grades.csv", misyGrades),
		Delimiter: ",",
		ConfigDir: "../../internal/course/testdata",
		Format:    "table",
	}

	err := run(t.Context(), cfg, &bytes.Buffer{})
	var nf *apperr.ConfigNotFoundError
	assert.ErrorAs(t, err, &nf)
}
