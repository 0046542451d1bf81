package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/course"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"ACCT1101.json": `{"assessments": {"Midterm": 50, "Final": 50}, "clo_weights": [{"CLO": "CLO1", "Midterm": 60, "Final": 40}]}`,
		"ECON2000.yaml": "assessments:\n  Exam: 100\nclo_weights:\n  - CLO: CLO1\n    Exam: 100\n",
		"BROKEN.json":   `{"assessments": {"Exam": 100}}`,
		"TEXTW.json":    `{"assessments": {"Exam": 100}, "clo_weights": [{"CLO": "CLO1", "Exam": "all"}]}`,
		"notes.txt":     "ignored",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	store := course.NewMemStore()
	res, err := importDir(t.Context(), dir, store, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"ACCT1101", "ECON2000"}, res.Imported)
	require.Contains(t, res.Failed, "BROKEN")
	require.Contains(t, res.Failed, "TEXTW")
	var cm *apperr.ConfigMalformedError
	assert.ErrorAs(t, res.Failed["BROKEN"], &cm)

	cfg, err := course.NewLoader(store).Load(t.Context(), "ECON2000")
	require.NoError(t, err)
	assert.Equal(t, []string{"Exam"}, cfg.Assessments.Names())

	_, err = store.Fetch(t.Context(), "BROKEN")
	assert.Error(t, err)
}

func TestImportDir_Empty(t *testing.T) {
	_, err := importDir(t.Context(), t.TempDir(), course.NewMemStore(), 2)
	assert.ErrorContains(t, err, "no course config files found")
}
