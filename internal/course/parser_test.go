package course

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_JSON_PreservesAssessmentOrder(t *testing.T) {
	doc := Document{Format: FormatJSON, Data: []byte(`{
		"assessments": {"Midterm": 50, "Final": 50, "Attendance": 5},
		"clo_weights": [
			{"CLO": "CLO2", "Final": 100, "Midterm": 0, "Attendance": 0},
			{"CLO": "CLO1", "Midterm": 60, "Final": 40, "Attendance": 0}
		]
	}`)}

	cfg, err := Parse("ACCT1101", doc)
	require.NoError(t, err)

	assert.Equal(t, "ACCT1101", cfg.Code)
	assert.Equal(t, domain.AssessmentSpec{
		{Name: "Midterm", MaxScore: 50},
		{Name: "Final", MaxScore: 50},
		{Name: "Attendance", MaxScore: 5},
	}, cfg.Assessments)
	require.Len(t, cfg.CLOWeights, 2)
	assert.Equal(t, "CLO2", cfg.CLOWeights[0].CLO)
	assert.Equal(t, map[string]float64{"Midterm": 60, "Final": 40, "Attendance": 0}, cfg.CLOWeights[1].Weights)
}

func TestParse_YAML_PreservesAssessmentOrder(t *testing.T) {
	doc := Document{Format: FormatYAML, Data: []byte(`
assessments:
  Quiz: 10
  Lab: 15.5
clo_weights:
  - CLO: CLO1
    Quiz: 25
    Lab: 75
`)}

	cfg, err := Parse("CS101", doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"Quiz", "Lab"}, cfg.Assessments.Names())
	assert.Equal(t, 15.5, cfg.Assessments[1].MaxScore)
	assert.Equal(t, []domain.CLOWeightRow{{CLO: "CLO1", Weights: map[string]float64{"Quiz": 25, "Lab": 75}}}, cfg.CLOWeights)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		doc    Document
		reason string
	}{
		{"invalid json", Document{FormatJSON, []byte(`{"assessments":`)}, "invalid JSON document"},
		{"not an object", Document{FormatJSON, []byte(`[1,2]`)}, "document must be an object"},
		{"missing assessments", Document{FormatJSON, []byte(`{"clo_weights": []}`)}, "missing assessments map"},
		{"missing weights", Document{FormatJSON, []byte(`{"assessments": {"Quiz": 10}}`)}, "missing clo_weights rows"},
		{"empty weights", Document{FormatJSON, []byte(`{"assessments": {"Quiz": 10}, "clo_weights": []}`)}, "no clo_weights rows defined"},
		{"empty assessments", Document{FormatJSON, []byte(`{"assessments": {}, "clo_weights": [{"CLO": "CLO1"}]}`)}, "no assessments defined"},
		{"text max score", Document{FormatJSON, []byte(`{"assessments": {"Quiz": "ten"}, "clo_weights": []}`)}, `max score of assessment "Quiz" is not a number`},
		{"zero max score", Document{FormatJSON, []byte(`{"assessments": {"Quiz": 0}, "clo_weights": [{"CLO": "CLO1", "Quiz": 100}]}`)}, `assessment "Quiz" must have a positive max score`},
		{"duplicate assessment", Document{FormatJSON, []byte(`{"assessments": {"Quiz": 10, "Quiz": 5}, "clo_weights": [{"CLO": "CLO1", "Quiz": 100}]}`)}, `assessment "Quiz" is defined twice`},
		{"unknown weight column", Document{FormatJSON, []byte(`{"assessments": {"Quiz": 10}, "clo_weights": [{"CLO": "CLO1", "Quiz": 50, "Lab": 50}]}`)}, `CLO "CLO1" references unknown assessment "Lab"`},
		{"missing weight column", Document{FormatJSON, []byte(`{"assessments": {"Quiz": 10, "Lab": 10}, "clo_weights": [{"CLO": "CLO1", "Quiz": 50}]}`)}, `CLO "CLO1" has no weight for assessment "Lab"`},
		{"weight out of range", Document{FormatJSON, []byte(`{"assessments": {"Quiz": 10}, "clo_weights": [{"CLO": "CLO1", "Quiz": 120}]}`)}, `CLO "CLO1" weight for "Quiz" must be within [0,100], got 120`},
		{"missing clo id", Document{FormatJSON, []byte(`{"assessments": {"Quiz": 10}, "clo_weights": [{"Quiz": 100}]}`)}, "clo_weights row 0 has no CLO id"},
		{"duplicate clo", Document{FormatJSON, []byte(`{"assessments": {"Quiz": 10}, "clo_weights": [{"CLO": "CLO1", "Quiz": 100}, {"CLO": "CLO1", "Quiz": 0}]}`)}, `CLO "CLO1" is defined twice`},
		{"row not object", Document{FormatJSON, []byte(`{"assessments": {"Quiz": 10}, "clo_weights": [5]}`)}, "clo_weights row 0 is not an object"},
		{"yaml syntax", Document{FormatYAML, []byte("assessments: [")}, "invalid YAML document"},
		{"yaml scalar", Document{FormatYAML, []byte("just text")}, "document must be a mapping"},
		{"yaml unknown column", Document{FormatYAML, []byte("assessments:\n  Quiz: 10\nclo_weights:\n  - CLO: CLO1\n    Exam: 100\n")}, `CLO "CLO1" references unknown assessment "Exam"`},
		{"unsupported format", Document{"xml", []byte("<a/>")}, `unsupported document format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse("MISY2313", tt.doc)
			require.Error(t, err)
			assert.Nil(t, cfg)

			var cm *apperr.ConfigMalformedError
			require.True(t, errors.As(err, &cm), "expected ConfigMalformedError, got %T", err)
			assert.Equal(t, "MISY2313", cm.Course)
			assert.Equal(t, tt.reason, cm.Reason)
		})
	}
}

func TestValidateCode(t *testing.T) {
	assert.NoError(t, ValidateCode("MISY2313"))
	assert.NoError(t, ValidateCode("cs-101_a.2025"))

	var ve *apperr.ValidationError
	for _, code := range []string{"", "../etc/passwd", "a/b", "a..b", " MISY"} {
		err := ValidateCode(code)
		assert.True(t, errors.As(err, &ve), "code %q", code)
	}
}

func TestFormatFromExt(t *testing.T) {
	f, ok := FormatFromExt("x/MISY2313.JSON")
	assert.True(t, ok)
	assert.Equal(t, FormatJSON, f)

	f, ok = FormatFromExt("a.yml")
	assert.True(t, ok)
	assert.Equal(t, FormatYAML, f)

	_, ok = FormatFromExt("a.csv")
	assert.False(t, ok)
}
