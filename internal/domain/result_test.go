package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLOResult_MarshalJSON_KeepsAssessmentOrder(t *testing.T) {
	r := CLOResult{
		CLO: "CLO1",
		Contributions: []Contribution{
			{Assessment: "Midterm", Value: 42},
			{Assessment: "Final", Value: 32},
			{Assessment: "Assignment", Value: 0.5},
		},
		Total: 74.5,
		Met:   true,
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	assert.Equal(t, `{"CLO":"CLO1","Midterm":42,"Final":32,"Assignment":0.5,"TOTAL":74.5,"MET":"MET"}`, string(data))
}

func TestCLOResult_MarshalJSON_NotMet(t *testing.T) {
	r := CLOResult{CLO: "CLO2", Total: 12.25}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	assert.Equal(t, `{"CLO":"CLO2","TOTAL":12.25,"MET":"NOT MET"}`, string(data))
}

func TestGradesTable_ColumnAndRecords(t *testing.T) {
	table := &GradesTable{
		Columns: []string{"Midterm", "Final"},
		Rows: [][]Score{
			{NewScore(40), NewScore(45.5)},
			{NewScore(30), {}},
		},
	}

	col, ok := table.Column("Final")
	require.True(t, ok)
	assert.Equal(t, []Score{NewScore(45.5), {}}, col)

	_, ok = table.Column("Quiz")
	assert.False(t, ok)

	assert.Equal(t, RawGradesTable{
		{"Midterm", "Final"},
		{"40", "45.5"},
		{"30", ""},
	}, table.Records())
}

func TestAssessmentSpec_Lookup(t *testing.T) {
	spec := AssessmentSpec{{Name: "Quiz", MaxScore: 10}, {Name: "Final", MaxScore: 50}}

	assert.Equal(t, []string{"Quiz", "Final"}, spec.Names())

	maxScore, ok := spec.MaxScore("Final")
	assert.True(t, ok)
	assert.Equal(t, 50.0, maxScore)

	_, ok = spec.MaxScore("Lab")
	assert.False(t, ok)
}
