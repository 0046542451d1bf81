package clo

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func column(name string, values ...any) *domain.GradesTable {
	t := &domain.GradesTable{Columns: []string{name}}
	for _, v := range values {
		switch v := v.(type) {
		case nil:
			t.Rows = append(t.Rows, []domain.Score{{}})
		case int:
			t.Rows = append(t.Rows, []domain.Score{domain.NewScore(float64(v))})
		case float64:
			t.Rows = append(t.Rows, []domain.Score{domain.NewScore(v)})
		}
	}
	return t
}

func TestAggregate_SingleQuiz(t *testing.T) {
	table := column("Quiz", 8, 6, 10)
	specs := domain.AssessmentSpec{{Name: "Quiz", MaxScore: 10}}
	weights := []domain.CLOWeightRow{{CLO: "CLO1", Weights: map[string]float64{"Quiz": 100}}}

	summary, err := Compute(table, specs, weights)
	require.NoError(t, err)

	require.Len(t, summary.Assessments, 1)
	assert.Equal(t, 8.0, summary.Assessments[0].Average)
	assert.Equal(t, 80.0, summary.Assessments[0].Achievement)
	assert.Equal(t, 3, summary.Assessments[0].Responses)

	require.Len(t, summary.Results, 1)
	r := summary.Results[0]
	assert.Equal(t, "CLO1", r.CLO)
	assert.Equal(t, []domain.Contribution{{Assessment: "Quiz", Value: 80}}, r.Contributions)
	assert.Equal(t, 80.0, r.Total)
	assert.True(t, r.Met)
}

func TestAggregate_MissingValuesAreIgnoredInMean(t *testing.T) {
	table := column("Quiz", 8, nil, 6)
	specs := domain.AssessmentSpec{{Name: "Quiz", MaxScore: 10}}
	weights := []domain.CLOWeightRow{{CLO: "CLO1", Weights: map[string]float64{"Quiz": 50}}}

	results, err := Aggregate(table, specs, weights)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, 35.0, results[0].Total)
	assert.False(t, results[0].Met)
}

func TestAggregate_TwoAssessmentsKeepsWeightRowOrder(t *testing.T) {
	table := &domain.GradesTable{
		Columns: []string{"Midterm", "Final"},
		Rows: [][]domain.Score{
			{domain.NewScore(40), domain.NewScore(45)},
			{domain.NewScore(30), domain.NewScore(35)},
		},
	}
	specs := domain.AssessmentSpec{{Name: "Midterm", MaxScore: 50}, {Name: "Final", MaxScore: 50}}
	weights := []domain.CLOWeightRow{
		{CLO: "CLO2", Weights: map[string]float64{"Final": 100, "Midterm": 0}},
		{CLO: "CLO1", Weights: map[string]float64{"Midterm": 60, "Final": 40}},
	}

	results, err := Aggregate(table, specs, weights)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "CLO2", results[0].CLO)
	assert.Equal(t, 80.0, results[0].Total)
	assert.Equal(t, "CLO1", results[1].CLO)

	mid, _ := results[1].Contribution("Midterm")
	fin, _ := results[1].Contribution("Final")
	assert.InDelta(t, 42.0, mid, 1e-9)
	assert.InDelta(t, 32.0, fin, 1e-9)
	assert.Equal(t, 74.0, results[1].Total)
	assert.True(t, results[1].Met)
}

func TestAggregate_RoundsContributionsAndTotalSeparately(t *testing.T) {
	// one third achievement: 33.333...%
	table := column("Quiz", 1)
	specs := domain.AssessmentSpec{{Name: "Quiz", MaxScore: 3}}
	weights := []domain.CLOWeightRow{{CLO: "CLO1", Weights: map[string]float64{"Quiz": 100}}}

	results, err := Aggregate(table, specs, weights)
	require.NoError(t, err)

	assert.Equal(t, 33.33, results[0].Total)
	assert.Equal(t, 33.33, results[0].Contributions[0].Value)
}

func TestAggregate_EmptyAssessmentColumn(t *testing.T) {
	table := column("Quiz", nil, nil)
	specs := domain.AssessmentSpec{{Name: "Quiz", MaxScore: 10}}
	weights := []domain.CLOWeightRow{{CLO: "CLO1", Weights: map[string]float64{"Quiz": 100}}}

	results, err := Aggregate(table, specs, weights)
	require.Error(t, err)
	assert.Nil(t, results)

	var ea *apperr.EmptyAssessmentColumnError
	require.True(t, errors.As(err, &ea))
	assert.Equal(t, "Quiz", ea.Column)
}

func TestAggregate_NoRowsIsEmptyColumn(t *testing.T) {
	table := column("Quiz")
	specs := domain.AssessmentSpec{{Name: "Quiz", MaxScore: 10}}

	_, err := Aggregate(table, specs, nil)

	var ea *apperr.EmptyAssessmentColumnError
	assert.True(t, errors.As(err, &ea))
}

func TestAggregate_MismatchedInputs(t *testing.T) {
	table := column("Quiz", 5)
	var ii *apperr.InvalidInputError

	_, err := Aggregate(table, domain.AssessmentSpec{{Name: "Lab", MaxScore: 10}}, nil)
	assert.True(t, errors.As(err, &ii))

	_, err = Aggregate(table, domain.AssessmentSpec{{Name: "Quiz", MaxScore: 10}},
		[]domain.CLOWeightRow{{CLO: "CLO1", Weights: map[string]float64{"Lab": 100}}})
	assert.True(t, errors.As(err, &ii))

	_, err = Aggregate(table, domain.AssessmentSpec{{Name: "Quiz", MaxScore: 0}}, nil)
	assert.True(t, errors.As(err, &ii))

	_, err = Aggregate(nil, nil, nil)
	assert.True(t, errors.As(err, &ii))
}

func TestIsMet_ClosedLowerBound(t *testing.T) {
	assert.False(t, IsMet(69.999))
	assert.True(t, IsMet(70.000))
	assert.True(t, IsMet(100))
	assert.False(t, IsMet(0))
}

func TestAggregate_ThresholdUsesUnroundedTotal(t *testing.T) {
	// 69.999% achievement reports a TOTAL of 70 but is NOT MET
	table := column("Quiz", 69.999)
	specs := domain.AssessmentSpec{{Name: "Quiz", MaxScore: 100}}
	weights := []domain.CLOWeightRow{{CLO: "CLO1", Weights: map[string]float64{"Quiz": 100}}}

	results, err := Aggregate(table, specs, weights)
	require.NoError(t, err)

	assert.Equal(t, 70.0, results[0].Total)
	assert.False(t, results[0].Met)
}

func TestAggregate_IsDeterministic(t *testing.T) {
	table := column("Quiz", 7.3, 8.1, 6.9, 9.7)
	specs := domain.AssessmentSpec{{Name: "Quiz", MaxScore: 10}}
	weights := []domain.CLOWeightRow{{CLO: "CLO1", Weights: map[string]float64{"Quiz": 33.3}}}

	first, err := Aggregate(table, specs, weights)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Aggregate(table, specs, weights)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
