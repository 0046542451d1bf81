package clo

import (
	"fmt"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/domain"
	"github.com/DjordjeVuckovic/clo-analytics/pkg/utils"
)

const (
	// MetThreshold is the closed lower bound of a MET total.
	MetThreshold = 70.0
	// DecimalPlaces used for every reported percentage.
	DecimalPlaces = 2
)

type AssessmentSummary struct {
	Name        string  `json:"name"`
	MaxScore    float64 `json:"maxScore"`
	Responses   int     `json:"responses"`
	Average     float64 `json:"average"`
	Achievement float64 `json:"achievement"`
}

type Summary struct {
	Assessments []AssessmentSummary `json:"assessments"`
	Results     []domain.CLOResult  `json:"results"`
}

// Aggregate computes one result per CLO weight row, in the order of weights.
func Aggregate(table *domain.GradesTable, specs domain.AssessmentSpec, weights []domain.CLOWeightRow) ([]domain.CLOResult, error) {
	s, err := Compute(table, specs, weights)
	if err != nil {
		return nil, err
	}
	return s.Results, nil
}

// Compute is Aggregate plus the per-assessment averages and achievement ratios it is built on.
// Averages and achievements in the summary are unrounded.
func Compute(table *domain.GradesTable, specs domain.AssessmentSpec, weights []domain.CLOWeightRow) (*Summary, error) {
	if table == nil {
		return nil, apperr.NewInvalidInput("grades table is required")
	}

	achievement := make(map[string]float64, len(specs))
	summary := &Summary{
		Assessments: make([]AssessmentSummary, 0, len(specs)),
		Results:     make([]domain.CLOResult, 0, len(weights)),
	}

	for _, a := range specs {
		if a.MaxScore <= 0 {
			return nil, apperr.NewInvalidInput(fmt.Sprintf("assessment %q has non-positive max score %v", a.Name, a.MaxScore))
		}
		col, ok := table.Column(a.Name)
		if !ok {
			return nil, apperr.NewInvalidInput(fmt.Sprintf("grades table has no column %q", a.Name))
		}
		avg, count := mean(col)
		if count == 0 {
			return nil, &apperr.EmptyAssessmentColumnError{Column: a.Name}
		}
		achievement[a.Name] = avg / a.MaxScore * 100
		summary.Assessments = append(summary.Assessments, AssessmentSummary{
			Name:        a.Name,
			MaxScore:    a.MaxScore,
			Responses:   count,
			Average:     avg,
			Achievement: achievement[a.Name],
		})
	}

	for _, row := range weights {
		result := domain.CLOResult{
			CLO:           row.CLO,
			Contributions: make([]domain.Contribution, 0, len(specs)),
		}
		total := 0.0
		for _, a := range specs {
			weight, ok := row.Weights[a.Name]
			if !ok {
				return nil, apperr.NewInvalidInput(fmt.Sprintf("CLO %q has no weight for assessment %q", row.CLO, a.Name))
			}
			weighted := achievement[a.Name] * weight / 100
			result.Contributions = append(result.Contributions, domain.Contribution{
				Assessment: a.Name,
				Value:      utils.RoundDecimal(weighted, DecimalPlaces),
			})
			total += weighted
		}
		result.Total = utils.RoundDecimal(total, DecimalPlaces)
		result.Met = IsMet(total)
		summary.Results = append(summary.Results, result)
	}

	return summary, nil
}

// IsMet compares the unrounded total against MetThreshold.
func IsMet(total float64) bool {
	return total >= MetThreshold
}

func mean(col []domain.Score) (float64, int) {
	sum := 0.0
	count := 0
	for _, s := range col {
		if !s.Valid {
			continue
		}
		sum += s.Value
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return sum / float64(count), count
}
