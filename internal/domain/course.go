package domain

// Assessment is a gradable component of a course with its maximum possible score.
type Assessment struct {
	Name     string  `json:"name" yaml:"name"`
	MaxScore float64 `json:"maxScore" yaml:"maxScore"`
}

// AssessmentSpec keeps assessments in declaration order.
type AssessmentSpec []Assessment

func (s AssessmentSpec) Names() []string {
	names := make([]string, len(s))
	for i, a := range s {
		names[i] = a.Name
	}
	return names
}

func (s AssessmentSpec) MaxScore(name string) (float64, bool) {
	for _, a := range s {
		if a.Name == name {
			return a.MaxScore, true
		}
	}
	return 0, false
}

// CLOWeightRow holds the percentage of each assessment's achievement attributed to one CLO.
type CLOWeightRow struct {
	CLO     string             `json:"clo"`
	Weights map[string]float64 `json:"weights"`
}

type CourseConfig struct {
	Code        string         `json:"code"`
	Assessments AssessmentSpec `json:"assessments"`
	CLOWeights  []CLOWeightRow `json:"cloWeights"`
}
