package course

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/domain"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

const (
	assessmentsKey = "assessments"
	cloWeightsKey  = "clo_weights"
	cloIDKey       = "CLO"
)

// Parse decodes a configuration document and validates it.
// Any failure is an *apperr.ConfigMalformedError naming the course.
func Parse(code string, doc Document) (*domain.CourseConfig, error) {
	var (
		cfg *domain.CourseConfig
		err error
	)
	switch doc.Format {
	case FormatJSON:
		cfg, err = parseJSON(code, doc.Data)
	case FormatYAML:
		cfg, err = parseYAML(code, doc.Data)
	default:
		return nil, apperr.NewConfigMalformed(code, fmt.Sprintf("unsupported document format %q", doc.Format))
	}
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseJSON(code string, data []byte) (*domain.CourseConfig, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperr.NewConfigMalformed(code, "invalid JSON document")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, apperr.NewConfigMalformed(code, "document must be an object")
	}

	cfg := &domain.CourseConfig{Code: code}

	assessments := root.Get(assessmentsKey)
	if !assessments.IsObject() {
		return nil, apperr.NewConfigMalformed(code, "missing assessments map")
	}
	var perr error
	assessments.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			perr = apperr.NewConfigMalformed(code, fmt.Sprintf("max score of assessment %q is not a number", key.String()))
			return false
		}
		cfg.Assessments = append(cfg.Assessments, domain.Assessment{Name: key.String(), MaxScore: value.Float()})
		return true
	})
	if perr != nil {
		return nil, perr
	}

	rows := root.Get(cloWeightsKey)
	if !rows.IsArray() {
		return nil, apperr.NewConfigMalformed(code, "missing clo_weights rows")
	}
	for i, row := range rows.Array() {
		if !row.IsObject() {
			return nil, apperr.NewConfigMalformed(code, fmt.Sprintf("clo_weights row %d is not an object", i))
		}
		wr := domain.CLOWeightRow{Weights: make(map[string]float64)}
		row.ForEach(func(key, value gjson.Result) bool {
			k := key.String()
			if k == cloIDKey {
				if value.Type != gjson.String && value.Type != gjson.Number {
					perr = apperr.NewConfigMalformed(code, fmt.Sprintf("clo_weights row %d has an invalid CLO id", i))
					return false
				}
				wr.CLO = value.String()
				return true
			}
			if value.Type != gjson.Number {
				perr = apperr.NewConfigMalformed(code, fmt.Sprintf("weight %q of clo_weights row %d is not a number", k, i))
				return false
			}
			if _, dup := wr.Weights[k]; dup {
				perr = apperr.NewConfigMalformed(code, fmt.Sprintf("clo_weights row %d repeats weight %q", i, k))
				return false
			}
			wr.Weights[k] = value.Float()
			return true
		})
		if perr != nil {
			return nil, perr
		}
		cfg.CLOWeights = append(cfg.CLOWeights, wr)
	}

	return cfg, nil
}

func parseYAML(code string, data []byte) (*domain.CourseConfig, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, apperr.NewConfigMalformedWrap(code, "invalid YAML document", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, apperr.NewConfigMalformed(code, "document must be a mapping")
	}
	doc := root.Content[0]

	cfg := &domain.CourseConfig{Code: code}

	assessments := mappingValue(doc, assessmentsKey)
	if assessments == nil || assessments.Kind != yaml.MappingNode {
		return nil, apperr.NewConfigMalformed(code, "missing assessments map")
	}
	for i := 0; i+1 < len(assessments.Content); i += 2 {
		name := assessments.Content[i].Value
		var maxScore float64
		if err := assessments.Content[i+1].Decode(&maxScore); err != nil {
			return nil, apperr.NewConfigMalformedWrap(code, fmt.Sprintf("max score of assessment %q is not a number", name), err)
		}
		cfg.Assessments = append(cfg.Assessments, domain.Assessment{Name: name, MaxScore: maxScore})
	}

	rows := mappingValue(doc, cloWeightsKey)
	if rows == nil || rows.Kind != yaml.SequenceNode {
		return nil, apperr.NewConfigMalformed(code, "missing clo_weights rows")
	}
	for i, row := range rows.Content {
		if row.Kind != yaml.MappingNode {
			return nil, apperr.NewConfigMalformed(code, fmt.Sprintf("clo_weights row %d is not a mapping", i))
		}
		wr := domain.CLOWeightRow{Weights: make(map[string]float64)}
		for j := 0; j+1 < len(row.Content); j += 2 {
			k, v := row.Content[j].Value, row.Content[j+1]
			if k == cloIDKey {
				if v.Kind != yaml.ScalarNode {
					return nil, apperr.NewConfigMalformed(code, fmt.Sprintf("clo_weights row %d has an invalid CLO id", i))
				}
				wr.CLO = v.Value
				continue
			}
			var w float64
			if err := v.Decode(&w); err != nil {
				return nil, apperr.NewConfigMalformedWrap(code, fmt.Sprintf("weight %q of clo_weights row %d is not a number", k, i), err)
			}
			if _, dup := wr.Weights[k]; dup {
				return nil, apperr.NewConfigMalformed(code, fmt.Sprintf("clo_weights row %d repeats weight %q", i, k))
			}
			wr.Weights[k] = w
		}
		cfg.CLOWeights = append(cfg.CLOWeights, wr)
	}

	return cfg, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// Validate checks the invariants the aggregator relies on: unique assessments with positive
// max scores, at least one CLO row, unique CLO ids, and weight columns matching the assessment
// names exactly with weights in [0,100].
func Validate(cfg *domain.CourseConfig) error {
	code := cfg.Code
	if len(cfg.Assessments) == 0 {
		return apperr.NewConfigMalformed(code, "no assessments defined")
	}

	names := make(map[string]struct{}, len(cfg.Assessments))
	for _, a := range cfg.Assessments {
		if a.Name == "" {
			return apperr.NewConfigMalformed(code, "assessment with empty name")
		}
		if _, dup := names[a.Name]; dup {
			return apperr.NewConfigMalformed(code, fmt.Sprintf("assessment %q is defined twice", a.Name))
		}
		if a.MaxScore <= 0 || math.IsInf(a.MaxScore, 0) || math.IsNaN(a.MaxScore) {
			return apperr.NewConfigMalformed(code, fmt.Sprintf("assessment %q must have a positive max score", a.Name))
		}
		names[a.Name] = struct{}{}
	}

	if len(cfg.CLOWeights) == 0 {
		return apperr.NewConfigMalformed(code, "no clo_weights rows defined")
	}

	clos := make(map[string]struct{}, len(cfg.CLOWeights))
	for i, row := range cfg.CLOWeights {
		if row.CLO == "" {
			return apperr.NewConfigMalformed(code, fmt.Sprintf("clo_weights row %d has no CLO id", i))
		}
		if _, dup := clos[row.CLO]; dup {
			return apperr.NewConfigMalformed(code, fmt.Sprintf("CLO %q is defined twice", row.CLO))
		}
		clos[row.CLO] = struct{}{}

		for _, k := range slices.Sorted(maps.Keys(row.Weights)) {
			w := row.Weights[k]
			if _, ok := names[k]; !ok {
				return apperr.NewConfigMalformed(code, fmt.Sprintf("CLO %q references unknown assessment %q", row.CLO, k))
			}
			if w < 0 || w > 100 || math.IsNaN(w) {
				return apperr.NewConfigMalformed(code, fmt.Sprintf("CLO %q weight for %q must be within [0,100], got %v", row.CLO, k, w))
			}
		}
		for _, a := range cfg.Assessments {
			if _, ok := row.Weights[a.Name]; !ok {
				return apperr.NewConfigMalformed(code, fmt.Sprintf("CLO %q has no weight for assessment %q", row.CLO, a.Name))
			}
		}
	}

	return nil
}
