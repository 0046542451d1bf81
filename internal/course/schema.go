package course

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// documentSchema describes the shape Parse consumes. Keys other than assessments and
// clo_weights are allowed and ignored.
const documentSchema = `{
  "type": "object",
  "required": ["assessments", "clo_weights"],
  "properties": {
    "assessments": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {"type": "number", "exclusiveMinimum": 0}
    },
    "clo_weights": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["CLO"],
        "properties": {
          "CLO": {"type": ["string", "number"]}
        },
        "additionalProperties": {"type": "number", "minimum": 0, "maximum": 100}
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("course_config.schema.json", documentSchema)

// Lint validates a document against the course config schema and then parses it.
// Schema violations name the offending location, e.g. /clo_weights/0/Quiz, which Parse
// reports less precisely.
func Lint(code string, doc Document) (*domain.CourseConfig, error) {
	v, err := decodeGeneric(doc)
	if err != nil {
		return nil, apperr.NewConfigMalformedWrap(code, "unreadable document", err)
	}

	if err := compiledSchema.Validate(v); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, apperr.NewConfigMalformedWrap(code, "schema violation: "+leafMessage(ve), err)
		}
		return nil, apperr.NewConfigMalformedWrap(code, "schema violation", err)
	}

	return Parse(code, doc)
}

// decodeGeneric turns a JSON or YAML document into the value shape encoding/json produces.
func decodeGeneric(doc Document) (any, error) {
	data := doc.Data
	if doc.Format == FormatYAML {
		var y any
		if err := yaml.Unmarshal(doc.Data, &y); err != nil {
			return nil, err
		}
		b, err := json.Marshal(y)
		if err != nil {
			return nil, err
		}
		data = b
	} else if doc.Format != FormatJSON {
		return nil, fmt.Errorf("unsupported document format %q", doc.Format)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func leafMessage(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + ve.Message
}
