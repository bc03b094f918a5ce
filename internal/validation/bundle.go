// internal/validation/bundle.go

// Package validation checks inbound assessment bundles against a JSON
// schema and the engine's semantic constraints before scoring.
package validation

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"assessment-engine/internal/common/errors"
	"assessment-engine/internal/models"
)

// bundleSchema is the wire contract for one inbound bundle. Rating and
// choice ranges are deliberately not enforced here: out-of-range values
// are sanitized downstream, not rejected.
const bundleSchema = `{
	"type": "object",
	"required": ["sessionId", "educationLevel"],
	"additionalProperties": false,
	"properties": {
		"sessionId": {"type": "string", "minLength": 1, "maxLength": 128},
		"educationLevel": {"type": "string", "minLength": 1},
		"cognitiveResponses": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["category", "isCorrect"],
				"properties": {
					"questionId": {"type": "string"},
					"category": {"type": "string"},
					"difficulty": {"type": "string"},
					"userAnswer": {"type": "string"},
					"isCorrect": {"type": "boolean"},
					"responseTimeMs": {"type": "integer"},
					"orderIndex": {"type": "integer"}
				}
			}
		},
		"typologyChoices": {"type": "array", "items": {"type": "integer"}},
		"bigFiveRatings": {"type": "array", "items": {"type": "integer"}},
		"workStyleRatings": {"type": "array", "items": {"type": "integer"}}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(bundleSchema)

// ParseBundle validates a raw JSON payload against the bundle schema and
// decodes it. Structural violations come back as BUNDLE_INVALID with every
// schema error listed; malformed JSON as BUNDLE_PARSE_FAILED.
func ParseBundle(raw []byte) (*models.AssessmentBundle, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, errors.NewBundleParseError(err)
	}
	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		return nil, errors.NewBundleInvalidError(strings.Join(details, "; "))
	}

	var bundle models.AssessmentBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, errors.NewBundleParseError(err)
	}
	if err := ValidateBundle(&bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// ValidateBundle applies the semantic checks the schema cannot express.
// The zero-response bundle is valid: every instrument fails open.
func ValidateBundle(bundle *models.AssessmentBundle) error {
	if bundle.SessionID == "" {
		return errors.NewBundleInvalidError("sessionId must not be empty")
	}
	if !models.IsValidEducationLevel(bundle.EducationLevel) {
		return errors.NewBundleInvalidError("unknown education level " + string(bundle.EducationLevel))
	}
	for _, r := range bundle.CognitiveResponses {
		switch r.Category {
		case models.CategoryLogical, models.CategoryNumerical, models.CategoryVerbal,
			models.CategoryMemory, models.CategoryProcessing:
		default:
			return errors.NewBundleInvalidError("unknown cognitive category " + string(r.Category))
		}
	}
	return nil
}
