package leads

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "northline-decorators/internal/common/errors"
)

// quoteRequestSchema enforces presence only: the five required fields must
// exist and be non-empty strings. Email, phone and postcode formats are
// deliberately not checked here; the business would rather receive a lead
// with a typo in the phone number than lose it.
var quoteRequestSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"name", "email", "phone", "postcode", "propertyType"},
	"properties": map[string]interface{}{
		"name":          map[string]interface{}{"type": "string", "minLength": 1},
		"email":         map[string]interface{}{"type": "string", "minLength": 1},
		"phone":         map[string]interface{}{"type": "string", "minLength": 1},
		"postcode":      map[string]interface{}{"type": "string", "minLength": 1},
		"propertyType":  map[string]interface{}{"type": "string", "minLength": 1},
		"rooms":         map[string]interface{}{"type": "string"},
		"preferredDate": map[string]interface{}{"type": "string"},
		"message":       map[string]interface{}{"type": "string"},
	},
}

// validatePayload checks the raw submission against quoteRequestSchema.
// The client only ever sees the generic "Missing required fields" message;
// the per-field detail is carried in StandardError.Details for the logs.
func validatePayload(payload map[string]interface{}) *apperrors.StandardError {
	schemaLoader := gojsonschema.NewGoLoader(quoteRequestSchema)
	documentLoader := gojsonschema.NewGoLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.NewInternalError("schema validation: " + err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return apperrors.NewValidationError(strings.Join(details, "; "))
	}
	return nil
}
