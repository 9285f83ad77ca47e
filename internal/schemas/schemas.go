// Package schemas validates backend payloads against embedded JSON Schemas.
// Validation is advisory: collection payloads that fail degrade to an empty
// list at the call site with a developer log, never a user-facing error.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resumeListSchema describes the resume collection payload. Only id and
// filename are required; everything else the parser may have missed.
const resumeListSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "filename"],
    "properties": {
      "id": {"type": "integer"},
      "filename": {"type": "string"},
      "name": {"type": "string"},
      "email": {"type": "string"},
      "skills_count": {"type": "integer"},
      "uploaded_at": {"type": "string"}
    }
  }
}`

// interviewPrepSchema describes the generated aggregate. All sections are
// optional objects; the schema guards shape, not presence.
const interviewPrepSchema = `{
  "type": "object",
  "required": ["id", "tailored_resume_id"],
  "properties": {
    "id": {"type": "integer"},
    "tailored_resume_id": {"type": "integer"},
    "company_profile": {"type": "object"},
    "values_and_culture": {"type": "object"},
    "strategy_and_news": {"type": "object"},
    "role_analysis": {"type": "object"},
    "interview_preparation": {"type": "object"},
    "candidate_positioning": {"type": "object"},
    "questions_to_ask_interviewer": {"type": "array"}
  }
}`

// ValidationError reports which fields failed schema validation.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateResumeList checks a raw resume collection payload.
func ValidateResumeList(jsonContent []byte) error {
	return validate(resumeListSchema, jsonContent)
}

// ValidateInterviewPrep checks a raw interview-prep aggregate payload.
func ValidateInterviewPrep(jsonContent []byte) error {
	return validate(interviewPrepSchema, jsonContent)
}

func validate(schemaContent string, jsonContent []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
