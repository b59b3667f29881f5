// internal/common/validation/schema.go
package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchema is the typed form of a worker's input schema. It is rendered to
// JSON schema draft 7 and checked with gojsonschema.
type JSONSchema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties,omitempty"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties *bool               `json:"additionalProperties,omitempty"`
	PatternProperties    map[string]Property `json:"patternProperties,omitempty"`
}

type Property struct {
	Type              string              `json:"type"`
	Nullable          bool                `json:"-"`
	Description       string              `json:"description,omitempty"`
	Default           interface{}         `json:"default,omitempty"`
	Minimum           *float64            `json:"minimum,omitempty"`
	Maximum           *float64            `json:"maximum,omitempty"`
	Enum              []string            `json:"enum,omitempty"`
	Pattern           *string             `json:"pattern,omitempty"`
	Format            string              `json:"format,omitempty"`
	MinLength         *int                `json:"minLength,omitempty"`
	MaxLength         *int                `json:"maxLength,omitempty"`
	Items             *Property           `json:"items,omitempty"`
	Properties        map[string]Property `json:"properties,omitempty"`
	PatternProperties map[string]Property `json:"patternProperties,omitempty"`
	Required          []string            `json:"required,omitempty"`
}

// MarshalJSON renders a nullable property as a ["type", "null"] union.
func (p Property) MarshalJSON() ([]byte, error) {
	type plain Property
	if !p.Nullable {
		return json.Marshal(plain(p))
	}

	raw, err := json.Marshal(plain(p))
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	m["type"] = []string{p.Type, "null"}
	if len(p.Enum) > 0 {
		enum := make([]interface{}, 0, len(p.Enum)+1)
		for _, e := range p.Enum {
			enum = append(enum, e)
		}
		m["enum"] = append(enum, nil)
	}
	return json.Marshal(m)
}

// UnmarshalJSON accepts the ["type", "null"] union written by MarshalJSON,
// so registry schemas can be read back into a JSONSchema.
func (p *Property) UnmarshalJSON(data []byte) error {
	type plain Property
	var aux struct {
		plain
		Type json.RawMessage `json:"type"`
		Enum []interface{}   `json:"enum"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = Property(aux.plain)

	if len(aux.Type) > 0 {
		if err := json.Unmarshal(aux.Type, &p.Type); err != nil {
			var union []string
			if err := json.Unmarshal(aux.Type, &union); err != nil {
				return fmt.Errorf("property type: %w", err)
			}
			for _, t := range union {
				if t == "null" {
					p.Nullable = true
					continue
				}
				p.Type = t
			}
		}
	}
	for _, e := range aux.Enum {
		if s, ok := e.(string); ok {
			p.Enum = append(p.Enum, s)
		}
	}
	return nil
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateInput checks job variables against schema. A schema that cannot be
// compiled is reported as a single SCHEMA_INVALID error.
func ValidateInput(input map[string]interface{}, schema JSONSchema) *ValidationResult {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(input),
	)
	if err != nil {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Field:   "(root)",
				Message: err.Error(),
				Code:    "SCHEMA_INVALID",
			}},
		}
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   fieldName(re),
			Message: re.Description(),
			Code:    strings.ToUpper(re.Type()),
		})
	}
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })

	return &ValidationResult{
		Valid:  result.Valid(),
		Errors: errs,
	}
}

// fieldName reports required-property errors against the missing property
// rather than its parent.
func fieldName(re gojsonschema.ResultError) string {
	field := re.Field()
	if re.Type() != "required" {
		return field
	}
	prop, ok := re.Details()["property"].(string)
	if !ok {
		return field
	}
	if field == "(root)" {
		return prop
	}
	return field + "." + prop
}

// ValidateTaskTypeNaming enforces kebab-case task types such as
// validate-decision-notice.
func ValidateTaskTypeNaming(taskType string) error {
	namingPattern := regexp.MustCompile(`^[a-z]+(-[a-z]+)+$`)
	if !namingPattern.MatchString(taskType) {
		return fmt.Errorf("task type must be kebab-case with at least two words (e.g. record-decision-outcome)")
	}
	return nil
}

func GetSchemaFromJSON(schemaJSON string) (JSONSchema, error) {
	var schema JSONSchema
	err := json.Unmarshal([]byte(schemaJSON), &schema)
	return schema, err
}

// ToMap renders the schema as a plain document, the form stored in the
// activity registry.
func (s JSONSchema) ToMap() (map[string]interface{}, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

func BoolPtr(b bool) *bool        { return &b }
func IntPtr(i int) *int           { return &i }
func StringPtr(s string) *string  { return &s }
func FloatPtr(f float64) *float64 { return &f }
