package apperr

import "fmt"

// ParseError is the closed set of failures raised when translating raw
// textual data into typed structures. Snippet and raw-value fields must be
// produced via the bounded formatting helpers, never embedded verbatim.
type ParseError interface {
	error
	parseError()
}

var (
	_ ParseError = (*JSONDeserializationFailed)(nil)
	_ ParseError = (*MissingField)(nil)
	_ ParseError = (*InvalidFieldFormat)(nil)
	_ ParseError = (*InvalidArrayLength)(nil)
	_ ParseError = (*InvalidNumber)(nil)
)

// JSONDeserializationFailed reports a JSON decode failure. FieldName is
// empty only for whole-payload failures; field-scoped decodes must set it.
type JSONDeserializationFailed struct {
	FieldName    string
	ExpectedType string
	JSONSnippet  string
	Reason       string
}

func (e *JSONDeserializationFailed) Error() string {
	scope := ""
	if e.FieldName != "" {
		scope = fmt.Sprintf(" for field '%s'", e.FieldName)
	}
	return fmt.Sprintf("Failed to deserialize JSON%s: Expected type '%s'\nReason: %s\nJSON: %s",
		scope, e.ExpectedType, e.Reason, e.JSONSnippet)
}

func (e *JSONDeserializationFailed) parseError() {}

// MissingField reports a required field absent from its parent structure.
type MissingField struct {
	FieldName  string
	ParentType string
}

func (e *MissingField) Error() string {
	return fmt.Sprintf("Required field '%s' is missing from %s", e.FieldName, e.ParentType)
}

func (e *MissingField) parseError() {}

// InvalidFieldFormat reports a field whose value does not match the
// expected format.
type InvalidFieldFormat struct {
	FieldName      string
	ExpectedFormat string
	Actual         string
}

func (e *InvalidFieldFormat) Error() string {
	return fmt.Sprintf("Field '%s' has invalid format. Expected: %s, Got: %s",
		e.FieldName, e.ExpectedFormat, e.Actual)
}

func (e *InvalidFieldFormat) parseError() {}

// InvalidArrayLength reports an array with an unexpected element count.
type InvalidArrayLength struct {
	FieldName string
	Expected  int
	Actual    int
}

func (e *InvalidArrayLength) Error() string {
	return fmt.Sprintf("Array '%s' has invalid length. Expected: %d, Got: %d",
		e.FieldName, e.Expected, e.Actual)
}

func (e *InvalidArrayLength) parseError() {}

// InvalidNumber reports a numeric field that failed to parse.
type InvalidNumber struct {
	FieldName string
	RawValue  string
	Reason    string
}

func (e *InvalidNumber) Error() string {
	return fmt.Sprintf("Field '%s' has invalid number '%s': %s", e.FieldName, e.RawValue, e.Reason)
}

func (e *InvalidNumber) parseError() {}
