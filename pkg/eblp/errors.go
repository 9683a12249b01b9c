package eblp

import "strings"

// Field names a key of the plugin document.
type Field string

// Document keys in serialization order.
const (
	FieldName        Field = "name"
	FieldVersion     Field = "ver"
	FieldDescription Field = "description"
	FieldAuthor      Field = "author"
	FieldID          Field = "id"
	FieldScript      Field = "js"
)

var fieldOrder = []Field{
	FieldName,
	FieldVersion,
	FieldDescription,
	FieldAuthor,
	FieldID,
	FieldScript,
}

// FieldError describes one failed field check.
type FieldError struct {
	Field   Field
	Message string
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Message
}

// ValidationError collects every field that failed validation, in document order.
type ValidationError struct {
	Errors []FieldError
}

// Error joins the field messages with "; ".
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages returns the human-readable message of every failed field.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Message
	}

	return msgs
}

// has reports whether f is among the failed fields.
func (e *ValidationError) has(f Field) bool {
	for _, fe := range e.Errors {
		if fe.Field == f {
			return true
		}
	}

	return false
}
