// Package errorcodes defines compiler errors using a structured type.
// CompilerError holds a short code and a human-readable description.
package errorcodes

import "github.com/andrei-cloud/eblp/pkg/eblp"

// Field validation errors, one per mandatory document key.
var (
	ErrE10 = CompilerError{"E10", "name is missing or empty"}
	ErrE11 = CompilerError{"E11", "version is missing or not in 0.0 format"}
	ErrE12 = CompilerError{"E12", "description is missing or empty"}
	ErrE13 = CompilerError{"E13", "author is missing or empty"}
	ErrE14 = CompilerError{"E14", "script is missing or empty"}
	ErrE15 = CompilerError{"E15", "invalid field value"}
)

// I/O and session errors.
var (
	ErrE20 = CompilerError{"E20", "source file is unreadable"}
	ErrE21 = CompilerError{"E21", "destination is unwritable"}
	ErrE22 = CompilerError{"E22", "destination already exists"}
	ErrE30 = CompilerError{"E30", "nothing to compile, open a valid plugin document first"}
)

// CompilerError represents a compiler error with its code and description.
type CompilerError struct {
	Code        string // short error code
	Description string // human-readable description
}

// Error implements the Go error interface: "<Code>: <Description>".
func (e CompilerError) Error() string {
	return e.Code + ": " + e.Description
}

// CodeOnly returns only the error code (e.g., "E11").
func (e CompilerError) CodeOnly() string {
	return e.Code
}

// ForField maps a failed document field to its code, keeping the field's message.
func ForField(fe eblp.FieldError) CompilerError {
	code := ErrE15.Code
	switch fe.Field {
	case eblp.FieldName:
		code = ErrE10.Code
	case eblp.FieldVersion:
		code = ErrE11.Code
	case eblp.FieldDescription:
		code = ErrE12.Code
	case eblp.FieldAuthor:
		code = ErrE13.Code
	case eblp.FieldScript:
		code = ErrE14.Code
	}

	return CompilerError{code, fe.Message}
}

// FromValidation converts every field error of verr into a coded error, keeping order.
func FromValidation(verr *eblp.ValidationError) []CompilerError {
	out := make([]CompilerError, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		out = append(out, ForField(fe))
	}

	return out
}
