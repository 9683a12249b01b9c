package eblp

import (
	"regexp"
	"strings"
)

// Extension is the file extension of compiled plugins.
const Extension = ".eblp"

// IDPrefix is the namespace every plugin identifier starts with.
const IDPrefix = "eblan."

var (
	versionPattern = regexp.MustCompile(`^\d+\.\d+$`)
	idPattern      = regexp.MustCompile(`^eblan\.[a-zA-Z0-9-]+$`)
)

// Record is a validated plugin document.
type Record struct {
	Name        string
	Version     string
	Description string
	Author      string
	ID          string
	Script      string
}

// ValidVersion reports whether v is a major.minor version tag.
func ValidVersion(v string) bool {
	return versionPattern.MatchString(v)
}

// ValidID reports whether id is a well-formed plugin identifier.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Validate checks a record against the rules Parse enforces, so a record that
// passes reads back unchanged from its serialized form. Hand-built records are
// also checked for surrounding whitespace and a script bracket Parse would
// have stopped at.
func (r Record) Validate() error {
	errs := checkRequired(map[Field]string{
		FieldName:        r.Name,
		FieldVersion:     r.Version,
		FieldDescription: r.Description,
		FieldAuthor:      r.Author,
		FieldScript:      r.Script,
	})

	if !ValidID(r.ID) {
		errs = append(errs, FieldError{Field: FieldID, Message: "identifier is missing or malformed"})
	}

	for _, f := range fieldOrder {
		v := r.value(f)
		if v != strings.TrimSpace(v) {
			errs = append(errs, FieldError{Field: f, Message: string(f) + " has surrounding whitespace"})
		}
		if f == FieldScript && hasUnescapedBracket(v) {
			errs = append(errs, FieldError{Field: f, Message: "script contains an unescaped ]"})
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}

func (r Record) value(f Field) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldVersion:
		return r.Version
	case FieldDescription:
		return r.Description
	case FieldAuthor:
		return r.Author
	case FieldID:
		return r.ID
	case FieldScript:
		return r.Script
	}

	return ""
}
