package eblp

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// requiredCheck validates one mandatory field.
type requiredCheck struct {
	field   Field
	label   string
	message string
	valid   func(string) bool
}

// Checks run in this order so error lists are stable.
var requiredChecks = []requiredCheck{
	{FieldName, "name", "name is missing or empty", notEmpty},
	{FieldVersion, "version", "version is missing or not in 0.0 format", ValidVersion},
	{FieldDescription, "description", "description is missing or empty", notEmpty},
	{FieldAuthor, "author", "author is missing or empty", notEmpty},
	{FieldScript, "script", "script is missing or empty", notEmpty},
}

func notEmpty(s string) bool {
	return s != ""
}

// Parse extracts and validates a plugin document. A missing or malformed id
// is replaced with a generated one. On failure the error is a *ValidationError.
func Parse(text string) (Record, error) {
	return ParseWith(text, GenerateID)
}

// ParseWith is Parse with an explicit identifier source.
func ParseWith(text string, gen IDGenerator) (Record, error) {
	values := make(map[Field]string, len(fieldOrder))
	for _, f := range fieldOrder {
		if v, ok := extract(text, f); ok {
			values[f] = strings.TrimSpace(v)
		}
	}

	if errs := checkRequired(values); len(errs) > 0 {
		return Record{}, &ValidationError{Errors: errs}
	}

	id := values[FieldID]
	if !ValidID(id) {
		id = gen()
	}

	return Record{
		Name:        values[FieldName],
		Version:     values[FieldVersion],
		Description: values[FieldDescription],
		Author:      values[FieldAuthor],
		ID:          id,
		Script:      values[FieldScript],
	}, nil
}

// ParseReader reads r to the end and parses its content.
func ParseReader(r io.Reader) (Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read plugin document: %w", err)
	}

	return Parse(string(data))
}

// ParseFile reads and parses the document at path.
func ParseFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer f.Close() //nolint:errcheck

	return ParseReader(f)
}

// checkRequired returns at most one error per failed mandatory field.
// Fields written before the script must also read back unchanged once
// serialized: they may not end in an unpaired backslash, which would escape
// the closing bracket, nor contain another key's marker, which would shadow
// that key's own line.
func checkRequired(values map[Field]string) []FieldError {
	var errs []FieldError
	for _, c := range requiredChecks {
		v := strings.TrimSpace(values[c.field])
		switch {
		case !c.valid(v):
			errs = append(errs, FieldError{Field: c.field, Message: c.message})
		case c.field == FieldScript:
		case hasUnescapedBracket(v):
			errs = append(errs, FieldError{Field: c.field, Message: c.label + " contains an unescaped ]"})
		case !closesCleanly(v):
			errs = append(errs, FieldError{Field: c.field, Message: c.label + " ends with an unpaired backslash"})
		case containsMarker(v):
			errs = append(errs, FieldError{Field: c.field, Message: c.label + " contains a key marker"})
		}
	}

	return errs
}

func hasUnescapedBracket(v string) bool {
	_, ok := closingBracket(v)

	return ok
}

// closesCleanly reports whether v followed by "]" ends exactly at that bracket.
func closesCleanly(v string) bool {
	end, ok := closingBracket(v + "]")

	return ok && end == len(v)
}

// containsMarker reports whether v holds a "<key>=[" marker of any document key.
func containsMarker(v string) bool {
	for _, f := range fieldOrder {
		if markerIndex(v, f) >= 0 {
			return true
		}
	}

	return false
}

// extract returns the raw value of key f: everything between the first
// "<f>=[" marker and the first unescaped "]" after it.
func extract(text string, f Field) (string, bool) {
	start := markerIndex(text, f)
	if start < 0 {
		return "", false
	}

	body := text[start+len(f)+2:]
	end, ok := closingBracket(body)
	if !ok {
		return "", false
	}

	return body[:end], true
}

// markerIndex returns the position of the first "<f>=[" marker in text, or -1.
// A marker preceded by an identifier character belongs to a longer key and is skipped.
func markerIndex(text string, f Field) int {
	marker := string(f) + "=["
	for offset := 0; offset < len(text); {
		i := strings.Index(text[offset:], marker)
		if i < 0 {
			return -1
		}
		start := offset + i
		if start > 0 && isKeyChar(text[start-1]) {
			offset = start + len(marker)
			continue
		}

		return start
	}

	return -1
}

// closingBracket finds the first unescaped "]" in s. A backslash escapes a
// following "]" or "\\"; both characters stay in the value.
func closingBracket(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && (s[i+1] == ']' || s[i+1] == '\\') {
				i++
			}
		case ']':
			return i, true
		}
	}

	return 0, false
}

func isKeyChar(c byte) bool {
	return c == '_' || c == '-' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
