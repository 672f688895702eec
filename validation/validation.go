// Package validation holds the single rule set applied to every write,
// replacing the per-route copies that had drifted apart in the old
// handlers. All accepted strings are stored trimmed; optional fields
// that trim to empty are normalized to nil so the store sees NULL
// rather than an empty string.
package validation

import (
	"fmt"
	"strings"

	"daftar/models"
)

// Field length bounds. Project names have a floor of one character;
// the three-character minimum seen on one legacy route was drift.
const (
	ProjectNameMin        = 1
	ProjectNameMax        = 100
	ProjectDescriptionMax = 500
	NoteTitleMax          = 200
)

// Error reports a single rejected field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// RequiredString trims value and enforces length bounds in runes.
// Rune counting keeps limits meaningful for Farsi input.
func RequiredString(field, value string, min, max int) (string, *Error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &Error{
			Field:   field,
			Message: fmt.Sprintf("%s is required and must be a non-empty string", field),
		}
	}
	length := len([]rune(trimmed))
	if length < min {
		return "", &Error{
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %d characters", field, min),
		}
	}
	if max > 0 && length > max {
		return "", &Error{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters", field, max),
		}
	}
	return trimmed, nil
}

// OptionalString trims value; absent values and values that trim to
// empty both normalize to nil. A max of 0 means unbounded.
func OptionalString(field string, value *string, max int) (*string, *Error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	if max > 0 && len([]rune(trimmed)) > max {
		return nil, &Error{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters", field, max),
		}
	}
	return &trimmed, nil
}

// ProjectName validates a project's name field.
func ProjectName(value string) (string, *Error) {
	return RequiredString("name", value, ProjectNameMin, ProjectNameMax)
}

// ProjectDescription validates a project's description field.
func ProjectDescription(value *string) (*string, *Error) {
	return OptionalString("description", value, ProjectDescriptionMax)
}

// NoteTitle validates a note's title field.
func NoteTitle(value string) (string, *Error) {
	return RequiredString("title", value, 1, NoteTitleMax)
}

// NoteContent validates a note's content field. Content has no
// enforced maximum; rich-text payloads can be large.
func NoteContent(value *string) (*string, *Error) {
	return OptionalString("content", value, 0)
}

// Tabs validates a note's tab map. Tab names are trimmed; a name that
// trims to empty rejects the whole map. Tab contents are stored
// verbatim, the editor owns their consistency.
func Tabs(field string, tabs map[string]models.NoteTab) (map[string]models.NoteTab, *Error) {
	if tabs == nil {
		return nil, nil
	}
	clean := make(map[string]models.NoteTab, len(tabs))
	for name, tab := range tabs {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return nil, &Error{
				Field:   field,
				Message: fmt.Sprintf("%s names must be non-empty strings", field),
			}
		}
		clean[trimmed] = tab
	}
	return clean, nil
}

// StringList validates a list field such as default_tabs. Entries are
// trimmed; an entry that trims to empty rejects the whole list.
func StringList(field string, values []string) ([]string, *Error) {
	if values == nil {
		return nil, nil
	}
	clean := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, &Error{
				Field:   field,
				Message: fmt.Sprintf("%s entries must be non-empty strings", field),
			}
		}
		clean = append(clean, trimmed)
	}
	return clean, nil
}
