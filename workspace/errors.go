package workspace

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is matched by every *ValidationError.
var ErrInvalidRecord = errors.New("invalid record")

// FieldError describes one field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string { return e.Field + ": " + e.Message }

// ValidationError collects every field failure of one record.
type ValidationError struct {
	Kind     Kind
	RecordID string
	Source   string
	Fields   []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid %s", e.Kind)
	if e.RecordID != "" {
		fmt.Fprintf(&b, " %q", e.RecordID)
	}
	if e.Source != "" {
		fmt.Fprintf(&b, " (%s)", e.Source)
	}
	for i, f := range e.Fields {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(f.String())
	}
	return b.String()
}

// Is makes every ValidationError match ErrInvalidRecord.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidRecord }

// problems accumulates field failures for a record under construction.
type problems []FieldError

func (p *problems) add(field, format string, args ...any) {
	*p = append(*p, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (p problems) err(kind Kind, id, source string) error {
	if len(p) == 0 {
		return nil
	}
	return &ValidationError{Kind: kind, RecordID: id, Source: source, Fields: p}
}
