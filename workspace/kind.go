package workspace

import (
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

// Kind names a record type.
type Kind string

const (
	KindTask    Kind = "task"
	KindProject Kind = "project"
	KindMeeting Kind = "meeting"
	KindTeam    Kind = "team"
)

// Kinds lists every record type in a stable order.
var Kinds = []Kind{KindTask, KindProject, KindMeeting, KindTeam}

// ParseKind accepts a kind name in either singular or plural form.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown record kind %q", s)
}

// JSONSchema reflects the JSON Schema of the typed record for k.
func JSONSchema(k Kind) (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	var s *jsonschema.Schema
	switch k {
	case KindTask:
		s = r.Reflect(&Task{})
	case KindProject:
		s = r.Reflect(&Project{})
	case KindMeeting:
		s = r.Reflect(&Meeting{})
	case KindTeam:
		s = r.Reflect(&Team{})
	default:
		return nil, fmt.Errorf("unknown record kind %q", k)
	}
	s.Title = string(k)
	return s, nil
}

// enumSchema builds a string enum schema for typed string constants.
func enumSchema[T ~string](description string, values []T) *jsonschema.Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = string(v)
	}
	return &jsonschema.Schema{Type: "string", Enum: enum, Description: description}
}

// matchEnum returns the canonical spelling of s among values, ignoring case.
func matchEnum[T ~string](s string, values []T) (T, bool) {
	for _, v := range values {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	return "", false
}
