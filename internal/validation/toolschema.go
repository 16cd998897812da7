package validation

import (
	"fmt"

	"github.com/ggoodman/notion-mcp-go/mcp"
)

// ToolInputSchema checks a tool input schema for internal consistency and
// de-duplicates Required in place, preserving first-occurrence order.
func ToolInputSchema(s *mcp.ToolInputSchema) error {
	if s == nil {
		return fmt.Errorf("nil schema")
	}
	if s.Type != "object" {
		return fmt.Errorf("tool input schema type must be object, got %q", s.Type)
	}
	seen := map[string]struct{}{}
	var req []string
	for _, name := range s.Required {
		if _, ok := s.Properties[name]; !ok {
			return fmt.Errorf("required property missing: %s", name)
		}
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			req = append(req, name)
		}
	}
	s.Required = req
	for name, p := range s.Properties {
		if err := property(name, p); err != nil {
			return err
		}
	}
	return nil
}

func property(path string, p mcp.SchemaProperty) error {
	if p.Minimum != nil && p.Maximum != nil && *p.Minimum > *p.Maximum {
		return fmt.Errorf("property %s minimum greater than maximum", path)
	}
	if len(p.Enum) > 1 {
		uniq := map[any]struct{}{}
		for _, v := range p.Enum {
			uniq[v] = struct{}{}
		}
		if len(uniq) != len(p.Enum) {
			return fmt.Errorf("duplicate enum values for property %s", path)
		}
	}
	if p.Items != nil {
		if err := property(path+"[]", *p.Items); err != nil {
			return err
		}
	}
	for name, child := range p.Properties {
		if err := property(path+"."+name, child); err != nil {
			return err
		}
	}
	return nil
}
