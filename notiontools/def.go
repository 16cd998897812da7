package notiontools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/ggoodman/notion-mcp-go/mcp"
)

var (
	// ErrInvalidArguments is returned, without calling out, when tool
	// arguments fail local validation.
	ErrInvalidArguments = errors.New("invalid tool arguments")

	// ErrNoCaller is returned when a tool group was built without a Caller.
	ErrNoCaller = errors.New("no tool caller configured")
)

// Validator is implemented by argument structs with local invariants.
type Validator interface {
	Validate() error
}

// Def describes one remote tool taking arguments of type A.
type Def[A any] struct {
	Name        string
	Title       string
	Description string
	// ReadOnly marks tools that do not modify the workspace.
	ReadOnly bool
	// Destructive marks tools that may remove or overwrite content.
	Destructive bool
}

// Descriptor returns the MCP tool descriptor for d. The input schema is
// strict: unknown argument fields are not allowed.
func (d Def[A]) Descriptor() mcp.Tool {
	return mcp.Tool{
		Name:        d.Name,
		Title:       d.Title,
		Description: d.Description,
		InputSchema: reflectToMCPInputSchema[A](false),
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    d.ReadOnly,
			DestructiveHint: d.Destructive,
			OpenWorldHint:   true,
		},
	}
}

// Request validates args and shapes them into a CallToolRequest.
func (d Def[A]) Request(args A) (*mcp.CallToolRequest, error) {
	if v, ok := any(args).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArguments, d.Name, err)
		}
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("encode %s arguments: %w", d.Name, err)
	}
	return &mcp.CallToolRequest{Name: d.Name, Arguments: raw}, nil
}

// Call shapes args and forwards the request to c.
func (d Def[A]) Call(ctx context.Context, c Caller, args A) (*mcp.CallToolResult, error) {
	if c == nil {
		return nil, ErrNoCaller
	}
	req, err := d.Request(args)
	if err != nil {
		return nil, err
	}
	return c.CallTool(ctx, req)
}

// reflectToMCPInputSchema reflects a Go type A into a jsonschema.Schema, and
// converts it to the simplified mcp.ToolInputSchema.
func reflectToMCPInputSchema[A any](allowAdditional bool) mcp.ToolInputSchema {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: allowAdditional,
	}
	s := r.Reflect(new(A))

	// Only object schemas map cleanly to MCP ToolInputSchema.
	if s == nil || s.Type != "object" {
		return mcp.ToolInputSchema{
			Type:                 "object",
			Properties:           map[string]mcp.SchemaProperty{},
			AdditionalProperties: allowAdditional,
		}
	}

	props := make(map[string]mcp.SchemaProperty)
	if s.Properties != nil {
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			props[el.Key] = toMCPProperty(el.Value)
		}
	}
	var required []string
	if len(s.Required) > 0 {
		required = append(required, s.Required...)
	}

	return mcp.ToolInputSchema{
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: allowAdditional,
	}
}

// toMCPProperty recursively maps a jsonschema.Schema to the simplified MCP SchemaProperty.
func toMCPProperty(s *jsonschema.Schema) mcp.SchemaProperty {
	if s == nil {
		return mcp.SchemaProperty{}
	}
	p := mcp.SchemaProperty{
		Type:        s.Type,
		Description: s.Description,
		Format:      s.Format,
	}
	if len(s.Enum) > 0 {
		p.Enum = s.Enum
	}
	if f, err := s.Minimum.Float64(); err == nil {
		p.Minimum = &f
	}
	if f, err := s.Maximum.Float64(); err == nil {
		p.Maximum = &f
	}
	if s.Type == "array" && s.Items != nil {
		item := toMCPProperty(s.Items)
		p.Items = &item
	}
	if s.Type == "object" && s.Properties != nil && s.Properties.Len() > 0 {
		m := make(map[string]mcp.SchemaProperty, s.Properties.Len())
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			m[el.Key] = toMCPProperty(el.Value)
		}
		p.Properties = m
	}
	return p
}
