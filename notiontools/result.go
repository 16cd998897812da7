package notiontools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ggoodman/notion-mcp-go/mcp"
)

// ErrToolFailed is matched by every *ToolError.
var ErrToolFailed = errors.New("tool call failed")

// ToolError carries the message of a result whose IsError flag is set.
type ToolError struct {
	Message string
}

func (e *ToolError) Error() string {
	if e.Message == "" {
		return ErrToolFailed.Error()
	}
	return ErrToolFailed.Error() + ": " + e.Message
}

func (e *ToolError) Is(target error) bool { return target == ErrToolFailed }

// Check converts a tool-level failure into a *ToolError. A nil result is an
// error too, since a Caller must return one or the other.
func Check(res *mcp.CallToolResult) error {
	if res == nil {
		return errors.New("nil tool result")
	}
	if res.IsError {
		return &ToolError{Message: Text(res)}
	}
	return nil
}

// Text concatenates the text blocks of res, one per line.
func Text(res *mcp.CallToolResult) string {
	if res == nil {
		return ""
	}
	var parts []string
	for _, c := range res.Content {
		if c.Type == mcp.ContentTypeText && c.Text != "" {
			parts = append(parts, c.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// DecodeStructured decodes the structured content of res into O. Servers
// that only return text are handled by decoding the first text block that
// holds a JSON object.
func DecodeStructured[O any](res *mcp.CallToolResult) (O, error) {
	var out O
	if err := Check(res); err != nil {
		return out, err
	}
	if res.StructuredContent != nil {
		b, err := json.Marshal(res.StructuredContent)
		if err != nil {
			return out, fmt.Errorf("encode structured content: %w", err)
		}
		if err := json.Unmarshal(b, &out); err != nil {
			return out, fmt.Errorf("decode structured content: %w", err)
		}
		return out, nil
	}
	for _, c := range res.Content {
		if c.Type != mcp.ContentTypeText || !strings.HasPrefix(strings.TrimSpace(c.Text), "{") {
			continue
		}
		if err := json.Unmarshal([]byte(c.Text), &out); err != nil {
			return out, fmt.Errorf("decode text content: %w", err)
		}
		return out, nil
	}
	return out, errors.New("result has no structured content")
}
