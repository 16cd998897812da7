package snapshot

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// boolTokens is the complete set of cells read as booleans. Word tokens are
// matched case-insensitively; the symbol tokens cover the glyphs Notion and
// spreadsheet exports use for checkboxes.
var boolTokens = map[string]bool{
	"true":  true,
	"yes":   true,
	"✓":     true,
	"✔":     true,
	"☑":     true,
	"false": false,
	"no":    false,
	"✗":     false,
	"✘":     false,
	"☐":     false,
}

// ParseBool reports the truth value of a boolean-like token and whether s is
// one.
func ParseBool(s string) (value, ok bool) {
	key := strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
	value, ok = boolTokens[key]
	return value, ok
}

// Coerce converts a raw cell into a Value. An empty delimiter disables list
// splitting.
func Coerce(cell, delimiter string) Value {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Null()
	}
	if b, ok := ParseBool(s); ok {
		return BoolValue(b)
	}
	if delimiter != "" && strings.Contains(s, delimiter) {
		return ListValue(SplitList(s, delimiter)...)
	}
	return StringValue(s)
}

// SplitList splits s on delimiter and trims every element. Empty elements are
// kept so that positions stay meaningful.
func SplitList(s, delimiter string) []string {
	parts := strings.Split(s, delimiter)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
