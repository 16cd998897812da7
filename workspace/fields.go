package workspace

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ggoodman/notion-mcp-go/snapshot"
)

// fields reads typed values out of a snapshot record by case-insensitive
// header aliases, recording a problem for every value that does not fit.
type fields struct {
	rec   snapshot.Record
	index map[string]string // lowercased header -> header
	probs problems
}

func newFields(rec snapshot.Record) *fields {
	keys := rec.Keys()
	f := &fields{rec: rec, index: make(map[string]string, len(keys))}
	for _, k := range keys {
		f.index[strings.ToLower(k)] = k
	}
	return f
}

// lookup returns the first present alias.
func (f *fields) lookup(aliases []string) (snapshot.Value, bool) {
	for _, a := range aliases {
		if key, ok := f.index[a]; ok {
			return f.rec.Get(key)
		}
	}
	return snapshot.Value{}, false
}

func (f *fields) has(aliases ...string) bool {
	_, ok := f.lookup(aliases)
	return ok
}

// text reads a free-text field. Cells that the parser split into a list are
// joined back together, since titles and notes may contain commas.
func (f *fields) text(field string, required bool, aliases ...string) string {
	v, _ := f.lookup(aliases)
	var s string
	switch v.Kind() {
	case snapshot.KindString:
		s, _ = v.AsString()
	case snapshot.KindList:
		items, _ := v.AsList()
		s = strings.Join(items, ", ")
	case snapshot.KindBool:
		b, _ := v.AsBool()
		s = strconv.FormatBool(b)
	}
	if required && s == "" {
		f.probs.add(field, "required")
	}
	return s
}

// list reads a multi-value field such as tags or people. A single string is
// a one-element list and empty elements are dropped.
func (f *fields) list(field string, aliases ...string) []string {
	v, _ := f.lookup(aliases)
	switch v.Kind() {
	case snapshot.KindString:
		s, _ := v.AsString()
		return []string{s}
	case snapshot.KindList:
		items, _ := v.AsList()
		return slices.DeleteFunc(items, func(s string) bool { return s == "" })
	case snapshot.KindBool:
		f.probs.add(field, "expected a list, got %s", v)
	}
	return nil
}

// boolean reads a checkbox field. A missing or empty cell is false.
func (f *fields) boolean(field string, aliases ...string) bool {
	v, _ := f.lookup(aliases)
	switch v.Kind() {
	case snapshot.KindBool:
		b, _ := v.AsBool()
		return b
	case snapshot.KindNull:
		return false
	default:
		f.probs.add(field, "expected a checkbox value, got %q", v.String())
		return false
	}
}

// dateRange reads a date or a Notion date range.
func (f *fields) dateRange(field string, required bool, aliases ...string) (*Date, *Date) {
	s := f.text(field, required, aliases...)
	if s == "" {
		return nil, nil
	}
	start, end, err := ParseDateRange(s)
	if err != nil {
		f.probs.add(field, "%v", err)
		return nil, nil
	}
	return &start, end
}

func (f *fields) date(field string, required bool, aliases ...string) *Date {
	start, _ := f.dateRange(field, required, aliases...)
	return start
}

// enumField reads a select field whose value must be one of values. Missing
// values yield def.
func enumField[T ~string](f *fields, field string, values []T, def T, aliases ...string) T {
	s := f.text(field, false, aliases...)
	if s == "" {
		return def
	}
	v, ok := matchEnum(s, values)
	if !ok {
		f.probs.add(field, "unknown value %q", s)
		return def
	}
	return v
}
