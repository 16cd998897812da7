package snapshot

import "strings"

// DefaultIDColumn is the header that supplies record identifiers unless
// WithIDColumn says otherwise.
const DefaultIDColumn = "id"

// DefaultListDelimiter splits multi-value cells such as Notion multi-selects.
const DefaultListDelimiter = ","

// Option configures a parse.
type Option func(*config)

type config struct {
	idColumn    string
	source      string
	delimiter   string
	textColumns map[string]struct{}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		idColumn:    DefaultIDColumn,
		delimiter:   DefaultListDelimiter,
		textColumns: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithIDColumn selects the header (matched case-insensitively) whose cells
// become record IDs. Rows without a value fall back to their 1-based index.
func WithIDColumn(name string) Option {
	return func(c *config) { c.idColumn = strings.TrimSpace(name) }
}

// WithSource sets the source tag stamped on every record. By default the tag
// is the file name without its extension.
func WithSource(tag string) Option {
	return func(c *config) { c.source = strings.TrimSpace(tag) }
}

// WithListDelimiter changes the substring that turns a cell into a list. An
// empty delimiter disables list splitting.
func WithListDelimiter(delim string) Option {
	return func(c *config) { c.delimiter = delim }
}

// WithTextColumns names columns (case-insensitive) whose cells are never split
// into lists, such as free-text titles that legitimately contain commas.
func WithTextColumns(names ...string) Option {
	return func(c *config) {
		for _, n := range names {
			c.textColumns[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
		}
	}
}

func (c *config) isText(header string) bool {
	_, ok := c.textColumns[strings.ToLower(header)]
	return ok
}
