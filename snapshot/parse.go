package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// defaultSource tags records read from a reader with no better name.
const defaultSource = "csv"

// Parse reads the snapshot at path and returns one Record per data row, in
// row order.
func Parse(path string, opts ...Option) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s: is a directory", ErrFileNotFound, path)
	}

	cfg := newConfig(opts)
	if cfg.source == "" {
		cfg.source = sourceFromPath(path)
	}
	return parse(f, path, cfg)
}

// ParseReader parses a snapshot from r. source names the input in errors and,
// unless WithSource overrides it, becomes the records' source tag.
func ParseReader(r io.Reader, source string, opts ...Option) ([]Record, error) {
	cfg := newConfig(opts)
	if cfg.source == "" {
		cfg.source = strings.TrimSpace(source)
	}
	if cfg.source == "" {
		cfg.source = defaultSource
	}
	name := source
	if name == "" {
		name = cfg.source
	}
	return parse(r, name, cfg)
}

func sourceFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return defaultSource
	}
	return name
}

func parse(r io.Reader, name string, cfg *config) ([]Record, error) {
	// Notion exports start with a UTF-8 byte order mark. Invalid UTF-8 is
	// rejected rather than replaced.
	dec := transform.Chain(encoding.UTF8Validator, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(transform.NewReader(r, dec))
	// Field counts are checked below so the error can name the header width.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, malformed(name, 0, nil, "missing header row")
	}
	if err != nil {
		return nil, csvError(name, err)
	}
	header, err = cleanHeader(name, header)
	if err != nil {
		return nil, err
	}

	idIdx := -1
	for i, h := range header {
		if cfg.idColumn == "" || !strings.EqualFold(h, cfg.idColumn) {
			continue
		}
		if idIdx >= 0 {
			return nil, malformed(name, 1, nil, "columns %d and %d both match id column %q", idIdx+1, i+1, cfg.idColumn)
		}
		idIdx = i
	}

	var records []Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(name, err)
		}
		if len(fields) != len(header) {
			line, _ := cr.FieldPos(0)
			return nil, malformed(name, line, csv.ErrFieldCount,
				"expected %d fields, got %d", len(header), len(fields))
		}
		records = append(records, buildRecord(row, header, fields, idIdx, cfg))
	}
	return records, nil
}

func buildRecord(row int, header, fields []string, idIdx int, cfg *config) Record {
	id := ""
	if idIdx >= 0 {
		id = strings.TrimSpace(fields[idIdx])
	}
	if id == "" {
		id = strconv.Itoa(row)
	}

	rec := newRecord(id, cfg.source)
	for i, key := range header {
		if i == idIdx {
			continue
		}
		delim := cfg.delimiter
		if cfg.isText(key) {
			delim = ""
		}
		rec.props.Set(key, Coerce(fields[i], delim))
	}
	return rec
}

func cleanHeader(name string, header []string) ([]string, error) {
	if len(header) == 1 && strings.TrimSpace(header[0]) == "" {
		return nil, malformed(name, 1, nil, "missing header row")
	}
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, malformed(name, 1, nil, "header column %d is empty", i+1)
		}
		if prev, dup := seen[h]; dup {
			return nil, malformed(name, 1, nil, "duplicate header %q in columns %d and %d", h, prev+1, i+1)
		}
		seen[h] = i
		out[i] = h
	}
	return out, nil
}

func csvError(name string, err error) error {
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return malformed(name, 0, err, "input is not valid UTF-8")
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return malformed(name, pe.StartLine, pe.Err, "%v", pe.Err)
	}
	return fmt.Errorf("read %s: %w", name, err)
}
