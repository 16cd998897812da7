package workspace

import (
	"errors"

	"github.com/ggoodman/notion-mcp-go/snapshot"
)

// Decode converts records with from, returning every record that converted
// and the joined errors of those that did not.
func Decode[T any](records []snapshot.Record, from func(snapshot.Record) (T, error)) ([]T, error) {
	out := make([]T, 0, len(records))
	var errs []error
	for _, rec := range records {
		v, err := from(rec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, v)
	}
	return out, errors.Join(errs...)
}
