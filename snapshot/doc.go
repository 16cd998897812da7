// Package snapshot parses CSV exports of a Notion workspace ("snapshots")
// into ordered, immutable records.
//
// A snapshot has a mandatory header row followed by zero or more data rows.
// Every data row becomes one Record carrying a stable identifier, a source
// tag and the remaining columns as coerced values:
//
//   - an empty cell becomes null
//   - a boolean-like token ("true", "yes", "✓", "false", "no", "✗", ...)
//     becomes a bool
//   - a cell containing the list delimiter becomes an ordered list of trimmed
//     substrings
//   - anything else becomes the trimmed string
//
// Structural problems are never repaired. A row whose field count differs from
// the header's fails the whole parse with an error matching ErrMalformedCSV,
// and a path that cannot be opened fails with an error matching
// ErrFileNotFound.
//
// Parsing is a pure function of the input bytes; Watch is the only entry point
// that touches anything other than the file being read.
package snapshot
