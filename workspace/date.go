package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
)

const dateLayout = "2006-01-02"

// dateLayouts are tried in order. Notion exports dates in its long English
// form; the numeric forms cover snapshots edited in a spreadsheet and are
// read month first, as Notion's US locale writes them.
var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02 15:04",
	"January 2, 2006",
	"January 2, 2006 3:04 PM",
	"January 2, 2006 15:04",
	"Jan 2, 2006",
	"2 Jan 2006",
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
}

// timeLayouts read the end of a same-day range such as
// "May 5, 2023 10:00 AM → 11:00 AM".
var timeLayouts = []string{"3:04 PM", "3:04PM", "15:04"}

// rangeSeparator joins the start and end of a Notion date range.
const rangeSeparator = "→"

// Date is a calendar day with no time or zone.
type Date struct {
	t time.Time
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a single date. For a range only the start is returned.
func ParseDate(s string) (Date, error) {
	start, _, err := ParseDateRange(s)
	return start, err
}

// ParseDateRange parses "A → B" into start and end. A single date yields a
// nil end. An end that is only a time of day falls on the start's day; an
// end that cannot be read at all is dropped.
func ParseDateRange(s string) (Date, *Date, error) {
	first, second, isRange := strings.Cut(s, rangeSeparator)
	start, err := parseOne(first)
	if err != nil {
		return Date{}, nil, err
	}
	if !isRange {
		return start, nil, nil
	}
	if end, err := parseOne(second); err == nil {
		return start, &end, nil
	}
	second = strings.TrimSpace(second)
	for _, layout := range timeLayouts {
		if _, err := time.Parse(layout, second); err == nil {
			end := start
			return start, &end, nil
		}
	}
	return start, nil, nil
}

func parseOne(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, errors.New("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

func (d Date) Time() time.Time    { return d.t }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) String() string     { return d.t.Format(dateLayout) }

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	t, err := time.Parse(dateLayout, string(b))
	if err != nil {
		return err
	}
	*d = NewDate(t.Year(), t.Month(), t.Day())
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// JSONSchema describes Date as an ISO calendar date.
func (Date) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Format: "date"}
}
