package workspace

import (
	"github.com/invopop/jsonschema"

	"github.com/ggoodman/notion-mcp-go/snapshot"
)

// MeetingKind categorizes a meeting.
type MeetingKind string

const (
	MeetingStandup  MeetingKind = "Standup"
	MeetingPlanning MeetingKind = "Planning"
	MeetingReview   MeetingKind = "Review"
	MeetingRetro    MeetingKind = "Retro"
	MeetingOneOnOne MeetingKind = "1:1"
	MeetingOther    MeetingKind = "Other"
)

// MeetingKinds lists the valid meeting categories.
var MeetingKinds = []MeetingKind{MeetingStandup, MeetingPlanning, MeetingReview, MeetingRetro, MeetingOneOnOne, MeetingOther}

func (MeetingKind) JSONSchema() *jsonschema.Schema {
	return enumSchema("Meeting category", MeetingKinds)
}

// Meeting is one row of a meeting notes database.
type Meeting struct {
	ID        string      `json:"id" jsonschema:"minLength=1"`
	Title     string      `json:"title" jsonschema:"minLength=1"`
	Date      Date        `json:"date"`
	Kind      MeetingKind `json:"kind"`
	Attendees []string    `json:"attendees,omitempty"`
	Project   string      `json:"project,omitempty"`
	Notes     string      `json:"notes,omitempty"`
}

var (
	meetingTitle     = []string{"title", "name", "meeting"}
	meetingDate      = []string{"date", "when", "meeting date", "created"}
	meetingKind      = []string{"type", "kind", "category"}
	meetingAttendees = []string{"attendees", "participants", "people"}
	meetingProject   = []string{"project", "projects"}
	meetingNotes     = []string{"notes", "summary"}
)

// MeetingFromRecord builds a Meeting from a snapshot row.
func MeetingFromRecord(rec snapshot.Record) (Meeting, error) {
	f := newFields(rec)
	m := Meeting{
		ID:        rec.ID,
		Title:     f.text("title", true, meetingTitle...),
		Kind:      enumField(f, "kind", MeetingKinds, MeetingOther, meetingKind...),
		Attendees: f.list("attendees", meetingAttendees...),
		Project:   f.text("project", false, meetingProject...),
		Notes:     f.text("notes", false, meetingNotes...),
	}
	if d := f.date("date", true, meetingDate...); d != nil {
		m.Date = *d
	}
	if err := f.probs.err(KindMeeting, rec.ID, rec.Source); err != nil {
		return Meeting{}, err
	}
	return m, nil
}

// Validate reports every invariant m violates.
func (m Meeting) Validate() error {
	var p problems
	if m.ID == "" {
		p.add("id", "required")
	}
	if m.Title == "" {
		p.add("title", "required")
	}
	if m.Date.IsZero() {
		p.add("date", "required")
	}
	if _, ok := matchEnum(string(m.Kind), MeetingKinds); !ok || m.Kind == "" {
		p.add("kind", "unknown value %q", m.Kind)
	}
	return p.err(KindMeeting, m.ID, "")
}
