package workspace

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ggoodman/notion-mcp-go/snapshot"
)

func records(t *testing.T, csv string) []snapshot.Record {
	t.Helper()
	recs, err := snapshot.ParseReader(strings.NewReader(csv), "fixture")
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return recs
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("ValidationError must match ErrInvalidRecord")
	}
	var out []string
	for _, f := range ve.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestTaskFromRecord(t *testing.T) {
	recs := records(t, "id,Name,Status,Priority,Assignee,Due Date,Project,Tags,Done\n"+
		"T-1,\"Write spec\",In progress,high,Ada,\"January 5, 2026\",Apollo,\"infra,docs\",no\n"+
		"T-2,Ship,done,,\"Ada, Grace\",2026-02-01,,,yes\n")

	got, err := Decode(recs, TaskFromRecord)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	due1 := NewDate(2026, 1, 5)
	due2 := NewDate(2026, 2, 1)
	want := []Task{
		{
			ID: "T-1", Title: "Write spec", Status: TaskInProgress, Priority: PriorityHigh,
			Assignees: []string{"Ada"}, Due: &due1, Project: "Apollo", Tags: []string{"infra", "docs"},
		},
		{
			ID: "T-2", Title: "Ship", Status: TaskDone,
			Assignees: []string{"Ada", "Grace"}, Due: &due2, Done: true,
		},
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b Date) bool { return a.Equal(b) })); diff != "" {
		t.Fatalf("tasks mismatch (-want +got):\n%s", diff)
	}
	for _, task := range got {
		if err := task.Validate(); err != nil {
			t.Fatalf("constructed task fails Validate: %v", err)
		}
	}
}

func TestTaskFromRecord_DoneFollowsStatus(t *testing.T) {
	recs := records(t, "id,Title,Status\n1,a,Done\n2,b,\n")
	tasks, err := Decode(recs, TaskFromRecord)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !tasks[0].Done || tasks[1].Done {
		t.Fatalf("done = %v, %v", tasks[0].Done, tasks[1].Done)
	}
	if tasks[1].Status != TaskNotStarted {
		t.Fatalf("missing status should default to %q, got %q", TaskNotStarted, tasks[1].Status)
	}
}

func TestTaskFromRecord_StatusFollowsDone(t *testing.T) {
	recs := records(t, "id,name,done,tags\n1,\"Write spec\",true,\"infra,docs\"\n2,Review,false,\n")
	tasks, err := Decode(recs, TaskFromRecord)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tasks[0].Status != TaskDone || !tasks[0].Done {
		t.Fatalf("task 1 = %+v", tasks[0])
	}
	if tasks[1].Status != TaskNotStarted || tasks[1].Done {
		t.Fatalf("task 2 = %+v", tasks[1])
	}
}

func TestTaskFromRecord_CollectsAllProblems(t *testing.T) {
	recs := records(t, "id,Name,Status,Priority,Due,Done\n9,,Someday,P0,tomorrow,maybe\n")
	_, err := TaskFromRecord(recs[0])
	got := fieldNames(t, err)
	want := []string{"title", "status", "priority", "due", "done"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(err.Error(), `invalid task "9" (fixture)`) {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestTask_DoneConflictsWithStatus(t *testing.T) {
	recs := records(t, "id,Name,Status,Done\n1,a,Blocked,true\n")
	_, err := TaskFromRecord(recs[0])
	if diff := cmp.Diff([]string{"done"}, fieldNames(t, err)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectFromRecord(t *testing.T) {
	recs := records(t, "id,Project name,Status,Owner,Dates\n"+
		"P-1,Apollo,active,Ada,\"January 1, 2026 → March 31, 2026\"\n"+
		"P-2,Gemini,On hold,,\"March 31, 2026 → January 1, 2026\"\n")

	p, err := ProjectFromRecord(recs[0])
	if err != nil {
		t.Fatalf("ProjectFromRecord: %v", err)
	}
	if p.Name != "Apollo" || p.Status != ProjectActive || p.Owner != "Ada" {
		t.Fatalf("unexpected project %+v", p)
	}
	if p.Start == nil || p.End == nil || p.Start.String() != "2026-01-01" || p.End.String() != "2026-03-31" {
		t.Fatalf("unexpected range %v → %v", p.Start, p.End)
	}

	_, err = ProjectFromRecord(recs[1])
	if diff := cmp.Diff([]string{"end"}, fieldNames(t, err)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestMeetingFromRecord(t *testing.T) {
	recs := records(t, "Name,Date,Type,Attendees,Notes\n"+
		"\"Sync, weekly\",\"February 3, 2026 10:00 AM\",standup,\"Ada, Grace\",\"ok, shipped\"\n"+
		"Retro,,Retro,,\n")

	m, err := MeetingFromRecord(recs[0])
	if err != nil {
		t.Fatalf("MeetingFromRecord: %v", err)
	}
	if m.ID != "1" || m.Title != "Sync, weekly" || m.Kind != MeetingStandup || m.Date.String() != "2026-02-03" {
		t.Fatalf("unexpected meeting %+v", m)
	}
	if m.Notes != "ok, shipped" {
		t.Fatalf("notes = %q", m.Notes)
	}

	_, err = MeetingFromRecord(recs[1])
	if diff := cmp.Diff([]string{"date"}, fieldNames(t, err)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestTeamFromRecord(t *testing.T) {
	recs := records(t, "Team,Lead,Members\n"+
		"Platform,ada,\"Ada, Grace\"\n"+
		"Infra,Linus,\"Ada, ada\"\n")

	team, err := TeamFromRecord(recs[0])
	if err != nil {
		t.Fatalf("TeamFromRecord: %v", err)
	}
	if team.Name != "Platform" || len(team.Members) != 2 {
		t.Fatalf("unexpected team %+v", team)
	}

	_, err = TeamFromRecord(recs[1])
	if diff := cmp.Diff([]string{"members", "lead"}, fieldNames(t, err)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_JoinsErrors(t *testing.T) {
	recs := records(t, "id,Name\n1,ok\n2,\n3,fine\n4,\n")
	tasks, err := Decode(recs, TaskFromRecord)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 valid tasks, got %d", len(tasks))
	}
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected joined ErrInvalidRecord, got %v", err)
	}
	if n := strings.Count(err.Error(), "invalid task"); n != 2 {
		t.Fatalf("expected 2 failures in %q", err)
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"task": KindTask, "Tasks": KindTask, " team ": KindTeam, "meetings": KindMeeting} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseKind("sprint"); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2026-01-05", "January 5, 2026", "Jan 5, 2026", "5 Jan 2026", "1/5/2026", "January 5, 2026 3:04 PM", "January 5, 2026 → January 9, 2026"} {
		d, err := ParseDate(in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", in, err)
			continue
		}
		if d.String() != "2026-01-05" {
			t.Errorf("ParseDate(%q) = %s", in, d)
		}
	}
	if _, err := ParseDate("next week"); err == nil {
		t.Errorf("expected error for free text")
	}
	if d, err := ParseDate("05/01/2026"); err != nil || d.String() != "2026-05-01" {
		t.Errorf("numeric dates are month first: got %s, %v", d, err)
	}
}

func TestParseDateRange(t *testing.T) {
	cases := []struct {
		in         string
		start, end string
	}{
		{"January 5, 2026", "2026-01-05", ""},
		{"January 5, 2026 → January 9, 2026", "2026-01-05", "2026-01-09"},
		{"May 5, 2023 10:00 AM → 11:00 AM", "2023-05-05", "2023-05-05"},
		{"May 5, 2023 10:00 → 11:30", "2023-05-05", "2023-05-05"},
		{"May 5, 2023 → sometime", "2023-05-05", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			start, end, err := ParseDateRange(tc.in)
			if err != nil {
				t.Fatalf("ParseDateRange: %v", err)
			}
			gotEnd := ""
			if end != nil {
				gotEnd = end.String()
			}
			if start.String() != tc.start || gotEnd != tc.end {
				t.Fatalf("got %s → %q, want %s → %q", start, gotEnd, tc.start, tc.end)
			}
		})
	}
}

func TestMeetingFromRecord_SameDayTimeRange(t *testing.T) {
	recs := records(t, "id,name,date\n1,Standup,\"May 5, 2023 10:00 AM → 11:00 AM\"\n")
	meetings, err := Decode(recs, MeetingFromRecord)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := meetings[0].Date.String(); got != "2023-05-05" {
		t.Fatalf("date = %s", got)
	}
}
