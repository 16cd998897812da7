package notiontools

import (
	"strings"

	"github.com/ggoodman/notion-mcp-go/workspace"
)

// Checkbox values understood by notion-create-pages and notion-update-page.
const (
	CheckboxYes = "__YES__"
	CheckboxNo  = "__NO__"
)

func checkbox(b bool) string {
	if b {
		return CheckboxYes
	}
	return CheckboxNo
}

// setDate writes a date property in the expanded form the Notion MCP server
// expects ("date:<name>:start" and friends).
func setDate(props map[string]any, name string, start, end *workspace.Date) {
	if start == nil {
		return
	}
	props["date:"+name+":start"] = start.String()
	if end != nil {
		props["date:"+name+":end"] = end.String()
	}
	props["date:"+name+":is_datetime"] = 0
}

func setText(props map[string]any, name, value string) {
	if value != "" {
		props[name] = value
	}
}

func setList(props map[string]any, name string, values []string) {
	if len(values) > 0 {
		props[name] = strings.Join(values, ", ")
	}
}

// TaskPage builds the page that recreates t in a task database.
func TaskPage(t workspace.Task) PageSpec {
	props := map[string]any{
		"Name":   t.Title,
		"Status": string(t.Status),
		"Done":   checkbox(t.Done),
	}
	setText(props, "Priority", string(t.Priority))
	setList(props, "Assignee", t.Assignees)
	setDate(props, "Due", t.Due, nil)
	setText(props, "Project", t.Project)
	setList(props, "Tags", t.Tags)
	return PageSpec{Properties: props}
}

// ProjectPage builds the page that recreates p in a project database.
func ProjectPage(p workspace.Project) PageSpec {
	props := map[string]any{
		"Name":   p.Name,
		"Status": string(p.Status),
	}
	setText(props, "Owner", p.Owner)
	setText(props, "Team", p.Team)
	setDate(props, "Dates", p.Start, p.End)
	setList(props, "Tags", p.Tags)
	return PageSpec{Properties: props}
}

// MeetingPage builds the page that recreates m in a meeting notes database.
// Notes become the page body.
func MeetingPage(m workspace.Meeting) PageSpec {
	props := map[string]any{
		"Name": m.Title,
		"Type": string(m.Kind),
	}
	if !m.Date.IsZero() {
		d := m.Date
		setDate(props, "Date", &d, nil)
	}
	setList(props, "Attendees", m.Attendees)
	setText(props, "Project", m.Project)
	return PageSpec{Properties: props, Content: m.Notes}
}

// TeamPage builds the page that recreates t in a teams database.
func TeamPage(t workspace.Team) PageSpec {
	props := map[string]any{"Name": t.Name}
	setText(props, "Lead", t.Lead)
	setList(props, "Members", t.Members)
	return PageSpec{Properties: props, Content: t.Description}
}
