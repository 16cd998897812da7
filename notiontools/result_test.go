package notiontools

import (
	"errors"
	"testing"

	"github.com/ggoodman/notion-mcp-go/mcp"
	"github.com/ggoodman/notion-mcp-go/workspace"
)

func TestCheck(t *testing.T) {
	if err := Check(&mcp.CallToolResult{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := Check(&mcp.CallToolResult{IsError: true, Content: []mcp.ContentBlock{{Type: "text", Text: "page not found"}}})
	var te *ToolError
	if !errors.As(err, &te) || te.Message != "page not found" || !errors.Is(err, ErrToolFailed) {
		t.Fatalf("unexpected error %v", err)
	}
	if Check(nil) == nil {
		t.Fatalf("nil result must be an error")
	}
}

func TestText(t *testing.T) {
	res := &mcp.CallToolResult{Content: []mcp.ContentBlock{
		{Type: "text", Text: "a"},
		{Type: "image", Data: "xx"},
		{Type: "text", Text: "b"},
	}}
	if got := Text(res); got != "a\nb" {
		t.Fatalf("Text = %q", got)
	}
}

func TestDecodeStructured(t *testing.T) {
	type user struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	got, err := DecodeStructured[user](&mcp.CallToolResult{StructuredContent: map[string]any{"id": "u1", "name": "Ada"}})
	if err != nil || got.ID != "u1" || got.Name != "Ada" {
		t.Fatalf("structured: %+v %v", got, err)
	}

	got, err = DecodeStructured[user](&mcp.CallToolResult{Content: []mcp.ContentBlock{
		{Type: "text", Text: "Found one user:"},
		{Type: "text", Text: `{"id":"u2","name":"Grace"}`},
	}})
	if err != nil || got.ID != "u2" {
		t.Fatalf("text fallback: %+v %v", got, err)
	}

	if _, err := DecodeStructured[user](&mcp.CallToolResult{Content: []mcp.ContentBlock{{Type: "text", Text: "none"}}}); err == nil {
		t.Fatalf("expected error without JSON content")
	}
	if _, err := DecodeStructured[user](&mcp.CallToolResult{IsError: true}); !errors.Is(err, ErrToolFailed) {
		t.Fatalf("expected ErrToolFailed, got %v", err)
	}
}

func TestPages(t *testing.T) {
	due := workspace.NewDate(2026, 4, 1)
	task := TaskPage(workspace.Task{
		ID: "1", Title: "Ship", Status: workspace.TaskDone, Priority: workspace.PriorityHigh,
		Assignees: []string{"Ada", "Grace"}, Due: &due, Tags: []string{"infra"}, Done: true,
	})
	want := map[string]any{
		"Name":                 "Ship",
		"Status":               "Done",
		"Done":                 CheckboxYes,
		"Priority":             "High",
		"Assignee":             "Ada, Grace",
		"date:Due:start":       "2026-04-01",
		"date:Due:is_datetime": 0,
		"Tags":                 "infra",
	}
	if len(task.Properties) != len(want) {
		t.Fatalf("task properties = %v", task.Properties)
	}
	for k, v := range want {
		if task.Properties[k] != v {
			t.Fatalf("%s = %v, want %v", k, task.Properties[k], v)
		}
	}

	start, end := workspace.NewDate(2026, 1, 1), workspace.NewDate(2026, 6, 30)
	project := ProjectPage(workspace.Project{Name: "Apollo", Status: workspace.ProjectActive, Start: &start, End: &end})
	if project.Properties["date:Dates:start"] != "2026-01-01" || project.Properties["date:Dates:end"] != "2026-06-30" {
		t.Fatalf("project dates = %v", project.Properties)
	}

	meeting := MeetingPage(workspace.Meeting{Title: "Retro", Kind: workspace.MeetingRetro, Date: start, Notes: "went well"})
	if meeting.Content != "went well" || meeting.Properties["Type"] != "Retro" {
		t.Fatalf("meeting page = %+v", meeting)
	}

	team := TeamPage(workspace.Team{Name: "Platform", Members: []string{"Ada"}})
	if team.Properties["Members"] != "Ada" || team.Properties["Name"] != "Platform" {
		t.Fatalf("team page = %+v", team)
	}
}
