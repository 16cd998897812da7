package workspace

import (
	"github.com/invopop/jsonschema"

	"github.com/ggoodman/notion-mcp-go/snapshot"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectActive    ProjectStatus = "Active"
	ProjectOnHold    ProjectStatus = "On hold"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectCancelled ProjectStatus = "Cancelled"
)

// ProjectStatuses lists the valid project states.
var ProjectStatuses = []ProjectStatus{ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled}

func (ProjectStatus) JSONSchema() *jsonschema.Schema {
	return enumSchema("Lifecycle state", ProjectStatuses)
}

// Project is one row of a project database.
type Project struct {
	ID     string        `json:"id" jsonschema:"minLength=1"`
	Name   string        `json:"name" jsonschema:"minLength=1"`
	Status ProjectStatus `json:"status"`
	Owner  string        `json:"owner,omitempty"`
	Team   string        `json:"team,omitempty"`
	Start  *Date         `json:"start,omitempty"`
	End    *Date         `json:"end,omitempty"`
	Tags   []string      `json:"tags,omitempty"`
}

var (
	projectName   = []string{"name", "project", "project name", "title"}
	projectStatus = []string{"status", "state"}
	projectOwner  = []string{"owner", "lead", "project lead"}
	projectTeam   = []string{"team", "teams"}
	projectStart  = []string{"start", "start date"}
	projectEnd    = []string{"end", "end date", "target date"}
	projectDates  = []string{"dates", "timeline"}
	projectTags   = []string{"tags", "labels"}
)

// ProjectFromRecord builds a Project from a snapshot row. A Notion date range
// column ("Dates" or "Timeline") fills Start and End when the separate
// columns are absent.
func ProjectFromRecord(rec snapshot.Record) (Project, error) {
	f := newFields(rec)
	p := Project{
		ID:     rec.ID,
		Name:   f.text("name", true, projectName...),
		Status: enumField(f, "status", ProjectStatuses, ProjectPlanning, projectStatus...),
		Owner:  f.text("owner", false, projectOwner...),
		Team:   f.text("team", false, projectTeam...),
		Start:  f.date("start", false, projectStart...),
		End:    f.date("end", false, projectEnd...),
		Tags:   f.list("tags", projectTags...),
	}
	if p.Start == nil && p.End == nil && f.has(projectDates...) {
		p.Start, p.End = f.dateRange("dates", false, projectDates...)
	}
	p.check(&f.probs)
	if err := f.probs.err(KindProject, rec.ID, rec.Source); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Validate reports every invariant p violates.
func (p Project) Validate() error {
	var probs problems
	if p.ID == "" {
		probs.add("id", "required")
	}
	if p.Name == "" {
		probs.add("name", "required")
	}
	if _, ok := matchEnum(string(p.Status), ProjectStatuses); !ok || p.Status == "" {
		probs.add("status", "unknown value %q", p.Status)
	}
	p.check(&probs)
	return probs.err(KindProject, p.ID, "")
}

func (p Project) check(probs *problems) {
	if p.Start != nil && p.End != nil && p.End.Before(*p.Start) {
		probs.add("end", "%s is before start %s", p.End, p.Start)
	}
}
