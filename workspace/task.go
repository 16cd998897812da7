package workspace

import (
	"github.com/invopop/jsonschema"

	"github.com/ggoodman/notion-mcp-go/snapshot"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "Not started"
	TaskInProgress TaskStatus = "In progress"
	TaskBlocked    TaskStatus = "Blocked"
	TaskDone       TaskStatus = "Done"
)

// TaskStatuses lists the valid task states.
var TaskStatuses = []TaskStatus{TaskNotStarted, TaskInProgress, TaskBlocked, TaskDone}

func (TaskStatus) JSONSchema() *jsonschema.Schema {
	return enumSchema("Workflow state", TaskStatuses)
}

// Priority ranks a task. The empty Priority means unset.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// Priorities lists the valid priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (Priority) JSONSchema() *jsonschema.Schema {
	return enumSchema("Task priority", Priorities)
}

// Task is one row of a task database.
type Task struct {
	ID        string     `json:"id" jsonschema:"minLength=1"`
	Title     string     `json:"title" jsonschema:"minLength=1,description=Task title"`
	Status    TaskStatus `json:"status"`
	Priority  Priority   `json:"priority,omitempty"`
	Assignees []string   `json:"assignees,omitempty" jsonschema:"description=People assigned to the task"`
	Due       *Date      `json:"due,omitempty"`
	Project   string     `json:"project,omitempty" jsonschema:"description=Related project name or page ID"`
	Tags      []string   `json:"tags,omitempty"`
	Done      bool       `json:"done"`
}

var (
	taskTitle     = []string{"title", "name", "task", "task name"}
	taskStatus    = []string{"status", "state"}
	taskPriority  = []string{"priority"}
	taskAssignees = []string{"assignees", "assignee", "assigned to", "owner"}
	taskDue       = []string{"due", "due date", "deadline"}
	taskProject   = []string{"project", "projects"}
	taskTags      = []string{"tags", "labels"}
	taskDone      = []string{"done", "completed", "complete"}
)

// TaskFromRecord builds a Task from a snapshot row. When the row has no
// checkbox column, Done follows the status; when it has no status column, a
// checked box means the task is Done.
func TaskFromRecord(rec snapshot.Record) (Task, error) {
	f := newFields(rec)
	t := Task{
		ID:        rec.ID,
		Title:     f.text("title", true, taskTitle...),
		Status:    enumField(f, "status", TaskStatuses, TaskNotStarted, taskStatus...),
		Priority:  enumField(f, "priority", Priorities, "", taskPriority...),
		Assignees: f.list("assignees", taskAssignees...),
		Due:       f.date("due", false, taskDue...),
		Project:   f.text("project", false, taskProject...),
		Tags:      f.list("tags", taskTags...),
	}
	switch {
	case !f.has(taskDone...):
		t.Done = t.Status == TaskDone
	case !f.has(taskStatus...):
		t.Done = f.boolean("done", taskDone...)
		if t.Done {
			t.Status = TaskDone
		}
	default:
		t.Done = f.boolean("done", taskDone...)
	}
	t.check(&f.probs)
	if err := f.probs.err(KindTask, rec.ID, rec.Source); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Validate reports every invariant t violates.
func (t Task) Validate() error {
	var p problems
	if t.ID == "" {
		p.add("id", "required")
	}
	if t.Title == "" {
		p.add("title", "required")
	}
	if _, ok := matchEnum(string(t.Status), TaskStatuses); !ok || t.Status == "" {
		p.add("status", "unknown value %q", t.Status)
	}
	if t.Priority != "" {
		if _, ok := matchEnum(string(t.Priority), Priorities); !ok {
			p.add("priority", "unknown value %q", t.Priority)
		}
	}
	t.check(&p)
	return p.err(KindTask, t.ID, "")
}

// check holds the cross-field rules shared by construction and Validate.
func (t Task) check(p *problems) {
	if t.Done && t.Status != "" && t.Status != TaskDone {
		p.add("done", "checked but status is %q", t.Status)
	}
}
