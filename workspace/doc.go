// Package workspace declares the typed records this module exchanges with a
// Notion workspace: tasks, projects, meetings and teams.
//
// Records are built from snapshot rows by explicit constructors
// (TaskFromRecord and friends). Each field is read through a small validation
// step and every failure is collected, so a bad row reports all of its
// problems at once in a *ValidationError. Nothing is validated lazily: a value
// returned without error satisfies its type's Validate method.
//
// Column lookup is case-insensitive and accepts the header spellings Notion
// uses in CSV exports (for example a task title may live under "Name",
// "Title" or "Task").
package workspace
