package workspace

import (
	"slices"
	"strings"

	"github.com/ggoodman/notion-mcp-go/snapshot"
)

// Team is one row of a teams database.
type Team struct {
	ID          string   `json:"id" jsonschema:"minLength=1"`
	Name        string   `json:"name" jsonschema:"minLength=1"`
	Lead        string   `json:"lead,omitempty"`
	Members     []string `json:"members,omitempty"`
	Description string   `json:"description,omitempty"`
}

var (
	teamName        = []string{"name", "team", "team name"}
	teamLead        = []string{"lead", "team lead", "manager"}
	teamMembers     = []string{"members", "people"}
	teamDescription = []string{"description", "about"}
)

// TeamFromRecord builds a Team from a snapshot row.
func TeamFromRecord(rec snapshot.Record) (Team, error) {
	f := newFields(rec)
	t := Team{
		ID:          rec.ID,
		Name:        f.text("name", true, teamName...),
		Lead:        f.text("lead", false, teamLead...),
		Members:     f.list("members", teamMembers...),
		Description: f.text("description", false, teamDescription...),
	}
	t.check(&f.probs)
	if err := f.probs.err(KindTeam, rec.ID, rec.Source); err != nil {
		return Team{}, err
	}
	return t, nil
}

// Validate reports every invariant t violates.
func (t Team) Validate() error {
	var p problems
	if t.ID == "" {
		p.add("id", "required")
	}
	if t.Name == "" {
		p.add("name", "required")
	}
	t.check(&p)
	return p.err(KindTeam, t.ID, "")
}

// check requires unique members and a lead drawn from them. Names compare
// case-insensitively.
func (t Team) check(p *problems) {
	seen := make(map[string]bool, len(t.Members))
	for _, m := range t.Members {
		k := strings.ToLower(m)
		if seen[k] {
			p.add("members", "duplicate member %q", m)
		}
		seen[k] = true
	}
	if t.Lead != "" && len(t.Members) > 0 && !slices.ContainsFunc(t.Members, func(m string) bool {
		return strings.EqualFold(m, t.Lead)
	}) {
		p.add("lead", "%q is not a member", t.Lead)
	}
}
