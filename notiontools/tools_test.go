package notiontools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ggoodman/notion-mcp-go/internal/validation"
	"github.com/ggoodman/notion-mcp-go/mcp"
)

// recorder is a Caller that remembers every request and answers with res.
type recorder struct {
	reqs []*mcp.CallToolRequest
	res  *mcp.CallToolResult
	err  error
}

func (r *recorder) CallTool(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r.reqs = append(r.reqs, req)
	if r.err != nil {
		return nil, r.err
	}
	if r.res != nil {
		return r.res, nil
	}
	return &mcp.CallToolResult{Content: []mcp.ContentBlock{{Type: "text", Text: "ok"}}}, nil
}

func (r *recorder) last(t *testing.T) (string, map[string]any) {
	t.Helper()
	if len(r.reqs) == 0 {
		t.Fatalf("no request recorded")
	}
	req := r.reqs[len(r.reqs)-1]
	args, err := req.ArgumentsMap()
	if err != nil {
		t.Fatalf("decode arguments: %v", err)
	}
	return req.Name, args
}

func TestTools_ForwardRequests(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	tools := New(rec)

	cases := []struct {
		name     string
		call     func() (*mcp.CallToolResult, error)
		wantTool string
		wantArgs map[string]any
	}{
		{
			name:     "search",
			call:     func() (*mcp.CallToolResult, error) { return tools.Search.Search(ctx, SearchArgs{Query: "roadmap"}) },
			wantTool: "notion-search",
			wantArgs: map[string]any{"query": "roadmap"},
		},
		{
			name:     "fetch",
			call:     func() (*mcp.CallToolResult, error) { return tools.Pages.Fetch(ctx, FetchArgs{ID: "abc"}) },
			wantTool: "notion-fetch",
			wantArgs: map[string]any{"id": "abc"},
		},
		{
			name:     "fetch database",
			call:     func() (*mcp.CallToolResult, error) { return tools.Database.FetchDatabase(ctx, "db-1") },
			wantTool: "notion-fetch",
			wantArgs: map[string]any{"id": "db-1"},
		},
		{
			name: "create pages",
			call: func() (*mcp.CallToolResult, error) {
				return tools.Pages.CreatePages(ctx, CreatePagesArgs{
					Parent: &Parent{DatabaseID: "db-1"},
					Pages:  []PageSpec{{Properties: map[string]any{"Name": "x"}}},
				})
			},
			wantTool: "notion-create-pages",
			wantArgs: map[string]any{
				"parent": map[string]any{"database_id": "db-1"},
				"pages":  []any{map[string]any{"properties": map[string]any{"Name": "x"}}},
			},
		},
		{
			name: "update page",
			call: func() (*mcp.CallToolResult, error) {
				return tools.Pages.UpdatePage(ctx, UpdatePageArgs{PageID: "p", Command: ReplaceContent, NewStr: "# hi"})
			},
			wantTool: "notion-update-page",
			wantArgs: map[string]any{"page_id": "p", "command": "replace_content", "new_str": "# hi"},
		},
		{
			name: "move pages",
			call: func() (*mcp.CallToolResult, error) {
				return tools.Pages.MovePages(ctx, MovePagesArgs{PageOrDatabaseIDs: []string{"a"}, NewParent: Parent{PageID: "b"}})
			},
			wantTool: "notion-move-pages",
			wantArgs: map[string]any{"page_or_database_ids": []any{"a"}, "new_parent": map[string]any{"page_id": "b"}},
		},
		{
			name:     "duplicate page",
			call:     func() (*mcp.CallToolResult, error) { return tools.Pages.DuplicatePage(ctx, DuplicatePageArgs{PageID: "p"}) },
			wantTool: "notion-duplicate-page",
			wantArgs: map[string]any{"page_id": "p"},
		},
		{
			name: "create comment",
			call: func() (*mcp.CallToolResult, error) {
				return tools.Pages.CreateComment(ctx, CreateCommentArgs{PageID: "p", Text: "lgtm"})
			},
			wantTool: "notion-create-comment",
			wantArgs: map[string]any{"page_id": "p", "text": "lgtm"},
		},
		{
			name:     "get comments",
			call:     func() (*mcp.CallToolResult, error) { return tools.Pages.GetComments(ctx, GetCommentsArgs{PageID: "p"}) },
			wantTool: "notion-get-comments",
			wantArgs: map[string]any{"page_id": "p"},
		},
		{
			name: "create database",
			call: func() (*mcp.CallToolResult, error) {
				return tools.Database.CreateDatabase(ctx, CreateDatabaseArgs{Title: "Tasks", Properties: map[string]any{"Name": map[string]any{"title": map[string]any{}}}})
			},
			wantTool: "notion-create-database",
			wantArgs: map[string]any{"title": "Tasks", "properties": map[string]any{"Name": map[string]any{"title": map[string]any{}}}},
		},
		{
			name: "update database",
			call: func() (*mcp.CallToolResult, error) {
				return tools.Database.UpdateDatabase(ctx, UpdateDatabaseArgs{DatabaseID: "db", Title: "Renamed"})
			},
			wantTool: "notion-update-database",
			wantArgs: map[string]any{"database_id": "db", "title": "Renamed"},
		},
		{
			name:     "get users",
			call:     func() (*mcp.CallToolResult, error) { return tools.Users.GetUsers(ctx, GetUsersArgs{PageSize: 10}) },
			wantTool: "notion-get-users",
			wantArgs: map[string]any{"page_size": float64(10)},
		},
		{
			name:     "get user",
			call:     func() (*mcp.CallToolResult, error) { return tools.Users.GetUser(ctx, GetUserArgs{UserID: "u"}) },
			wantTool: "notion-get-user",
			wantArgs: map[string]any{"user_id": "u"},
		},
		{
			name:     "get self",
			call:     func() (*mcp.CallToolResult, error) { return tools.Users.GetSelf(ctx) },
			wantTool: "notion-get-self",
			wantArgs: map[string]any{},
		},
		{
			name:     "get teams",
			call:     func() (*mcp.CallToolResult, error) { return tools.Users.GetTeams(ctx, GetTeamsArgs{Query: "eng"}) },
			wantTool: "notion-get-teams",
			wantArgs: map[string]any{"query": "eng"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.call()
			if err != nil {
				t.Fatalf("call: %v", err)
			}
			if Text(res) != "ok" {
				t.Fatalf("result not passed through: %+v", res)
			}
			name, args := rec.last(t)
			if name != tc.wantTool {
				t.Fatalf("tool = %q, want %q", name, tc.wantTool)
			}
			if diff := cmp.Diff(tc.wantArgs, args); diff != "" {
				t.Fatalf("arguments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTools_InvalidArgumentsNeverCallOut(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	tools := New(rec)

	calls := map[string]func() error{
		"empty query":          func() error { _, err := tools.Search.Search(ctx, SearchArgs{}); return err },
		"bad query type":       func() error { _, err := tools.Search.Search(ctx, SearchArgs{Query: "x", QueryType: "pages"}); return err },
		"empty fetch id":       func() error { _, err := tools.Pages.Fetch(ctx, FetchArgs{ID: "  "}); return err },
		"no pages":             func() error { _, err := tools.Pages.CreatePages(ctx, CreatePagesArgs{}); return err },
		"two parents":          func() error { _, err := tools.Pages.CreatePages(ctx, CreatePagesArgs{Parent: &Parent{PageID: "a", DatabaseID: "b"}, Pages: []PageSpec{{}}}); return err },
		"unknown command":      func() error { _, err := tools.Pages.UpdatePage(ctx, UpdatePageArgs{PageID: "p", Command: "delete"}); return err },
		"missing selection":    func() error { _, err := tools.Pages.UpdatePage(ctx, UpdatePageArgs{PageID: "p", Command: InsertContentAfter}); return err },
		"empty properties":     func() error { _, err := tools.Pages.UpdatePage(ctx, UpdatePageArgs{PageID: "p", Command: UpdateProperties}); return err },
		"move without ids":     func() error { _, err := tools.Pages.MovePages(ctx, MovePagesArgs{NewParent: Parent{PageID: "b"}}); return err },
		"move without parent":  func() error { _, err := tools.Pages.MovePages(ctx, MovePagesArgs{PageOrDatabaseIDs: []string{"a"}}); return err },
		"comment without text": func() error { _, err := tools.Pages.CreateComment(ctx, CreateCommentArgs{PageID: "p"}); return err },
		"database no columns":  func() error { _, err := tools.Database.CreateDatabase(ctx, CreateDatabaseArgs{Title: "x"}); return err },
		"database no change":   func() error { _, err := tools.Database.UpdateDatabase(ctx, UpdateDatabaseArgs{DatabaseID: "db"}); return err },
		"page size too large":  func() error { _, err := tools.Users.GetUsers(ctx, GetUsersArgs{PageSize: 101}); return err },
		"empty user id":        func() error { _, err := tools.Users.GetUser(ctx, GetUserArgs{}); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); !errors.Is(err, ErrInvalidArguments) {
				t.Fatalf("expected ErrInvalidArguments, got %v", err)
			}
		})
	}
	if len(rec.reqs) != 0 {
		t.Fatalf("invalid calls reached the caller: %d requests", len(rec.reqs))
	}
}

func TestTools_NoCaller(t *testing.T) {
	_, err := New(nil).Search.Search(context.Background(), SearchArgs{Query: "x"})
	if !errors.Is(err, ErrNoCaller) {
		t.Fatalf("expected ErrNoCaller, got %v", err)
	}
}

func TestTools_CallerErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(&recorder{err: boom}).Users.GetSelf(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected caller error, got %v", err)
	}
}

func TestCatalog(t *testing.T) {
	tools := Catalog()
	if len(tools) != 14 {
		t.Fatalf("expected 14 tools, got %d", len(tools))
	}
	seen := map[string]bool{}
	for _, tool := range tools {
		if seen[tool.Name] {
			t.Fatalf("duplicate tool %q", tool.Name)
		}
		seen[tool.Name] = true
		if tool.InputSchema.Type != "object" || tool.InputSchema.AdditionalProperties {
			t.Fatalf("%s: expected strict object schema, got %+v", tool.Name, tool.InputSchema)
		}
		if tool.Description == "" {
			t.Fatalf("%s: missing description", tool.Name)
		}
	}

	search := SearchTool.Descriptor()
	if diff := cmp.Diff([]string{"query"}, search.InputSchema.Required); diff != "" {
		t.Fatalf("search required mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"internal", "user"}, search.InputSchema.Properties["query_type"].Enum); diff != "" {
		t.Fatalf("query_type enum mismatch (-want +got):\n%s", diff)
	}
	filters := search.InputSchema.Properties["filters"]
	if filters.Type != "object" || filters.Properties["created_by_user_ids"].Items == nil {
		t.Fatalf("filters not reflected inline: %+v", filters)
	}

	pageSize := GetUsersTool.Descriptor().InputSchema.Properties["page_size"]
	if pageSize.Minimum == nil || *pageSize.Minimum != 1 || pageSize.Maximum == nil || *pageSize.Maximum != 100 {
		t.Fatalf("page_size bounds not reflected: %+v", pageSize)
	}

	if !IsReadOnly("notion-search") || IsReadOnly("notion-update-page") || IsReadOnly("nope") {
		t.Fatalf("read-only annotations wrong")
	}

	b, err := json.Marshal(GetSelfTool.Descriptor())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if schema, _ := raw["inputSchema"].(map[string]any); schema["additionalProperties"] != false {
		t.Fatalf("additionalProperties must be serialized as false: %s", b)
	}
}

func TestCatalog_SchemasAreConsistent(t *testing.T) {
	for _, tool := range Catalog() {
		schema := tool.InputSchema
		if err := validation.ToolInputSchema(&schema); err != nil {
			t.Errorf("%s: %v", tool.Name, err)
		}
	}
}
