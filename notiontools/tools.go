package notiontools

import (
	"context"
	"sync"

	"github.com/ggoodman/notion-mcp-go/mcp"
)

// Tool definitions, named as the hosted Notion MCP server names them.
var (
	SearchTool = Def[SearchArgs]{
		Name:        "notion-search",
		Title:       "Search Notion",
		Description: "Search the workspace and connected sources, or search for people.",
		ReadOnly:    true,
	}
	FetchTool = Def[FetchArgs]{
		Name:        "notion-fetch",
		Title:       "Fetch page or database",
		Description: "Retrieve a page or database by URL or ID as Notion flavored Markdown.",
		ReadOnly:    true,
	}
	CreatePagesTool = Def[CreatePagesArgs]{
		Name:        "notion-create-pages",
		Title:       "Create pages",
		Description: "Create one or more pages with properties and content.",
	}
	UpdatePageTool = Def[UpdatePageArgs]{
		Name:        "notion-update-page",
		Title:       "Update page",
		Description: "Update a page's properties or content.",
		Destructive: true,
	}
	MovePagesTool = Def[MovePagesArgs]{
		Name:        "notion-move-pages",
		Title:       "Move pages",
		Description: "Move pages or databases to a new parent.",
	}
	DuplicatePageTool = Def[DuplicatePageArgs]{
		Name:        "notion-duplicate-page",
		Title:       "Duplicate page",
		Description: "Duplicate a page. The copy completes asynchronously.",
	}
	CreateCommentTool = Def[CreateCommentArgs]{
		Name:        "notion-create-comment",
		Title:       "Create comment",
		Description: "Add a comment to a page or reply in a discussion.",
	}
	GetCommentsTool = Def[GetCommentsArgs]{
		Name:        "notion-get-comments",
		Title:       "Get comments",
		Description: "List the comments and discussions of a page.",
		ReadOnly:    true,
	}
	CreateDatabaseTool = Def[CreateDatabaseArgs]{
		Name:        "notion-create-database",
		Title:       "Create database",
		Description: "Create a database with the given property schema.",
	}
	UpdateDatabaseTool = Def[UpdateDatabaseArgs]{
		Name:        "notion-update-database",
		Title:       "Update database",
		Description: "Rename a database, change its description or edit its property schema.",
		Destructive: true,
	}
	GetUsersTool = Def[GetUsersArgs]{
		Name:        "notion-get-users",
		Title:       "List users",
		Description: "List the workspace's users, optionally filtered by name or email.",
		ReadOnly:    true,
	}
	GetUserTool = Def[GetUserArgs]{
		Name:        "notion-get-user",
		Title:       "Get user",
		Description: "Retrieve one user by ID.",
		ReadOnly:    true,
	}
	GetSelfTool = Def[GetSelfArgs]{
		Name:        "notion-get-self",
		Title:       "Get bot user",
		Description: "Retrieve the bot user the integration acts as.",
		ReadOnly:    true,
	}
	GetTeamsTool = Def[GetTeamsArgs]{
		Name:        "notion-get-teams",
		Title:       "List teamspaces",
		Description: "List the teamspaces visible to the integration.",
		ReadOnly:    true,
	}
)

type describer interface {
	Descriptor() mcp.Tool
}

var catalog = []describer{
	SearchTool,
	FetchTool,
	CreatePagesTool,
	UpdatePageTool,
	MovePagesTool,
	DuplicatePageTool,
	CreateCommentTool,
	GetCommentsTool,
	CreateDatabaseTool,
	UpdateDatabaseTool,
	GetUsersTool,
	GetUserTool,
	GetSelfTool,
	GetTeamsTool,
}

// Catalog returns the descriptors of every tool in a stable order.
func Catalog() []mcp.Tool {
	out := make([]mcp.Tool, len(catalog))
	for i, d := range catalog {
		out[i] = d.Descriptor()
	}
	return out
}

var readOnlyTools = sync.OnceValue(func() map[string]bool {
	m := make(map[string]bool, len(catalog))
	for _, t := range Catalog() {
		m[t.Name] = t.Annotations != nil && t.Annotations.ReadOnlyHint
	}
	return m
})

// IsReadOnly reports whether the named tool leaves the workspace unchanged.
// Unknown tools are not read-only.
func IsReadOnly(name string) bool {
	return readOnlyTools()[name]
}

// Tools bundles every tool group over one Caller.
type Tools struct {
	Database *DatabaseTools
	Pages    *PageTools
	Search   *SearchTools
	Users    *UserTools
}

// New builds every tool group over c wrapped with mws.
func New(c Caller, mws ...Middleware) *Tools {
	c = Chain(c, mws...)
	return &Tools{
		Database: NewDatabaseTools(c),
		Pages:    NewPageTools(c),
		Search:   NewSearchTools(c),
		Users:    NewUserTools(c),
	}
}

// DatabaseTools wraps the database tools.
type DatabaseTools struct{ c Caller }

func NewDatabaseTools(c Caller) *DatabaseTools { return &DatabaseTools{c: c} }

func (t *DatabaseTools) CreateDatabase(ctx context.Context, args CreateDatabaseArgs) (*mcp.CallToolResult, error) {
	return CreateDatabaseTool.Call(ctx, t.c, args)
}

func (t *DatabaseTools) UpdateDatabase(ctx context.Context, args UpdateDatabaseArgs) (*mcp.CallToolResult, error) {
	return UpdateDatabaseTool.Call(ctx, t.c, args)
}

// FetchDatabase retrieves a database's schema and views through notion-fetch.
func (t *DatabaseTools) FetchDatabase(ctx context.Context, databaseID string) (*mcp.CallToolResult, error) {
	return FetchTool.Call(ctx, t.c, FetchArgs{ID: databaseID})
}

// PageTools wraps the page and comment tools.
type PageTools struct{ c Caller }

func NewPageTools(c Caller) *PageTools { return &PageTools{c: c} }

func (t *PageTools) Fetch(ctx context.Context, args FetchArgs) (*mcp.CallToolResult, error) {
	return FetchTool.Call(ctx, t.c, args)
}

func (t *PageTools) CreatePages(ctx context.Context, args CreatePagesArgs) (*mcp.CallToolResult, error) {
	return CreatePagesTool.Call(ctx, t.c, args)
}

func (t *PageTools) UpdatePage(ctx context.Context, args UpdatePageArgs) (*mcp.CallToolResult, error) {
	return UpdatePageTool.Call(ctx, t.c, args)
}

func (t *PageTools) MovePages(ctx context.Context, args MovePagesArgs) (*mcp.CallToolResult, error) {
	return MovePagesTool.Call(ctx, t.c, args)
}

func (t *PageTools) DuplicatePage(ctx context.Context, args DuplicatePageArgs) (*mcp.CallToolResult, error) {
	return DuplicatePageTool.Call(ctx, t.c, args)
}

func (t *PageTools) CreateComment(ctx context.Context, args CreateCommentArgs) (*mcp.CallToolResult, error) {
	return CreateCommentTool.Call(ctx, t.c, args)
}

func (t *PageTools) GetComments(ctx context.Context, args GetCommentsArgs) (*mcp.CallToolResult, error) {
	return GetCommentsTool.Call(ctx, t.c, args)
}

// SearchTools wraps notion-search.
type SearchTools struct{ c Caller }

func NewSearchTools(c Caller) *SearchTools { return &SearchTools{c: c} }

func (t *SearchTools) Search(ctx context.Context, args SearchArgs) (*mcp.CallToolResult, error) {
	return SearchTool.Call(ctx, t.c, args)
}

// UserTools wraps the user and teamspace tools.
type UserTools struct{ c Caller }

func NewUserTools(c Caller) *UserTools { return &UserTools{c: c} }

func (t *UserTools) GetUsers(ctx context.Context, args GetUsersArgs) (*mcp.CallToolResult, error) {
	return GetUsersTool.Call(ctx, t.c, args)
}

func (t *UserTools) GetUser(ctx context.Context, args GetUserArgs) (*mcp.CallToolResult, error) {
	return GetUserTool.Call(ctx, t.c, args)
}

func (t *UserTools) GetSelf(ctx context.Context) (*mcp.CallToolResult, error) {
	return GetSelfTool.Call(ctx, t.c, GetSelfArgs{})
}

func (t *UserTools) GetTeams(ctx context.Context, args GetTeamsArgs) (*mcp.CallToolResult, error) {
	return GetTeamsTool.Call(ctx, t.c, args)
}
