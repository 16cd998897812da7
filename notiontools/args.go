package notiontools

import (
	"errors"
	"fmt"
	"strings"
)

// MaxPageSize bounds page_size on paginated tools.
const MaxPageSize = 100

// Parent locates where new pages or databases are created. Exactly one field
// must be set; a nil *Parent means the workspace root.
type Parent struct {
	PageID       string `json:"page_id,omitempty" jsonschema:"description=Parent page ID or URL"`
	DatabaseID   string `json:"database_id,omitempty" jsonschema:"description=Parent database ID or URL"`
	DataSourceID string `json:"data_source_id,omitempty" jsonschema:"description=Parent data source ID"`
}

func (p Parent) Validate() error {
	n := 0
	for _, s := range []string{p.PageID, p.DatabaseID, p.DataSourceID} {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("parent: exactly one of page_id, database_id or data_source_id must be set, got %d", n)
	}
	return nil
}

func validateParent(p *Parent) error {
	if p == nil {
		return nil
	}
	return p.Validate()
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s: required", field)
	}
	return nil
}

// DateRange bounds a search by creation date (ISO dates, both optional).
type DateRange struct {
	StartDate string `json:"start_date,omitempty" jsonschema:"format=date"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"format=date"`
}

// SearchFilters narrow a workspace search.
type SearchFilters struct {
	CreatedDateRange *DateRange `json:"created_date_range,omitempty"`
	CreatedByUserIDs []string   `json:"created_by_user_ids,omitempty"`
}

// SearchArgs are the arguments of notion-search.
type SearchArgs struct {
	Query         string         `json:"query" jsonschema:"minLength=1,description=Semantic search query"`
	QueryType     string         `json:"query_type,omitempty" jsonschema:"enum=internal,enum=user,description=Search content (internal) or people (user)"`
	DataSourceURL string         `json:"data_source_url,omitempty" jsonschema:"description=Restrict the search to one data source"`
	PageURL       string         `json:"page_url,omitempty" jsonschema:"description=Restrict the search to a page and its children"`
	TeamspaceID   string         `json:"teamspace_id,omitempty"`
	Filters       *SearchFilters `json:"filters,omitempty"`
}

func (a SearchArgs) Validate() error {
	if err := required("query", a.Query); err != nil {
		return err
	}
	switch a.QueryType {
	case "", "internal", "user":
		return nil
	default:
		return fmt.Errorf("query_type: unknown value %q", a.QueryType)
	}
}

// FetchArgs are the arguments of notion-fetch.
type FetchArgs struct {
	ID string `json:"id" jsonschema:"minLength=1,description=Page or database URL or ID"`
}

func (a FetchArgs) Validate() error { return required("id", a.ID) }

// PageSpec is one page to create. Property values follow the Notion MCP
// conventions (see TaskPage for dates and checkboxes); Content is Notion
// flavored Markdown.
type PageSpec struct {
	Properties map[string]any `json:"properties,omitempty"`
	Content    string         `json:"content,omitempty"`
}

// CreatePagesArgs are the arguments of notion-create-pages.
type CreatePagesArgs struct {
	Parent *Parent    `json:"parent,omitempty"`
	Pages  []PageSpec `json:"pages" jsonschema:"minItems=1"`
}

func (a CreatePagesArgs) Validate() error {
	if len(a.Pages) == 0 {
		return errors.New("pages: at least one page is required")
	}
	return validateParent(a.Parent)
}

// Update commands accepted by notion-update-page.
const (
	UpdateProperties    = "update_properties"
	ReplaceContent      = "replace_content"
	ReplaceContentRange = "replace_content_range"
	InsertContentAfter  = "insert_content_after"
)

// UpdatePageArgs are the arguments of notion-update-page.
type UpdatePageArgs struct {
	PageID     string         `json:"page_id" jsonschema:"minLength=1"`
	Command    string         `json:"command" jsonschema:"enum=update_properties,enum=replace_content,enum=replace_content_range,enum=insert_content_after"`
	Properties map[string]any `json:"properties,omitempty"`
	NewStr     string         `json:"new_str,omitempty" jsonschema:"description=Replacement or inserted Markdown"`
	Selection  string         `json:"selection_with_ellipsis,omitempty" jsonschema:"description=Start...end snippet locating the content to change"`
}

func (a UpdatePageArgs) Validate() error {
	if err := required("page_id", a.PageID); err != nil {
		return err
	}
	switch a.Command {
	case UpdateProperties:
		if len(a.Properties) == 0 {
			return errors.New("properties: required for update_properties")
		}
	case ReplaceContent:
		// new_str may be empty to clear the page.
	case ReplaceContentRange, InsertContentAfter:
		if err := required("selection_with_ellipsis", a.Selection); err != nil {
			return err
		}
	default:
		return fmt.Errorf("command: unknown value %q", a.Command)
	}
	return nil
}

// MovePagesArgs are the arguments of notion-move-pages.
type MovePagesArgs struct {
	PageOrDatabaseIDs []string `json:"page_or_database_ids" jsonschema:"minItems=1"`
	NewParent         Parent   `json:"new_parent"`
}

func (a MovePagesArgs) Validate() error {
	if len(a.PageOrDatabaseIDs) == 0 {
		return errors.New("page_or_database_ids: at least one ID is required")
	}
	for i, id := range a.PageOrDatabaseIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("page_or_database_ids[%d]: empty", i)
		}
	}
	return a.NewParent.Validate()
}

// DuplicatePageArgs are the arguments of notion-duplicate-page.
type DuplicatePageArgs struct {
	PageID string `json:"page_id" jsonschema:"minLength=1"`
}

func (a DuplicatePageArgs) Validate() error { return required("page_id", a.PageID) }

// CreateCommentArgs are the arguments of notion-create-comment. Without a
// discussion ID the comment starts a new page-level discussion.
type CreateCommentArgs struct {
	PageID       string `json:"page_id" jsonschema:"minLength=1"`
	DiscussionID string `json:"discussion_id,omitempty"`
	Text         string `json:"text" jsonschema:"minLength=1"`
}

func (a CreateCommentArgs) Validate() error {
	if err := required("page_id", a.PageID); err != nil {
		return err
	}
	return required("text", a.Text)
}

// GetCommentsArgs are the arguments of notion-get-comments.
type GetCommentsArgs struct {
	PageID string `json:"page_id" jsonschema:"minLength=1"`
}

func (a GetCommentsArgs) Validate() error { return required("page_id", a.PageID) }

// CreateDatabaseArgs are the arguments of notion-create-database. Properties
// maps column names to Notion property schema objects.
type CreateDatabaseArgs struct {
	Parent      *Parent        `json:"parent,omitempty"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Properties  map[string]any `json:"properties"`
}

func (a CreateDatabaseArgs) Validate() error {
	if len(a.Properties) == 0 {
		return errors.New("properties: at least one column is required")
	}
	return validateParent(a.Parent)
}

// UpdateDatabaseArgs are the arguments of notion-update-database.
type UpdateDatabaseArgs struct {
	DatabaseID  string         `json:"database_id" jsonschema:"minLength=1"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
	InTrash     *bool          `json:"in_trash,omitempty"`
}

func (a UpdateDatabaseArgs) Validate() error {
	if err := required("database_id", a.DatabaseID); err != nil {
		return err
	}
	if a.Title == "" && a.Description == "" && len(a.Properties) == 0 && a.InTrash == nil {
		return errors.New("nothing to update")
	}
	return nil
}

// GetUsersArgs are the arguments of notion-get-users.
type GetUsersArgs struct {
	Query       string `json:"query,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty" jsonschema:"minimum=1,maximum=100"`
}

func (a GetUsersArgs) Validate() error {
	if a.PageSize < 0 || a.PageSize > MaxPageSize {
		return fmt.Errorf("page_size: %d out of range 1..%d", a.PageSize, MaxPageSize)
	}
	return nil
}

// GetUserArgs are the arguments of notion-get-user.
type GetUserArgs struct {
	UserID string `json:"user_id" jsonschema:"minLength=1"`
}

func (a GetUserArgs) Validate() error { return required("user_id", a.UserID) }

// GetSelfArgs are the (empty) arguments of notion-get-self.
type GetSelfArgs struct{}

// GetTeamsArgs are the arguments of notion-get-teams.
type GetTeamsArgs struct {
	Query string `json:"query,omitempty"`
}
