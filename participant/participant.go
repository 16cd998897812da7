// Package participant routes chat prompts to Notion tool calls.
//
// A prompt starts with a slash command followed by its argument:
//
//	/search quarterly roadmap
//	/fetch https://www.notion.so/acme/Launch-plan-1a2b3c
//	/me
//
// Prompts without a command are treated as a search. Every command maps to
// exactly one tool call; the participant never retries or combines calls.
package participant

import (
	"context"
	"fmt"
	"strings"

	"github.com/ggoodman/notion-mcp-go/mcp"
	"github.com/ggoodman/notion-mcp-go/notiontools"
)

// Reply is the answer to one prompt.
type Reply struct {
	// Command is the command that handled the prompt, without the slash.
	Command string
	// Text is what to show the user.
	Text string
	// Result is the raw tool result. It is nil for replies produced locally
	// such as help and usage messages.
	Result *mcp.CallToolResult
}

type command struct {
	name     string
	usage    string
	summary  string
	needsArg bool
	run      func(ctx context.Context, t *notiontools.Tools, arg string) (*mcp.CallToolResult, error)
}

var commands = []command{
	{
		name: "search", usage: "/search <query>", summary: "Search pages and databases", needsArg: true,
		run: func(ctx context.Context, t *notiontools.Tools, arg string) (*mcp.CallToolResult, error) {
			return t.Search.Search(ctx, notiontools.SearchArgs{Query: arg})
		},
	},
	{
		name: "fetch", usage: "/fetch <id or url>", summary: "Show a page or database", needsArg: true,
		run: func(ctx context.Context, t *notiontools.Tools, arg string) (*mcp.CallToolResult, error) {
			return t.Pages.Fetch(ctx, notiontools.FetchArgs{ID: arg})
		},
	},
	{
		name: "users", usage: "/users [query]", summary: "List workspace users",
		run: func(ctx context.Context, t *notiontools.Tools, arg string) (*mcp.CallToolResult, error) {
			return t.Users.GetUsers(ctx, notiontools.GetUsersArgs{Query: arg})
		},
	},
	{
		name: "me", usage: "/me", summary: "Show the connected bot user",
		run: func(ctx context.Context, t *notiontools.Tools, _ string) (*mcp.CallToolResult, error) {
			return t.Users.GetSelf(ctx)
		},
	},
	{
		name: "teams", usage: "/teams [query]", summary: "List teamspaces",
		run: func(ctx context.Context, t *notiontools.Tools, arg string) (*mcp.CallToolResult, error) {
			return t.Users.GetTeams(ctx, notiontools.GetTeamsArgs{Query: arg})
		},
	},
	{
		name: "comments", usage: "/comments <page id>", summary: "Show the comments on a page", needsArg: true,
		run: func(ctx context.Context, t *notiontools.Tools, arg string) (*mcp.CallToolResult, error) {
			return t.Pages.GetComments(ctx, notiontools.GetCommentsArgs{PageID: arg})
		},
	},
}

// Participant answers chat prompts using a set of Notion tools.
type Participant struct {
	tools *notiontools.Tools
}

// New returns a Participant that issues its calls through tools.
func New(tools *notiontools.Tools) *Participant {
	return &Participant{tools: tools}
}

// Handle answers prompt. Errors are reserved for failed calls; unknown
// commands and missing arguments produce a help or usage reply, and a tool
// reporting an error produces a reply carrying its message.
func (p *Participant) Handle(ctx context.Context, prompt string) (*Reply, error) {
	name, arg := split(prompt)
	if name == "help" {
		return &Reply{Command: "help", Text: Help()}, nil
	}

	cmd, ok := lookup(name)
	if !ok {
		return &Reply{Command: "help", Text: fmt.Sprintf("Unknown command /%s.\n\n%s", name, Help())}, nil
	}
	if cmd.needsArg && arg == "" {
		return &Reply{Command: cmd.name, Text: "Usage: " + cmd.usage}, nil
	}

	res, err := cmd.run(ctx, p.tools, arg)
	if err != nil {
		return nil, fmt.Errorf("/%s: %w", cmd.name, err)
	}

	reply := &Reply{Command: cmd.name, Result: res, Text: notiontools.Text(res)}
	if err := notiontools.Check(res); err != nil {
		reply.Text = err.Error()
	} else if reply.Text == "" {
		reply.Text = "No results."
	}
	return reply, nil
}

// Help lists the supported commands.
func Help() string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "  %-22s %s\n", c.usage, c.summary)
	}
	fmt.Fprintf(&b, "  %-22s %s\n", "/help", "Show this message")
	return b.String()
}

// split separates the command from its argument. A prompt without a leading
// slash is a search; an empty prompt asks for help.
func split(prompt string) (name, arg string) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "help", ""
	}
	if !strings.HasPrefix(prompt, "/") {
		return "search", prompt
	}
	name, arg, _ = strings.Cut(prompt[1:], " ")
	return strings.ToLower(name), strings.TrimSpace(arg)
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}
