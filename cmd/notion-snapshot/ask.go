package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ggoodman/notion-mcp-go/notiontools"
	"github.com/ggoodman/notion-mcp-go/participant"
)

func newAskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ask PROMPT...",
		Short: "Answer a chat prompt such as \"/search roadmap\" using the Notion MCP server",
		Long: `Answer a chat prompt using the Notion MCP server.
Run "notion-snapshot ask /help" for the list of commands; the help text is
produced locally and does not need a server.`,
		Args: cobra.MinimumNArgs(1),
		RunE: askAction,
	}
}

func askAction(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	prompt := strings.Join(args, " ")
	if strings.TrimSpace(prompt) == "/help" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), participant.Help())
		return err
	}

	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	p := participant.New(notiontools.New(sess, notiontools.WithLogging(slog.Default())))
	reply, err := p.Handle(ctx, prompt)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
	return err
}
