package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ggoodman/notion-mcp-go/mcpclient"
	"github.com/ggoodman/notion-mcp-go/notiontools"
)

// maxPagesPerCall bounds the pages sent in one notion-create-pages call.
const maxPagesPerCall = 100

func newPushCommand(env envConfig) *cobra.Command {
	pushCommand := &cobra.Command{
		Use:   "push KIND FILE.csv",
		Short: "Create a Notion page for every valid record of a CSV snapshot",
		Long: `Create a Notion page for every valid record of a CSV snapshot.
Invalid rows are logged and skipped. The server is configured through
NOTION_MCP_ENDPOINT, NOTION_MCP_TOKEN and NOTION_MCP_CLIENT_NAME.`,
		Args: cobra.ExactArgs(2),
		RunE: pushAction,
	}
	addSnapshotFlags(pushCommand, env)
	pushCommand.Flags().String("page-id", "", "Create the pages under this page")
	pushCommand.Flags().String("database-id", "", "Create the pages in this database")
	pushCommand.Flags().String("data-source-id", "", "Create the pages in this data source")
	pushCommand.MarkFlagsMutuallyExclusive("page-id", "database-id", "data-source-id")
	pushCommand.MarkFlagsOneRequired("page-id", "database-id", "data-source-id")
	return pushCommand
}

func pushAction(cmd *cobra.Command, args []string) error {
	var parent notiontools.Parent
	parent.PageID, _ = cmd.Flags().GetString("page-id")
	parent.DatabaseID, _ = cmd.Flags().GetString("database-id")
	parent.DataSourceID, _ = cmd.Flags().GetString("data-source-id")
	if err := parent.Validate(); err != nil {
		return err
	}

	b, err := load(cmd, args[0], args[1])
	if err != nil {
		return err
	}
	if len(b.pages) == 0 {
		slog.WarnContext(cmd.Context(), "nothing to push")
		return b.err
	}

	ctx := cmd.Context()
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()
	tools := notiontools.New(sess, notiontools.WithLogging(slog.Default()))

	for start := 0; start < len(b.pages); start += maxPagesPerCall {
		end := min(start+maxPagesPerCall, len(b.pages))
		res, err := tools.Pages.CreatePages(ctx, notiontools.CreatePagesArgs{Parent: &parent, Pages: b.pages[start:end]})
		if err != nil {
			return err
		}
		if err := notiontools.Check(res); err != nil {
			return fmt.Errorf("pages %d-%d: %w", start+1, end, err)
		}
		slog.InfoContext(ctx, "created pages", slog.Int("from", start+1), slog.Int("to", end))
	}
	return b.err
}

// openSession connects to the server configured by the environment.
func openSession(ctx context.Context) (*mcpclient.Session, error) {
	cfg, err := mcpclient.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return mcpclient.Connect(ctx, cfg, mcpclient.WithLogger(slog.Default()))
}
