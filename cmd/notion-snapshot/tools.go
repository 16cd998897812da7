package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ggoodman/notion-mcp-go/mcp"
	"github.com/ggoodman/notion-mcp-go/notiontools"
)

func newToolsCommand() *cobra.Command {
	toolsCommand := &cobra.Command{
		Use:   "tools",
		Short: "List the Notion MCP tools",
		Long: `List the Notion MCP tools this client knows how to call.
With --remote, list the tools the configured server advertises instead.`,
		Args: cobra.NoArgs,
		RunE: toolsAction,
	}
	toolsCommand.Flags().Bool("json", false, "Print full tool descriptors as JSON")
	toolsCommand.Flags().Bool("remote", false, "Ask the server configured by NOTION_MCP_* for its tools")
	return toolsCommand
}

func toolsAction(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	remote, _ := cmd.Flags().GetBool("remote")

	tools := notiontools.Catalog()
	if remote {
		var err error
		if tools, err = remoteTools(cmd); err != nil {
			return err
		}
	}
	if asJSON {
		return write(cmd.OutOrStdout(), formatJSON, tools)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 4, 8, 4, ' ', 0)
	fmt.Fprintln(w, "NAME\tACCESS\tTITLE")
	for _, t := range tools {
		access := "write"
		if t.Annotations != nil && t.Annotations.ReadOnlyHint {
			access = "read"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, access, t.Title)
	}
	return w.Flush()
}

func remoteTools(cmd *cobra.Command) ([]mcp.Tool, error) {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return nil, err
	}
	defer sess.Close()
	return sess.ListTools(cmd.Context())
}
