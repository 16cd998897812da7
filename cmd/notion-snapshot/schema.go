package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ggoodman/notion-mcp-go/workspace"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "schema KIND",
		Short:     "Print the JSON Schema of a record kind",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"task", "project", "meeting", "team"},
		RunE:      schemaAction,
	}
}

func schemaAction(cmd *cobra.Command, args []string) error {
	kind, err := workspace.ParseKind(args[0])
	if err != nil {
		return err
	}
	schema, err := workspace.JSONSchema(kind)
	if err != nil {
		return err
	}
	j, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(j))
	return err
}
