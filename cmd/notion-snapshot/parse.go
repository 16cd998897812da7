package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ggoodman/notion-mcp-go/internal/logctx"
	"github.com/ggoodman/notion-mcp-go/snapshot"
)

func newParseCommand(env envConfig) *cobra.Command {
	parseCommand := &cobra.Command{
		Use:   "parse FILE.csv",
		Short: "Print the records of a CSV snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  parseAction,
	}
	addSnapshotFlags(parseCommand, env)
	parseCommand.Flags().Bool("watch", false, "Print the records again whenever the file changes")
	return parseCommand
}

func addSnapshotFlags(cmd *cobra.Command, env envConfig) {
	cmd.Flags().String("format", env.Format, "Output format [json, yaml]")
	cmd.Flags().String("id-column", env.IDColumn, "Column holding record identifiers")
	cmd.Flags().String("source", "", "Source tag for every record (default: file name without extension)")
	cmd.Flags().String("list-delimiter", snapshot.DefaultListDelimiter, "Delimiter splitting cells into lists; empty disables splitting")
	cmd.Flags().StringSlice("text-column", nil, "Column never split into a list (repeatable)")
}

func snapshotOptions(cmd *cobra.Command) []snapshot.Option {
	idColumn, _ := cmd.Flags().GetString("id-column")
	source, _ := cmd.Flags().GetString("source")
	delim, _ := cmd.Flags().GetString("list-delimiter")
	text, _ := cmd.Flags().GetStringSlice("text-column")

	opts := []snapshot.Option{
		snapshot.WithIDColumn(idColumn),
		snapshot.WithListDelimiter(delim),
		snapshot.WithTextColumns(text...),
	}
	if source != "" {
		opts = append(opts, snapshot.WithSource(source))
	}
	return opts
}

func parseAction(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	watch, _ := cmd.Flags().GetBool("watch")
	path := args[0]
	ctx := logctx.WithSnapshotData(cmd.Context(), &logctx.SnapshotData{Path: path})

	if !watch {
		records, err := snapshot.Parse(path, snapshotOptions(cmd)...)
		if err != nil {
			return err
		}
		slog.DebugContext(ctx, "parsed snapshot", slog.Int("records", len(records)))
		return write(cmd.OutOrStdout(), format, records)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return watchAction(ctx, cmd, path, format)
}

func watchAction(ctx context.Context, cmd *cobra.Command, path, format string) error {
	return snapshot.Watch(ctx, path, func(records []snapshot.Record, err error) {
		if err != nil {
			slog.WarnContext(ctx, "snapshot unreadable", slog.String("err", err.Error()))
			return
		}
		slog.InfoContext(ctx, "snapshot changed", slog.Int("records", len(records)))
		if err := write(cmd.OutOrStdout(), format, records); err != nil {
			slog.ErrorContext(ctx, "write records", slog.String("err", err.Error()))
		}
	}, snapshotOptions(cmd)...)
}
