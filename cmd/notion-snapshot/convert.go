package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ggoodman/notion-mcp-go/internal/logctx"
	"github.com/ggoodman/notion-mcp-go/notiontools"
	"github.com/ggoodman/notion-mcp-go/snapshot"
	"github.com/ggoodman/notion-mcp-go/workspace"
)

var errInvalidRecords = errors.New("snapshot contains invalid records")

func newConvertCommand(env envConfig) *cobra.Command {
	convertCommand := &cobra.Command{
		Use:   "convert KIND FILE.csv",
		Short: "Validate a CSV snapshot as typed records",
		Long: `Validate a CSV snapshot as typed records and print the valid ones.
Every invalid row is logged and the command fails if there is at least one.
KIND is one of task, project, meeting or team.`,
		Args: cobra.ExactArgs(2),
		RunE: convertAction,
	}
	addSnapshotFlags(convertCommand, env)
	return convertCommand
}

func convertAction(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	batch, err := load(cmd, args[0], args[1])
	if err != nil {
		return err
	}
	if err := write(cmd.OutOrStdout(), format, batch.records); err != nil {
		return err
	}
	return batch.err
}

// batch is the typed form of one snapshot.
type batch struct {
	records []any
	pages   []notiontools.PageSpec
	// err is errInvalidRecords when at least one row failed validation.
	err error
}

// load parses path and converts its records to kind, logging every record
// that fails validation.
func load(cmd *cobra.Command, kindName, path string) (*batch, error) {
	kind, err := workspace.ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	ctx := logctx.WithSnapshotData(cmd.Context(), &logctx.SnapshotData{Path: path, Kind: string(kind)})

	recs, err := snapshot.Parse(path, snapshotOptions(cmd)...)
	if err != nil {
		return nil, err
	}

	var b *batch
	switch kind {
	case workspace.KindTask:
		b, err = decode(recs, workspace.TaskFromRecord, notiontools.TaskPage)
	case workspace.KindProject:
		b, err = decode(recs, workspace.ProjectFromRecord, notiontools.ProjectPage)
	case workspace.KindMeeting:
		b, err = decode(recs, workspace.MeetingFromRecord, notiontools.MeetingPage)
	case workspace.KindTeam:
		b, err = decode(recs, workspace.TeamFromRecord, notiontools.TeamPage)
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
	if err != nil {
		for _, e := range unjoin(err) {
			slog.WarnContext(ctx, "invalid record", slog.String("err", e.Error()))
		}
		b.err = errInvalidRecords
	}
	slog.DebugContext(ctx, "converted snapshot", slog.Int("records", len(recs)), slog.Int("valid", len(b.records)))
	return b, nil
}

func decode[T any](recs []snapshot.Record, from func(snapshot.Record) (T, error), page func(T) notiontools.PageSpec) (*batch, error) {
	typed, err := workspace.Decode(recs, from)
	b := &batch{}
	for _, v := range typed {
		b.records = append(b.records, v)
		b.pages = append(b.pages, page(v))
	}
	return b, err
}

func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
