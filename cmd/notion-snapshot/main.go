// Command notion-snapshot inspects CSV exports of a Notion workspace and
// talks to a Notion MCP server.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/spf13/cobra"

	"github.com/ggoodman/notion-mcp-go/internal/logctx"
)

// envConfig holds the defaults the environment supplies for flags.
type envConfig struct {
	IDColumn  string `env:"NOTION_SNAPSHOT_ID_COLUMN,default=id"`
	Format    string `env:"NOTION_SNAPSHOT_FORMAT,default=json"`
	LogLevel  string `env:"NOTION_LOG_LEVEL,default=info"`
	LogFormat string `env:"NOTION_LOG_FORMAT,default=text"`
}

func loadEnv() envConfig {
	var cfg envConfig
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		fmt.Fprintf(os.Stderr, "ignoring environment: %v\n", err)
		cfg = envConfig{}
	}
	if cfg.IDColumn == "" {
		cfg.IDColumn = "id"
	}
	if cfg.Format == "" {
		cfg.Format = formatJSON
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return cfg
}

func main() {
	if err := newApp(loadEnv()).Execute(); err != nil {
		slog.Error("command failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func newApp(env envConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notion-snapshot",
		Short: "Work with Notion workspace snapshots",
		Example: `  Print the records of a CSV export:
  $ notion-snapshot parse tasks.csv

  Validate an export as tasks:
  $ notion-snapshot convert task tasks.csv

  Ask the Notion MCP server a question:
  $ NOTION_MCP_TOKEN=... notion-snapshot ask /search launch plan`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("log-level", env.LogLevel, "Set the logging level [debug, info, warn, error]")
	rootCmd.PersistentFlags().String("log-format", env.LogFormat, "Set the logging format [text, json]")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		log, err := newLogger(cmd.ErrOrStderr(), level, format)
		if err != nil {
			return err
		}
		slog.SetDefault(log)
		return nil
	}

	rootCmd.AddCommand(
		newParseCommand(env),
		newConvertCommand(env),
		newPushCommand(env),
		newSchemaCommand(),
		newToolsCommand(),
		newAskCommand(),
	)
	return rootCmd
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("unsupported log-level: %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	switch strings.ToLower(format) {
	case "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported log-format: %q", format)
	}
	return slog.New(logctx.Handler{Handler: h}), nil
}
