package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wudi/glyphscan/observability"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "glyphscan",
		Short:         "Decode digit glyph images into text",
		Long:          `glyphscan reads images of blocky digit glyphs framed by a border and prints the digits they spell, line by line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newDecodeCmd(), newDumpCmd(), newVersionCmd())
	return root
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// loggerFor builds the logger selected by the persistent --log-level flag.
// Records go to the command's error stream so stdout stays machine readable.
func loggerFor(cmd *cobra.Command) (observability.Logger, error) {
	raw, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}
	level, err := parseLevel(raw)
	if err != nil {
		return nil, err
	}
	return observability.NewSlogLogger(observability.NewSlog(cmd.ErrOrStderr(), level)), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of glyphscan",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "glyphscan version %s\n", Version)
		},
	}
}
