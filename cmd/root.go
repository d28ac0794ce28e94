package cmd

import (
	"fmt"
	"log/slog"
	"os"

	pg_query "github.com/pganalyze/pg_query_go/v6"
	"github.com/schemasort/schemasort/internal/include"
	"github.com/schemasort/schemasort/internal/logger"
	"github.com/schemasort/schemasort/internal/resolve"
	"github.com/schemasort/schemasort/internal/version"
	"github.com/spf13/cobra"
)

var (
	Debug      bool
	outputFile string
	validate   bool
)

var RootCmd = &cobra.Command{
	Use:   "schemasort <file>",
	Short: "Reorder CREATE TABLE statements in foreign key dependency order",
	Long: fmt.Sprintf(`schemasort reads a SQL DDL file and prints it with the CREATE TABLE
statements reordered so that every table referenced by a foreign key is
defined before the tables that reference it. Index and trigger statements
keep their original relative order after the table block.

Version: %s@%s %s %s`,
		version.App(), version.GetGitCommit(), version.Platform(), version.GetBuildDate()),
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: runSort,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug logging")
	RootCmd.Flags().StringVar(&outputFile, "file", "", "Write output to a file instead of stdout")
	RootCmd.Flags().BoolVar(&validate, "validate", false, "Warn if the sorted output is not valid PostgreSQL")
	RootCmd.AddCommand(VersionCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	path := args[0]

	processor := include.NewProcessor(".")
	schema, err := processor.ProcessFile(path)
	if err != nil {
		return err
	}

	sorted, err := resolve.Resolve(schema)
	if err != nil {
		return fmt.Errorf("failed to sort %s: %w", path, err)
	}

	if validate {
		validateOutput(sorted)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(sorted), 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", outputFile, err)
		}
		return nil
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), sorted)
	return err
}

// validateOutput parses the sorted schema with the PostgreSQL parser and
// warns on failure. Warn-only: the input may be written in another dialect.
func validateOutput(sorted string) {
	if _, err := pg_query.Parse(sorted); err != nil {
		logger.Get().Warn("sorted schema is not valid PostgreSQL", "error", err)
	}
}

func setupLogger() {
	level := slog.LevelInfo
	if Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger.SetGlobal(slog.New(handler), Debug)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
