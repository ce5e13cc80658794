// Package main provides the CLI entry point for the detentions workbook import.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chichermo/detentions/pkg/config"
	"github.com/chichermo/detentions/pkg/logger"
	"github.com/chichermo/detentions/pkg/nablijven"
)

var separator = strings.Repeat("-", 50)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nablijven-import",
		Short: "Import students and detentions from the detentions workbook",
		Long: `nablijven-import reads the student rosters and detention session sheets
of the detentions workbook and writes students.json and detentions.json.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	config.RegisterFlags(rootCmd.Flags())
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	opts := cfg.Options()
	opts.Logger = log

	return runImport(cmd.OutOrStdout(), opts)
}

// runImport runs both passes and prints the progress summary to out.
func runImport(out io.Writer, opts nablijven.Options) error {
	fmt.Fprintln(out, "Importing data from workbook...")
	fmt.Fprintln(out, separator)

	students, err := nablijven.ImportStudents(opts)
	if err != nil {
		return fmt.Errorf("student import failed: %w", err)
	}
	fmt.Fprintf(out, "[OK] Imported %d students to %s\n", students.Count, students.Path)

	detentions, err := nablijven.ImportDetentions(opts)
	if err != nil {
		return fmt.Errorf("detention import failed: %w", err)
	}
	fmt.Fprintf(out, "[OK] Imported %d detentions to %s\n", detentions.Count, detentions.Path)
	fmt.Fprintln(out, "[INFO] Note: review the imported dates, especially sessions whose date could not be parsed from the sheet name")

	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, "[OK] Import complete")

	if opts.Logger != nil {
		opts.Logger.Debug("import finished",
			zap.Int("students", students.Count),
			zap.Int("detentions", detentions.Count),
			zap.Int("default_dated", len(detentions.DefaultDated)))
	}
	return nil
}
