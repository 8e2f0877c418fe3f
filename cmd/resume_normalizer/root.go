package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-normalizer/internal/config"
	"github.com/jonathan/resume-normalizer/internal/logger"
	"github.com/jonathan/resume-normalizer/internal/observability"
	"github.com/jonathan/resume-normalizer/internal/pipeline"
)

// app holds state shared by all subcommands, set up before any of them runs
type app struct {
	configPath string
	verbose    bool

	cfg      *config.Config
	log      *logger.Logger
	pipeline *pipeline.Pipeline
	printer  *observability.Printer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "resume_normalizer",
		Short: "Resume document normalization pipeline",
		Long: `resume_normalizer extracts text from uploaded resumes and job postings, segments job descriptions,
maps arbitrary structured resume JSON to a universal shape and validates documents against the
canonical resume and generation schemas.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default: resume-normalizer.yaml in . or $HOME/.resume-normalizer)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Print human-readable summaries to stderr and enable debug logging")

	cmd.AddCommand(
		newExtractCmd(a),
		newParseJobCmd(a),
		newMapCmd(a),
		newValidateCmd(a),
		newValidateOutputCmd(a),
		newContractCmd(a),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.pipeline = pipeline.NewFromConfig(cfg, log)
	a.printer = observability.NewPrinter(cmd.ErrOrStderr())
	return nil
}

// writeJSON writes v as indented JSON followed by a newline
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(jsonBytes)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
