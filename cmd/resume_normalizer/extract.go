package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-normalizer/internal/pipeline"
	"github.com/jonathan/resume-normalizer/internal/types"
)

// extractResult is the JSON record printed for each input file
type extractResult struct {
	File       string               `json:"file"`
	DocumentID string               `json:"document_id"`
	Result     *types.ExtractedText `json:"result,omitempty"`
	Error      string               `json:"error,omitempty"`
}

func newExtractCmd(a *app) *cobra.Command {
	var (
		mimeType string
		raw      bool
	)

	cmd := &cobra.Command{
		Use:   "extract <files...>",
		Short: "Extract and normalize text from PDF, DOCX, DOC or plain-text documents",
		Long: `Extract text from one or more documents concurrently. Each file is checked at the upload
boundary (MIME type and size), decoded and normalized. Failures are reported per file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := make([]types.RawDocument, 0, len(args))
			for _, path := range args {
				doc, err := pipeline.LoadDocument(path, mimeType)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
			}

			results := a.pipeline.IngestBatch(cmd.Context(), docs)

			out := make([]extractResult, 0, len(results))
			failed := 0
			for _, r := range results {
				record := extractResult{File: args[r.Index], DocumentID: r.DocumentID, Result: r.Text}
				if r.Err != nil {
					failed++
					record.Error = r.Err.Error()
				} else if a.verbose {
					a.printer.PrintExtractedText(r.Filename, r.Text)
				}
				out = append(out, record)
			}

			if raw {
				for _, record := range out {
					if record.Result != nil {
						if _, err := fmt.Fprintln(cmd.OutOrStdout(), record.Result.Text); err != nil {
							return fmt.Errorf("failed to write output: %w", err)
						}
					}
				}
			} else if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(out))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mimeType, "mime", "", "MIME type for all inputs (default: detected from extension and content)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the normalized text instead of JSON")

	return cmd
}
