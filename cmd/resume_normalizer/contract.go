package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-normalizer/internal/llm"
	"github.com/jonathan/resume-normalizer/internal/pipeline"
)

const (
	contractResume     = "resume"
	contractGeneration = "generation"
)

func newContractCmd(a *app) *cobra.Command {
	var (
		kind      string
		inputFile string
		mimeType  string
	)

	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Print the prompt contract handed to an external structured-output generator",
		Long: `Render the output contract derived from the embedded JSON schemas. With --in the
normalized text of the document is appended as the model input.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				contract llm.ExtractionSchema
				err      error
			)
			switch kind {
			case contractResume:
				contract, err = llm.ResumeExtractionContract()
			case contractGeneration:
				contract, err = llm.GenerationContract()
			default:
				return fmt.Errorf("unknown contract kind %q (expected %s or %s)", kind, contractResume, contractGeneration)
			}
			if err != nil {
				return fmt.Errorf("failed to build contract: %w", err)
			}

			var inputText string
			if inputFile != "" {
				doc, err := pipeline.LoadDocument(inputFile, mimeType)
				if err != nil {
					return err
				}
				extracted, err := a.pipeline.Ingest(cmd.Context(), doc)
				if err != nil {
					return fmt.Errorf("failed to ingest input: %w", err)
				}
				inputText = extracted.Text
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), llm.BuildExtractionPrompt(contract, inputText))
			return err
		},
	}

	cmd.Flags().StringVar(&kind, "kind", contractResume, "Contract kind: resume or generation")
	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "Optional document whose text is embedded in the prompt")
	cmd.Flags().StringVar(&mimeType, "mime", "", "MIME type of the input (default: detected)")

	return cmd
}
