package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aryavats2/interview-coach/internal/services"
)

func newExtractCmd() *cobra.Command {
	var clean bool

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Print the text extracted from a PDF or DOCX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !services.IsSupportedDocument(path) {
				return fmt.Errorf("unsupported file type (%s): %s", services.AllowedTypes(), path)
			}

			text := services.NewTextExtractor().ExtractFile(path)
			if text == "" {
				return fmt.Errorf("failed to extract text from %s", path)
			}
			if clean {
				text = services.CleanText(text)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&clean, "clean", false, "Trim lines and drop blank ones")

	return cmd
}
