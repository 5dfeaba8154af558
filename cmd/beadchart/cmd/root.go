package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "beadchart",
	Short: "Extract beading-pattern rows from pattern documents",
	Long: `beadchart extracts row-by-row beading instructions from pattern
documents: XLSX/XLSM workbooks, HTML exports, or already-extracted text.

The word chart is located in the document, continuation lines are stitched
back onto their rows, and bead tokens are normalized to (count)COLOR form.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
