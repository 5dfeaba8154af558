package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mstrand/beadchart"
)

var (
	rowsSheets   []int
	rowsZigzag   bool
	rowsFromText bool
	rowsQuiet    bool
)

var rowsCmd = &cobra.Command{
	Use:   "rows [file]",
	Short: "Print the pattern rows found in a document",
	Long: `Extracts the word chart from the given file and prints one line per
pattern row. With no file argument, already-extracted text is read from
standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRows,
}

func init() {
	rowsCmd.Flags().IntSliceVar(&rowsSheets, "sheet", nil, "workbook sheet(s) to read, 1-indexed (default all)")
	rowsCmd.Flags().BoolVar(&rowsZigzag, "zigzag", false, "combine adjacent rows into two-row zipper passes")
	rowsCmd.Flags().BoolVar(&rowsFromText, "text", false, "treat the file as already-extracted text regardless of extension")
	rowsCmd.Flags().BoolVarP(&rowsQuiet, "quiet", "q", false, "suppress warnings")
	rootCmd.AddCommand(rowsCmd)
}

func runRows(cmd *cobra.Command, args []string) error {
	ext, err := buildExtractor(args)
	if err != nil {
		return err
	}
	if len(rowsSheets) > 0 {
		ext = ext.Sheets(rowsSheets...)
	}

	var (
		rows     []string
		warnings []beadchart.Warning
	)
	if rowsZigzag {
		rows, warnings, err = ext.CombinedRows()
	} else {
		rows, warnings, err = ext.Rows()
	}
	if err != nil {
		return err
	}

	if !rowsQuiet && len(warnings) > 0 {
		fmt.Fprintln(os.Stderr, beadchart.FormatWarnings(warnings))
	}

	if len(rows) == 0 {
		return fmt.Errorf("no pattern rows recognized")
	}
	for _, row := range rows {
		fmt.Println(row)
	}
	return nil
}

func buildExtractor(args []string) (*beadchart.Extractor, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return beadchart.FromText(string(data)), nil
	}

	if rowsFromText {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		return beadchart.FromText(string(data)), nil
	}

	return beadchart.Open(args[0]), nil
}
