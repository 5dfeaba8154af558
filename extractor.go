package beadchart

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mstrand/beadchart/format"
	"github.com/mstrand/beadchart/htmldoc"
	"github.com/mstrand/beadchart/wordchart"
	"github.com/mstrand/beadchart/xlsxdoc"
	"github.com/mstrand/beadchart/zigzag"
)

// Extractor provides a fluent interface for extracting pattern rows from
// workbooks, HTML exports, and plain text. Each configuration method
// returns a new Extractor instance, making it safe for concurrent use and
// allowing method chaining.
type Extractor struct {
	// Source
	filename string
	text     string
	hasText  bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options, so each chain method returns an independent instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		text:     e.text,
		hasText:  e.hasText,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// Sheets restricts workbook extraction to the given sheets (1-indexed).
// Multiple calls are cumulative. Ignored for non-workbook sources.
//
// Example:
//
//	rows, _, err := beadchart.Open("pattern.xlsx").Sheets(2).Rows()
func (e *Extractor) Sheets(sheets ...int) *Extractor {
	newExt := e.clone()
	newExt.options.sheets = append(newExt.options.sheets, sheets...)
	return newExt
}

// Text extracts and returns the raw document text the parser would see,
// before any chart parsing. Useful for debugging pattern files that fail
// to produce rows.
func (e *Extractor) Text() (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}
	return e.loadText()
}

// Rows extracts the word chart and returns one formatted string per
// pattern row, plus any warnings encountered (dropped tokens, sanitized
// input, zero bead counts). An input without a recognizable chart yields
// an empty slice and no error.
//
// Example:
//
//	rows, warnings, err := beadchart.Open("pattern.xlsx").Rows()
func (e *Extractor) Rows() ([]string, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	text, warnings, err := e.loadText()
	if err != nil {
		return nil, warnings, err
	}

	rows, parseWarnings, err := wordchart.ParseTable(text)
	warnings = append(warnings, parseWarnings...)
	return rows, warnings, err
}

// Pattern returns the extracted rows joined by newlines into one pattern
// source string, the form consumed by downstream shorthand compilers.
func (e *Extractor) Pattern() (string, []Warning, error) {
	rows, warnings, err := e.Rows()
	if err != nil {
		return "", warnings, err
	}
	return strings.Join(rows, "\n"), warnings, nil
}

// CombinedRows extracts the word chart and combines consecutive single
// rows into two-row zipper passes (see the zigzag package).
func (e *Extractor) CombinedRows() ([]string, []Warning, error) {
	rows, warnings, err := e.Rows()
	if err != nil {
		return nil, warnings, err
	}

	combined, err := zigzag.Combine(rows)
	if err != nil {
		return nil, warnings, err
	}
	return combined, warnings, nil
}

// loadText resolves the source into plain text for the parser.
func (e *Extractor) loadText() (string, []Warning, error) {
	if e.hasText {
		return e.text, nil, nil
	}
	if e.filename == "" {
		return "", nil, fmt.Errorf("no input specified")
	}

	f, err := detectFormat(e.filename)
	if err != nil {
		return "", nil, err
	}

	switch f {
	case format.XLSX:
		return e.workbookText()

	case format.HTML:
		r, err := htmldoc.Open(e.filename)
		if err != nil {
			return "", nil, fmt.Errorf("reading HTML: %w", err)
		}
		return r.Text(), nil, nil

	case format.Text:
		data, err := os.ReadFile(e.filename)
		if err != nil {
			return "", nil, err
		}
		return string(data), nil, nil

	case format.PDF:
		return "", nil, fmt.Errorf("PDF text extraction is not supported; extract page text upstream and use FromText")

	default:
		return "", nil, fmt.Errorf("unsupported file format: %s", f)
	}
}

// workbookText extracts text from the configured sheets of a workbook.
func (e *Extractor) workbookText() (string, []Warning, error) {
	r, err := xlsxdoc.Open(e.filename)
	if err != nil {
		return "", nil, fmt.Errorf("reading workbook: %w", err)
	}
	defer r.Close()

	indices, err := e.resolveSheets(r.SheetCount())
	if err != nil {
		return "", nil, err
	}

	parts := make([]string, 0, len(indices))
	for _, idx := range indices {
		sheet, err := r.Sheet(idx)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sheet.Text())
	}
	return strings.Join(parts, "\n\n"), nil, nil
}

// resolveSheets converts 1-indexed sheet numbers to 0-indexed and
// validates them. With no selection, all sheets are used.
func (e *Extractor) resolveSheets(count int) ([]int, error) {
	if len(e.options.sheets) == 0 {
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	seen := make(map[int]bool)
	var indices []int
	for _, s := range e.options.sheets {
		if s < 1 || s > count {
			return nil, fmt.Errorf("sheet %d out of range (1-%d)", s, count)
		}
		if !seen[s-1] {
			seen[s-1] = true
			indices = append(indices, s-1)
		}
	}
	sort.Ints(indices)
	return indices, nil
}

// detectFormat sniffs the file content, falling back to the extension
// when the content is inconclusive.
func detectFormat(filename string) (format.Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return format.Unknown, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return format.Unknown, err
	}

	detected, err := format.DetectFromReader(f, info.Size())
	if err != nil || detected == format.Unknown {
		if byExt := format.Detect(filename); byExt != format.Unknown {
			return byExt, nil
		}
	}
	if err != nil {
		return format.Unknown, err
	}
	return detected, nil
}
