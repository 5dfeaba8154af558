// Package beadchart provides a fluent API for extracting beading-pattern
// rows from pattern documents: XLSX/XLSM workbooks, HTML exports, or
// already-extracted plain text.
//
// Basic usage:
//
//	rows, warnings, err := beadchart.Open("pattern.xlsx").Rows()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", beadchart.FormatWarnings(warnings))
//	}
//
// From text produced by an upstream extraction step:
//
//	rows, _, err := beadchart.FromText(pageText).Rows()
//
// For advanced use cases, the lower-level wordchart package is also
// available.
package beadchart

// Open opens a pattern file and returns an Extractor for fluent
// configuration. The file format is detected from its content with the
// extension as a fallback.
//
// Example:
//
//	rows, warnings, err := beadchart.Open("pattern.xlsm").Rows()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromText creates an Extractor over already-extracted document text,
// conceptually the newline-joined concatenation of per-page text in page
// order. Use this when text extraction happens upstream (for example,
// from a scanned PDF).
//
// Example:
//
//	rows, warnings, err := beadchart.FromText(text).Rows()
func FromText(text string) *Extractor {
	return &Extractor{
		text:    text,
		hasText: true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRows is a helper that wraps a call to Rows(), Pattern() or another
// warning-carrying terminal and panics if the error is non-nil. It
// discards warnings and returns just the value.
//
// Example:
//
//	rows := beadchart.MustRows(beadchart.Open("pattern.xlsx").Rows())
func MustRows[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
