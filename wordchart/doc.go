// Package wordchart extracts row-by-row beading instructions from the
// loosely formatted "Word Chart" tables found in extracted pattern
// document text.
//
// The input is noisy: page footers, section headers with inconsistent
// spelling ("Word Chart" / "Word Cart"), instruction rows split across
// multiple lines, and two different bead notations. ParseTable locates
// the chart, classifies every line, stitches continuation fragments back
// onto their row, and normalizes every bead token into the canonical
// (count)COLOR shorthand:
//
//	rows, warnings, err := wordchart.ParseTable(text)
//	// rows: ["Row 1 (L) (3)A, (2)B, (1)C", "Row 2 (R) (1)C, ..."]
//
// All functions are pure and hold no state between calls, so they are
// safe to use concurrently across documents.
package wordchart
