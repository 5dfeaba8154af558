package wordchart

import "fmt"

// ParseTable scans extracted document text for a word-chart section and
// returns one formatted string per recognized pattern row, in input order:
//
//	Row <n> (<L|R>) (<count>)<COLOR>, ...
//	Row <a>&<b> (<L|R>) (<count>)<COLOR>, ...
//
// Rows are only recognized after a section or table header has been seen;
// numbered text before any header is ignored. A grid boundary inside the
// chart ends the scan entirely. When no chart is found the result is an
// empty list, not an error. The only error condition is an internal
// invariant violation (ErrMalformedRowNumber).
func ParseTable(text string) ([]string, []Warning, error) {
	var warnings []Warning

	clean := Sanitize(text)
	if clean != text {
		warnings = append(warnings, Warning{
			Code:    WarnSanitized,
			Message: fmt.Sprintf("sanitizer altered input: %d bytes in, %d bytes out", len(text), len(clean)),
		})
	}

	lines := splitLines(clean)
	rows := []string{}
	insideTable := false

	for i := 0; i < len(lines); i++ {
		c, err := Classify(lines[i])
		if err != nil {
			return nil, warnings, err
		}

		switch c.Kind {
		case KindTableHeader, KindSectionHeader:
			insideTable = true

		case KindGridBoundary:
			// Only terminal once a chart section has started; a stray
			// "grid" mention beforehand is ordinary text.
			if insideTable {
				return rows, warnings, nil
			}

		case KindSingleRow, KindRangeRow:
			if !insideTable {
				continue
			}
			sequence, last, err := resolveContinuation(lines, i, c.Sequence)
			if err != nil {
				return nil, warnings, err
			}
			converted, ws := ConvertSequence(sequence)
			warnings = append(warnings, ws...)

			if c.Kind == KindRangeRow {
				rows = append(rows, fmt.Sprintf("Row %s&%s (%s) %s", c.rowText, c.endRowText, c.Direction, converted))
			} else {
				rows = append(rows, fmt.Sprintf("Row %s (%s) %s", c.rowText, c.Direction, converted))
			}
			i = last
		}
	}

	return rows, warnings, nil
}
