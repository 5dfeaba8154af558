package wordchart

import "strings"

// resolveContinuation gathers the full bead sequence for the row matched at
// matchIndex. Starting on the following line it absorbs every continuation
// candidate, space-joined onto initial, and stops without consuming at the
// first line that is anything else: a new row, a grid boundary, a section
// header, or plain unrelated text.
//
// It must never consume a line that itself starts a new row; doing so would
// silently merge two rows into one.
//
// It returns the accumulated sequence, the index of the last line actually
// consumed (matchIndex when nothing was absorbed), and an error only when a
// subsequent line trips ErrMalformedRowNumber.
func resolveContinuation(lines []string, matchIndex int, initial string) (string, int, error) {
	sequence := initial
	last := matchIndex

	for i := matchIndex + 1; i < len(lines); i++ {
		c, err := Classify(lines[i])
		if err != nil {
			return "", 0, err
		}
		if c.Kind != KindContinuation {
			break
		}
		sequence += " " + c.Sequence
		last = i
	}

	return strings.TrimSpace(sequence), last, nil
}
