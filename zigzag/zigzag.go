// Package zigzag combines adjacent word-chart rows into two-row zipper
// passes. Looms that work two rows per pass traverse the first row in its
// stated direction and come back across the second, so the second row's
// bead tokens are reversed before the pair is joined.
//
// The input is the plain formatted row strings produced by the wordchart
// parser; rows that already cover a range ("Row 1&2 ...") pass through
// unchanged, as does a trailing row with no partner.
package zigzag

import (
	"fmt"
	"regexp"
	"strings"
)

// Row is one parsed pattern row string.
type Row struct {
	Label     string   // original row label, e.g. "1" or "1&2"
	Direction string   // "L" or "R"
	Tokens    []string // canonical (count)COLOR tokens
	IsRange   bool
}

var rowRe = regexp.MustCompile(`^Row (\d+(?:&\d+)?) \(([LR])\) (.*)$`)

// ParseRow parses one formatted row string.
func ParseRow(s string) (Row, error) {
	m := rowRe.FindStringSubmatch(s)
	if m == nil {
		return Row{}, fmt.Errorf("zigzag: not a pattern row: %q", s)
	}

	row := Row{
		Label:     m[1],
		Direction: m[2],
		IsRange:   strings.Contains(m[1], "&"),
	}
	if m[3] != "" {
		row.Tokens = strings.Split(m[3], ", ")
	}
	return row, nil
}

// String formats the row back into the canonical output shape.
func (r Row) String() string {
	return fmt.Sprintf("Row %s (%s) %s", r.Label, r.Direction, strings.Join(r.Tokens, ", "))
}

// Combine pairs consecutive single rows into zipper passes. Each pair is
// emitted as one range row labeled "a&b" in the first row's direction,
// with the second row's tokens reversed. Range rows interrupt pairing and
// pass through unchanged, as does a final unpaired single row.
func Combine(rows []string) ([]string, error) {
	parsed := make([]Row, 0, len(rows))
	for _, s := range rows {
		row, err := ParseRow(s)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, row)
	}

	out := make([]string, 0, (len(parsed)+1)/2)
	for i := 0; i < len(parsed); i++ {
		first := parsed[i]
		if first.IsRange || i+1 >= len(parsed) || parsed[i+1].IsRange {
			out = append(out, first.String())
			continue
		}

		second := parsed[i+1]
		combined := Row{
			Label:     first.Label + "&" + second.Label,
			Direction: first.Direction,
			Tokens:    append(append([]string{}, first.Tokens...), reversed(second.Tokens)...),
		}
		out = append(out, combined.String())
		i++
	}
	return out, nil
}

func reversed(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[len(tokens)-1-i] = t
	}
	return out
}
