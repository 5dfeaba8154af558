package wordchart

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Direction is the traversal direction of a beading row.
type Direction int

const (
	// Left indicates a row worked right-to-left ("L" in the source).
	Left Direction = iota
	// Right indicates a row worked left-to-right ("R" in the source).
	Right
)

// String returns the single-letter form used in row output.
func (d Direction) String() string {
	if d == Right {
		return "R"
	}
	return "L"
}

// LineKind identifies the role a single line plays in the chart.
type LineKind int

const (
	// KindUnrelated marks text that plays no part in the chart.
	KindUnrelated LineKind = iota
	// KindTableHeader marks the column header line of the chart itself.
	KindTableHeader
	// KindSectionHeader marks the "Word Chart" (or "Word Cart") section label.
	KindSectionHeader
	// KindGridBoundary marks the start of the grid section that follows a chart.
	KindGridBoundary
	// KindSingleRow marks an instruction for one row.
	KindSingleRow
	// KindRangeRow marks an instruction shared by two rows ("1 & 2").
	KindRangeRow
	// KindContinuation marks a trailing fragment of the preceding row's beads.
	KindContinuation
)

// String returns a short name for the kind, mainly for diagnostics.
func (k LineKind) String() string {
	switch k {
	case KindTableHeader:
		return "tableHeader"
	case KindSectionHeader:
		return "sectionHeader"
	case KindGridBoundary:
		return "gridBoundary"
	case KindSingleRow:
		return "singleRow"
	case KindRangeRow:
		return "rangeRow"
	case KindContinuation:
		return "continuation"
	default:
		return "unrelated"
	}
}

// Classification is the tagged result of classifying one line. Row, EndRow
// and Direction are only meaningful for row kinds; Sequence holds the bead
// remainder for row kinds and the whole line for continuations.
type Classification struct {
	Kind      LineKind
	Row       uint32
	EndRow    uint32
	Direction Direction
	Sequence  string

	// Original numeral captures, emitted verbatim in row labels so that
	// padded source numbers ("007") survive untouched.
	rowText    string
	endRowText string
}

var (
	tableHeaderRe = regexp.MustCompile(`(?i)row\s+direction\s+word\s+chart`)
	rangeRowRe    = regexp.MustCompile(`^(\d+)\s*&\s*(\d+)\s+([RL])\s+(.+)$`)
	singleRowRe   = regexp.MustCompile(`^(\d+)\s+([RL])\s+(.+)$`)
	beadTokenRe   = regexp.MustCompile(`\d+\([A-Z]+\)|\(\d+\)[A-Z]+`)
	rowStartRe    = regexp.MustCompile(`^\d+\s+[RL]`)
)

// ErrMalformedRowNumber reports a row numeral that matched the row regex
// but could not be parsed as a base-10 uint32. This indicates the
// classifier and converter have diverged and fails the whole parse.
var ErrMalformedRowNumber = fmt.Errorf("wordchart: malformed row number")

// Classify determines the role of a single trimmed line. The rules are
// ordered and the first match wins:
//
//  1. chart column header ("Row Direction Word Chart")
//  2. section header ("word chart" / the common misspelling "word cart")
//  3. grid boundary (any mention of "grid")
//  4. range row ("1 & 2 L beads...")
//  5. single row ("3 R beads...")
//  6. continuation (contains a bead token, does not start like a row)
//  7. unrelated
//
// The only possible error is ErrMalformedRowNumber.
func Classify(line string) (Classification, error) {
	lower := strings.ToLower(line)

	if tableHeaderRe.MatchString(line) {
		return Classification{Kind: KindTableHeader}, nil
	}
	if strings.Contains(lower, "word chart") || strings.Contains(lower, "word cart") {
		return Classification{Kind: KindSectionHeader}, nil
	}
	if strings.Contains(lower, "grid") {
		return Classification{Kind: KindGridBoundary}, nil
	}

	if m := rangeRowRe.FindStringSubmatch(line); m != nil {
		start, err := parseRowNumber(m[1])
		if err != nil {
			return Classification{}, err
		}
		end, err := parseRowNumber(m[2])
		if err != nil {
			return Classification{}, err
		}
		return Classification{
			Kind:       KindRangeRow,
			Row:        start,
			EndRow:     end,
			Direction:  parseDirection(m[3]),
			Sequence:   m[4],
			rowText:    m[1],
			endRowText: m[2],
		}, nil
	}

	if m := singleRowRe.FindStringSubmatch(line); m != nil {
		row, err := parseRowNumber(m[1])
		if err != nil {
			return Classification{}, err
		}
		return Classification{
			Kind:      KindSingleRow,
			Row:       row,
			Direction: parseDirection(m[2]),
			Sequence:  m[3],
			rowText:   m[1],
		}, nil
	}

	if beadTokenRe.MatchString(line) && !rowStartRe.MatchString(line) {
		return Classification{Kind: KindContinuation, Sequence: line}, nil
	}

	return Classification{Kind: KindUnrelated}, nil
}

func parseRowNumber(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedRowNumber, s, err)
	}
	return uint32(n), nil
}

func parseDirection(s string) Direction {
	if s == "R" {
		return Right
	}
	return Left
}
