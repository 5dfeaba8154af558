package wordchart

import (
	"fmt"
	"regexp"
	"strings"
)

// The two source notations plus the canonical form. Counts are decimal,
// colors are one or more uppercase letters.
var (
	sourceTokenRe    = regexp.MustCompile(`^(\d+)\(([A-Z]+)\)$`)
	canonicalTokenRe = regexp.MustCompile(`^\((\d+)\)([A-Z]+)$`)
	bareColorRe      = regexp.MustCompile(`^[A-Z]+$`)
)

// tokenSeparator joins converted bead tokens in row output.
const tokenSeparator = ", "

// ConvertToken normalizes one whitespace-delimited bead fragment into the
// canonical (count)COLOR form:
//
//	3(G)  -> (3)G     workbook notation, count before the parens
//	(3)G  -> (3)G     already canonical
//	G     -> (1)G     bare color, implicit count of one
//
// The second return value is false when the fragment matches none of the
// notations; such fragments carry no bead information and are dropped by
// ConvertSequence.
func ConvertToken(fragment string) (string, bool) {
	if m := sourceTokenRe.FindStringSubmatch(fragment); m != nil {
		return "(" + m[1] + ")" + m[2], true
	}
	if canonicalTokenRe.MatchString(fragment) {
		return fragment, true
	}
	if bareColorRe.MatchString(fragment) {
		return "(1)" + fragment, true
	}
	return "", false
}

// ConvertSequence converts a raw whitespace-separated bead sequence into
// canonical tokens joined by ", ". Unconvertible fragments are dropped and
// reported as warnings rather than failing the row; zero-count tokens are
// kept but flagged for review.
func ConvertSequence(raw string) (string, []Warning) {
	var (
		tokens   []string
		warnings []Warning
	)

	for _, fragment := range strings.Fields(raw) {
		token, ok := ConvertToken(fragment)
		if !ok {
			warnings = append(warnings, Warning{
				Code:     WarnBadToken,
				Fragment: fragment,
				Message:  "unconvertible bead token dropped",
			})
			continue
		}
		if m := canonicalTokenRe.FindStringSubmatch(token); m != nil && allZero(m[1]) {
			warnings = append(warnings, Warning{
				Code:     WarnZeroCount,
				Fragment: fragment,
				Message:  fmt.Sprintf("bead token has a zero count, kept as %q", token),
			})
		}
		tokens = append(tokens, token)
	}

	return strings.Join(tokens, tokenSeparator), warnings
}

func allZero(digits string) bool {
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			return false
		}
	}
	return true
}
