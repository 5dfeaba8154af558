package wordchart

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// strippedControls covers the ASCII control characters removed by Sanitize:
// 0x00-0x08, 0x0B, 0x0C, 0x0E-0x1F and 0x7F. Tab, LF and CR survive because
// the parser needs line structure and the tokenizer splits on whitespace.
var strippedControls = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00, Hi: 0x08, Stride: 1},
		{Lo: 0x0B, Hi: 0x0C, Stride: 1},
		{Lo: 0x0E, Hi: 0x1F, Stride: 1},
		{Lo: 0x7F, Hi: 0x7F, Stride: 1},
	},
	LatinOffset: 4,
}

// Sanitize removes control characters from raw extracted text and trims
// surrounding whitespace. It never fails; invalid UTF-8 sequences are
// replaced with U+FFFD by the transform rather than passed through.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	clean, _, err := transform.String(runes.Remove(runes.In(strippedControls)), text)
	if err != nil {
		// The Remove transformer does not error, but keep a manual
		// fallback so Sanitize can honor its never-fails contract.
		clean = strings.Map(func(r rune) rune {
			if unicode.Is(strippedControls, r) {
				return -1
			}
			return r
		}, text)
	}

	return strings.TrimSpace(clean)
}

// splitLines breaks sanitized text into trimmed, non-empty lines: the
// indivisible units the table parser consumes.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
