package wordchart

import "fmt"

// WarningCode identifies the kind of non-fatal issue found while parsing.
type WarningCode int

const (
	// WarnSanitized reports that the sanitizer removed characters from the
	// input (the diagnostic carries the before/after lengths).
	WarnSanitized WarningCode = iota
	// WarnBadToken reports a bead fragment that matched no known notation
	// and was dropped from its row.
	WarnBadToken
	// WarnZeroCount reports a syntactically valid bead token with a count
	// of zero. The token is kept, matching the reference behavior, but is
	// worth reviewing as likely bad source data.
	WarnZeroCount
)

// String returns a short name for the code.
func (c WarningCode) String() string {
	switch c {
	case WarnSanitized:
		return "sanitized"
	case WarnBadToken:
		return "bad-token"
	case WarnZeroCount:
		return "zero-count"
	default:
		return "unknown"
	}
}

// Warning describes a recoverable issue encountered while parsing.
// Warnings never stop the parse; they surface dropped tokens and
// data-quality concerns to the caller.
type Warning struct {
	Code     WarningCode
	Fragment string // offending fragment, when one exists
	Message  string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Fragment != "" {
		return fmt.Sprintf("%s: %s (%q)", w.Code, w.Message, w.Fragment)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
