package wordchart

import (
	"strings"
	"testing"
)

func TestConvertToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"3(G)", "(3)G", true},
		{"(3)A", "(3)A", true},
		{"B", "(1)B", true},
		{"12(AB)", "(12)AB", true},
		{"(10)WH", "(10)WH", true},
		{"garbage!", "", false},
		{"3(g)", "", false},
		{"()A", "", false},
		{"3()", "", false},
		{"", "", false},
		{"3(A)extra", "", false},
	}

	for _, tt := range tests {
		got, ok := ConvertToken(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ConvertToken(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConvertSequence(t *testing.T) {
	got, warnings := ConvertSequence("3(A)  2(B) C")
	if got != "(3)A, (2)B, (1)C" {
		t.Errorf("ConvertSequence = %q", got)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestConvertSequenceDropsBadTokens(t *testing.T) {
	got, warnings := ConvertSequence("3(A) nope! 2(B)")
	if got != "(3)A, (2)B" {
		t.Errorf("ConvertSequence = %q", got)
	}
	if len(warnings) != 1 || warnings[0].Code != WarnBadToken || warnings[0].Fragment != "nope!" {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestConvertSequenceZeroCount(t *testing.T) {
	// Zero counts pass the regex in the reference behavior; they are kept
	// but flagged for review.
	got, warnings := ConvertSequence("0(G) 2(B)")
	if got != "(0)G, (2)B" {
		t.Errorf("ConvertSequence = %q", got)
	}
	if len(warnings) != 1 || warnings[0].Code != WarnZeroCount {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestConvertSequenceIdempotentOnCanonical(t *testing.T) {
	canonical := "(3)A, (2)B, (1)C"
	// Feed the canonical form back through (the separator commas are not
	// whitespace, so normalize them the way a downstream caller would).
	raw := strings.ReplaceAll(canonical, ",", "")
	again, warnings := ConvertSequence(raw)
	if again != canonical {
		t.Errorf("conversion is not a fixed point: %q -> %q", canonical, again)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestConvertSequenceEmpty(t *testing.T) {
	got, warnings := ConvertSequence("   ")
	if got != "" || warnings != nil {
		t.Errorf("ConvertSequence(blank) = %q, %v", got, warnings)
	}
}
