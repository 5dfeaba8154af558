package wordchart

import "testing"

func TestResolveContinuationAbsorbsFragments(t *testing.T) {
	lines := []string{
		"1 L 3(A) 2(B)",
		"4(C) 1(D)",
		"2(E)",
		"2 R 1(A)",
	}

	seq, last, err := resolveContinuation(lines, 0, "3(A) 2(B)")
	if err != nil {
		t.Fatal(err)
	}
	if seq != "3(A) 2(B) 4(C) 1(D) 2(E)" {
		t.Errorf("sequence = %q", seq)
	}
	if last != 2 {
		t.Errorf("last consumed index = %d, want 2", last)
	}
}

func TestResolveContinuationNeverConsumesARow(t *testing.T) {
	// The line after the match starts a new row and must be left alone,
	// even though it contains bead tokens.
	lines := []string{
		"1 L 3(A)",
		"2 R 2(B)",
	}

	seq, last, err := resolveContinuation(lines, 0, "3(A)")
	if err != nil {
		t.Fatal(err)
	}
	if seq != "3(A)" || last != 0 {
		t.Errorf("got seq=%q last=%d, want untouched match", seq, last)
	}
}

func TestResolveContinuationStopsAtBoundaries(t *testing.T) {
	boundaries := []string{
		"Grid",
		"Word Chart",
		"Row Direction Word Chart",
		"5 & 6 L 1(A)",
		"plain prose without beads",
	}

	for _, boundary := range boundaries {
		lines := []string{"1 L 3(A)", "2(B)", boundary, "3(C)"}
		seq, last, err := resolveContinuation(lines, 0, "3(A)")
		if err != nil {
			t.Fatal(err)
		}
		if seq != "3(A) 2(B)" || last != 1 {
			t.Errorf("boundary %q: seq=%q last=%d", boundary, seq, last)
		}
	}
}

func TestResolveContinuationAtEndOfInput(t *testing.T) {
	lines := []string{"1 L 3(A)"}
	seq, last, err := resolveContinuation(lines, 0, "3(A)")
	if err != nil {
		t.Fatal(err)
	}
	if seq != "3(A)" || last != 0 {
		t.Errorf("seq=%q last=%d", seq, last)
	}
}
