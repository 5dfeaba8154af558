package beadchart

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mstrand/beadchart/wordchart"
)

const sampleText = `Pretty Roses
Word Chart
1 L 3(A) 2(B)
2 R 2(B) 3(A)
Grid
1 L ignored after grid`

func TestFromTextRows(t *testing.T) {
	rows, warnings, err := FromText(sampleText).Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}

	want := []string{
		"Row 1 (L) (3)A, (2)B",
		"Row 2 (R) (2)B, (3)A",
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", FormatWarnings(warnings))
	}
}

func TestFromTextPattern(t *testing.T) {
	pattern, _, err := FromText(sampleText).Pattern()
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}

	want := "Row 1 (L) (3)A, (2)B\nRow 2 (R) (2)B, (3)A"
	if pattern != want {
		t.Errorf("pattern = %q, want %q", pattern, want)
	}
}

func TestFromTextCombinedRows(t *testing.T) {
	combined, _, err := FromText(sampleText).CombinedRows()
	if err != nil {
		t.Fatalf("CombinedRows: %v", err)
	}

	want := []string{"Row 1&2 (L) (3)A, (2)B, (3)A, (2)B"}
	if !reflect.DeepEqual(combined, want) {
		t.Errorf("combined = %v, want %v", combined, want)
	}
}

func TestFromTextNoChart(t *testing.T) {
	rows, _, err := FromText("nothing to see here").Rows()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %v, want none", rows)
	}
}

func TestOpenPlainTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.txt")
	if err := os.WriteFile(path, []byte(sampleText), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, _, err := Open(path).Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("rows = %v", rows)
	}
}

func TestOpenHTMLFile(t *testing.T) {
	doc := `<html><body>
<p>Word Chart</p>
<table>
<tr><td>1</td><td>L</td><td>3(A) 2(B)</td></tr>
</table>
</body></html>`

	path := filepath.Join(t.TempDir(), "chart.html")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, _, err := Open(path).Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}

	want := []string{"Row 1 (L) (3)A, (2)B"}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestOpenPDFRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\nbinary..."), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Open(path).Rows()
	if err == nil || !strings.Contains(err.Error(), "FromText") {
		t.Errorf("expected guidance error for PDF input, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "nope.txt")).Rows()
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOpenNoInput(t *testing.T) {
	_, _, err := (&Extractor{options: defaultOptions()}).Rows()
	if err == nil {
		t.Error("expected error when no input is configured")
	}
}

func TestSheetsChainIsImmutable(t *testing.T) {
	base := Open("pattern.xlsx")
	withSheets := base.Sheets(1, 2)

	if len(base.options.sheets) != 0 {
		t.Error("Sheets mutated the original extractor")
	}
	if len(withSheets.options.sheets) != 2 {
		t.Errorf("sheets = %v", withSheets.options.sheets)
	}
}

func TestResolveSheets(t *testing.T) {
	e := Open("x.xlsx").Sheets(3, 1, 3)
	indices, err := e.resolveSheets(3)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(indices, []int{0, 2}) {
		t.Errorf("indices = %v", indices)
	}

	if _, err := e.resolveSheets(2); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestFormatWarnings(t *testing.T) {
	if FormatWarnings(nil) != "" {
		t.Error("expected empty string for no warnings")
	}

	out := FormatWarnings([]Warning{
		{Code: wordchart.WarnBadToken, Fragment: "x!", Message: "dropped"},
		{Code: wordchart.WarnZeroCount, Fragment: "0(G)", Message: "zero"},
	})
	if !strings.Contains(out, "bad-token") || !strings.Contains(out, "zero-count") {
		t.Errorf("FormatWarnings = %q", out)
	}
	if len(strings.Split(out, "\n")) != 2 {
		t.Errorf("expected one warning per line: %q", out)
	}
}

func TestMustRows(t *testing.T) {
	rows := MustRows(FromText(sampleText).Rows())
	if len(rows) != 2 {
		t.Errorf("rows = %v", rows)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic from MustRows on error")
		}
	}()
	MustRows(Open(filepath.Join(t.TempDir(), "missing.txt")).Rows())
}
