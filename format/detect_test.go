package format

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestDetectByExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"pattern.xlsx", XLSX},
		{"pattern.XLSM", XLSX},
		{"export.html", HTML},
		{"export.htm", HTML},
		{"scan.pdf", PDF},
		{"extracted.txt", Text},
		{"notes.text", Text},
		{"mystery.bin", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

// zipWith builds an in-memory ZIP containing the named (empty) entries.
func zipWith(t *testing.T, names ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		if _, err := zw.Create(name); err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func TestDetectFromReader(t *testing.T) {
	workbook := zipWith(t, "[Content_Types].xml", "xl/workbook.xml", "xl/worksheets/sheet1.xml")
	otherZip := zipWith(t, "word/document.xml")

	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.7\n..."), PDF},
		{"workbook zip", workbook, XLSX},
		{"non-workbook zip", otherZip, Unknown},
		{"html doctype", []byte("  <!DOCTYPE html><html></html>"), HTML},
		{"html tag", []byte("<html><body>hi</body></html>"), HTML},
		{"plain text", []byte("Word Chart\n1 L 3(A)\n"), Text},
		{"binary", []byte{0x00, 0x01, 0x02, 0xFF}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.data)
			got, err := DetectFromReader(r, int64(len(tt.data)))
			if err != nil {
				t.Fatalf("DetectFromReader: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	if XLSX.String() != "XLSX" || Unknown.String() != "Unknown" {
		t.Errorf("unexpected Format strings: %v %v", XLSX, Unknown)
	}
}
