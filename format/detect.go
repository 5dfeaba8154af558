// Package format provides input file-format detection for the beadchart library.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format represents a supported (or recognized) input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// XLSX indicates a spreadsheet workbook (.xlsx or macro-enabled .xlsm),
	// the container bead pattern workbooks are usually distributed in.
	XLSX
	// HTML indicates an HTML document.
	HTML
	// PDF indicates a PDF document. PDFs are recognized so callers get a
	// useful error; text must be extracted upstream and supplied directly.
	PDF
	// Text indicates plain extracted text.
	Text
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case XLSX:
		return "XLSX"
	case HTML:
		return "HTML"
	case PDF:
		return "PDF"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Detect determines file format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return XLSX
	case ".html", ".htm":
		return HTML
	case ".pdf":
		return PDF
	case ".txt", ".text":
		return Text
	default:
		return Unknown
	}
}

// DetectFromReader inspects content to determine the format. This is more
// reliable than extension-based detection: it distinguishes spreadsheet
// ZIP containers from other ZIP files and falls back to Text when the
// content is plausible UTF-8.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if len(magic) >= 4 && magic[0] == '%' && magic[1] == 'P' && magic[2] == 'D' && magic[3] == 'F' {
		return PDF, nil
	}

	// ZIP magic: PK\x03\x04. Look inside to confirm a spreadsheet part.
	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(r, size)
	}

	if detectHTMLMagic(magic) {
		return HTML, nil
	}

	if looksLikeText(magic) {
		return Text, nil
	}

	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive for the workbook layout.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if f.Name == "xl/workbook.xml" || strings.HasPrefix(f.Name, "xl/worksheets/") {
			return XLSX, nil
		}
	}

	return Unknown, nil
}

// detectHTMLMagic checks whether the data starts like an HTML document.
func detectHTMLMagic(data []byte) bool {
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}

	upper := strings.ToUpper(string(data[start:]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}
	return false
}

// looksLikeText reports whether the sample is plausible extracted text:
// valid UTF-8 with no NUL bytes. A truncated trailing rune at the end of
// the sample window is tolerated.
func looksLikeText(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			// Could be a rune cut off by the sample window.
			return len(data) < utf8.UTFMax && !utf8.FullRune(data)
		}
		if r == 0 {
			return false
		}
		data = data[size:]
	}
	return true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
