// Package xlsxdoc reads XLSX/XLSM workbooks as plain text, one blob per
// worksheet. Bead pattern workbooks keep the word chart as rows of text
// cells; this reader flattens each sheet row into a single space-joined
// line so the wordchart parser can consume it like any other extracted
// document text.
package xlsxdoc

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Reader provides access to workbook text content.
type Reader struct {
	zipReader     *zip.ReadCloser
	sharedStrings []string
	sheetTargets  map[string]string // relationship ID -> worksheet path
	sheets        []Sheet
}

// Sheet is one worksheet flattened to text lines.
type Sheet struct {
	Name  string
	Index int
	Lines []string
}

// Text returns the sheet content, rows newline-joined.
func (s *Sheet) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Open opens an XLSX or XLSM workbook for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{
		zipReader:    zr,
		sheetTargets: make(map[string]string),
	}

	if err := r.parseRelationships(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}

	// Shared strings are optional but hold nearly all chart text in practice.
	_ = r.parseSharedStrings()

	if err := r.parseWorkbook(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("parsing workbook: %w", err)
	}

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// SheetCount returns the number of worksheets read.
func (r *Reader) SheetCount() int {
	return len(r.sheets)
}

// Sheet returns the worksheet at the given index.
func (r *Reader) Sheet(index int) (*Sheet, error) {
	if index < 0 || index >= len(r.sheets) {
		return nil, fmt.Errorf("sheet index %d out of range (0-%d)", index, len(r.sheets)-1)
	}
	return &r.sheets[index], nil
}

// Text returns the full workbook text: sheets in workbook order, separated
// by blank lines.
func (r *Reader) Text() string {
	parts := make([]string, 0, len(r.sheets))
	for i := range r.sheets {
		parts = append(parts, r.sheets[i].Text())
	}
	return strings.Join(parts, "\n\n")
}

func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

func (r *Reader) parseRelationships() error {
	data, err := r.getFileContent("xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil // relationships are optional; fall back to default names
	}

	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return err
	}
	for _, rel := range rels.Relationship {
		r.sheetTargets[rel.ID] = rel.Target
	}
	return nil
}

func (r *Reader) parseSharedStrings() error {
	data, err := r.getFileContent("xl/sharedStrings.xml")
	if err != nil {
		return err
	}

	var sst sharedStringsXML
	if err := xml.Unmarshal(data, &sst); err != nil {
		return err
	}

	r.sharedStrings = make([]string, len(sst.SI))
	for i, si := range sst.SI {
		if si.T != "" {
			r.sharedStrings[i] = si.T
			continue
		}
		var text strings.Builder
		for _, run := range si.R {
			text.WriteString(run.T)
		}
		r.sharedStrings[i] = text.String()
	}
	return nil
}

func (r *Reader) parseWorkbook() error {
	data, err := r.getFileContent("xl/workbook.xml")
	if err != nil {
		return err
	}

	var wb workbookXML
	if err := xml.Unmarshal(data, &wb); err != nil {
		return err
	}

	for i, ref := range wb.Sheets.Sheet {
		target := r.sheetTargets[ref.RID]
		if target == "" {
			target = fmt.Sprintf("worksheets/sheet%d.xml", i+1)
		}
		target = strings.TrimPrefix(target, "/")
		if !strings.HasPrefix(target, "xl/") {
			target = "xl/" + target
		}

		data, err := r.getFileContent(target)
		if err != nil {
			continue // skip sheets we can't read
		}

		lines, err := r.flattenWorksheet(data)
		if err != nil {
			continue // skip sheets that fail to parse
		}

		r.sheets = append(r.sheets, Sheet{
			Name:  ref.Name,
			Index: len(r.sheets),
			Lines: lines,
		})
	}

	if len(r.sheets) == 0 {
		return fmt.Errorf("no worksheets found")
	}
	return nil
}

// flattenWorksheet turns one worksheet into text lines: cells in column
// order space-joined, empty cells skipped, empty rows dropped.
func (r *Reader) flattenWorksheet(data []byte) ([]string, error) {
	var ws worksheetXML
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, err
	}

	var lines []string
	for _, row := range ws.SheetData.Rows {
		cells := make([]cellXML, len(row.Cells))
		copy(cells, row.Cells)
		sort.SliceStable(cells, func(i, j int) bool {
			return columnOf(cells[i].R) < columnOf(cells[j].R)
		})

		var values []string
		for _, c := range cells {
			if v := r.cellValue(c); v != "" {
				values = append(values, v)
			}
		}
		if len(values) > 0 {
			lines = append(lines, strings.Join(values, " "))
		}
	}
	return lines, nil
}

// cellValue resolves a cell's display text.
func (r *Reader) cellValue(c cellXML) string {
	switch c.T {
	case "s":
		idx, err := strconv.Atoi(strings.TrimSpace(c.V))
		if err == nil && idx >= 0 && idx < len(r.sharedStrings) {
			return strings.TrimSpace(r.sharedStrings[idx])
		}
		return ""
	case "inlineStr":
		if c.Is != nil {
			return strings.TrimSpace(c.Is.T)
		}
		return ""
	case "b":
		if c.V == "1" {
			return "TRUE"
		}
		return "FALSE"
	case "e":
		return "" // error cells carry no chart text
	default:
		// "str" (formula result) and untyped numeric cells.
		return strings.TrimSpace(c.V)
	}
}

// columnOf converts the letter part of a cell reference ("B3" -> 1) into a
// 0-indexed column. Unparseable references sort first.
func columnOf(ref string) int {
	col := 0
	seen := false
	for i := 0; i < len(ref); i++ {
		ch := ref[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			col = col*26 + int(ch-'A') + 1
			seen = true
		case ch >= 'a' && ch <= 'z':
			col = col*26 + int(ch-'a') + 1
			seen = true
		default:
			if seen {
				return col - 1
			}
			return -1
		}
	}
	if seen {
		return col - 1
	}
	return -1
}
