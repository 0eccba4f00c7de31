package manifest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Accepts 1.3x0.88x0.8, 130*88*80, 117 × 70 × 110 and similar notations.
var sizePattern = regexp.MustCompile(`(\d+(\.\d+)?)\s*[×x*]\s*(\d+(\.\d+)?)\s*[×x*]\s*(\d+(\.\d+)?)`)

// parseSize extracts a length/width/height triple from a free-form size cell.
func parseSize(text string) (length, width, height float64, ok bool) {
	match := sizePattern.FindStringSubmatch(strings.ToLower(text))
	if len(match) < 6 {
		return 0, 0, 0, false
	}
	length, _ = strconv.ParseFloat(match[1], 64)
	width, _ = strconv.ParseFloat(match[3], 64)
	height, _ = strconv.ParseFloat(match[5], 64)
	if length <= 0 || width <= 0 || height <= 0 {
		return 0, 0, 0, false
	}
	return length, width, height, true
}

// ReadExcel loads cargo lines from the first sheet of an XLSX workbook. The
// sheet must carry a header row; columns are located by header name: "name"
// (or "cargo"), "size" (or "dimensions", free-form LxWxH) and optionally
// "quantity" (or "qty", defaulting to 1). Rows without a parsable size are
// skipped.
func ReadExcel(path string) ([]Cargo, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	nameCol, sizeCol, qtyCol := -1, -1, -1
	for i, val := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "name", "cargo":
			nameCol = i
		case "size", "dimensions":
			sizeCol = i
		case "quantity", "qty":
			qtyCol = i
		}
	}
	if nameCol == -1 || sizeCol == -1 {
		return nil, fmt.Errorf("sheet %q is missing a name or size column", sheet)
	}

	var result []Cargo
	for _, row := range rows[1:] {
		if len(row) <= nameCol || len(row) <= sizeCol {
			continue
		}
		length, width, height, ok := parseSize(row[sizeCol])
		if !ok {
			continue
		}

		quantity := 1
		if qtyCol != -1 && len(row) > qtyCol {
			if v, err := strconv.Atoi(strings.TrimSpace(row[qtyCol])); err == nil && v > 0 {
				quantity = v
			}
		}

		result = append(result, Cargo{
			Name:     strings.TrimSpace(row[nameCol]),
			Length:   length,
			Width:    width,
			Height:   height,
			Quantity: quantity,
		})
	}
	return result, nil
}
