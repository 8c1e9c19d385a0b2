// Package orderimport reads photo orders from CSV or Excel files, so a
// print shop can hand photopack a spreadsheet instead of hand-writing a
// project JSON file. Delimiter sniffing, header-alias column detection,
// and CSV/Excel dispatch follow the same shape as this codebase's other
// spreadsheet-facing code; a vector-outline import path and a
// grain-direction column were left out since neither has a photo-order
// analog.
package orderimport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/photopack/internal/quantity"
	"github.com/piwi3910/photopack/pkg/pack"
)

// Result holds the outcome of an import operation: the orders that parsed
// cleanly, plus any per-row errors or warnings worth surfacing to the
// user without failing the whole import.
type Result struct {
	Orders   []quantity.Order
	Errors   []string
	Warnings []string
}

// columnMapping maps semantic column roles to their indices in a row.
type columnMapping struct {
	Label    int
	Width    int
	Height   int
	Quantity int
}

var headerAliases = map[string][]string{
	"label":    {"label", "name", "size", "photo", "description", "desc"},
	"width":    {"width", "w"},
	"height":   {"height", "h"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "prints"},
}

// detectCSVDelimiter reads data and determines the most likely CSV
// delimiter among comma, semicolon, tab, and pipe, by scoring each
// candidate on how consistently it splits the file into columns.
func detectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	best := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			best = delim
		}
	}

	return best
}

// detectColumns examines a header row and returns a columnMapping via
// case-insensitive alias matching, or a default positional mapping
// (label, width, height, quantity) if no header is recognized.
func detectColumns(row []string) (columnMapping, bool) {
	mapping := columnMapping{Label: -1, Width: -1, Height: -1, Quantity: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "label":
					if mapping.Label == -1 {
						mapping.Label = i
					}
				case "width":
					if mapping.Width == -1 {
						mapping.Width = i
					}
				case "height":
					if mapping.Height == -1 {
						mapping.Height = i
					}
				case "quantity":
					if mapping.Quantity == -1 {
						mapping.Quantity = i
					}
				}
			}
		}
	}

	if !isHeader {
		return columnMapping{Label: 0, Width: 1, Height: 2, Quantity: 3}, false
	}
	return mapping, true
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow extracts a quantity.Order from a row using mapping. It returns
// the order and an empty message if the row parsed cleanly, or a zero
// order and an error message on invalid/missing required fields.
func parseRow(row []string, mapping columnMapping, rowLabel string, orderCount int) (quantity.Order, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Photo %d", orderCount+1)
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return quantity.Order{}, fmt.Sprintf("%s: missing width value", rowLabel)
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return quantity.Order{}, fmt.Sprintf("%s: invalid width %q", rowLabel, widthStr)
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return quantity.Order{}, fmt.Sprintf("%s: missing height value", rowLabel)
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil {
		return quantity.Order{}, fmt.Sprintf("%s: invalid height %q", rowLabel, heightStr)
	}

	qtyStr := getCell(row, mapping.Quantity)
	if qtyStr == "" {
		return quantity.Order{}, fmt.Sprintf("%s: missing quantity value", rowLabel)
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return quantity.Order{}, fmt.Sprintf("%s: invalid quantity %q", rowLabel, qtyStr)
	}

	if width <= 0 || height <= 0 || qty <= 0 {
		return quantity.Order{}, fmt.Sprintf("%s: width, height, and quantity must be positive", rowLabel)
	}

	return quantity.Order{
		Size:     pack.PhotoSize{Name: label, Width: width, Height: height},
		Quantity: qty,
	}, ""
}

// CSV imports orders from a CSV file, auto-detecting the delimiter and
// the column layout.
func CSV(path string) Result {
	result := Result{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	delimiter := detectCSVDelimiter(data)
	if delimiter != ',' {
		names := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}
		result.Warnings = append(result.Warnings, fmt.Sprintf("detected %s delimiter", names[delimiter]))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// Excel imports orders from the first sheet of an Excel (.xlsx) file.
func Excel(path string) Result {
	result := Result{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) Result {
	result := Result{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "no data rows found")
		return result
	}

	mapping, hasHeader := detectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "detected header row, skipping")

		var missing []string
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Quantity == -1 {
			missing = append(missing, "Quantity")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		order, errMsg := parseRow(row, mapping, rowLabel, len(result.Orders))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Orders = append(result.Orders, order)
	}

	return result
}
