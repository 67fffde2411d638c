// Package importer reads cut lists from CSV, TXT and Excel files. It
// detects the delimiter automatically, maps columns by case-insensitive
// header aliases, and falls back to the positional "width, height, qty"
// layout when no header is present. Width is always the first dimension
// column and height the second; the two are never inferred from value
// magnitude.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"glasscut/internal/model"
)

// Result holds the parsed cut list plus per-row errors and warnings.
// Rows that fail to parse are reported and skipped; they never reach the
// engine.
type Result struct {
	Items    []model.CutItem
	Errors   []string
	Warnings []string
}

// columnMapping maps semantic column roles to their indices in the data.
// -1 means the column is absent.
type columnMapping struct {
	Label    int
	Width    int
	Height   int
	Quantity int
}

// headerAliases maps canonical column names to accepted aliases, all
// lowercase.
var headerAliases = map[string][]string{
	"label":    {"label", "name", "piece", "part", "description", "desc", "item"},
	"width":    {"width", "w", "x"},
	"height":   {"height", "h", "y"},
	"quantity": {"quantity", "qty", "count", "num", "pcs", "pieces"},
}

// DetectCSVDelimiter determines the most likely delimiter by trying
// comma, semicolon, tab and pipe; the one producing the most consistent
// multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
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

// detectColumns examines a header row and returns the column mapping and
// whether a header was recognized. Without a header the positional layout
// is width, height, quantity, label.
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
		return columnMapping{Width: 0, Height: 1, Quantity: 2, Label: 3}, false
	}
	return mapping, true
}

// getCell safely retrieves a trimmed cell value by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a CutItem from one data row. Quantity is optional and
// defaults to 1, matching hand-written "width, height" lists.
func parseRow(row []string, mapping columnMapping, rowLabel string, itemCount int) (model.CutItem, string) {
	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.CutItem{}, fmt.Sprintf("%s: missing width value", rowLabel)
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return model.CutItem{}, fmt.Sprintf("%s: invalid width %q", rowLabel, widthStr)
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return model.CutItem{}, fmt.Sprintf("%s: missing height value", rowLabel)
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil {
		return model.CutItem{}, fmt.Sprintf("%s: invalid height %q", rowLabel, heightStr)
	}

	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		qty, err = strconv.Atoi(qtyStr)
		if err != nil {
			return model.CutItem{}, fmt.Sprintf("%s: invalid quantity %q", rowLabel, qtyStr)
		}
	}

	if width <= 0 || height <= 0 || qty <= 0 {
		return model.CutItem{}, fmt.Sprintf("%s: width, height and quantity must be positive", rowLabel)
	}

	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Piece %d", itemCount+1)
	}

	return model.CutItem{Label: label, Width: width, Height: height, Quantity: qty}, ""
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV reads a cut list from a CSV or TXT file, detecting the
// delimiter and the optional header row.
func ImportCSV(path string) Result {
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

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		name := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("detected %s delimiter", name))
	}

	return importReader(bytes.NewReader(data), delimiter, result.Warnings)
}

// ImportCSVFromReader reads a cut list from a reader with a known
// delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) Result {
	return importReader(reader, delimiter, nil)
}

func importReader(reader io.Reader, delimiter rune, warnings []string) Result {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return Result{Warnings: warnings, Errors: []string{fmt.Sprintf("cannot read CSV: %v", err)}}
	}
	if len(records) == 0 {
		return Result{Warnings: warnings, Errors: []string{"file is empty"}}
	}
	return importRows(records, "line", warnings)
}

// ImportExcel reads a cut list from the first worksheet of an xlsx file.
func ImportExcel(path string) Result {
	result := Result{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no worksheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read Excel data: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "worksheet is empty")
		return result
	}
	return importRows(rows, "row", nil)
}

// Import picks the reader by file extension: .xlsx goes through excelize,
// everything else is treated as delimited text.
func Import(path string) Result {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// importRows is the shared parsing pass for CSV and Excel data.
func importRows(rows [][]string, rowPrefix string, initialWarnings []string) Result {
	result := Result{Warnings: initialWarnings}

	mapping, hasHeader := detectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "detected header row, skipping")

		var missing []string
		if mapping.Width == -1 {
			missing = append(missing, "width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 2 {
		// No recognized header: if the first row's width column is not
		// numeric, treat it as an unknown header and skip it.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][0]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		item, errMsg := parseRow(row, mapping, rowLabel, len(result.Items))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Items = append(result.Items, item)
	}
	return result
}
