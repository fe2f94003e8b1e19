// =============================================================================
// NFSe DANFSe Renderer - XLSX Reference Table Parser
// =============================================================================
//
// This module reads reference tables (states, municipalities) maintained as
// spreadsheets. Only the first sheet is read; its rows are returned
// positionally, the same shape the CSV parser produces, so the registry can
// load either format.
//
// EXPECTED LAYOUT (municipalities):
//
//   | A           | B    | C        | D         | E       | F         | ... |
//   |-------------|------|----------|-----------|---------|-----------|-----|
//   | codigo_ibge | nome | latitude | longitude | capital | codigo_uf | ... |
//   | 3550308     | São Paulo | -23.5329 | -46.6395 | 1  | 35        | ... |
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is a parsed spreadsheet table.
type Sheet struct {
	// Name is the sheet the rows were read from.
	Name string

	// Headers is the last header row, trimmed.
	Headers []string

	// Rows holds the data rows in sheet order. Blank rows are dropped.
	Rows [][]string

	// SourceFile is the path to the workbook.
	SourceFile string
}

// Parse reads the first sheet of an XLSX workbook.
//
// PARAMETERS:
//   - path: The path to the workbook.
//   - headerRows: Number of leading rows holding titles (0 for none).
//
// RETURNS:
//   - The parsed sheet.
//   - An error if the workbook cannot be opened or has no sheets.
func Parse(path string, headerRows int) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return parseFile(f, path, headerRows)
}

func parseFile(f *excelize.File, path string, headerRows int) (*Sheet, error) {
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	sheet := &Sheet{
		Name:       sheetName,
		Rows:       make([][]string, 0, len(rows)),
		SourceFile: path,
	}
	for i, row := range rows {
		if i < headerRows {
			sheet.Headers = cleanRow(row)
			continue
		}
		if len(row) == 0 || isRowEmpty(row) {
			continue
		}
		sheet.Rows = append(sheet.Rows, cleanRow(row))
	}

	return sheet, nil
}

func cleanRow(row []string) []string {
	cleaned := make([]string, len(row))
	for i, cell := range row {
		cleaned[i] = strings.TrimSpace(cell)
	}
	return cleaned
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
