// =============================================================================
// NFSe DANFSe Renderer - CSV Reference Table Parser
// =============================================================================
//
// This module reads the comma separated reference tables shipped with the
// renderer (states and municipalities). It handles:
//   - Different delimiters (comma, semicolon, pipe, tab)
//   - Header rows that must be skipped
//   - Legacy encodings (ISO-8859-1, Windows-1252) used by IBGE exports
//   - Loose quoting and ragged rows
//
// Rows are returned positionally. Interpreting columns is the caller's job;
// short or malformed rows are kept so the caller can decide to skip them.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// =============================================================================
// SETTINGS AND RESULT
// =============================================================================

// Settings controls how a reference table is read.
type Settings struct {
	// Delimiter is the field separator. Accepts a literal character or one of
	// "tab", "pipe", "semicolon". Default: comma.
	Delimiter string

	// Encoding is the character encoding of the file.
	// Valid values: "UTF-8" (default), "ISO-8859-1", "Windows-1252".
	Encoding string

	// HeaderRows is the number of leading rows that hold column titles.
	// Default: 1. Use a negative value for headerless files.
	HeaderRows int
}

// DefaultSettings returns the settings used for the bundled tables.
func DefaultSettings() Settings {
	return Settings{Delimiter: ",", Encoding: "UTF-8", HeaderRows: 1}
}

// Table is a parsed reference table.
type Table struct {
	// Headers is the last header row, trimmed.
	Headers []string

	// Rows holds the data rows in file order. Blank rows are dropped.
	Rows [][]string

	// SourceFile is the path the table was read from, if any.
	SourceFile string
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV reference table from disk.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: Delimiter, encoding and header settings.
//
// RETURNS:
//   - The parsed table.
//   - An error if the file cannot be opened, decoded or parsed.
func Parse(filePath string, settings Settings) (*Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	table, err := ParseReader(file, settings)
	if err != nil {
		return nil, err
	}
	table.SourceFile = filePath
	return table, nil
}

// ParseReader reads a CSV reference table from r.
func ParseReader(r io.Reader, settings Settings) (*Table, error) {
	decoder, err := decoderFor(settings.Encoding)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(transform.NewReader(r, decoder.NewDecoder()))

	csvReader := csv.NewReader(reader)
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	headerRows := settings.HeaderRows
	if headerRows == 0 {
		headerRows = 1
	}
	if headerRows < 0 {
		headerRows = 0
	}

	table := &Table{Rows: make([][]string, 0, len(allRows))}
	for i, row := range allRows {
		if i < headerRows {
			table.Headers = cleanRow(row)
			continue
		}
		if isRowEmpty(row) {
			continue
		}
		table.Rows = append(table.Rows, cleanRow(row))
	}

	return table, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings Settings) {
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Reference exports are not always rectangular.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}

// decoderFor maps a configured encoding name to a decoder.
func decoderFor(name string) (encoding.Encoding, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "UTF-8", "UTF8":
		return unicode.UTF8BOM, nil
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return charmap.ISO8859_1, nil
	case "WINDOWS-1252", "CP1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

// SupportedEncoding reports whether name is an encoding Parse understands.
func SupportedEncoding(name string) bool {
	_, err := decoderFor(name)
	return err == nil
}

// cleanRow trims whitespace from every cell.
func cleanRow(row []string) []string {
	cleaned := make([]string, len(row))
	for i, cell := range row {
		cleaned[i] = strings.TrimSpace(cell)
	}
	return cleaned
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
