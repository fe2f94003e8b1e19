package municipio

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/direction/nfse-danfe/internal/csvparser"
	"github.com/direction/nfse-danfe/internal/xlsxparser"
)

// Municipality table column positions.
const (
	colCode = iota
	colName
	colLatitude
	colLongitude
	colCapital
	colStateCode
	colFiscalID
	colAreaCode
	colTimezone
	colLogoPath
	colLogoName

	minMunicipioColumns = colStateCode + 1
)

// readRows returns every non-blank row of a reference table, picking the
// parser by file extension. Header rows come back too; their code column is
// not numeric, so the row parsers drop them.
func readRows(path, encoding string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		sheet, err := xlsxparser.Parse(path, 0)
		if err != nil {
			return nil, err
		}
		return sheet.Rows, nil
	}

	settings := csvparser.DefaultSettings()
	settings.Encoding = encoding
	settings.HeaderRows = -1
	table, err := csvparser.Parse(path, settings)
	if err != nil {
		return nil, err
	}
	return table.Rows, nil
}

// loadStates builds the state code -> UF map. The first row for a code wins.
func loadStates(path, encoding string) (map[int]string, error) {
	rows, err := readRows(path, encoding)
	if err != nil {
		return nil, err
	}

	states := make(map[int]string, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		code, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		if _, exists := states[code]; !exists {
			states[code] = row[1]
		}
	}
	return states, nil
}

// loadMunicipios builds the IBGE code -> Municipio map. Malformed rows and
// rows whose state is unknown are skipped and counted.
func loadMunicipios(path, encoding string, states map[int]string) (map[int]Municipio, int, error) {
	rows, err := readRows(path, encoding)
	if err != nil {
		return nil, 0, err
	}

	municipios := make(map[int]Municipio, len(rows))
	skipped := 0
	for _, row := range rows {
		m, ok := parseMunicipio(row, states)
		if !ok {
			skipped++
			continue
		}
		municipios[m.Code] = m
	}
	return municipios, skipped, nil
}

// parseMunicipio converts one table row. Numbers are parsed
// locale-invariantly; optional trailing columns default to zero values.
func parseMunicipio(row []string, states map[int]string) (Municipio, bool) {
	if len(row) < minMunicipioColumns {
		return Municipio{}, false
	}

	code, err := strconv.Atoi(row[colCode])
	if err != nil {
		return Municipio{}, false
	}
	stateCode, err := strconv.Atoi(row[colStateCode])
	if err != nil {
		return Municipio{}, false
	}
	uf, ok := states[stateCode]
	if !ok {
		return Municipio{}, false
	}

	m := Municipio{
		Code:              code,
		Name:              row[colName],
		Latitude:          parseFloat(row[colLatitude]),
		Longitude:         parseFloat(row[colLongitude]),
		IsCapital:         parseCapital(row[colCapital]),
		StateCode:         stateCode,
		StateAbbreviation: uf,
		FiscalID:          parseInt(column(row, colFiscalID)),
		AreaCode:          column(row, colAreaCode),
		Timezone:          column(row, colTimezone),
		LogoPath:          column(row, colLogoPath),
		LogoName:          column(row, colLogoName),
	}
	return m, true
}

func column(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseCapital(s string) bool {
	s = strings.TrimSpace(s)
	return s == "1" || strings.EqualFold(s, "true") || strings.EqualFold(s, "sim")
}
