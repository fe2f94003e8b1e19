package xlsxparser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "tabela.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParse_FirstSheet(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"codigo_uf", "uf"},
		{"35", " SP "},
		{"", ""},
		{"33", "RJ"},
	})

	sheet, err := Parse(path, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"codigo_uf", "uf"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, []string{"35", "SP"}, sheet.Rows[0])
	assert.Equal(t, []string{"33", "RJ"}, sheet.Rows[1])
	assert.Equal(t, path, sheet.SourceFile)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.xlsx"), 1)
	assert.Error(t, err)
}
