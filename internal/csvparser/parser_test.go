package csvparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestParseReader_SkipsHeaderAndBlankRows(t *testing.T) {
	in := "codigo_uf,uf,nome\n35, SP ,São Paulo\n\n,,\n33,RJ,Rio de Janeiro\n"

	table, err := ParseReader(strings.NewReader(in), DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, []string{"codigo_uf", "uf", "nome"}, table.Headers)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, []string{"35", "SP", "São Paulo"}, table.Rows[0])
	assert.Equal(t, []string{"33", "RJ", "Rio de Janeiro"}, table.Rows[1])
}

func TestParseReader_RaggedRowsAndDelimiter(t *testing.T) {
	in := "a;b\n1;2;3\n4\n"

	table, err := ParseReader(strings.NewReader(in), Settings{Delimiter: "semicolon"})
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"1", "2", "3"}, table.Rows[0])
	assert.Equal(t, []string{"4"}, table.Rows[1])
}

func TestParseReader_Headerless(t *testing.T) {
	table, err := ParseReader(strings.NewReader("1,x\n2,y\n"), Settings{HeaderRows: -1})
	require.NoError(t, err)
	assert.Nil(t, table.Headers)
	assert.Len(t, table.Rows, 2)
}

func TestParseReader_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("codigo,nome\n3550308,São Paulo\n")
	require.NoError(t, err)

	table, err := ParseReader(strings.NewReader(encoded), Settings{Encoding: "ISO-8859-1"})
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", table.Rows[0][1])
}

func TestParseReader_UnsupportedEncoding(t *testing.T) {
	_, err := ParseReader(strings.NewReader("a"), Settings{Encoding: "EBCDIC"})
	assert.Error(t, err)
	assert.False(t, SupportedEncoding("EBCDIC"))
	assert.True(t, SupportedEncoding("windows-1252"))
}

func TestParse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estados.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeffcodigo_uf,uf\n35,SP\n"), 0o644))

	table, err := Parse(path, DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, path, table.SourceFile)
	assert.Equal(t, "codigo_uf", table.Headers[0])
	assert.Equal(t, []string{"35", "SP"}, table.Rows[0])

	_, err = Parse(filepath.Join(t.TempDir(), "missing.csv"), DefaultSettings())
	assert.Error(t, err)
}
