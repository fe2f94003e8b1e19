package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCNPJ(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"digits only", "12345678000195", "12.345.678/0001-95"},
		{"already formatted", "12.345.678/0001-95", "12.345.678/0001-95"},
		{"wrong length passes through", "1234567800019", "1234567800019"},
		{"blank", "   ", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CNPJ(tt.in))
		})
	}
}

func TestCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-09", CPF("12345678909"))
	assert.Equal(t, "1234", CPF("1234"))
	assert.Equal(t, "", CPF(""))
}

func TestCEP(t *testing.T) {
	assert.Equal(t, "01310-100", CEP("01310100"))
	assert.Equal(t, "0131", CEP("0131"))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "(11) 3333-4444", Phone("1133334444"))
	assert.Equal(t, "(11) 99999-8888", Phone("11999998888"))
	assert.Equal(t, "+55 11", Phone("+55 11"))
	assert.Equal(t, "", Phone(" "))
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"1234.5", "R$ 1.234,50"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"999.995", "R$ 1.000,00"},
		{"0.005", "R$ 0,01"},
		{"-15.2", "-R$ 15,20"},
		{"100", "R$ 100,00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "5,00%", Percent(decimal.NewFromInt(5)))
	assert.Equal(t, "2,79%", Percent(decimal.RequireFromString("2.789")))
}

func TestTaxCode(t *testing.T) {
	assert.Equal(t, "01.02.03", TaxCode("010203"))
	assert.Equal(t, "12345", TaxCode("12345"))
	assert.Equal(t, "", TaxCode(""))
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2025-03-10T14:05:09-03:00")
	require.True(t, ok)
	assert.Equal(t, "10/03/2025 14:05:09", DateTime(got))

	got, ok = ParseDate("2025-03-01")
	require.True(t, ok)
	assert.Equal(t, "01/03/2025", Date(got))

	_, ok = ParseDate("not a date")
	assert.False(t, ok)

	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestDateTime_KeepsWallClock(t *testing.T) {
	got, ok := ParseDate("2025-12-31T23:59:59+05:00")
	require.True(t, ok)
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, "31/12/2025 23:59:59", DateTime(got))
}

func TestLimit(t *testing.T) {
	assert.Equal(t, "", Limit("", 10))
	assert.Equal(t, "curto", Limit("curto", 10))

	r := Limit("um texto bem grande para ser cortado", 10)
	assert.Equal(t, "um...", r)
	assert.LessOrEqual(t, len([]rune(r)), 10)
}

func TestDescriptionHTML(t *testing.T) {
	assert.Equal(t, "-", DescriptionHTML("  "))
	assert.Equal(t, "linha 1<br/>linha &lt;2&gt;<br/>fim", DescriptionHTML("linha 1\r\nlinha <2>\nfim"))
}

func TestAddress(t *testing.T) {
	assert.Equal(t, "Av. Paulista, 1000, Sala 5 - Bela Vista", Address("Av. Paulista", "1000", "Sala 5", "Bela Vista"))
	assert.Equal(t, "Rua A - Centro", Address("Rua A", "", " ", "Centro"))
	assert.Equal(t, "", Address("", "", "", ""))
}

func TestJoinNonBlank(t *testing.T) {
	assert.Equal(t, "São Paulo - SP", JoinNonBlank(" - ", "São Paulo", "SP"))
	assert.Equal(t, "SP", JoinNonBlank(" - ", " ", "SP"))
}
