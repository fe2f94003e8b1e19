// =============================================================================
// NFSe DANFSe Renderer - Formatting Module
// =============================================================================
//
// This module formats raw document values the way Brazilian fiscal documents
// print them:
//   - Tax identifiers (CNPJ, CPF), postal codes (CEP) and phone numbers
//   - Monetary values (R$ 1.234,56) and percentages (1.234,56%)
//   - Dates (dd/MM/yyyy) and timestamps (dd/MM/yyyy HH:mm:ss)
//   - Service classification codes (010203 -> 01.02.03)
//   - Addresses and free text (HTML escaping, line breaks, length limits)
//
// CONVENTIONS:
//   Formatters return "" for blank input so the fallback engine can decide
//   whether to warn. Identifiers with an unexpected digit count are returned
//   unchanged.
//
// =============================================================================

package format

import (
	"html"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

// OnlyDigits strips every non-digit character.
func OnlyDigits(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// CNPJ formats a 14-digit company identifier as 12.345.678/0001-95.
//
// EXAMPLE:
//
//	Input:  "12345678000195"
//	Output: "12.345.678/0001-95"
//
// Values with a different digit count pass through unformatted.
func CNPJ(cnpj string) string {
	if isBlank(cnpj) {
		return ""
	}
	d := OnlyDigits(cnpj)
	if len(d) != 14 {
		return cnpj
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// CPF formats an 11-digit personal identifier as 123.456.789-09.
func CPF(cpf string) string {
	if isBlank(cpf) {
		return ""
	}
	d := OnlyDigits(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// CEP formats an 8-digit postal code as 01310-100.
func CEP(cep string) string {
	if isBlank(cep) {
		return ""
	}
	d := OnlyDigits(cep)
	if len(d) != 8 {
		return cep
	}
	return d[0:5] + "-" + d[5:8]
}

// Phone formats landline (10 digits) and mobile (11 digits) numbers.
//
// EXAMPLES:
//
//	"1133334444"  -> "(11) 3333-4444"
//	"11999998888" -> "(11) 99999-8888"
func Phone(phone string) string {
	if isBlank(phone) {
		return ""
	}
	d := OnlyDigits(phone)
	switch len(d) {
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	default:
		return phone
	}
}

// =============================================================================
// NUMBERS
// =============================================================================

// Number formats d with the given number of decimal places using the pt-BR
// separators: "." for thousands and "," for decimals. Midpoints round away
// from zero.
func Number(d decimal.Decimal, places int32) string {
	rounded := d.Round(places)
	s := rounded.Abs().StringFixed(places)

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}

	out := groupThousands(intPart)
	if frac != "" {
		out += "," + frac
	}
	if rounded.Sign() < 0 {
		out = "-" + out
	}
	return out
}

// Currency formats d as Brazilian reais: R$ 1.234,56.
func Currency(d decimal.Decimal) string {
	if d.Round(2).Sign() < 0 {
		return "-R$ " + Number(d.Neg(), 2)
	}
	return "R$ " + Number(d, 2)
}

// Percent formats d with two decimals followed by "%".
func Percent(d decimal.Decimal) string {
	return Number(d, 2) + "%"
}

// Invariant formats d with "." as decimal separator and no grouping.
func Invariant(d decimal.Decimal) string {
	return d.String()
}

// groupThousands inserts "." every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	head := len(digits) % 3
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// =============================================================================
// TAX CLASSIFICATION CODES
// =============================================================================

// taxCodePattern matches each run of six digits in a national tax code.
var taxCodePattern = regexp.MustCompile(`(\d{2})(\d{2})(\d{2})`)

// TaxCode groups the digits of a national service classification code in
// pairs separated by dots: "010203" becomes "01.02.03".
func TaxCode(code string) string {
	return taxCodePattern.ReplaceAllString(code, "${1}.${2}.${3}")
}

// =============================================================================
// DATES
// =============================================================================

// dateLayouts are tried in order when parsing document dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a document date or timestamp. The wall-clock time written
// in the document is preserved; offsets are not converted to local time.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date formats t as dd/MM/yyyy.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateTime formats t as dd/MM/yyyy HH:mm:ss.
func DateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

// =============================================================================
// TEXT
// =============================================================================

// HTMLEscape escapes s for safe embedding in markup.
func HTMLEscape(s string) string {
	return html.EscapeString(s)
}

// DescriptionHTML escapes a free-text service description and turns its line
// breaks into <br/>. A blank description becomes "-".
func DescriptionHTML(desc string) string {
	if isBlank(desc) {
		return "-"
	}
	encoded := HTMLEscape(desc)
	encoded = strings.ReplaceAll(encoded, "\r\n", "<br/>")
	return strings.ReplaceAll(encoded, "\n", "<br/>")
}

// Limit truncates s to at most maxChars characters, cutting at the last word
// boundary and appending "...".
//
// EXAMPLE:
//
//	Limit("um texto bem grande para ser cortado", 10) -> "um..."
func Limit(s string, maxChars int) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	if maxChars <= 3 {
		return string(runes[:maxChars])
	}

	cut := string(runes[:maxChars-3])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// Address joins the parts of a street address:
// "Street, Number, Complement - District".
func Address(street, number, complement, district string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(street))
	if !isBlank(number) {
		sb.WriteString(", ")
		sb.WriteString(strings.TrimSpace(number))
	}
	if !isBlank(complement) {
		sb.WriteString(", ")
		sb.WriteString(strings.TrimSpace(complement))
	}
	if !isBlank(district) {
		sb.WriteString(" - ")
		sb.WriteString(strings.TrimSpace(district))
	}
	return strings.TrimSpace(sb.String())
}

// JoinNonBlank joins the non-blank values with sep.
func JoinNonBlank(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if !isBlank(v) {
			parts = append(parts, strings.TrimSpace(v))
		}
	}
	return strings.Join(parts, sep)
}

func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return isBlank(s)
}
