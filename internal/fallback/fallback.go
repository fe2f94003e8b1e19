// =============================================================================
// NFSe DANFSe Renderer - Fallback Engine
// =============================================================================
//
// Every optional document field goes through one of these resolvers. They all
// share one contract:
//
//   if the value is present (non-nil / non-blank) -> format and return it
//   otherwise -> record a FieldMissing warning and return the fallback
//
// The fallback is "-" unless the caller picks another one (the access key, for
// instance, falls back to an empty string). Dash is the side-effect-free
// variant for fields whose absence is not worth a warning.
//
// =============================================================================

package fallback

import (
	"github.com/direction/nfse-danfe/internal/diagnostics"
	"github.com/direction/nfse-danfe/internal/format"
	"github.com/shopspring/decimal"
)

// DefaultValue is the placeholder printed for absent fields.
const DefaultValue = "-"

// OrDash returns value, or "-" with a warning when value is blank.
func OrDash(value string, w *diagnostics.Collector, fieldName, path string) string {
	return Or(value, DefaultValue, w, fieldName, path)
}

// Or returns value, or fallbackValue with a warning when value is blank.
func Or(value, fallbackValue string, w *diagnostics.Collector, fieldName, path string) string {
	if !format.IsBlank(value) {
		return value
	}
	w.FieldMissing(fieldName, path, fallbackValue)
	return fallbackValue
}

// Dash returns value, or "-" when value is blank. No warning is recorded.
func Dash(value string) string {
	if !format.IsBlank(value) {
		return value
	}
	return DefaultValue
}

// OrCurrency formats value as R$ currency, or returns "-" with a warning.
func OrCurrency(value *decimal.Decimal, w *diagnostics.Collector, fieldName, path string) string {
	return OrValue(value, format.Currency, w, fieldName, DefaultValue, path)
}

// OrPercent formats value as a two-decimal percentage, or returns "-" with a
// warning.
func OrPercent(value *decimal.Decimal, w *diagnostics.Collector, fieldName, path string) string {
	return OrValue(value, format.Percent, w, fieldName, DefaultValue, path)
}

// OrValue formats a present value with formatter, or returns fallbackValue
// with a warning when value is nil.
func OrValue[T any](value *T, formatter func(T) string, w *diagnostics.Collector, fieldName, fallbackValue, path string) string {
	if value != nil {
		return formatter(*value)
	}
	w.FieldMissing(fieldName, path, fallbackValue)
	return fallbackValue
}
