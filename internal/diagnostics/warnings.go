// =============================================================================
// NFSe DANFSe Renderer - Diagnostics Module
// =============================================================================
//
// This module collects the data-quality warnings produced while a document is
// rendered. Warnings never abort a render; they are returned alongside the
// output so the caller can decide what to do with them.
//
// WARNING KINDS:
//   - FieldMissing             : an optional field was absent, a fallback was used
//   - MunicipalityNotFound     : a location code did not resolve in the registry
//   - TemplatePlaceholderEmpty : a template token survived substitution
//
// ORDERING:
//   Warnings are kept in emission order and are never deduplicated.
//
// =============================================================================

package diagnostics

import (
	"fmt"
	"strings"
)

// =============================================================================
// WARNING KINDS
// =============================================================================

// Kind identifies the category of a warning.
type Kind int

const (
	// FieldMissing is emitted when an optional field is absent.
	FieldMissing Kind = iota + 1

	// MunicipalityNotFound is emitted when a location code is present but
	// has no entry in the municipality registry.
	MunicipalityNotFound

	// TemplatePlaceholderEmpty is emitted when a template token is still
	// present after substitution.
	TemplatePlaceholderEmpty
)

// kindCodes are the stable codes reported to callers and written to logs.
var kindCodes = map[Kind]string{
	FieldMissing:             "NFSE_FIELD_MISSING",
	MunicipalityNotFound:     "MUNICIPIO_NOT_FOUND",
	TemplatePlaceholderEmpty: "TEMPLATE_PLACEHOLDER_EMPTY",
}

// Code returns the stable code of the kind.
func (k Kind) Code() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return "UNKNOWN"
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return k.Code()
}

// =============================================================================
// WARNING
// =============================================================================

// Warning is a single recoverable diagnostic.
type Warning struct {
	// Kind is the category of the warning.
	Kind Kind

	// Message is a human-readable description.
	Message string

	// Path is the logical location of the offending field in the document
	// (e.g. "infNFSe.DPS.infDPS.dCompet"). Empty when not applicable.
	Path string
}

// String formats the warning the way the CLI prints it.
func (w Warning) String() string {
	if w.Path == "" {
		return fmt.Sprintf("[%s] %s", w.Kind.Code(), w.Message)
	}
	return fmt.Sprintf("[%s] %s (Path: %s)", w.Kind.Code(), w.Message, w.Path)
}

// =============================================================================
// COLLECTOR
// =============================================================================

// Collector is an append-only, ordered warning log. A Collector belongs to a
// single render call and is not safe for concurrent use.
type Collector struct {
	warnings []Warning
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// FieldMissing records that fieldName was absent and fallback was used.
func (c *Collector) FieldMissing(fieldName, path, fallback string) {
	c.add(Warning{
		Kind:    FieldMissing,
		Message: fmt.Sprintf("field %s missing; using '%s'", fieldName, fallback),
		Path:    path,
	})
}

// MunicipalityNotFound records an unresolved municipality code.
func (c *Collector) MunicipalityNotFound(path string) {
	c.add(Warning{
		Kind:    MunicipalityNotFound,
		Message: "municipality not found; using default values",
		Path:    path,
	})
}

// TemplatePlaceholderEmpty records a token that was left empty after rendering.
func (c *Collector) TemplatePlaceholderEmpty(token string) {
	c.add(Warning{
		Kind:    TemplatePlaceholderEmpty,
		Message: fmt.Sprintf("placeholder %s was empty after rendering", token),
		Path:    token,
	})
}

func (c *Collector) add(w Warning) {
	c.warnings = append(c.warnings, w)
}

// Warnings returns a copy of the collected warnings in emission order.
func (c *Collector) Warnings() []Warning {
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Len returns the number of collected warnings.
func (c *Collector) Len() int {
	return len(c.warnings)
}

// Count returns how many warnings of the given kind were collected.
func (c *Collector) Count(kind Kind) int {
	n := 0
	for _, w := range c.warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Summary renders one warning per line, suitable for log files.
func Summary(warnings []Warning) string {
	var sb strings.Builder
	for _, w := range warnings {
		sb.WriteString(w.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
