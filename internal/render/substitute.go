package render

import (
	"regexp"

	"github.com/direction/nfse-danfe/internal/diagnostics"
	"github.com/direction/nfse-danfe/internal/format"
)

// tokenPattern matches a template token such as {{CHAVE_ACESSO}}.
var tokenPattern = regexp.MustCompile(`\{\{[A-Za-z0-9_]+\}\}`)

// substitute replaces every token in one pass. Inserted values are never
// rescanned, so a value that happens to contain "{{...}}" is kept verbatim.
func (run *renderRun) substitute() error {
	run.html = Substitute(run.r.template, run.values, run.w)
	return nil
}

// Substitute fills template with values. Values are HTML-escaped unless
// their placeholder is raw. Tokens with no value (unknown names or keys
// missing from values) are removed, with one TemplatePlaceholderEmpty warning
// per distinct token in order of first appearance.
func Substitute(template string, values Values, w *diagnostics.Collector) string {
	reported := make(map[string]bool)

	return tokenPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[2 : len(token)-2]
		if p, ok := LookupPlaceholder(name); ok {
			if value, ok := values[p]; ok {
				if p.Raw() {
					return value
				}
				return format.HTMLEscape(value)
			}
		}
		if !reported[token] {
			reported[token] = true
			w.TemplatePlaceholderEmpty(token)
		}
		return ""
	})
}

// TemplateTokens lists the distinct tokens in template, in order of first
// appearance, split into known placeholders and unknown names.
func TemplateTokens(template string) (known []Placeholder, unknown []string) {
	seen := make(map[string]bool)
	for _, token := range tokenPattern.FindAllString(template, -1) {
		if seen[token] {
			continue
		}
		seen[token] = true
		if p, ok := LookupPlaceholder(token[2 : len(token)-2]); ok {
			known = append(known, p)
		} else {
			unknown = append(unknown, token)
		}
	}
	return known, unknown
}
