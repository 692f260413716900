// Package doctemplates is the deterministic fallback generator. Each document
// type is a table of conditionally included sections fed through one shared
// assembler: given the same request and date the output is byte-identical.
package doctemplates

import (
	"fmt"
	"strings"

	"privacypage-api/models"
)

// doc bundles a request with the effective date so section renderers stay
// pure functions of their input.
type doc struct {
	req  models.DocumentRequest
	date string
}

func (d doc) field(id, fallback string) string {
	return d.req.Field(id, fallback)
}

// has reports whether option was selected in the multi-select field.
func (d doc) has(fieldID, option string) bool {
	for _, s := range d.req.Selected(fieldID) {
		if s == option {
			return true
		}
	}
	return false
}

// section is one conditionally included block of a document. Sections render
// in the order listed regardless of selection order; an excluded section
// contributes nothing, heading included.
type section struct {
	when   func(d doc) bool
	render func(d doc) string
}

func always(render func(d doc) string) section {
	return section{render: render}
}

// selected gates a section on a multi-select option.
func selected(fieldID, option string, render func(d doc) string) section {
	return section{
		when:   func(d doc) bool { return d.has(fieldID, option) },
		render: render,
	}
}

func fixed(text string) func(d doc) string {
	return func(doc) string { return text }
}

// assemble renders every included section and joins the blocks with blank
// lines. Renderers returning an empty string are dropped so no heading is
// ever left without a body.
func assemble(d doc, sections []section) string {
	blocks := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.when != nil && !s.when(d) {
			continue
		}
		text := strings.TrimSpace(s.render(d))
		if text != "" {
			blocks = append(blocks, text)
		}
	}
	return strings.Join(blocks, "\n\n")
}

// Compose renders the template document for the request. date is the
// effective date in YYYY-MM-DD form.
func Compose(req models.DocumentRequest, date string) (string, error) {
	d := doc{req: req, date: date}
	switch req.DocType {
	case models.DocTypePrivacy:
		return assemble(d, privacySections), nil
	case models.DocTypeTos:
		return assemble(d, tosSections), nil
	case models.DocTypeEula:
		return assemble(d, eulaSections), nil
	case models.DocTypeCookie:
		return assemble(d, cookieSections), nil
	case models.DocTypeDisclaimer:
		return assemble(d, disclaimerSections), nil
	default:
		return "", fmt.Errorf("unknown document type %q", req.DocType)
	}
}

// joinParagraphs joins non-empty blocks with blank lines, for sections that
// build their body from conditional paragraphs.
func joinParagraphs(blocks []string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}

// bulletList renders one "- item" line per entry.
func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "- "+it)
	}
	return strings.Join(lines, "\n")
}

// splitPair splits "name, extra" fields like "Acme, https://acme.io" or
// "Acme Inc., privacy@acme.com" into their two halves.
func splitPair(value string) (string, string) {
	parts := strings.SplitN(value, ",", 2)
	first := strings.TrimSpace(parts[0])
	second := ""
	if len(parts) == 2 {
		second = strings.TrimSpace(parts[1])
	}
	return first, second
}
