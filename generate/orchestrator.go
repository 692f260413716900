package generate

import (
	"context"
	"log"
	"time"

	"privacypage-api/doctemplates"
	"privacypage-api/models"
)

// Orchestrator runs the provider chain for a document request. Providers are
// tried in order; if all fail (or none are configured) the deterministic
// template composer supplies the document, so generation never hard-fails.
type Orchestrator struct {
	providers []Provider
	now       func() time.Time
}

// NewOrchestrator builds an orchestrator over the given providers. Nil
// providers are skipped, so callers can pass constructors unconditionally.
func NewOrchestrator(providers ...Provider) *Orchestrator {
	o := &Orchestrator{now: time.Now}
	for _, p := range providers {
		if p != nil {
			o.providers = append(o.providers, p)
		}
	}
	return o
}

// Generate produces the document for the request. Provider errors are logged
// and swallowed; the only way Generate fails is an unknown document type.
func (o *Orchestrator) Generate(ctx context.Context, req models.DocumentRequest) (models.GeneratedDocument, error) {
	date := o.now().UTC().Format("2006-01-02")
	system, prompt := buildPrompt(req, date)

	for _, p := range o.providers {
		text, err := p.Complete(ctx, system, prompt)
		if err != nil {
			log.Printf("%v generation failed for %v, trying next: %v", p.Name(), req.DocType, err.Error())
			continue
		}
		return models.GeneratedDocument{DocType: req.DocType, Markdown: text, Request: req}, nil
	}

	if len(o.providers) > 0 {
		log.Printf("all providers exhausted for %v, using template fallback", req.DocType)
	}
	text, err := doctemplates.Compose(req, date)
	if err != nil {
		return models.GeneratedDocument{}, err
	}
	return models.GeneratedDocument{DocType: req.DocType, Markdown: text, Request: req}, nil
}
