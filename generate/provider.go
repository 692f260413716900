// Package generate produces documents by calling external text-generation
// providers, falling back to the deterministic template composer. Generation
// never hard-fails: the worst case is template output.
package generate

import (
	"context"
	"net/http"
	"time"
)

// HTTPClient is the subset of http.Client the provider clients need; tests
// substitute a fake transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Provider is one external text-generation backend.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// Complete returns the completion text for the prompt. An empty
	// completion is an error; callers treat any error as "try the next
	// provider".
	Complete(ctx context.Context, system, prompt string) (string, error)
}

const (
	// defaultTimeout bounds each provider call so a slow provider cannot
	// stall the whole generation request.
	defaultTimeout = 60 * time.Second

	// maxTokens and temperature follow the prompt contract: bounded output,
	// consistency over creativity.
	maxTokens   = 4000
	temperature = 0.3
)
