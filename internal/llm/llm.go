// Package llm defines the improvement provider boundary: given résumé text
// and a job description, an external model returns a rewritten résumé and a
// cover-letter paragraph. Each call is one request-response exchange with no
// retry and no caching; repeated identical calls may yield different text.
package llm

import (
	"context"
	"errors"
)

// Client abstracts improvement providers.
type Client interface {
	Improve(ctx context.Context, input ImproveInput) (ImprovementResult, error)
}

// ImproveInput carries the two payload strings of an improvement request.
// Both are expected non-empty after trimming; that validation belongs to the
// caller, not the provider.
type ImproveInput struct {
	ResumeText     string
	JobDescription string
}

// ImprovementResult is the structured response of a successful exchange.
type ImprovementResult struct {
	ImprovedResume string `json:"improvedResume"`
	CoverLetter    string `json:"coverLetter"`
}

var (
	// ErrRequestFailed covers transport failures, timeouts, and
	// provider-reported errors. The exchange is not retried.
	ErrRequestFailed = errors.New("ai request failed")

	// ErrMalformedResponse indicates the provider returned something other
	// than the required two-field JSON object.
	ErrMalformedResponse = errors.New("malformed ai response")

	// ErrNotConfigured is returned by the placeholder client.
	ErrNotConfigured = errors.New("llm provider not configured")
)

// PlaceholderClient is used when no provider is configured; every call fails.
type PlaceholderClient struct{}

// Improve returns ErrNotConfigured.
func (PlaceholderClient) Improve(ctx context.Context, input ImproveInput) (ImprovementResult, error) {
	_ = ctx
	_ = input
	return ImprovementResult{}, ErrNotConfigured
}
