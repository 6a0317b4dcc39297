package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for resume writing and ATS analysis.
type Client interface {
	GenerateSummary(ctx context.Context, input SummaryInput) (string, error)
	AnalyzeResume(ctx context.Context, input ATSInput) (json.RawMessage, error)
}

// SummaryInput captures the inputs for professional summary generation.
type SummaryInput struct {
	JobTitle          string
	YearsOfExperience float64
	KeySkills         string
}

// ATSInput captures the inputs for an ATS compatibility analysis.
type ATSInput struct {
	ResumeText     string
	JobDescription string
	PromptVersion  string
}

type fixJSONKey struct{}

// WithFixJSON returns a context signaling a fix-JSON retry with the given raw output.
func WithFixJSON(ctx context.Context, raw string) context.Context {
	return context.WithValue(ctx, fixJSONKey{}, raw)
}

// FixJSONFromContext returns the raw JSON to repair, if any.
func FixJSONFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(fixJSONKey{})
	raw, ok := val.(string)
	return raw, ok
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// GenerateSummary returns ErrNotImplemented.
func (PlaceholderClient) GenerateSummary(ctx context.Context, input SummaryInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotImplemented
}

// AnalyzeResume returns ErrNotImplemented.
func (PlaceholderClient) AnalyzeResume(ctx context.Context, input ATSInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}
