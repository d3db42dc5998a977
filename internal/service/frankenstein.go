package service

import (
	"context"
	"fmt"

	"github.com/ideaforge/analysis-simulator/internal/fixture"
	"github.com/ideaforge/analysis-simulator/internal/scenario"
)

// MockFrankensteinService stands in for the real idea-mashup generator.
type MockFrankensteinService struct {
	*core
	data *fixture.Manager
}

func NewMockFrankensteinService(data *fixture.Manager, opts Options) (*MockFrankensteinService, error) {
	if !data.Store().Has(fixture.OpGenerateMashup, opts.Locale) {
		return nil, &fixture.NotFoundError{Operation: fixture.OpGenerateMashup, Locale: opts.Locale}
	}
	return &MockFrankensteinService{core: newCore("frankenstein", opts), data: data}, nil
}

// GenerateMashupRequest names the elements to fuse and the generation mode
// (classic, aws, or companies).
type GenerateMashupRequest struct {
	Elements []string          `json:"elements"`
	Mode     string            `json:"mode,omitempty"`
	Scenario scenario.Scenario `json:"scenario,omitempty"`
}

// GenerateMashup fuses the supplied elements into one idea. Fewer than two
// elements is a genuine precondition failure, not a simulated fault: it is
// rejected before any latency simulation.
func (s *MockFrankensteinService) GenerateMashup(ctx context.Context, req GenerateMashupRequest) Result[fixture.MashupResult] {
	if len(req.Elements) < 2 {
		return failValidation[fixture.MashupResult](s.core, fixture.OpGenerateMashup, req.Scenario,
			fmt.Sprintf("mashup generation requires at least 2 elements, got %d", len(req.Elements)))
	}

	return run(ctx, s.core, fixture.OpGenerateMashup, req.Scenario, func(sc scenario.Scenario) (*fixture.MashupResult, error) {
		base, err := s.data.Store().Mashup(s.opts.Locale)
		if err != nil {
			return nil, err
		}
		out := s.data.CustomizeMashup(base, req.Elements, req.Mode)
		if sc == scenario.PartialResponse {
			out = out.Partial()
		}
		return out, nil
	})
}

// HealthCheck reports the façade's scenario-derived health.
func (s *MockFrankensteinService) HealthCheck(ctx context.Context) HealthStatus {
	return s.healthCheck(ctx, "")
}
