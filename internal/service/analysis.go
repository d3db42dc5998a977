package service

import (
	"context"

	"github.com/ideaforge/analysis-simulator/internal/fixture"
	"github.com/ideaforge/analysis-simulator/internal/scenario"
)

// MockAIAnalysisService stands in for the real LLM-backed analysis service.
type MockAIAnalysisService struct {
	*core
	data *fixture.Manager
}

// NewMockAIAnalysisService builds the façade. A locale missing any fixture the
// service serves is a configuration mistake and fails here, at setup, rather
// than surfacing call by call.
func NewMockAIAnalysisService(data *fixture.Manager, opts Options) (*MockAIAnalysisService, error) {
	for _, op := range []string{
		fixture.OpAnalyzeIdea,
		fixture.OpAnalyzeHackathon,
		fixture.OpSuggestImprovements,
		fixture.OpCompareIdeas,
	} {
		if !data.Store().Has(op, opts.Locale) {
			return nil, &fixture.NotFoundError{Operation: op, Locale: opts.Locale}
		}
	}
	return &MockAIAnalysisService{core: newCore("analysis", opts), data: data}, nil
}

// AnalyzeIdeaRequest carries the idea text plus an optional per-request
// scenario override for test ergonomics.
type AnalyzeIdeaRequest struct {
	IdeaText string            `json:"ideaText"`
	Scenario scenario.Scenario `json:"scenario,omitempty"`
}

type AnalyzeHackathonRequest struct {
	ProjectDescription string            `json:"projectDescription"`
	Scenario           scenario.Scenario `json:"scenario,omitempty"`
}

type SuggestImprovementsRequest struct {
	IdeaText string            `json:"ideaText"`
	Scenario scenario.Scenario `json:"scenario,omitempty"`
}

type CompareIdeasRequest struct {
	FirstIdea  string            `json:"firstIdea"`
	SecondIdea string            `json:"secondIdea"`
	Scenario   scenario.Scenario `json:"scenario,omitempty"`
}

// AnalyzeIdea scores and critiques a submitted idea.
func (s *MockAIAnalysisService) AnalyzeIdea(ctx context.Context, req AnalyzeIdeaRequest) Result[fixture.AnalysisResult] {
	return run(ctx, s.core, fixture.OpAnalyzeIdea, req.Scenario, func(sc scenario.Scenario) (*fixture.AnalysisResult, error) {
		base, err := s.data.AnalysisFixture(fixture.OpAnalyzeIdea, s.opts.Locale)
		if err != nil {
			return nil, err
		}
		out := s.data.CustomizeAnalysis(base, req.IdeaText)
		if sc == scenario.PartialResponse {
			out = out.Partial()
		}
		return out, nil
	})
}

// AnalyzeHackathonProject scores a hackathon project description.
func (s *MockAIAnalysisService) AnalyzeHackathonProject(ctx context.Context, req AnalyzeHackathonRequest) Result[fixture.AnalysisResult] {
	return run(ctx, s.core, fixture.OpAnalyzeHackathon, req.Scenario, func(sc scenario.Scenario) (*fixture.AnalysisResult, error) {
		base, err := s.data.AnalysisFixture(fixture.OpAnalyzeHackathon, s.opts.Locale)
		if err != nil {
			return nil, err
		}
		out := s.data.CustomizeAnalysis(base, req.ProjectDescription)
		if sc == scenario.PartialResponse {
			out = out.Partial()
		}
		return out, nil
	})
}

// SuggestImprovements proposes concrete next moves for an idea.
func (s *MockAIAnalysisService) SuggestImprovements(ctx context.Context, req SuggestImprovementsRequest) Result[fixture.ImprovementPlan] {
	return run(ctx, s.core, fixture.OpSuggestImprovements, req.Scenario, func(sc scenario.Scenario) (*fixture.ImprovementPlan, error) {
		base, err := s.data.Store().Improvements(s.opts.Locale)
		if err != nil {
			return nil, err
		}
		out := s.data.CustomizeImprovements(base, req.IdeaText)
		if sc == scenario.PartialResponse {
			out = out.Partial()
		}
		return out, nil
	})
}

// CompareIdeas scores two ideas against each other and picks a winner.
func (s *MockAIAnalysisService) CompareIdeas(ctx context.Context, req CompareIdeasRequest) Result[fixture.Comparison] {
	return run(ctx, s.core, fixture.OpCompareIdeas, req.Scenario, func(sc scenario.Scenario) (*fixture.Comparison, error) {
		base, err := s.data.Store().Comparison(s.opts.Locale)
		if err != nil {
			return nil, err
		}
		out := s.data.CustomizeComparison(base, req.FirstIdea, req.SecondIdea)
		if sc == scenario.PartialResponse {
			out = out.Partial()
		}
		return out, nil
	})
}

// HealthCheck reports the façade's scenario-derived health.
func (s *MockAIAnalysisService) HealthCheck(ctx context.Context) HealthStatus {
	return s.healthCheck(ctx, "")
}
