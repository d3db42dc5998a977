package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ideaforge/analysis-simulator/internal/fixture"
	"github.com/ideaforge/analysis-simulator/internal/scenario"
)

func newManager(t *testing.T, variability bool) *fixture.Manager {
	t.Helper()
	store, err := fixture.NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return fixture.NewManager(store, variability)
}

func newAnalysisService(t *testing.T, opts Options) *MockAIAnalysisService {
	t.Helper()
	if opts.Locale == "" {
		opts.Locale = "en"
	}
	if opts.DefaultScenario == "" {
		opts.DefaultScenario = scenario.Success
	}
	svc, err := NewMockAIAnalysisService(newManager(t, opts.EnableVariability), opts)
	if err != nil {
		t.Fatalf("NewMockAIAnalysisService: %v", err)
	}
	return svc
}

func TestAnalyzeIdeaSuccess(t *testing.T) {
	svc := newAnalysisService(t, Options{EnableVariability: true, LogRequests: true})

	res := svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "AI plant sitter\nWaters plants remotely."})
	if !res.Success || res.Error != nil {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.Data == nil || res.Data.Title != "AI plant sitter" {
		t.Fatalf("customized title missing: %+v", res.Data)
	}
	if res.Scenario != scenario.Success {
		t.Fatalf("unexpected scenario: %v", res.Scenario)
	}
	if res.RequestID == "" {
		t.Fatalf("request ID missing")
	}
}

// TestAnalyzeIdeaFaultScenarios verifies each fault scenario maps to the
// expected HTTP status and message substring, on every call until
// reconfigured.
func TestAnalyzeIdeaFaultScenarios(t *testing.T) {
	tests := []struct {
		sc         scenario.Scenario
		httpStatus int
		substring  string
	}{
		{scenario.APIError, 500, "API error"},
		{scenario.Timeout, 408, "timeout"},
		{scenario.RateLimit, 429, "rate limit"},
		{scenario.InvalidInput, 400, "invalid input"},
	}

	for _, tc := range tests {
		t.Run(string(tc.sc), func(t *testing.T) {
			svc := newAnalysisService(t, Options{DefaultScenario: tc.sc, LogRequests: true})

			for i := 0; i < 3; i++ {
				res := svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "x"})
				if res.Success || res.Data != nil {
					t.Fatalf("call %d: expected failure, got %+v", i, res)
				}
				if res.Error == nil {
					t.Fatalf("call %d: error missing", i)
				}
				if res.Error.HTTPStatus != tc.httpStatus {
					t.Fatalf("call %d: status %d, want %d", i, res.Error.HTTPStatus, tc.httpStatus)
				}
				if !strings.Contains(res.Error.Message, tc.substring) {
					t.Fatalf("call %d: message %q missing %q", i, res.Error.Message, tc.substring)
				}
			}
		})
	}
}

func TestAnalyzeIdeaPartialResponse(t *testing.T) {
	svc := newAnalysisService(t, Options{DefaultScenario: scenario.PartialResponse})

	res := svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "partial please"})
	if !res.Success || res.Data == nil {
		t.Fatalf("partial_response should still succeed: %+v", res)
	}
	if res.Scenario != scenario.PartialResponse {
		t.Fatalf("wrapper should carry the scenario: %v", res.Scenario)
	}
	if res.Data.Title == "" || res.Data.OverallScore == 0 {
		t.Fatalf("required fields must survive: %+v", res.Data)
	}
	if res.Data.Strengths != nil || res.Data.Weaknesses != nil || res.Data.Suggestions != nil {
		t.Fatalf("enrichments should be omitted: %+v", res.Data)
	}
}

func TestAnalyzeIdeaIdempotentWithoutVariability(t *testing.T) {
	svc := newAnalysisService(t, Options{EnableVariability: false})

	a := svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "same input"})
	b := svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "same input"})
	if !a.Success || !b.Success {
		t.Fatalf("expected success: %+v %+v", a, b)
	}
	if !reflect.DeepEqual(a.Data, b.Data) {
		t.Fatalf("same input should be idempotent:\n%+v\n%+v", a.Data, b.Data)
	}
}

func TestAnalyzeIdeaDistinctInputsDiffer(t *testing.T) {
	svc := newAnalysisService(t, Options{EnableVariability: true})

	a := svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "a tiny idea"})
	b := svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "a much more elaborate idea with many more words in it"})
	if reflect.DeepEqual(a.Data, b.Data) {
		t.Fatalf("different inputs should not collide: %+v", a.Data)
	}
}

func TestAnalyzeIdeaLatencyBounds(t *testing.T) {
	svc := newAnalysisService(t, Options{
		SimulateLatency: true,
		MinLatencyMs:    50,
		MaxLatencyMs:    100,
	})

	start := time.Now()
	res := svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "latency check"})
	elapsed := time.Since(start)

	if res.LatencyMs < 50 || res.LatencyMs > 100 {
		t.Fatalf("drawn latency %d outside [50,100]", res.LatencyMs)
	}
	if elapsed < 50*time.Millisecond {
		t.Fatalf("call returned in %v, before the drawn minimum", elapsed)
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("call took %v, far beyond the drawn maximum", elapsed)
	}
}

func TestTimeoutScenarioRejectsImmediately(t *testing.T) {
	// A simulated timeout is an immediately-rejected result, not an elapsed
	// wall-clock timeout: it must complete fast regardless of MaxLatencyMs.
	svc := newAnalysisService(t, Options{
		DefaultScenario: scenario.Timeout,
		SimulateLatency: true,
		MinLatencyMs:    5000,
		MaxLatencyMs:    10000,
	})

	start := time.Now()
	res := svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "x"})
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("timeout scenario waited %v", elapsed)
	}
	if res.Success || res.Error == nil || res.Error.HTTPStatus != 408 {
		t.Fatalf("expected simulated timeout, got %+v", res)
	}
}

func TestPerRequestScenarioOverride(t *testing.T) {
	svc := newAnalysisService(t, Options{DefaultScenario: scenario.Success})

	res := svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "x", Scenario: scenario.APIError})
	if res.Success || res.Error == nil || res.Error.HTTPStatus != 500 {
		t.Fatalf("override not honored: %+v", res)
	}

	// The configured default still applies when no override is given.
	res = svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "x"})
	if !res.Success {
		t.Fatalf("default scenario lost after override: %+v", res)
	}
}

func TestUnknownScenarioOverrideRejected(t *testing.T) {
	// The scenario set is closed: a typo'd override must not slip past a
	// configured fault and come back as success.
	svc := newAnalysisService(t, Options{DefaultScenario: scenario.APIError})

	res := svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{
		IdeaText: "x",
		Scenario: scenario.Scenario("bogus_scenario"),
	})
	if res.Success || res.Data != nil {
		t.Fatalf("unknown override must not succeed: %+v", res)
	}
	if res.Error == nil || res.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %+v", res.Error)
	}
	if !strings.Contains(res.Error.Message, "bogus_scenario") {
		t.Fatalf("message should name the bad override: %q", res.Error.Message)
	}
	if !res.Scenario.Valid() {
		t.Fatalf("wrapper echoed an unknown scenario: %q", res.Scenario)
	}
}

func TestCanceledCallFailsFast(t *testing.T) {
	svc := newAnalysisService(t, Options{
		SimulateLatency: true,
		MinLatencyMs:    500,
		MaxLatencyMs:    1000,
		LogRequests:     true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	res := svc.AnalyzeIdea(ctx, AnalyzeIdeaRequest{IdeaText: "x"})
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Fatalf("canceled call still waited %v", elapsed)
	}

	if res.Success || res.Data != nil {
		t.Fatalf("canceled call must not report success: %+v", res)
	}
	if res.Error == nil || res.Error.Code != "CANCELED" {
		t.Fatalf("expected CANCELED error, got %+v", res.Error)
	}

	logs := svc.RequestLogs()
	if len(logs) != 1 || logs[0].Success {
		t.Fatalf("canceled call not logged as failure: %+v", logs)
	}
}

func TestOtherOperations(t *testing.T) {
	svc := newAnalysisService(t, Options{EnableVariability: true})
	ctx := context.Background()

	hack := svc.AnalyzeHackathonProject(ctx, AnalyzeHackathonRequest{ProjectDescription: "Realtime graffiti wall"})
	if !hack.Success || hack.Data.Title != "Realtime graffiti wall" {
		t.Fatalf("hackathon analysis: %+v", hack)
	}

	impr := svc.SuggestImprovements(ctx, SuggestImprovementsRequest{IdeaText: "Meal-prep roulette"})
	if !impr.Success || !strings.Contains(impr.Data.Title, "Meal-prep roulette") {
		t.Fatalf("improvements: %+v", impr)
	}
	if len(impr.Data.Suggestions) == 0 {
		t.Fatalf("improvement plan lost its suggestions: %+v", impr.Data)
	}

	cmp := svc.CompareIdeas(ctx, CompareIdeasRequest{FirstIdea: "Idea one", SecondIdea: "Idea two"})
	if !cmp.Success || len(cmp.Data.Ideas) != 2 {
		t.Fatalf("comparison: %+v", cmp)
	}
	if cmp.Data.Ideas[0].Title != "Idea one" || cmp.Data.Ideas[1].Title != "Idea two" {
		t.Fatalf("comparison titles: %+v", cmp.Data.Ideas)
	}
	if cmp.Data.Winner != 1 && cmp.Data.Winner != 2 {
		t.Fatalf("winner out of range: %d", cmp.Data.Winner)
	}
}

func TestHealthCheckMapping(t *testing.T) {
	tests := []struct {
		sc     scenario.Scenario
		status string
	}{
		{scenario.Success, StatusHealthy},
		{scenario.PartialResponse, StatusHealthy},
		{scenario.Timeout, StatusDegraded},
		{scenario.APIError, StatusUnhealthy},
		{scenario.RateLimit, StatusUnhealthy},
		{scenario.InvalidInput, StatusUnhealthy},
	}

	for _, tc := range tests {
		t.Run(string(tc.sc), func(t *testing.T) {
			svc := newAnalysisService(t, Options{DefaultScenario: tc.sc})
			hs := svc.HealthCheck(context.Background())
			if hs.Status != tc.status {
				t.Fatalf("scenario %s: status %q, want %q", tc.sc, hs.Status, tc.status)
			}
			if hs.Service != "analysis" || hs.Scenario != tc.sc {
				t.Fatalf("health report incomplete: %+v", hs)
			}
		})
	}
}

func TestRequestLoggingAndMetrics(t *testing.T) {
	svc := newAnalysisService(t, Options{LogRequests: true})
	ctx := context.Background()

	svc.AnalyzeIdea(ctx, AnalyzeIdeaRequest{IdeaText: "one"})
	svc.AnalyzeIdea(ctx, AnalyzeIdeaRequest{IdeaText: "two", Scenario: scenario.APIError})
	svc.CompareIdeas(ctx, CompareIdeasRequest{FirstIdea: "a", SecondIdea: "b"})

	logs := svc.RequestLogs()
	if len(logs) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(logs))
	}
	if logs[0].Operation != fixture.OpAnalyzeIdea || !logs[0].Success {
		t.Fatalf("first entry wrong: %+v", logs[0])
	}
	if logs[1].Success || !strings.Contains(logs[1].Error, "API error") {
		t.Fatalf("failed call not logged as failure: %+v", logs[1])
	}
	if logs[2].Operation != fixture.OpCompareIdeas {
		t.Fatalf("entries out of call order: %+v", logs[2])
	}
	for _, e := range logs {
		if e.ID == "" {
			t.Fatalf("log entry missing request ID: %+v", e)
		}
	}

	m, ok := svc.Metrics(fixture.OpAnalyzeIdea)
	if !ok || m.TotalRequests != 2 {
		t.Fatalf("analyze_idea metrics: %+v", m)
	}
	if m.AverageDurationMs < 0 {
		t.Fatalf("negative average duration: %+v", m)
	}

	svc.ClearRequestLogs()
	if len(svc.RequestLogs()) != 0 {
		t.Fatalf("logs survived clear")
	}
	svc.ClearPerformanceMetrics()
	for op, m := range svc.AllMetrics() {
		if m.TotalRequests != 0 {
			t.Fatalf("metrics for %s survived clear: %+v", op, m)
		}
	}
}

func TestMetricsRecordedWhenLoggingDisabled(t *testing.T) {
	svc := newAnalysisService(t, Options{LogRequests: false})
	svc.AnalyzeIdea(context.Background(), AnalyzeIdeaRequest{IdeaText: "x"})

	if len(svc.RequestLogs()) != 0 {
		t.Fatalf("logging disabled but entries recorded")
	}
	if m, ok := svc.Metrics(fixture.OpAnalyzeIdea); !ok || m.TotalRequests != 1 {
		t.Fatalf("metrics should update regardless of logging: %+v", m)
	}
}

func TestConstructorFailsLoudlyOnMissingLocaleFixtures(t *testing.T) {
	// ko ships analyze_idea and generate_mashup only, so the analysis façade
	// (which also needs comparisons and improvements) must refuse to build.
	_, err := NewMockAIAnalysisService(newManager(t, false), Options{
		DefaultScenario: scenario.Success,
		Locale:          "ko",
	})
	var nf *fixture.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
