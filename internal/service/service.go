// Package service implements the mock façades that stand in for the real
// LLM-backed analysis and generation services. Each façade mirrors its real
// counterpart's contract exactly, so a DI factory can swap mock for real with
// zero caller-side changes.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ideaforge/analysis-simulator/internal/config"
	"github.com/ideaforge/analysis-simulator/internal/fixture"
	"github.com/ideaforge/analysis-simulator/internal/latency"
	"github.com/ideaforge/analysis-simulator/internal/logger"
	"github.com/ideaforge/analysis-simulator/internal/scenario"
	"github.com/ideaforge/analysis-simulator/internal/telemetry"
)

// OpHealthCheck labels health probes in logs and metrics. The payload-bearing
// operation names live next to their fixtures in the fixture package.
const OpHealthCheck = "health_check"

// Health statuses reported by the façades.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Options is the per-façade configuration snapshot. It is immutable once the
// façade is constructed; reconfiguring means building a new instance.
type Options struct {
	DefaultScenario   scenario.Scenario
	Locale            string
	EnableVariability bool
	SimulateLatency   bool
	MinLatencyMs      int
	MaxLatencyMs      int
	LogRequests       bool
}

// OptionsFromConfig projects the process config onto façade options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		DefaultScenario:   cfg.Scenario,
		Locale:            cfg.Locale,
		EnableVariability: cfg.EnableVariability,
		SimulateLatency:   cfg.SimulateLatency,
		MinLatencyMs:      cfg.MinLatencyMs,
		MaxLatencyMs:      cfg.MaxLatencyMs,
		LogRequests:       cfg.LogRequests,
	}
}

// Result is the wrapper every public operation returns. Failures are carried
// as data, never as Go errors, so callers branch on Success like they would
// against the real service client.
type Result[T any] struct {
	Success   bool                   `json:"success"`
	Data      *T                     `json:"data,omitempty"`
	Error     *scenario.ServiceError `json:"error,omitempty"`
	Scenario  scenario.Scenario      `json:"scenario"`
	LatencyMs int                    `json:"latencyMs"`
	RequestID string                 `json:"requestId"`
}

// HealthStatus is the coarse-grained health report of one façade.
type HealthStatus struct {
	Service   string            `json:"service"`
	Status    string            `json:"status"`
	Scenario  scenario.Scenario `json:"scenario"`
	LatencyMs int               `json:"latencyMs"`
}

// core is the plumbing both façades share: config snapshot, latency simulator,
// and the telemetry recorder each instance owns exclusively.
type core struct {
	service string
	opts    Options
	sim     *latency.Simulator
	rec     *telemetry.Recorder
}

func newCore(service string, opts Options) *core {
	return &core{
		service: service,
		opts:    opts,
		sim:     latency.New(opts.SimulateLatency, opts.MinLatencyMs, opts.MaxLatencyMs),
		rec:     telemetry.NewRecorder(opts.LogRequests),
	}
}

// run executes one façade call: resolve scenario, simulate latency, build or
// fail, then record. Telemetry for a call is always written before its result
// is returned.
func run[T any](ctx context.Context, c *core, op string, override scenario.Scenario, build func(sc scenario.Scenario) (*T, error)) Result[T] {
	start := time.Now()

	// The scenario set is closed: a typo'd override must not slip through to
	// the success path and silently bypass a configured fault.
	if override != "" {
		if _, err := scenario.Parse(string(override)); err != nil {
			return failValidation[T](c, op, "",
				fmt.Sprintf("unknown scenario override %q", override))
		}
	}
	sc := scenario.Resolve(c.opts.DefaultScenario, override)

	// The timeout scenario is a simulated failure, not an elapsed wall-clock
	// timeout. It must reject fast regardless of MaxLatencyMs.
	drawn := 0
	if c.sim.Enabled() && sc != scenario.Timeout {
		drawn = c.sim.Draw()
		c.sim.Wait(ctx, drawn)
		if err := ctx.Err(); err != nil {
			res := Result[T]{Scenario: sc, LatencyMs: drawn, RequestID: uuid.NewString(),
				Error: canceledError(err)}
			logger.Log.Warnw("[mock] call canceled during latency simulation",
				"service", c.service, "operation", op, "err", err)
			c.finish(op, sc, res.RequestID, drawn, start, false, res.Error)
			return res
		}
	}

	res := Result[T]{Scenario: sc, LatencyMs: drawn, RequestID: uuid.NewString()}
	if sc.Fault() {
		res.Error = scenario.ErrorFor(sc, op)
		logger.Log.Infow("[mock] simulated fault",
			"service", c.service, "operation", op, "scenario", sc, "code", res.Error.Code)
	} else {
		data, err := build(sc)
		if err != nil {
			res.Error = serviceError(err)
			logger.Log.Errorw("[mock] operation failed",
				"service", c.service, "operation", op, "scenario", sc, "err", err)
		} else {
			res.Success = true
			res.Data = data
			logger.Log.Debugw("[mock] operation completed",
				"service", c.service, "operation", op, "scenario", sc, "latencyMs", drawn)
		}
	}

	c.finish(op, sc, res.RequestID, drawn, start, res.Success, res.Error)
	return res
}

// failValidation short-circuits a call on a genuine precondition violation.
// It runs before any latency simulation but still records the outcome.
func failValidation[T any](c *core, op string, override scenario.Scenario, msg string) Result[T] {
	start := time.Now()
	sc := scenario.Resolve(c.opts.DefaultScenario, override)
	if !sc.Valid() {
		// Never echo an unknown name back through the wrapper.
		sc = c.opts.DefaultScenario
	}

	res := Result[T]{
		Scenario:  sc,
		Error:     scenario.AsServiceError(&scenario.ValidationError{Message: msg}),
		RequestID: uuid.NewString(),
	}
	logger.Log.Warnw("[mock] validation failed",
		"service", c.service, "operation", op, "reason", msg)

	c.finish(op, sc, res.RequestID, 0, start, false, res.Error)
	return res
}

// canceledError reports a caller-abandoned call. 499 is the conventional
// client-closed-request status.
func canceledError(err error) *scenario.ServiceError {
	return &scenario.ServiceError{
		Message:    "call canceled during latency simulation: " + err.Error(),
		Code:       "CANCELED",
		HTTPStatus: 499,
	}
}

// serviceError maps internal failures onto the wrapper. A fixture miss keeps
// its own code: it is a developer error, and tests should see it as such.
func serviceError(err error) *scenario.ServiceError {
	var nf *fixture.NotFoundError
	if errors.As(err, &nf) {
		return &scenario.ServiceError{Message: nf.Error(), Code: "FIXTURE_NOT_FOUND", HTTPStatus: 500}
	}
	return scenario.AsServiceError(err)
}

func (c *core) finish(op string, sc scenario.Scenario, reqID string, drawn int, start time.Time, success bool, svcErr *scenario.ServiceError) {
	errMsg := ""
	if svcErr != nil {
		errMsg = svcErr.Message
	}
	c.rec.Log(telemetry.LogEntry{
		ID:        reqID,
		Timestamp: start,
		Operation: op,
		Scenario:  string(sc),
		LatencyMs: drawn,
		Success:   success,
		Error:     errMsg,
	})
	c.rec.RecordDuration(op, float64(time.Since(start).Microseconds())/1000)
}

// healthCheck is scenario-aware but coarser than the payload operations:
// success maps to healthy, a simulated timeout to degraded, any hard fault to
// unhealthy.
func (c *core) healthCheck(ctx context.Context, override scenario.Scenario) HealthStatus {
	start := time.Now()
	sc := scenario.Resolve(c.opts.DefaultScenario, override)

	drawn := 0
	if c.sim.Enabled() && sc != scenario.Timeout {
		drawn = c.sim.Draw()
		c.sim.Wait(ctx, drawn)
		if err := ctx.Err(); err != nil {
			c.finish(OpHealthCheck, sc, uuid.NewString(), drawn, start, false, canceledError(err))
			return HealthStatus{Service: c.service, Status: StatusUnhealthy, Scenario: sc, LatencyMs: drawn}
		}
	}

	status := StatusHealthy
	switch {
	case sc == scenario.Timeout:
		status = StatusDegraded
	case sc.Fault():
		status = StatusUnhealthy
	}

	c.finish(OpHealthCheck, sc, uuid.NewString(), drawn, start, status == StatusHealthy, nil)
	return HealthStatus{Service: c.service, Status: status, Scenario: sc, LatencyMs: drawn}
}

// ---- telemetry accessors, promoted onto both façades ----

// RequestLogs returns the recorded calls, oldest first.
func (c *core) RequestLogs() []telemetry.LogEntry {
	return c.rec.Logs()
}

func (c *core) ClearRequestLogs() {
	c.rec.ClearLogs()
}

// Metrics returns one operation's running stats.
func (c *core) Metrics(operation string) (telemetry.Metrics, bool) {
	return c.rec.OperationMetrics(operation)
}

// AllMetrics returns every operation's running stats.
func (c *core) AllMetrics() map[string]telemetry.Metrics {
	return c.rec.AllMetrics()
}

func (c *core) ClearPerformanceMetrics() {
	c.rec.ClearMetrics()
}
