// Package scenario defines the closed set of behaviors a mock service call can
// be configured to produce, and the structured errors the fault scenarios map to.
package scenario

import "fmt"

// Scenario names a configured mock behavior. Every façade call resolves to
// exactly one scenario: either success (possibly partial) or one specific
// simulated failure.
type Scenario string

const (
	Success         Scenario = "success"
	APIError        Scenario = "api_error"
	Timeout         Scenario = "timeout"
	RateLimit       Scenario = "rate_limit"
	InvalidInput    Scenario = "invalid_input"
	PartialResponse Scenario = "partial_response"
)

// All lists every known scenario in a stable order.
func All() []Scenario {
	return []Scenario{Success, APIError, Timeout, RateLimit, InvalidInput, PartialResponse}
}

// Valid reports whether s names a known scenario.
func (s Scenario) Valid() bool {
	switch s {
	case Success, APIError, Timeout, RateLimit, InvalidInput, PartialResponse:
		return true
	}
	return false
}

// Fault reports whether s produces a structured failure instead of a payload.
func (s Scenario) Fault() bool {
	switch s {
	case APIError, Timeout, RateLimit, InvalidInput:
		return true
	}
	return false
}

// Parse converts a raw scenario name (typically from an env var or request
// override) into a Scenario.
func Parse(raw string) (Scenario, error) {
	s := Scenario(raw)
	if !s.Valid() {
		return "", fmt.Errorf("scenario: unknown scenario %q", raw)
	}
	return s, nil
}

// Resolve picks the effective scenario for a call: a per-request override wins
// over the configured default.
func Resolve(def, override Scenario) Scenario {
	if override != "" {
		return override
	}
	return def
}

// ServiceError is the structured failure carried across the public result
// boundary. A fresh instance is created per failing call.
type ServiceError struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	HTTPStatus int    `json:"httpStatus"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.HTTPStatus, e.Message)
}

// ErrorFor builds the canonical ServiceError for a fault scenario. Calling it
// with a non-fault scenario is a programming error and panics.
func ErrorFor(s Scenario, operation string) *ServiceError {
	switch s {
	case APIError:
		return &ServiceError{
			Message:    fmt.Sprintf("mock API error while handling %s", operation),
			Code:       "API_ERROR",
			HTTPStatus: 500,
		}
	case Timeout:
		return &ServiceError{
			Message:    fmt.Sprintf("request timeout while handling %s", operation),
			Code:       "TIMEOUT",
			HTTPStatus: 408,
		}
	case RateLimit:
		return &ServiceError{
			Message:    fmt.Sprintf("rate limit exceeded for %s", operation),
			Code:       "RATE_LIMIT",
			HTTPStatus: 429,
		}
	case InvalidInput:
		return &ServiceError{
			Message:    fmt.Sprintf("invalid input supplied to %s", operation),
			Code:       "INVALID_INPUT",
			HTTPStatus: 400,
		}
	}
	panic(fmt.Sprintf("scenario: ErrorFor called with non-fault scenario %q", s))
}

// ValidationError marks a genuine precondition violation by the caller, as
// opposed to a scenario-driven simulated fault. It is raised before any latency
// simulation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsServiceError converts an internal error into the wrapper-facing
// ServiceError. Validation errors keep their own code so tests can tell them
// apart from simulated faults; anything else is surfaced as an internal error.
func AsServiceError(err error) *ServiceError {
	if se, ok := err.(*ServiceError); ok {
		return se
	}
	if ve, ok := err.(*ValidationError); ok {
		return &ServiceError{Message: ve.Message, Code: "VALIDATION_ERROR", HTTPStatus: 422}
	}
	return &ServiceError{Message: err.Error(), Code: "INTERNAL", HTTPStatus: 500}
}
