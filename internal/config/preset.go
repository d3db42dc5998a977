package config

import (
	"github.com/ideaforge/analysis-simulator/internal/logger"
	"github.com/ideaforge/analysis-simulator/internal/scenario"
)

// ApplyPresetOverrides rewrites config fields for a named test profile. An
// empty preset leaves the loaded config untouched.
func ApplyPresetOverrides(cfg *Config) {
	if cfg.Preset == "" {
		return
	}
	logger.Log.Infow("[config] apply preset overrides", "preset", cfg.Preset)
	switch cfg.Preset {
	case "ci":
		// CI: fast and deterministic. No latency, no jitter, full logging.
		cfg.Scenario = scenario.Success
		cfg.EnableVariability = false
		cfg.SimulateLatency = false
		cfg.MinLatencyMs = 0
		cfg.MaxLatencyMs = 0
		cfg.LogRequests = true

	case "demo":
		// Demo: feels like the real service. Visible latency, varied outputs.
		cfg.Scenario = scenario.Success
		cfg.EnableVariability = true
		cfg.SimulateLatency = true
		cfg.MinLatencyMs = 200
		cfg.MaxLatencyMs = 800
		cfg.LogRequests = true

	case "flaky":
		// Flaky: exercises retry/backoff paths in callers.
		cfg.Scenario = scenario.RateLimit
		cfg.SimulateLatency = true
		cfg.MinLatencyMs = 50
		cfg.MaxLatencyMs = 300
		cfg.LogRequests = true
	}
}
