package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ideaforge/analysis-simulator/internal/scenario"
)

// Config is the full simulator configuration, parsed once from the environment
// at startup. The mock services never read ambient env state themselves; they
// receive a snapshot of these values at construction.
type Config struct {
	Port    int
	Profile string
	Preset  string // ci|demo|flaky (test-profile behavior presets)

	Scenario          scenario.Scenario // default scenario for every call
	Locale            string            // fixture locale (en|ko)
	EnableVariability bool              // input-driven score perturbation on/off
	SimulateLatency   bool
	MinLatencyMs      int
	MaxLatencyMs      int
	LogRequests       bool
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvStr(k string, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func LoadConfig() Config {
	return Config{
		Port:    getEnvInt("PORT", 8788),
		Profile: getEnvStr("PROFILE", "default"),
		Preset:  strings.ToLower(getEnvStr("PRESET", "")),

		Scenario:          scenario.Scenario(strings.ToLower(getEnvStr("SCENARIO", "success"))),
		Locale:            strings.ToLower(getEnvStr("LOCALE", "en")),
		EnableVariability: getBool("ENABLE_VARIABILITY", true),
		SimulateLatency:   getBool("SIMULATE_LATENCY", false),
		MinLatencyMs:      getEnvInt("MIN_LATENCY_MS", 0),
		MaxLatencyMs:      getEnvInt("MAX_LATENCY_MS", 0),
		LogRequests:       getBool("LOG_REQUESTS", true),
	}
}

// Validate rejects configurations the mock services cannot honor. It is called
// once at the boundary so the core never has to re-check these invariants.
func (c Config) Validate() error {
	if !c.Scenario.Valid() {
		return fmt.Errorf("config: unknown scenario %q", c.Scenario)
	}
	if c.MinLatencyMs < 0 {
		return fmt.Errorf("config: MIN_LATENCY_MS must be >= 0, got %d", c.MinLatencyMs)
	}
	if c.MaxLatencyMs < c.MinLatencyMs {
		return fmt.Errorf("config: MAX_LATENCY_MS (%d) must be >= MIN_LATENCY_MS (%d)",
			c.MaxLatencyMs, c.MinLatencyMs)
	}
	if c.Locale == "" {
		return fmt.Errorf("config: LOCALE must not be empty")
	}
	return nil
}
