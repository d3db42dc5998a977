// Package logger holds the process-wide sugared logger. It defaults to a nop
// logger so library consumers that never call Init stay silent.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Init builds the global logger for the given profile ("prod" selects the
// production JSON encoder, anything else the colored dev encoder).
func Init(profile string) {
	var cfg zap.Config

	if profile == "prod" {
		cfg = zap.NewProductionConfig()
		cfg.InitialFields = map[string]any{"app": "analysis-simulator"}
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		// Mock faults are routine; stacktraces on every warn are just noise.
		cfg.DisableStacktrace = true
	}

	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	Log = l.Sugar()
}

func Sync() {
	if Log == nil {
		return
	}

	_ = Log.Sync()
}
