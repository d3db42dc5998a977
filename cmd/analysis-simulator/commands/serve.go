package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ideaforge/analysis-simulator/internal/fixture"
	"github.com/ideaforge/analysis-simulator/internal/logger"
	"github.com/ideaforge/analysis-simulator/internal/server"
	"github.com/ideaforge/analysis-simulator/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mock services over HTTP for E2E harnesses",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Log.Infow("starting mock server",
			"addr", addr,
			"preset", cfg.Preset,
			"scenario", cfg.Scenario,
			"locale", cfg.Locale,
			"enableVariability", cfg.EnableVariability,
			"simulateLatency", cfg.SimulateLatency,
			"minLatencyMs", cfg.MinLatencyMs,
			"maxLatencyMs", cfg.MaxLatencyMs,
			"logRequests", cfg.LogRequests,
		)

		store, err := fixture.NewStore()
		if err != nil {
			return err
		}
		data := fixture.NewManager(store, cfg.EnableVariability)
		opts := service.OptionsFromConfig(cfg)

		analysis, err := service.NewMockAIAnalysisService(data, opts)
		if err != nil {
			return err
		}
		frankenstein, err := service.NewMockFrankensteinService(data, opts)
		if err != nil {
			return err
		}

		srv := server.New(addr, analysis, frankenstein)

		// Handle SIGINT/SIGTERM for a clean shutdown in local dev / docker.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			logger.Log.Info("[analysis-simulator] shutting down...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()

		return srv.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
