// Package main is the entry point for the desktop cube demo.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/bouncecube/internal/app"
	"github.com/Faultbox/bouncecube/internal/config"
	"github.com/Faultbox/bouncecube/internal/logger"
)

// demo is the part of *app.App that main drives.
type demo interface {
	Run(ctx context.Context) error
	Close()
}

func newApp(cfg *config.Config) (demo, error) {
	a, err := app.New(cfg)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	os.Exit(run(newApp))
}

// run returns the process exit code. Every deferred cleanup has finished by
// the time it returns.
func run(start func(*config.Config) (demo, error)) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Write config error: %v\n", err)
			return 1
		}
		fmt.Printf("Config written to %s\n", path)
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Bounce Cube ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := start(cfg)
	if err != nil {
		logger.Error("failed to create demo", zap.Error(err))
		// Setup failures usually mean no usable OpenGL; tell the user
		// even when there is no terminal attached
		dialog.Message("%v", err).Title(cfg.Window.Title).Error()
		return 1
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		logger.Error("render loop error", zap.Error(err))
		return 1
	}

	logger.Info("demo closed normally")
	return 0
}
