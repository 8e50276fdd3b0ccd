// Package main is the entry point for the OpenGL lesson runner.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/hello-gl/internal/app"
	"github.com/Faultbox/hello-gl/internal/config"
	"github.com/Faultbox/hello-gl/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfig() {
		if err := cfg.Save(); err != nil {
			logger.Fatal("saving config", zap.Error(err))
		}
		logger.Info("config saved", zap.String("path", config.UserConfigPath()))
		logger.Sync()
		return
	}

	if err := run(cfg); err != nil {
		logger.Fatal("lesson runner failed", zap.Error(err))
	}
	logger.Info("closed normally")
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== LearnOpenGL lessons ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer a.Close()

	return a.Run()
}
