// Package main is the entry point for the interactive part viewer.
//
// Positional arguments name the shapes to show, for example:
//
//	partview cuboid sphere wedge
//
// With no arguments the viewer shows one of each primitive.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/brickforge/partscene/internal/config"
	"github.com/brickforge/partscene/internal/logger"
	"github.com/brickforge/partscene/internal/viewer"
)

const windowTitle = "PartScene"

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
	logCfg := logger.Default()
	logCfg.Level = cfg.Logging.Level
	logCfg.File = cfg.Logging.File
	if err := logger.Init(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== PartScene Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// --save-config writes the effective config and exits
	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to save config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
		return
	}

	// Create and run the viewer
	v, err := viewer.New(viewer.Config{
		Title:    windowTitle,
		Graphics: cfg.Graphics,
		Camera:   cfg.Camera,
		Scene:    cfg.Scene,
		Shapes:   flag.Args(),
	})
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	// Run the viewer loop
	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
