package app

import (
	"numprompt/internal/logger"
	"numprompt/internal/prompt"
	"numprompt/internal/validate"
)

// Wire bundles the logger, pipeline and loop for the CLI.
type Wire struct {
	Log      *logger.Logger
	Pipeline *validate.Pipeline
	Loop     *prompt.Loop
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	log := logger.New(logger.Config{Level: cfg.LogLevel, Output: cfg.ErrOut})

	pipeline := validate.New(log)
	reporter := prompt.NewReporter(cfg.ErrOut)
	loop := prompt.NewLoop(cfg.In, cfg.Out, pipeline, reporter, log)

	return &Wire{
		Log:      log,
		Pipeline: pipeline,
		Loop:     loop,
	}
}
