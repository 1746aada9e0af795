package engine

import (
	"fmt"

	"datumsync/internal/pipeline"
	"datumsync/internal/telemetry"
)

type Config struct {
	RunFile     string
	MetricsPort int // 0 = metrics disabled
}

func Bootstrap(cfg Config) (*Engine, error) {
	// 1. batch runner
	runner, err := pipeline.Compile(cfg.RunFile)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	// 2. metrics
	if cfg.MetricsPort > 0 {
		telemetry.Expose(cfg.MetricsPort)
	}

	return &Engine{runner: runner}, nil
}
