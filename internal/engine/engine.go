package engine

import (
	"context"

	"datumsync/internal/pipeline"
)

type Engine struct {
	runner *pipeline.Runner
}

// Run executes the compiled batch and returns when every job is done or the
// context is canceled.
func (e *Engine) Run(ctx context.Context) error {
	return e.runner.Run(ctx)
}
