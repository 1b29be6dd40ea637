package saga

import (
	"context"

	"medicart-service/internal/logger"
)

// Step is a single unit of work in a multi-step flow that spans aggregates or
// external services. Each step must be undoable via Compensate.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// Orchestrator runs steps sequentially. When a step fails, every previously
// successful step is compensated in LIFO order and the step's error is
// returned to the caller.
type Orchestrator struct {
	log *logger.Logger
}

func NewOrchestrator(log *logger.Logger) *Orchestrator {
	return &Orchestrator{log: log}
}

func (o *Orchestrator) Run(ctx context.Context, steps ...Step) error {
	var done []Step
	for _, step := range steps {
		o.log.Debug("executing step", "step", step.Name())
		if err := step.Execute(ctx); err != nil {
			o.log.Warn("step failed, rolling back", "step", step.Name(), "error", err)
			o.rollback(ctx, done)
			return err
		}
		done = append(done, step)
	}
	return nil
}

func (o *Orchestrator) rollback(ctx context.Context, steps []Step) {
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		o.log.Debug("compensating step", "step", step.Name())
		if err := step.Compensate(ctx); err != nil {
			// Nothing left to do but record it; the operator has to reconcile.
			o.log.Error("failed to compensate step", "step", step.Name(), "error", err)
		}
	}
}

// FuncStep adapts plain functions into a Step. A nil compensate means the step
// has no side effect worth undoing.
type FuncStep struct {
	StepName     string
	ExecuteFn    func(ctx context.Context) error
	CompensateFn func(ctx context.Context) error
}

func (s FuncStep) Name() string { return s.StepName }

func (s FuncStep) Execute(ctx context.Context) error { return s.ExecuteFn(ctx) }

func (s FuncStep) Compensate(ctx context.Context) error {
	if s.CompensateFn == nil {
		return nil
	}
	return s.CompensateFn(ctx)
}
