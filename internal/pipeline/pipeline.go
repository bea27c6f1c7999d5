// Package pipeline drives request handling as an ordered list of stages, each
// of which either continues or terminates with a response.
package pipeline

import (
	"context"

	"github.com/afsarahmad786/basicValidation/internal/validation"
	"go.uber.org/zap"
)

// Request is what stages see for a single HTTP request.
type Request struct {
	ID    string
	Input *validation.Input
}

// Outcome is the result of a stage or of the whole pipeline.
type Outcome struct {
	terminated bool
	// Status is the HTTP status of a terminating outcome.
	Status int
	// Body is the response payload of a terminating outcome.
	Body any
	// Stage names the stage that terminated.
	Stage string
}

// Continue hands control to the next stage.
func Continue() Outcome {
	return Outcome{}
}

// Terminate stops the pipeline with the given response.
func Terminate(status int, body any) Outcome {
	return Outcome{terminated: true, Status: status, Body: body}
}

// Terminated reports whether the outcome carries a response.
func (o Outcome) Terminated() bool {
	return o.terminated
}

// Stage is one step of request handling.
type Stage interface {
	Name() string
	Run(ctx context.Context, req *Request) Outcome
}

type stageFunc struct {
	name string
	fn   func(ctx context.Context, req *Request) Outcome
}

func (s stageFunc) Name() string { return s.name }

func (s stageFunc) Run(ctx context.Context, req *Request) Outcome { return s.fn(ctx, req) }

// NewStage wraps fn as a named Stage.
func NewStage(name string, fn func(ctx context.Context, req *Request) Outcome) Stage {
	return stageFunc{name: name, fn: fn}
}

// Pipeline runs stages in order.
type Pipeline struct {
	stages []Stage
	logger *zap.Logger
}

// New builds a pipeline. A nil logger disables stage tracing.
func New(logger *zap.Logger, stages ...Stage) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{stages: stages, logger: logger}
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// Execute runs stages until one terminates. If every stage continues the
// result is Continue().
func (p *Pipeline) Execute(ctx context.Context, req *Request) Outcome {
	for _, stage := range p.stages {
		outcome := stage.Run(ctx, req)
		if outcome.Terminated() {
			outcome.Stage = stage.Name()
			p.logger.Debug("Pipeline terminated",
				zap.String("request_id", req.ID),
				zap.String("stage", outcome.Stage),
				zap.Int("status", outcome.Status))
			return outcome
		}
	}
	return Continue()
}
