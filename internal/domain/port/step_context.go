package port

import (
	"context"
	"io"
)

// StepContext is the slice of runner state a prompt borrows for one call.
// It is owned by the runner and never mutated by the harness.
type StepContext interface {
	// StepName returns the text of the step currently executing.
	StepName() string

	// Diagnostics returns the stream operator comments are written to. It must be
	// distinct from the stream prompts are written to.
	Diagnostics() io.Writer
}

// stepContextKey is the key for storing the StepContext in a context.
type stepContextKey struct{}

// WithStepContext adds the StepContext of the running step to the context.
// The runner hook calls this before every step so handlers can reach it
// without changing their signatures.
func WithStepContext(ctx context.Context, sc StepContext) context.Context {
	return context.WithValue(ctx, stepContextKey{}, sc)
}

// StepContextFromContext retrieves the StepContext from the context.
// Returns the step context and a boolean indicating if it was found.
func StepContextFromContext(ctx context.Context) (StepContext, bool) {
	sc, ok := ctx.Value(stepContextKey{}).(StepContext)
	return sc, ok && sc != nil
}

type stepContext struct {
	name        string
	diagnostics io.Writer
}

// NewStepContext returns a StepContext for the named step that writes
// operator comments to diagnostics.
func NewStepContext(name string, diagnostics io.Writer) StepContext {
	if diagnostics == nil {
		diagnostics = io.Discard
	}
	return stepContext{name: name, diagnostics: diagnostics}
}

func (s stepContext) StepName() string       { return s.name }
func (s stepContext) Diagnostics() io.Writer { return s.diagnostics }
