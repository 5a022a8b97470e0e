package generator

import "context"

// Shape is the expected form of a generator response.
type Shape int

const (
	ShapeText Shape = iota
	ShapeJSON
)

// Request is one call to the language model.
type Request struct {
	// Instruction is the templated task description.
	Instruction string
	// Context is the material the instruction operates on.
	Context string
	Shape   Shape
	// MaxOutputTokens overrides the configured default when positive.
	MaxOutputTokens int
}

// Generator wraps a language-model service. Implementations make exactly one
// external request per call and never retry; failures are reported as
// ErrUnavailable or ErrMalformedResponse.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Func adapts a plain function to Generator.
type Func func(ctx context.Context, req Request) (string, error)

func (f Func) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
