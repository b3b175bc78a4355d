package pipeline

import (
	"context"
	"fmt"
)

// Query length bands used by the adaptive pipeline. Raw character length is
// a coarse proxy for complexity; a long but simple query lands in the
// complex band.
const (
	simpleMaxLen = 30
	smartMaxLen  = 100
)

// Adaptive classifies the query by length and delegates the whole run to
// the simple, smart or self-refinement pipeline. Its own contribution is
// only the composite PipelineInfo.
type Adaptive struct {
	name string
	cfg  Config
}

// NewAdaptive constructs the adaptive pipeline.
func NewAdaptive(cfg Config) *Adaptive {
	return &Adaptive{name: "AUTO: AI Selects Optimal", cfg: cfg}
}

// Name implements Pipeline.
func (p *Adaptive) Name() string { return p.name }

// Process implements Pipeline.
func (p *Adaptive) Process(ctx context.Context, query string, opts Options) (*Result, error) {
	selected := p.classify(query)

	res, err := selected.Process(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	res.PipelineInfo = fmt.Sprintf("%s → %s", p.name, selected.Name())
	return res, nil
}

// classify is a pure function of the query's character length.
func (p *Adaptive) classify(query string) Pipeline {
	switch {
	case len(query) < simpleMaxLen:
		return NewSimple(p.cfg)
	case len(query) > smartMaxLen:
		return NewSelfRefine(p.cfg)
	default:
		return NewSmart(p.cfg)
	}
}
