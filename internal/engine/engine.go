package engine

import (
	"fmt"
	"sync"

	"leasescore/internal/benchmark"
	"leasescore/internal/leasemath"
	"leasescore/internal/model"
	"leasescore/internal/optimize"
	"leasescore/internal/risk"
	"leasescore/internal/scoring"
)

// Engine evaluates lease deals. It holds no state, so one Engine can be shared freely.
type Engine struct{}

func New() *Engine { return &Engine{} }

// Evaluate validates, normalizes and scores a single deal.
// On invalid input it returns an error wrapping model.ErrInvalidInput and no result.
func (e *Engine) Evaluate(in model.DealInputs) (*model.EvaluationResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	norm := in.Normalize()

	derived := leasemath.Derive(norm)

	return &model.EvaluationResult{
		Inputs:        norm,
		Derived:       derived,
		Score:         scoring.Score(norm, derived),
		Benchmark:     benchmark.Compare(norm, derived),
		Risks:         risk.Assess(norm, derived),
		Optimizations: optimize.Find(norm, derived),
	}, nil
}

// NamedDeal is one entry of a batch.
type NamedDeal struct {
	Name   string
	Inputs model.DealInputs
}

// BatchResult pairs a deal name with either its result or the error that prevented one.
type BatchResult struct {
	Name   string
	Result *model.EvaluationResult
	Err    error
}

// EvaluateAll evaluates every deal in the batch. Results keep the batch order; a failing deal
// does not stop the others.
func (e *Engine) EvaluateAll(deals []NamedDeal) []BatchResult {
	out := make([]BatchResult, len(deals))

	var wg sync.WaitGroup
	for i, d := range deals {
		wg.Add(1)
		go func(i int, d NamedDeal) {
			defer wg.Done()
			res, err := e.Evaluate(d.Inputs)
			if err != nil {
				err = fmt.Errorf("deal %q: %w", d.Name, err)
			}
			out[i] = BatchResult{Name: d.Name, Result: res, Err: err}
		}(i, d)
	}
	wg.Wait()

	return out
}
