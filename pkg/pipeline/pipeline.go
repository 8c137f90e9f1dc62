package pipeline

import (
	"errors"
	"fmt"

	"polyreg/pkg/core"
	"polyreg/pkg/model"
)

var ErrNoModel = errors.New("pipeline: no model configured")

// Transformer interface for fit/transform pattern.
type Transformer interface {
	Fit(X *core.Matrix) error
	Transform(X *core.Matrix) (*core.Matrix, error)
}

// Pipeline chains transformers in front of a model.
type Pipeline struct {
	steps []Transformer
	model model.Model
}

func NewPipeline(m model.Model, steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps, model: m}
}

// Fit fits every step on the output of the previous one, then the model.
func (p *Pipeline) Fit(X *core.Matrix, y []float64) error {
	if p.model == nil {
		return ErrNoModel
	}
	for i, step := range p.steps {
		if err := step.Fit(X); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		var err error
		if X, err = step.Transform(X); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return p.model.Fit(X, y)
}

// Transform runs X through the fitted steps.
func (p *Pipeline) Transform(X *core.Matrix) (*core.Matrix, error) {
	for i, step := range p.steps {
		var err error
		if X, err = step.Transform(X); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return X, nil
}

// Predict transforms X and predicts with the fitted model.
func (p *Pipeline) Predict(X *core.Matrix) ([]float64, error) {
	if p.model == nil {
		return nil, ErrNoModel
	}
	Xt, err := p.Transform(X)
	if err != nil {
		return nil, err
	}
	return p.model.Predict(Xt)
}
