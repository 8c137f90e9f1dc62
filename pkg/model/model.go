package model

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotFitted         = errors.New("model: not fitted")
	ErrEmpty             = errors.New("model: no samples")
	ErrDimensionMismatch = errors.New("model: number of samples and targets differ")
	ErrFeatureMismatch   = errors.New("model: feature count mismatch")
	ErrSolve             = errors.New("model: least squares did not converge")
)

// Model is a generic supervised learning interface.
type Model interface {
	Fit(X mat.Matrix, y []float64) error
	Predict(X mat.Matrix) ([]float64, error)
}

// Regressor is a model that can score itself on labelled data.
type Regressor interface {
	Model
	Score(X mat.Matrix, y []float64) (float64, error)
}
