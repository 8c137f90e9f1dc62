package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"polyreg/pkg/core"
	"polyreg/pkg/data"
	"polyreg/pkg/dataprep"
	"polyreg/pkg/model"
	"polyreg/pkg/stats"
)

// Config selects the feature expansion and regression options.
type Config struct {
	Degree          int
	InteractionOnly bool
	IncludeBias     bool
	FitIntercept    bool
	// EncodeTarget label-encodes a non-numeric target instead of failing.
	EncodeTarget bool

	Logger *slog.Logger
}

// DefaultConfig is a degree 2 expansion with a bias column and a fitted intercept.
func DefaultConfig() Config {
	return Config{Degree: 2, IncludeBias: true, FitIntercept: true}
}

// Result holds the fitted parameters and the in-sample predictions.
type Result struct {
	FeatureNames []string // expanded feature names, one per coefficient
	Coef         []float64
	Intercept    float64
	Rank         int

	X           *core.Matrix // raw feature columns
	Y           []float64
	Predictions []float64
	Classes     []string // target categories by code when the target was encoded

	R2  float64
	MSE float64
}

// Run loads the schema's columns from t, expands the features, fits the
// regression and predicts over the same rows.
func Run(t *data.Table, s Schema, cfg Config) (*Result, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	X, err := t.Matrix(s.Features...)
	if err != nil {
		return nil, err
	}
	res := &Result{X: X}

	res.Y, err = t.Floats(s.Target)
	if errors.Is(err, data.ErrNotNumeric) && cfg.EncodeTarget {
		var col []string
		if col, err = t.Column(s.Target); err == nil {
			res.Y, res.Classes = dataprep.LabelEncode(col)
			log.Info("label-encoded target", "column", s.Target, "classes", len(res.Classes))
		}
	}
	if err != nil {
		return nil, err
	}

	for j, name := range s.Features {
		log.Debug("feature", "summary", stats.Describe(name, X.Col(j)).String())
	}
	log.Debug("target", "summary", stats.Describe(s.Target, res.Y).String())

	poly := &dataprep.PolynomialFeatures{
		Degree:          cfg.Degree,
		InteractionOnly: cfg.InteractionOnly,
		IncludeBias:     cfg.IncludeBias,
	}
	lr := &model.LinearRegression{FitIntercept: cfg.FitIntercept}
	p := NewPipeline(lr, poly)
	if err := p.Fit(X, res.Y); err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	if res.FeatureNames, err = poly.FeatureNames(s.Features); err != nil {
		return nil, err
	}
	log.Debug("fitted", "rows", X.R, "features", poly.NOutputFeatures(), "rank", lr.Rank)

	if res.Predictions, err = p.Predict(X); err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	res.Coef = lr.Coef
	res.Intercept = lr.Intercept
	res.Rank = lr.Rank
	res.R2 = model.R2(res.Y, res.Predictions)
	res.MSE = model.MSE(res.Y, res.Predictions)
	log.Info("regression fitted", "rows", X.R, "r2", res.R2, "mse", res.MSE)
	return res, nil
}
