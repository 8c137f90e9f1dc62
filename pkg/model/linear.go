package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// eps is the float64 machine epsilon.
var eps = math.Nextafter(1, 2) - 1

var _ Regressor = (*LinearRegression)(nil)

// LinearRegression is ordinary least squares solved through the SVD.
// Rank-deficient designs get the minimum-norm solution, so a constant
// column (such as a polynomial bias term) ends up with a zero coefficient
// when the intercept is fitted separately.
type LinearRegression struct {
	FitIntercept bool

	Coef      []float64
	Intercept float64
	Rank      int       // effective rank of the (centred) design matrix
	Singular  []float64 // singular values of the (centred) design matrix

	fitted bool
}

// NewLinearRegression returns a model that fits an intercept.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{FitIntercept: true}
}

// Fit solves min ||X·coef + intercept - y||₂. A failed fit leaves the
// previously fitted parameters untouched.
func (m *LinearRegression) Fit(X mat.Matrix, y []float64) error {
	n, p := X.Dims()
	if n == 0 {
		return ErrEmpty
	}
	if len(y) != n {
		return fmt.Errorf("%w: %d samples, %d targets", ErrDimensionMismatch, n, len(y))
	}

	yOff := 0.0
	if m.FitIntercept {
		yOff = stat.Mean(y, nil)
	}

	coef := make([]float64, p)
	intercept := yOff
	rank := 0
	var singular []float64
	if p > 0 {
		A := mat.DenseCopyOf(X)
		b := mat.NewVecDense(n, nil)
		for i, v := range y {
			b.SetVec(i, v-yOff)
		}
		xOff := make([]float64, p)
		if m.FitIntercept {
			col := make([]float64, n)
			for j := 0; j < p; j++ {
				mat.Col(col, j, A)
				xOff[j] = stat.Mean(col, nil)
				for i := 0; i < n; i++ {
					A.Set(i, j, col[i]-xOff[j])
				}
			}
		}

		var svd mat.SVD
		if !svd.Factorize(A, mat.SVDThin) {
			return ErrSolve
		}
		singular = svd.Values(nil)
		rank = svd.Rank(eps * float64(max(n, p)))

		// an all-zero design (e.g. a single centred row) leaves coef at zero
		if rank > 0 {
			var x mat.VecDense
			svd.SolveVecTo(&x, b, rank)
			for j := 0; j < p; j++ {
				coef[j] = x.AtVec(j)
			}
		}
		if m.FitIntercept {
			intercept = yOff - mat.Dot(mat.NewVecDense(p, xOff), mat.NewVecDense(p, coef))
		}
	}

	m.Coef = coef
	m.Intercept = intercept
	m.Rank = rank
	m.Singular = singular
	m.fitted = true
	return nil
}

// Predict returns X·coef + intercept for every row of X.
func (m *LinearRegression) Predict(X mat.Matrix) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	n, p := X.Dims()
	if p != len(m.Coef) {
		return nil, fmt.Errorf("%w: fitted on %d features, got %d", ErrFeatureMismatch, len(m.Coef), p)
	}
	pred := make([]float64, n)
	if n == 0 {
		return pred, nil
	}
	if p > 0 {
		coef := mat.NewVecDense(p, append([]float64(nil), m.Coef...))
		out := mat.NewVecDense(n, pred)
		out.MulVec(X, coef)
	}
	for i := range pred {
		pred[i] += m.Intercept
	}
	return pred, nil
}

// Score returns the coefficient of determination of the predictions for X.
func (m *LinearRegression) Score(X mat.Matrix, y []float64) (float64, error) {
	pred, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(y) {
		return 0, fmt.Errorf("%w: %d samples, %d targets", ErrDimensionMismatch, len(pred), len(y))
	}
	return R2(y, pred), nil
}
