package dataprep

import (
	"errors"
	"fmt"
	"strings"

	"polyreg/pkg/core"
)

var (
	ErrInvalidDegree   = errors.New("dataprep: degree must be >= 0")
	ErrNotFitted       = errors.New("dataprep: transformer is not fitted")
	ErrFeatureMismatch = errors.New("dataprep: feature count mismatch")
	ErrNoOutput        = errors.New("dataprep: expansion has no output features")
)

// PolynomialFeatures expands each row into all monomials of its features up
// to Degree. Columns are grouped by total degree, ascending; within a degree
// they follow lexicographic combinations with replacement of feature indices.
// For [a, b] at degree 2 that is [1, a, b, a^2, a*b, b^2].
type PolynomialFeatures struct {
	Degree          int
	InteractionOnly bool // drop terms with a repeated feature (a^2, b^2, ...)
	IncludeBias     bool

	nIn   int
	terms [][]int // feature indices multiplied together, one slice per output column
}

// NewPolynomialFeatures returns a transformer with a bias column and all terms.
func NewPolynomialFeatures(degree int) *PolynomialFeatures {
	return &PolynomialFeatures{Degree: degree, IncludeBias: true}
}

// Fit records the input width and precomputes the output terms. An
// expansion that would produce no columns (degree 0 without a bias) fails.
func (p *PolynomialFeatures) Fit(X *core.Matrix) error {
	if p.Degree < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDegree, p.Degree)
	}
	_, c := X.Dims()
	terms := combinations(c, p.Degree, p.InteractionOnly, p.IncludeBias)
	if len(terms) == 0 {
		return fmt.Errorf("%w: degree %d, bias %t, %d input features", ErrNoOutput, p.Degree, p.IncludeBias, c)
	}
	p.nIn = c
	p.terms = terms
	return nil
}

// Transform evaluates every fitted term for each row of X.
func (p *PolynomialFeatures) Transform(X *core.Matrix) (*core.Matrix, error) {
	if p.terms == nil {
		return nil, ErrNotFitted
	}
	r, c := X.Dims()
	if c != p.nIn {
		return nil, fmt.Errorf("%w: fitted on %d features, got %d", ErrFeatureMismatch, p.nIn, c)
	}
	out := core.NewMatrix(r, len(p.terms))
	for i := 0; i < r; i++ {
		row := X.Row(i)
		for k, term := range p.terms {
			v := 1.0
			for _, j := range term {
				v *= row[j]
			}
			out.Set(i, k, v)
		}
	}
	return out, nil
}

// FitTransform fits on X and transforms it.
func (p *PolynomialFeatures) FitTransform(X *core.Matrix) (*core.Matrix, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// NOutputFeatures is the number of output columns, valid after Fit.
func (p *PolynomialFeatures) NOutputFeatures() int { return len(p.terms) }

// FeatureNames names the output columns from the input names: "1" for the
// bias, "a^2" for powers and "a b" for products.
func (p *PolynomialFeatures) FeatureNames(input []string) ([]string, error) {
	if p.terms == nil {
		return nil, ErrNotFitted
	}
	if len(input) != p.nIn {
		return nil, fmt.Errorf("%w: fitted on %d features, got %d names", ErrFeatureMismatch, p.nIn, len(input))
	}
	names := make([]string, len(p.terms))
	for k, term := range p.terms {
		if len(term) == 0 {
			names[k] = "1"
			continue
		}
		var parts []string
		for i := 0; i < len(term); {
			j := i
			for j < len(term) && term[j] == term[i] {
				j++
			}
			if pow := j - i; pow > 1 {
				parts = append(parts, fmt.Sprintf("%s^%d", input[term[i]], pow))
			} else {
				parts = append(parts, input[term[i]])
			}
			i = j
		}
		names[k] = strings.Join(parts, " ")
	}
	return names, nil
}

// combinations lists the index tuples for every output column.
func combinations(n, degree int, interactionOnly, bias bool) [][]int {
	terms := [][]int{}
	if bias {
		terms = append(terms, []int{})
	}
	for d := 1; d <= degree; d++ {
		if interactionOnly && d > n {
			break
		}
		var walk func(start int, cur []int)
		walk = func(start int, cur []int) {
			if len(cur) == d {
				terms = append(terms, append([]int(nil), cur...))
				return
			}
			for j := start; j < n; j++ {
				next := j
				if interactionOnly {
					next = j + 1
				}
				walk(next, append(cur, j))
			}
		}
		walk(0, make([]int, 0, d))
	}
	return terms
}
