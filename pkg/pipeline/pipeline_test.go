package pipeline

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyreg/pkg/core"
	"polyreg/pkg/data"
	"polyreg/pkg/dataprep"
	"polyreg/pkg/model"
)

// quadratic builds a table where name = 2 + value - 0.5*age + 0.25*value*age.
func quadratic(t *testing.T) *data.Table {
	t.Helper()
	var b strings.Builder
	b.WriteString("id,value,age,name\n")
	rows := [][2]float64{{1, 20}, {2, 35}, {3, 22}, {4, 41}, {5, 30}, {6, 19}, {7, 55}, {8, 27}}
	for i, r := range rows {
		v, a := r[0], r[1]
		fmt.Fprintf(&b, "%d,%g,%g,%g\n", i, v, a, 2+v-0.5*a+0.25*v*a)
	}
	tbl, err := data.ReadTable(strings.NewReader(b.String()), data.Options{})
	require.NoError(t, err)
	return tbl
}

func TestRunDefault(t *testing.T) {
	res, err := Run(quadratic(t), DefaultSchema(), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "value", "age", "value^2", "value age", "age^2"}, res.FeatureNames)
	assert.InDeltaSlice(t, []float64{0, 1, -0.5, 0, 0.25, 0}, res.Coef, 1e-7)
	assert.InDelta(t, 2.0, res.Intercept, 1e-6)
	assert.Equal(t, 5, res.Rank)
	assert.InDeltaSlice(t, res.Y, res.Predictions, 1e-7)
	assert.InDelta(t, 1.0, res.R2, 1e-9)
	assert.Nil(t, res.Classes)
}

func TestRunNoInterceptKeepsBiasCoefficient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FitIntercept = false

	res, err := Run(quadratic(t), DefaultSchema(), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.Coef[0], 1e-6)
	assert.Equal(t, 0.0, res.Intercept)
}

func TestRunTargetEncoding(t *testing.T) {
	in := "value,age,name\n1,2,ann\n2,3,bob\n3,5,ann\n4,4,cy\n"
	tbl, err := data.ReadTable(strings.NewReader(in), data.Options{})
	require.NoError(t, err)

	_, err = Run(tbl, DefaultSchema(), DefaultConfig())
	require.ErrorIs(t, err, data.ErrNotNumeric)

	cfg := DefaultConfig()
	cfg.EncodeTarget = true
	res, err := Run(tbl, DefaultSchema(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"ann", "bob", "cy"}, res.Classes)
	assert.Equal(t, []float64{0, 1, 0, 2}, res.Y)
	assert.Len(t, res.Coef, 6)
}

func TestRunMissingColumn(t *testing.T) {
	s := Schema{Features: []string{"value", "height"}, Target: "name"}
	_, err := Run(quadratic(t), s, DefaultConfig())
	require.ErrorIs(t, err, data.ErrColumnNotFound)
}

func TestRunInvalidDegree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Degree = -1
	_, err := Run(quadratic(t), DefaultSchema(), cfg)
	require.ErrorIs(t, err, dataprep.ErrInvalidDegree)
}

func TestRunDegreeZeroWithoutBias(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Degree = 0
	cfg.IncludeBias = false
	_, err := Run(quadratic(t), DefaultSchema(), cfg)
	require.ErrorIs(t, err, dataprep.ErrNoOutput)
}

func TestPipelinePredict(t *testing.T) {
	X, err := core.FromSlice([][]float64{{1}, {2}, {3}, {4}})
	require.NoError(t, err)
	y := []float64{1, 4, 9, 16}

	p := NewPipeline(model.NewLinearRegression(), &dataprep.PolynomialFeatures{Degree: 2})
	require.NoError(t, p.Fit(X, y))

	Xn, err := core.FromSlice([][]float64{{5}})
	require.NoError(t, err)
	pred, err := p.Predict(Xn)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, pred[0], 1e-8)

	_, err = p.Predict(core.NewMatrix(1, 2))
	require.ErrorIs(t, err, dataprep.ErrFeatureMismatch)

	require.ErrorIs(t, NewPipeline(nil).Fit(X, y), ErrNoModel)
}
