package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// Std computes the population standard deviation of a slice.
func Std(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	_, v := stat.PopMeanVariance(x, nil)
	return math.Sqrt(v)
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	return floats.Min(x), floats.Max(x)
}

// Summary describes one numeric column.
type Summary struct {
	Name     string
	Count    int
	Mean     float64
	Std      float64
	Min, Max float64
}

// Describe summarizes a numeric column.
func Describe(name string, x []float64) Summary {
	s := Summary{Name: name, Count: len(x), Mean: Mean(x), Std: Std(x)}
	s.Min, s.Max = MinMax(x)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: count=%d mean=%.6g std=%.6g min=%.6g max=%.6g", s.Name, s.Count, s.Mean, s.Std, s.Min, s.Max)
}
