// Package matrixstats computes descriptive statistics for a 3x3 matrix
// built from exactly nine numbers. Every statistic is reported along three
// views: per column (axis0), per row (axis1), and over the flattened matrix.
package matrixstats

import (
	"math"

	"github.com/statlab/census-api/internal/domain"
)

const dim = 3

// AxisStats holds a single statistic computed along each view of the matrix.
type AxisStats struct {
	Axis0     [dim]float64 `json:"axis0"`
	Axis1     [dim]float64 `json:"axis1"`
	Flattened float64      `json:"flattened"`
}

// Result maps each descriptive statistic to its three views.
type Result struct {
	Mean     AxisStats `json:"mean"`
	Variance AxisStats `json:"variance"`
	StdDev   AxisStats `json:"standard_deviation"`
	Max      AxisStats `json:"max"`
	Min      AxisStats `json:"min"`
	Sum      AxisStats `json:"sum"`
}

// Compute calculates mean, variance, standard deviation, max, min, and sum
// for the row-major 3x3 reshape of values. Variance and standard deviation
// use the population definition (divide by N).
// Returns domain.ErrInvalidInput unless values contains exactly nine finite
// numbers.
func Compute(values []float64) (*Result, error) {
	if err := domain.ValidateMatrixValues(values); err != nil {
		return nil, err
	}

	// Row-major reshape: element (i, j) lives at values[i*dim+j].
	var rows, cols [dim][]float64
	for i := 0; i < dim; i++ {
		rows[i] = make([]float64, dim)
		cols[i] = make([]float64, dim)
	}
	for idx, v := range values {
		rows[idx/dim][idx%dim] = v
		cols[idx%dim][idx/dim] = v
	}

	apply := func(reduce func([]float64) float64) AxisStats {
		var s AxisStats
		for i := 0; i < dim; i++ {
			s.Axis0[i] = reduce(cols[i])
			s.Axis1[i] = reduce(rows[i])
		}
		s.Flattened = reduce(values)
		return s
	}

	return &Result{
		Mean:     apply(mean),
		Variance: apply(variance),
		StdDev:   apply(stddev),
		Max:      apply(max),
		Min:      apply(min),
		Sum:      apply(sum),
	}, nil
}

func sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}

func mean(x []float64) float64 {
	return sum(x) / float64(len(x))
}

// variance computes the population variance in a single pass.
func variance(x []float64) float64 {
	n := float64(len(x))
	s, sq := 0.0, 0.0
	for _, v := range x {
		s += v
		sq += v * v
	}
	m := s / n
	return (sq / n) - (m * m)
}

func stddev(x []float64) float64 {
	return math.Sqrt(variance(x))
}

func max(x []float64) float64 {
	m := x[0]
	for _, v := range x[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func min(x []float64) float64 {
	m := x[0]
	for _, v := range x[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
