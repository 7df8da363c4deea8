package model

import "gonum.org/v1/gonum/mat"

// linear computes intercept + coef·row. coef must be non-empty and row must
// have the same length.
func linear(intercept float64, coef []float64) func([]float64) float64 {
	w := mat.NewVecDense(len(coef), coef)
	return func(row []float64) float64 {
		return intercept + mat.Dot(w, mat.NewVecDense(len(row), row))
	}
}
