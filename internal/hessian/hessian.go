// Package hessian materializes the second-derivative matrix the estimator
// only ever samples.
//
// The full d×d construction costs d(d+1)/2 function evaluations and serves
// as the verification oracle for the stochastic path, which reaches the
// trace without it.
package hessian

import (
	"fmt"
	"math"

	"github.com/stde-ml/stde/internal/probe"
	"github.com/stde-ml/stde/internal/taylor"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/hyperdual"
)

// Dense evaluates the full Hessian of f at x, exactly.
//
// Entry (i, j) comes from a single hyperdual evaluation seeded with the
// basis directions eᵢ and eⱼ in the two infinitesimal channels, so no
// truncation error enters.
func Dense(f taylor.Func, x []float64) (*mat.SymDense, error) {
	if f == nil {
		panic("hessian: nil function")
	}
	d := len(x)
	if d == 0 {
		return nil, fmt.Errorf("hessian at empty point: %w", probe.ErrInvalidDimension)
	}

	h := mat.NewSymDense(d, nil)
	args := make([]hyperdual.Number, d)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			for k := range args {
				args[k] = hyperdual.Number{Real: x[k]}
			}
			args[i].E1mag = 1
			args[j].E2mag = 1

			out := f(args)
			if !isFinite(out.E1E2mag) {
				return nil, fmt.Errorf("hessian entry (%d,%d) is %v: %w", i, j, out.E1E2mag, taylor.ErrNonDifferentiable)
			}
			h.SetSym(i, j, out.E1E2mag)
		}
	}
	return h, nil
}

// DenseFD approximates the full Hessian of a black-box f at x with central
// differences.
func DenseFD(f taylor.RealFunc, x []float64) (*mat.SymDense, error) {
	if f == nil {
		panic("hessian: nil function")
	}
	d := len(x)
	if d == 0 {
		return nil, fmt.Errorf("hessian at empty point: %w", probe.ErrInvalidDimension)
	}

	h := mat.NewSymDense(d, nil)
	fd.Hessian(h, f, x, &fd.Settings{Formula: fd.Central})
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			if !isFinite(h.At(i, j)) {
				return nil, fmt.Errorf("hessian entry (%d,%d) is %v: %w", i, j, h.At(i, j), taylor.ErrNonDifferentiable)
			}
		}
	}
	return h, nil
}

// Laplacian evaluates trace(H(x)) exactly from the d diagonal entries,
// skipping the off-diagonal work Dense pays for.
func Laplacian(f taylor.Func, x []float64) (float64, error) {
	if f == nil {
		panic("hessian: nil function")
	}
	d := len(x)
	if d == 0 {
		return 0, fmt.Errorf("laplacian at empty point: %w", probe.ErrInvalidDimension)
	}

	args := make([]hyperdual.Number, d)
	var trace float64
	for i := 0; i < d; i++ {
		for k := range args {
			args[k] = hyperdual.Number{Real: x[k]}
		}
		args[i].E1mag = 1
		args[i].E2mag = 1

		out := f(args)
		if !isFinite(out.E1E2mag) {
			return 0, fmt.Errorf("diagonal entry %d is %v: %w", i, out.E1E2mag, taylor.ErrNonDifferentiable)
		}
		trace += out.E1E2mag
	}
	return trace, nil
}

// Trace returns the trace of a materialized Hessian.
func Trace(h *mat.SymDense) float64 {
	return mat.Trace(h)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
