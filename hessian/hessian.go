// Copyright 2025 The STDE Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package hessian materializes the second-derivative matrix the estimator
// only ever samples.
//
// Dense and DenseFD build the full d×d Hessian at a cost of d(d+1)/2
// function evaluations; Laplacian sums the diagonal in d evaluations. These
// are the reference computations the stochastic estimator avoids, kept for
// verification and for problems small enough not to care.
package hessian

import (
	internalhessian "github.com/stde-ml/stde/internal/hessian"
	"github.com/stde-ml/stde/taylor"
	"gonum.org/v1/gonum/mat"
)

// Dense evaluates the full Hessian of f at x exactly, one hyperdual
// evaluation per entry of the upper triangle.
func Dense(f taylor.Func, x []float64) (*mat.SymDense, error) {
	return internalhessian.Dense(f, x)
}

// DenseFD approximates the full Hessian of a black-box f at x with central
// differences.
func DenseFD(f taylor.RealFunc, x []float64) (*mat.SymDense, error) {
	return internalhessian.DenseFD(f, x)
}

// Laplacian evaluates trace(H(x)) exactly from the d diagonal entries.
func Laplacian(f taylor.Func, x []float64) (float64, error) {
	return internalhessian.Laplacian(f, x)
}

// Trace returns the trace of a materialized Hessian.
func Trace(h *mat.SymDense) float64 {
	return internalhessian.Trace(h)
}
