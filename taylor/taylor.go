// Copyright 2025 The STDE Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package taylor extracts directional Taylor expansions of scalar functions.
//
// A Source reports the value, slope and curvature of the one-dimensional
// restriction g(t) = f(x + t·v). Two engines are provided: an exact one
// over hyperdual arithmetic and a central-difference one for black-box
// functions. Both follow the derivative convention: the reported d2 is
// g''(0) = vᵀH(x)v itself, not the Taylor coefficient g''(0)/2.
//
// Example:
//
//	src := taylor.Hyperdual(func(x []hyperdual.Number) hyperdual.Number {
//	    return hyperdual.Mul(x[0], x[0])
//	})
//	val, d1, d2, err := src.Taylor2([]float64{3}, []float64{1})
//	// val = 9, d1 = 6, d2 = 2
package taylor

import (
	internaltaylor "github.com/stde-ml/stde/internal/taylor"
)

// Func is a scalar function written against hyperdual arithmetic.
type Func = internaltaylor.Func

// RealFunc is a black-box scalar function of a real vector.
type RealFunc = internaltaylor.RealFunc

// Source extracts the value and first two directional derivatives of a
// scalar function along a line.
type Source = internaltaylor.Source

// Hyperdual returns an exact Source for f. One function evaluation per
// direction, no truncation error.
func Hyperdual(f Func) Source {
	return internaltaylor.Hyperdual(f)
}

// FiniteDiff returns a central-difference Source for a black-box f, using
// the formula default step sizes.
func FiniteDiff(f RealFunc) Source {
	return internaltaylor.FiniteDiff(f)
}

// FiniteDiffStep is FiniteDiff with an explicit step size. A step of 0
// selects the formula default.
func FiniteDiffStep(f RealFunc, step float64) Source {
	return internaltaylor.FiniteDiffStep(f, step)
}

// ErrNonDifferentiable reports a non-finite value or derivative at the
// evaluation point.
var ErrNonDifferentiable = internaltaylor.ErrNonDifferentiable
