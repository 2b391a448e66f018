// Copyright 2025 The STDE Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package estimator provides stochastic estimation of the Hessian trace.
//
// # Overview
//
// The Laplacian of a scalar function f at a point x is the trace of its
// Hessian, trace(H(x)). Materializing H costs O(d²) function evaluations;
// this package estimates the trace from n ≪ d² evaluations instead by
// averaging second-order directional derivatives along random probes:
//
//	E[vᵀHv] = trace(H)   whenever E[v] = 0 and E[vvᵀ] = I
//
// Each probe needs one hyperdual function evaluation and no Hessian storage.
//
// # Basic Usage
//
//	import (
//	    "github.com/stde-ml/stde/estimator"
//	    "gonum.org/v1/gonum/num/hyperdual"
//	)
//
//	func main() {
//	    f := func(x []hyperdual.Number) hyperdual.Number {
//	        var sum hyperdual.Number
//	        for _, xi := range x {
//	            sum = hyperdual.Add(sum, hyperdual.Mul(xi, xi))
//	        }
//	        return sum
//	    }
//
//	    est := estimator.New(estimator.DefaultConfig())
//	    res, err := est.Estimate(f, []float64{1, 1, 1, 1, 1})
//	    // res.Value ≈ 5, res.Trace ≈ 10
//	}
//
// # Probe Modes
//
// Three probe distributions are available via the probe package:
//   - Dense: Rademacher ±1 coordinates. The workhorse; exact on isotropic
//     curvature.
//   - Sparse: one-hot basis vectors without replacement. With Samples equal
//     to the dimension the estimate is the exact diagonal sum.
//   - Normal: standard Gaussian coordinates.
//
// # Determinism
//
// A non-negative Seed makes runs bit-identical: probes are drawn up front
// from a sampler owned by the run, and results are reduced in probe order
// no matter how many workers evaluate them.
//
// # Black-Box Functions
//
// Functions that cannot be written against hyperdual arithmetic can be
// estimated through EstimateFD, which swaps the exact engine for central
// differences at the cost of truncation error in each probe.
package estimator
