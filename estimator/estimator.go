// Copyright 2025 The STDE Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package estimator

import (
	internalestimator "github.com/stde-ml/stde/internal/estimator"
	"github.com/stde-ml/stde/internal/probe"
	"github.com/stde-ml/stde/internal/taylor"
)

// Config configures a trace estimation run.
type Config = internalestimator.Config

// Result is the outcome of a trace estimation run.
type Result = internalestimator.Result

// Estimator estimates the Hessian trace of scalar functions.
type Estimator = internalestimator.Estimator

// DefaultConfig returns sensible defaults: 1000 dense probes, a random
// seed and one worker per CPU.
func DefaultConfig() Config {
	return internalestimator.DefaultConfig()
}

// New creates a new estimator with the given configuration.
//
// Example:
//
//	est := estimator.New(estimator.Config{
//	    Samples: 1000,
//	    Mode:    probe.Dense,
//	    Seed:    42,
//	})
//	res, err := est.Estimate(f, x)
func New(config Config) *Estimator {
	return internalestimator.New(config)
}

// Errors surfaced by estimation runs. Validation failures are reported
// before any probe is drawn; ErrNonDifferentiable propagates from the
// first failing probe with no partial result.
var (
	ErrInvalidDimension   = probe.ErrInvalidDimension
	ErrInvalidSampleCount = probe.ErrInvalidSampleCount
	ErrNonDifferentiable  = taylor.ErrNonDifferentiable
)
