// Copyright 2025 The STDE Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package probe provides random probe vector generation for stochastic
// trace estimation.
//
// Probe distributions share one contract: zero mean and a known second
// moment, which is what makes the averaged quadratic form vᵀHv an unbiased
// trace estimate. The estimator package consumes samplers internally;
// this package is exposed for callers who want the raw vectors.
//
// Example:
//
//	sampler, err := probe.NewSampler(probe.Config{Dim: 10, Mode: probe.Sparse, Seed: 42})
//	if err != nil {
//	    return err
//	}
//	vectors, err := sampler.Draw(10) // every basis direction exactly once
package probe

import (
	internalprobe "github.com/stde-ml/stde/internal/probe"
)

// Mode selects the probe vector distribution.
type Mode = internalprobe.Mode

// Probe distributions.
const (
	// Dense draws i.i.d. Rademacher vectors: ±1 coordinates.
	Dense = internalprobe.Dense
	// Sparse draws one-hot basis vectors without replacement.
	Sparse = internalprobe.Sparse
	// Normal draws i.i.d. standard Gaussian vectors.
	Normal = internalprobe.Normal
)

// Config configures probe vector generation.
type Config = internalprobe.Config

// Sampler draws probe vectors from a configurable distribution.
type Sampler = internalprobe.Sampler

// DefaultConfig returns sensible defaults for the given dimension:
// dense probes and a random seed.
func DefaultConfig(dim int) Config {
	return internalprobe.DefaultConfig(dim)
}

// NewSampler creates a new sampler with the given configuration.
func NewSampler(config Config) (*Sampler, error) {
	return internalprobe.NewSampler(config)
}

// ParseMode converts a flag-friendly name ("dense", "sparse", "normal")
// into a Mode.
func ParseMode(s string) (Mode, error) {
	return internalprobe.ParseMode(s)
}

// Errors reported by sampler construction and draws.
var (
	ErrInvalidDimension   = internalprobe.ErrInvalidDimension
	ErrInvalidSampleCount = internalprobe.ErrInvalidSampleCount
	ErrUnknownMode        = internalprobe.ErrUnknownMode
)
