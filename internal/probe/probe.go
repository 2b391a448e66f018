// Package probe provides random probe vector generation for stochastic
// trace estimation.
//
// This package implements the probe distributions used by the estimator
// and owns the generator state behind every randomized draw.
package probe

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Mode selects the probe vector distribution.
type Mode int

const (
	// Dense draws i.i.d. Rademacher vectors: every coordinate is ±1 with
	// equal probability. E[v vᵀ] = I.
	Dense Mode = iota

	// Sparse draws one-hot basis vectors with indices chosen uniformly
	// without replacement. E[v vᵀ] = I/d; the estimator compensates by
	// rescaling its mean.
	Sparse

	// Normal draws i.i.d. standard Gaussian vectors. E[v vᵀ] = I.
	Normal
)

// String returns the flag-friendly name of the mode.
func (m Mode) String() string {
	switch m {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	case Normal:
		return "normal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a flag-friendly name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "dense":
		return Dense, nil
	case "sparse":
		return Sparse, nil
	case "normal":
		return Normal, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

// Config configures probe vector generation.
type Config struct {
	// Dim is the dimensionality of the probed space.
	Dim int

	// Mode selects the probe distribution.
	Mode Mode

	// Seed for reproducibility. -1 = random.
	Seed int64
}

// DefaultConfig returns sensible defaults for the given dimension.
func DefaultConfig(dim int) Config {
	return Config{
		Dim:  dim,
		Mode: Dense,
		Seed: -1,
	}
}

// Sampler draws probe vectors from a configurable distribution.
//
// A sampler owns its generator state exclusively. Draws advance it
// sequentially, so identical configurations produce identical batches no
// matter how the caller later evaluates them.
type Sampler struct {
	config Config
	rng    *rand.Rand
	normal distuv.Normal
}

// NewSampler creates a new sampler with the given configuration.
func NewSampler(config Config) (*Sampler, error) {
	if config.Dim <= 0 {
		return nil, fmt.Errorf("probe dimension %d: %w", config.Dim, ErrInvalidDimension)
	}
	switch config.Mode {
	case Dense, Sparse, Normal:
	default:
		return nil, fmt.Errorf("mode %d: %w", int(config.Mode), ErrUnknownMode)
	}

	var src *rand.PCG
	if config.Seed >= 0 {
		src = rand.NewPCG(uint64(config.Seed), uint64(config.Seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64()) //nolint:gosec // User requested random seed
	}

	return &Sampler{
		config: config,
		rng:    rand.New(src),
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}, nil
}

// Draw returns n probe vectors of length Dim.
//
// In Sparse mode n must not exceed Dim: indices are sampled without
// replacement, and with n == Dim the batch enumerates every basis
// direction exactly once.
func (s *Sampler) Draw(n int) ([][]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("probe count %d: %w", n, ErrInvalidSampleCount)
	}
	d := s.config.Dim

	probes := make([][]float64, n)
	switch s.config.Mode {
	case Dense:
		for i := range probes {
			v := make([]float64, d)
			for j := range v {
				if s.rng.IntN(2) == 0 {
					v[j] = 1
				} else {
					v[j] = -1
				}
			}
			probes[i] = v
		}

	case Sparse:
		if n > d {
			return nil, fmt.Errorf("%d sparse probes exceed dimension %d: %w", n, d, ErrInvalidSampleCount)
		}
		// Uniform without replacement: a seeded permutation truncated to n.
		for i, idx := range s.rng.Perm(d)[:n] {
			v := make([]float64, d)
			v[idx] = 1
			probes[i] = v
		}

	case Normal:
		for i := range probes {
			v := make([]float64, d)
			for j := range v {
				v[j] = s.normal.Rand()
			}
			probes[i] = v
		}
	}

	return probes, nil
}
