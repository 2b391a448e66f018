// Package estimator implements stochastic estimation of the Hessian trace.
//
// The estimator averages second-order directional derivatives vᵀH(x)v along
// random probe vectors. For any probe distribution with zero mean and
// identity second moment, E[vᵀHv] = trace(H), so the sample mean is an
// unbiased estimate of the Laplacian of f at x that never materializes the
// d×d Hessian.
package estimator

import (
	"fmt"
	"math"

	"github.com/stde-ml/stde/internal/parallel"
	"github.com/stde-ml/stde/internal/probe"
	"github.com/stde-ml/stde/internal/taylor"
	"gonum.org/v1/gonum/stat"
)

// Config configures a trace estimation run.
type Config struct {
	// Samples is the number of probe directions to average. The Monte
	// Carlo error shrinks as 1/√Samples.
	Samples int

	// Mode selects the probe distribution.
	Mode probe.Mode

	// Seed for reproducibility. -1 = random.
	Seed int64

	// Workers caps the parallelism of probe evaluations.
	// 0 = one per CPU, 1 = sequential.
	Workers int
}

// DefaultConfig returns sensible defaults for trace estimation.
func DefaultConfig() Config {
	return Config{
		Samples: 1000,
		Mode:    probe.Dense,
		Seed:    -1,
		Workers: 0,
	}
}

// Result is the outcome of a trace estimation run.
type Result struct {
	// Value is f(x), the zeroth-order term of the expansion.
	Value float64

	// Trace is the Monte Carlo estimate of trace(H(x)).
	Trace float64

	// StdErr is the standard error of Trace. In Sparse mode it carries
	// the without-replacement correction and is exactly 0 when Samples
	// equals the dimension.
	StdErr float64

	// Samples is the number of probes that entered the average.
	Samples int
}

// Estimator estimates the Hessian trace of scalar functions.
//
// An Estimator holds configuration only. Every call draws a fresh sampler
// seeded from the configuration, so identical calls yield bit-identical
// results regardless of Workers.
type Estimator struct {
	config Config
}

// New creates a new estimator with the given configuration.
func New(config Config) *Estimator {
	return &Estimator{config: config}
}

// Estimate runs the estimator on a hyperdual function. The directional
// derivatives are exact; all estimation error is Monte Carlo error.
func (e *Estimator) Estimate(f taylor.Func, x []float64) (Result, error) {
	return e.EstimateSource(taylor.Hyperdual(f), x)
}

// EstimateFD runs the estimator on a black-box function using central
// differences for the directional derivatives.
func (e *Estimator) EstimateFD(f taylor.RealFunc, x []float64) (Result, error) {
	return e.EstimateSource(taylor.FiniteDiff(f), x)
}

// EstimateSource runs the estimator against any derivative source.
//
// The probe batch is drawn up front from a sampler seeded per call.
// Evaluations run in parallel into per-probe slots and are reduced in index
// order, so the float result does not depend on goroutine scheduling. Any
// probe error aborts the run with no partial result; the lowest-index
// failure is the one reported.
func (e *Estimator) EstimateSource(src taylor.Source, x []float64) (Result, error) {
	if src == nil {
		panic("estimator: nil source")
	}

	d := len(x)
	n := e.config.Samples

	sampler, err := probe.NewSampler(probe.Config{
		Dim:  d,
		Mode: e.config.Mode,
		Seed: e.config.Seed,
	})
	if err != nil {
		return Result{}, fmt.Errorf("estimate: %w", err)
	}
	probes, err := sampler.Draw(n)
	if err != nil {
		return Result{}, fmt.Errorf("estimate: %w", err)
	}

	vals := make([]float64, n)
	quads := make([]float64, n)
	errs := make([]error, n)

	parallel.For(n, func(i int) {
		val, _, d2, err := src.Taylor2(x, probes[i])
		if err != nil {
			errs[i] = err
			return
		}
		vals[i] = val
		quads[i] = d2
	}, e.parallelConfig())

	for i, perr := range errs {
		if perr != nil {
			return Result{}, fmt.Errorf("estimate: probe %d: %w", i, perr)
		}
	}

	trace := stat.Mean(quads, nil)
	var stderr float64
	if n > 1 {
		stderr = stat.StdErr(stat.StdDev(quads, nil), float64(n))
	}
	if e.config.Mode == probe.Sparse {
		// One-hot probes have second moment I/d; rescale to undo it. The
		// √(1-n/d) factor corrects for sampling without replacement and
		// vanishes when the batch exhausts every direction.
		trace *= float64(d)
		stderr *= float64(d) * math.Sqrt(1-float64(n)/float64(d))
	}

	return Result{
		Value:   vals[0],
		Trace:   trace,
		StdErr:  stderr,
		Samples: n,
	}, nil
}

func (e *Estimator) parallelConfig() parallel.Config {
	cfg := parallel.DefaultConfig()
	if e.config.Workers > 0 {
		cfg.Enabled = e.config.Workers > 1
		cfg.NumWorkers = e.config.Workers
	}
	return cfg
}
