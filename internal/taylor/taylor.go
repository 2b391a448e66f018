// Package taylor extracts directional Taylor expansions of scalar functions.
//
// Given a scalar function f and a direction v, the restriction
// g(t) = f(x + t·v) is a function of one variable. Its derivatives at t = 0
// carry the directional information the trace estimator consumes:
// g'(0) = ∇f(x)·v and g''(0) = vᵀ H(x) v.
package taylor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/hyperdual"
)

// Func is a scalar function written against hyperdual arithmetic. Functions
// built from the hyperdual package's operations carry exact first and
// second derivatives through every evaluation.
type Func func(x []hyperdual.Number) hyperdual.Number

// RealFunc is a black-box scalar function of a real vector.
type RealFunc func(x []float64) float64

// Source extracts the value and first two directional derivatives of a
// scalar function along a line.
//
// Taylor2 reports g(0), g'(0) and g''(0) for g(t) = f(x + t·v). Both
// derivatives follow the derivative convention: d2 is g''(0) = vᵀ H(x) v
// itself, not the second-order series coefficient g''(0)/2.
type Source interface {
	Taylor2(x, v []float64) (val, d1, d2 float64, err error)
}

// Compile-time checks that both engines implement Source.
var (
	_ Source = hyperdualSource{}
	_ Source = fdSource{}
)

// Hyperdual returns an exact Source for f.
//
// Every coordinate is seeded with the direction in both infinitesimal
// channels, so one evaluation of f yields the value, ∇f·v and vᵀHv with no
// truncation error.
func Hyperdual(f Func) Source {
	if f == nil {
		panic("taylor: nil function")
	}
	return hyperdualSource{f: f}
}

type hyperdualSource struct {
	f Func
}

func (s hyperdualSource) Taylor2(x, v []float64) (float64, float64, float64, error) {
	checkLengths(x, v)

	args := make([]hyperdual.Number, len(x))
	for i := range x {
		args[i] = hyperdual.Number{Real: x[i], E1mag: v[i], E2mag: v[i]}
	}

	out := s.f(args)
	if err := checkFinite(out.Real, out.E1mag, out.E1E2mag); err != nil {
		return 0, 0, 0, err
	}
	return out.Real, out.E1mag, out.E1E2mag, nil
}

// FiniteDiff returns a central-difference Source for a black-box f, using
// the formula default step sizes.
func FiniteDiff(f RealFunc) Source {
	return FiniteDiffStep(f, 0)
}

// FiniteDiffStep is FiniteDiff with an explicit step size. A step of 0
// selects the formula default.
func FiniteDiffStep(f RealFunc, step float64) Source {
	if f == nil {
		panic("taylor: nil function")
	}
	return fdSource{f: f, step: step}
}

type fdSource struct {
	f    RealFunc
	step float64
}

func (s fdSource) Taylor2(x, v []float64) (float64, float64, float64, error) {
	checkLengths(x, v)

	// g shares buf across evaluations; Concurrent must stay unset in the
	// settings below.
	buf := make([]float64, len(x))
	g := func(t float64) float64 {
		floats.AddScaledTo(buf, x, t, v)
		return s.f(buf)
	}

	g0 := g(0)
	d1 := fd.Derivative(g, 0, &fd.Settings{
		Formula: fd.Central,
		Step:    s.step,
	})
	d2 := fd.Derivative(g, 0, &fd.Settings{
		Formula:     fd.Central2nd,
		Step:        s.step,
		OriginKnown: true,
		OriginValue: g0,
	})

	if err := checkFinite(g0, d1, d2); err != nil {
		return 0, 0, 0, err
	}
	return g0, d1, d2, nil
}

func checkLengths(x, v []float64) {
	if len(x) != len(v) {
		panic(fmt.Sprintf("taylor: dimension mismatch %d != %d", len(x), len(v)))
	}
}

func checkFinite(val, d1, d2 float64) error {
	if !isFinite(val) {
		return fmt.Errorf("value %v: %w", val, ErrNonDifferentiable)
	}
	if !isFinite(d1) {
		return fmt.Errorf("first derivative %v: %w", d1, ErrNonDifferentiable)
	}
	if !isFinite(d2) {
		return fmt.Errorf("second derivative %v: %w", d2, ErrNonDifferentiable)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
