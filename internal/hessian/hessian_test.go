package hessian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stde-ml/stde/internal/probe"
	"github.com/stde-ml/stde/internal/taylor"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/hyperdual"
)

// f(x₀,x₁) = x₀² + 3x₀x₁ + 2x₁², H = [[2,3],[3,4]].
func mixedQuadratic(x []hyperdual.Number) hyperdual.Number {
	return hyperdual.Add(
		hyperdual.Mul(x[0], x[0]),
		hyperdual.Add(
			hyperdual.Scale(3, hyperdual.Mul(x[0], x[1])),
			hyperdual.Scale(2, hyperdual.Mul(x[1], x[1]))))
}

func mixedQuadraticReal(x []float64) float64 {
	return x[0]*x[0] + 3*(x[0]*x[1]) + 2*(x[1]*x[1])
}

func gaussian(x []hyperdual.Number) hyperdual.Number {
	var sum hyperdual.Number
	for _, xi := range x {
		sum = hyperdual.Add(sum, hyperdual.Mul(xi, xi))
	}
	return hyperdual.Exp(hyperdual.Scale(-0.5, sum))
}

func TestDense_MixedQuadratic(t *testing.T) {
	h, err := Dense(mixedQuadratic, []float64{0.7, -1.3})
	require.NoError(t, err)

	// Constant Hessian, recovered exactly at any point.
	assert.Equal(t, 2.0, h.At(0, 0))
	assert.Equal(t, 3.0, h.At(0, 1))
	assert.Equal(t, 3.0, h.At(1, 0))
	assert.Equal(t, 4.0, h.At(1, 1))

	assert.Equal(t, 6.0, Trace(h))
}

func TestDense_MatchesFiniteDifferences(t *testing.T) {
	x := []float64{0.7, -1.3}

	exact, err := Dense(mixedQuadratic, x)
	require.NoError(t, err)
	approx, err := DenseFD(mixedQuadraticReal, x)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, exact.At(i, j), approx.At(i, j), 1e-4, "entry (%d,%d)", i, j)
		}
	}
}

func TestLaplacian_MatchesDenseTrace(t *testing.T) {
	x := []float64{0.3, -0.2, 0.5}

	h, err := Dense(gaussian, x)
	require.NoError(t, err)
	lap, err := Laplacian(gaussian, x)
	require.NoError(t, err)

	// Same diagonal evaluations, same summation order.
	assert.Equal(t, Trace(h), lap)
}

func TestLaplacian_GaussianAtOrigin(t *testing.T) {
	// H of exp(-|x|²/2) at the origin is -I, so the Laplacian is -d.
	for _, d := range []int{1, 3, 10} {
		lap, err := Laplacian(gaussian, make([]float64, d))
		require.NoError(t, err)
		assert.Equal(t, -float64(d), lap, "d=%d", d)
	}
}

func TestDense_NonDifferentiable(t *testing.T) {
	f := func(x []hyperdual.Number) hyperdual.Number {
		return hyperdual.Sqrt(x[0])
	}

	_, err := Dense(f, []float64{-1, 2})
	assert.ErrorIs(t, err, taylor.ErrNonDifferentiable)

	_, err = Laplacian(f, []float64{-1, 2})
	assert.ErrorIs(t, err, taylor.ErrNonDifferentiable)
}

func TestDenseFD_NonDifferentiable(t *testing.T) {
	f := func(x []float64) float64 {
		return math.Sqrt(x[0])
	}

	_, err := DenseFD(f, []float64{0, 1})
	assert.ErrorIs(t, err, taylor.ErrNonDifferentiable)
}

func TestEmptyPoint(t *testing.T) {
	_, err := Dense(mixedQuadratic, nil)
	assert.ErrorIs(t, err, probe.ErrInvalidDimension)

	_, err = DenseFD(mixedQuadraticReal, []float64{})
	assert.ErrorIs(t, err, probe.ErrInvalidDimension)

	_, err = Laplacian(mixedQuadratic, nil)
	assert.ErrorIs(t, err, probe.ErrInvalidDimension)
}

func TestNilFunctionPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = Dense(nil, []float64{1}) })
	assert.Panics(t, func() { _, _ = DenseFD(nil, []float64{1}) })
	assert.Panics(t, func() { _, _ = Laplacian(nil, []float64{1}) })
}

func TestTrace(t *testing.T) {
	h := mat.NewSymDense(3, []float64{
		1, 9, 9,
		9, 2, 9,
		9, 9, 3,
	})
	assert.Equal(t, 6.0, Trace(h))
}

func BenchmarkDenseVsLaplacian(b *testing.B) {
	d := 50
	x := make([]float64, d)
	for i := range x {
		x[i] = 0.01 * float64(i)
	}

	b.Run("dense", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := Dense(gaussian, x); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("laplacian", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := Laplacian(gaussian, x); err != nil {
				b.Fatal(err)
			}
		}
	})
}
