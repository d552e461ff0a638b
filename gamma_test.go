package apmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestGammaIntegers(t *testing.T) {
	// exact factorial fast path
	assert.Equal(t, 0, Gamma(ti(1)).Cmp(ti(1)))
	assert.Equal(t, 0, Gamma(ti(2)).Cmp(ti(1)))
	assert.Equal(t, 0, Gamma(ti(5)).Cmp(ti(24)))
	assert.Equal(t, 0, Gamma(ti(10)).Cmp(ti(362880)))
}

func TestGammaPoles(t *testing.T) {
	for _, v := range []int64{0, -1, -2, -5, -100} {
		assert.True(t, Gamma(ti(v)).IsNaN(), "gamma(%d)", v)
	}
}

func TestGammaSpecials(t *testing.T) {
	assert.True(t, Gamma(DecNaN(testPrec)).IsNaN())
	assert.True(t, Gamma(DecInf(true, testPrec)).IsNaN())
	g := Gamma(DecInf(false, testPrec))
	assert.True(t, g.IsInf())
	assert.False(t, g.Signbit())
	// magnitude cutoff
	assert.True(t, Gamma(td("2e8")).IsInf())
	assert.True(t, Gamma(td("-2.5e8")).IsInf())
}

func TestGammaHalf(t *testing.T) {
	// gamma(1/2) = sqrt(pi)
	g := Gamma(td("0.5"))
	pi := Pi(NewDec(60))
	assert.True(t, within(g, pi.Sqrt().WithPrec(testPrec), "1e-45"), "gamma(0.5) = %s", g)

	// gamma(-1/2) = -2*sqrt(pi), via reflection
	g = Gamma(td("-0.5"))
	want := pi.Sqrt().Mul(DecFromInt64(-2, 60)).WithPrec(testPrec)
	assert.True(t, within(g, want, "1e-44"), "gamma(-0.5) = %s", g)
}

func TestGammaReflectionIdentity(t *testing.T) {
	// gamma(t)*gamma(1-t) = pi/sin(pi*t) at t = 1/4
	prod := Gamma(td("0.25")).Mul(Gamma(td("0.75")))
	pi := Pi(NewDec(60))
	want := pi.Quo(SinU(pi.Quo(DecFromInt64(4, 60)), Radians)).WithPrec(testPrec)
	assert.True(t, within(prod, want, "1e-44"), "gamma(1/4)*gamma(3/4) = %s", prod)
}

func TestGammaFloat64CrossCheck(t *testing.T) {
	for _, x := range []string{"0.1", "1.5", "3.7", "7.25", "-1.5", "-3.3"} {
		d := td(x)
		want := math.Gamma(f64(d))
		require.True(t, scalar.EqualWithinAbsOrRel(f64(Gamma(d)), want, 1e-12, 1e-12), "gamma %s", x)
	}
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, 0, Factorial(ti(0)).Cmp(ti(1)))
	assert.Equal(t, 0, Factorial(ti(4)).Cmp(ti(24)))
	assert.Equal(t, 0, Factorial(ti(12)).Cmp(ti(479001600)))
	assert.True(t, Factorial(ti(-1)).IsNaN())
	// non-integer arguments interpolate through gamma
	require.True(t, scalar.EqualWithinAbsOrRel(f64(Factorial(td("0.5"))), math.Gamma(1.5), 1e-12, 1e-12))
}

func TestPermutationsCombinations(t *testing.T) {
	assert.Equal(t, 0, Permutations(ti(5), ti(2)).Cmp(ti(20)))
	assert.Equal(t, 0, Combinations(ti(5), ti(2)).Cmp(ti(10)))
	assert.Equal(t, 0, Permutations(ti(10), ti(0)).Cmp(ti(1)))
	assert.Equal(t, 0, Combinations(ti(10), ti(10)).Cmp(ti(1)))
	assert.Equal(t, 0, Combinations(ti(52), ti(5)).Cmp(ti(2598960)))
	// selecting more than available hits a gamma pole
	assert.True(t, Combinations(ti(3), ti(5)).IsNaN())
}
