package apmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func halfPi50() Dec { return Pi(NewDec(60)).Quo(DecFromInt64(2, 60)).WithPrec(testPrec) }

func TestAtanBasic(t *testing.T) {
	assert.True(t, AtanU(ti(0), Radians).IsZero())
	assert.True(t, AtanU(DecNaN(testPrec), Radians).IsNaN())
	quarterPi := Pi(NewDec(60)).Quo(DecFromInt64(4, 60)).WithPrec(testPrec)
	assert.True(t, within(AtanU(ti(1), Radians), quarterPi, "1e-48"))
	for _, x := range []string{"0.3", "2", "-5.5", "100"} {
		got := AtanU(td(x), Radians)
		require.True(t, scalar.EqualWithinAbsOrRel(f64(got), math.Atan(f64(td(x))), 1e-13, 1e-13), "atan %s", x)
	}
}

func TestAtanInfinity(t *testing.T) {
	assert.Equal(t, 0, AtanU(DecInf(false, testPrec), Radians).Cmp(halfPi50()))
	assert.Equal(t, 0, AtanU(DecInf(true, testPrec), Radians).Cmp(halfPi50().Neg()))
}

func TestAtanDegrees(t *testing.T) {
	assert.Equal(t, 0, AtanU(ti(1), Degrees).Cmp(ti(45)))
	assert.Equal(t, 0, AtanU(DecInf(false, testPrec), Gradians).Cmp(ti(100)))
}

func TestAtan2Table(t *testing.T) {
	pi := Pi(NewDec(testPrec))
	negZero := td("-0")

	// y == 0
	assert.Equal(t, 0, Atan2U(ti(0), ti(1), Radians).Cmp(ti(0)))
	z := Atan2U(negZero, ti(1), Radians)
	assert.True(t, z.IsZero())
	assert.True(t, z.Signbit(), "sign of zero y preserved")
	assert.Equal(t, 0, Atan2U(ti(0), ti(-1), Radians).Cmp(pi))
	assert.Equal(t, 0, Atan2U(negZero, ti(-1), Radians).Cmp(pi.Neg()))
	assert.True(t, Atan2U(ti(0), ti(0), Radians).IsZero())

	// x == 0
	assert.Equal(t, 0, Atan2U(ti(2), ti(0), Radians).Cmp(halfPi50()))
	assert.Equal(t, 0, Atan2U(ti(-2), ti(0), Radians).Cmp(halfPi50().Neg()))

	// infinite operands
	inf := DecInf(false, testPrec)
	ninf := DecInf(true, testPrec)
	quarterPi := Pi(NewDec(60)).Quo(DecFromInt64(4, 60)).WithPrec(testPrec)
	threeQuarterPi := Pi(NewDec(60)).Mul(DecFromInt64(3, 60)).Quo(DecFromInt64(4, 60)).WithPrec(testPrec)
	assert.Equal(t, 0, Atan2U(inf, inf, Radians).Cmp(quarterPi))
	assert.Equal(t, 0, Atan2U(ninf, inf, Radians).Cmp(quarterPi.Neg()))
	assert.Equal(t, 0, Atan2U(inf, ninf, Radians).Cmp(threeQuarterPi))
	assert.Equal(t, 0, Atan2U(inf, ti(7), Radians).Cmp(halfPi50()))
	assert.Equal(t, 0, Atan2U(ti(7), ninf, Radians).Cmp(pi))
	assert.True(t, Atan2U(ti(7), inf, Radians).IsZero())

	// NaN propagates
	assert.True(t, Atan2U(DecNaN(testPrec), ti(1), Radians).IsNaN())
	assert.True(t, Atan2U(ti(1), DecNaN(testPrec), Radians).IsNaN())
}

func TestAtan2Quadrants(t *testing.T) {
	quarterPi := Pi(NewDec(60)).Quo(DecFromInt64(4, 60)).WithPrec(testPrec)
	assert.True(t, within(Atan2U(ti(1), ti(1), Radians), quarterPi, "1e-48"))
	for _, c := range [][2]string{{"1", "2"}, {"1", "-2"}, {"-1", "2"}, {"-1", "-2"}, {"3.5", "0.1"}} {
		y, x := td(c[0]), td(c[1])
		got := Atan2U(y, x, Radians)
		require.True(t, scalar.EqualWithinAbsOrRel(f64(got), math.Atan2(f64(y), f64(x)), 1e-13, 1e-13),
			"atan2(%s, %s)", c[0], c[1])
	}
}

func TestAsin(t *testing.T) {
	assert.True(t, AsinU(ti(0), Radians).IsZero())
	assert.True(t, within(AsinU(ti(1), Radians), halfPi50(), "1e-48"))
	assert.True(t, within(AsinU(ti(-1), Radians), halfPi50().Neg(), "1e-48"))
	assert.True(t, scalar.EqualWithinAbsOrRel(f64(AsinU(td("0.5"), Radians)), math.Asin(0.5), 1e-13, 1e-13))
	// outside [-1, 1]
	assert.True(t, AsinU(td("1.5"), Radians).IsNaN())
	assert.True(t, AsinU(DecInf(false, testPrec), Radians).IsNaN())
}

func TestAcos(t *testing.T) {
	pi := Pi(NewDec(testPrec))
	assert.True(t, AcosU(ti(1), Radians).IsZero())
	assert.Equal(t, 0, AcosU(ti(-1), Radians).Cmp(pi))
	assert.True(t, within(AcosU(ti(0), Radians), halfPi50(), "1e-48"))
	assert.True(t, scalar.EqualWithinAbsOrRel(f64(AcosU(td("0.5"), Radians)), math.Acos(0.5), 1e-13, 1e-13))
	assert.True(t, AcosU(td("-2"), Radians).IsNaN())
	assert.True(t, AcosU(DecNaN(testPrec), Radians).IsNaN())
}

func TestAsinSinRoundTrip(t *testing.T) {
	for _, x := range []string{"-1.5", "-0.7", "0.4", "1.2"} {
		d := td(x)
		got := AsinU(SinU(d, Radians), Radians)
		assert.True(t, within(got, d, "1e-46"), "asin(sin(%s)) = %s", x, got)
	}
}
