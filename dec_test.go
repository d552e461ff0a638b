package apmath

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// test precision (significant digits)
const testPrec = 50

func td(s string) Dec { return MustDec(s, testPrec) }
func ti(v int64) Dec  { return DecFromInt64(v, testPrec) }

func f64(d Dec) float64 {
	v, _ := strconv.ParseFloat(d.String(), 64)
	return v
}

// within reports |a-b| <= tol (absolute, tol given as a decimal literal).
func within(a, b Dec, tol string) bool {
	return a.Sub(b).Abs().Cmp(MustDec(tol, testPrec)) <= 0
}

func TestParseDec(t *testing.T) {
	for _, s := range []string{"0", "1.5", "-2e10", "3.25", "1e-40", "NaN", "Infinity", "-Infinity"} {
		_, err := ParseDec(s, testPrec)
		require.NoError(t, err, "ParseDec %q", s)
	}
	_, err := ParseDec("abc", testPrec)
	require.Error(t, err)
	_, err = ParseDec("1.2.3", testPrec)
	require.Error(t, err)
}

func TestParseDecRounds(t *testing.T) {
	d := MustDec("1.23456789", 5)
	assert.Equal(t, "1.2346", d.String())
	assert.Equal(t, uint32(5), d.Prec())
}

func TestZeroValueUsable(t *testing.T) {
	var d Dec
	assert.True(t, d.IsZero())
	assert.Equal(t, uint32(DefaultPrec), d.Prec())
	assert.Equal(t, 0, d.Add(DecFromInt64(1, 0)).Cmp(DecFromInt64(1, 0)))
}

func TestPrecisionPropagation(t *testing.T) {
	a := DecFromInt64(2, 30)
	b := DecFromInt64(3, 50)
	assert.Equal(t, uint32(50), a.Add(b).Prec())
	assert.Equal(t, uint32(50), b.Mul(a).Prec())
	assert.Equal(t, uint32(30), a.Neg().Prec())

	third := DecFromInt64(1, 10).Quo(DecFromInt64(3, 10))
	assert.Equal(t, "0.3333333333", third.String())
	assert.Equal(t, "0.33333", third.WithPrec(5).String())
}

func TestSpecials(t *testing.T) {
	zero := ti(0)
	assert.True(t, zero.Quo(zero).IsNaN(), "0/0")
	assert.True(t, ti(1).Quo(zero).IsInf(), "1/0")
	assert.True(t, ti(-1).Sqrt().IsNaN(), "sqrt(-1)")
	assert.True(t, ti(-1).Ln().IsNaN(), "ln(-1)")
	assert.True(t, DecNaN(testPrec).IsNaN())
	assert.True(t, DecInf(false, testPrec).IsInf())
	assert.True(t, DecInf(true, testPrec).Signbit())
	// NaN propagates through arithmetic
	assert.True(t, DecNaN(testPrec).Add(ti(1)).IsNaN())
}

func TestIsInteger(t *testing.T) {
	assert.True(t, td("42").IsInteger())
	assert.True(t, td("-7").IsInteger())
	assert.True(t, td("1e2").IsInteger())
	assert.True(t, td("3.000").IsInteger())
	assert.False(t, td("3.5").IsInteger())
	assert.False(t, DecNaN(testPrec).IsInteger())
	assert.False(t, DecInf(false, testPrec).IsInteger())
}

func TestInt64(t *testing.T) {
	n, ok := td("3.7").Int64()
	require.True(t, ok)
	assert.Equal(t, int64(3), n) // truncates toward zero

	n, ok = td("-3.7").Int64()
	require.True(t, ok)
	assert.Equal(t, int64(-3), n)

	_, ok = DecNaN(testPrec).Int64()
	assert.False(t, ok)
	_, ok = td("1e30").Int64()
	assert.False(t, ok)
}

func TestHypot(t *testing.T) {
	assert.Equal(t, 0, ti(3).Hypot(ti(4)).Cmp(ti(5)))
	assert.Equal(t, 0, ti(-3).Hypot(ti(4)).Cmp(ti(5)))
	assert.True(t, ti(3).Hypot(DecNaN(testPrec)).IsNaN())
	h := ti(3).Hypot(DecInf(true, testPrec))
	assert.True(t, h.IsInf())
	assert.False(t, h.Signbit())
}

func TestFromConstructors(t *testing.T) {
	assert.Equal(t, 0, DecFromUint64(1<<63, testPrec).Cmp(td("9223372036854775808")))
	assert.Equal(t, 0, DecFromFloat64(0.5, testPrec).Cmp(td("0.5")))
	proto := NewDec(20)
	assert.Equal(t, uint32(20), proto.FromInt64(7).Prec())
	d, err := proto.FromString("2.5")
	require.NoError(t, err)
	assert.Equal(t, uint32(20), d.Prec())
}
