package apmath

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// DefaultPrec is the digit count used when a Dec is constructed with
// precision 0 (IEEE 754-2008 decimal128 significand width).
const DefaultPrec = 34

// Dec is an arbitrary-precision decimal backed by cockroachdb/apd,
// implementing Real[Dec]. The zero value is a usable 0 at DefaultPrec.
//
// A Dec is immutable; the digit count rides with the value and every
// operation rounds its result to the larger operand precision.
type Dec struct {
	v    *apd.Decimal
	prec uint32
}

// apdCtx builds a throwaway apd context at the given digit count. Traps are
// cleared so domain violations surface as NaN/Infinity results instead of
// errors, per the package error model.
func apdCtx(prec uint32) *apd.Context {
	c := apd.BaseContext.WithPrecision(prec)
	c.Traps = 0
	c.Rounding = apd.RoundHalfEven
	return c
}

// NewDec returns 0 at the given precision (0 means DefaultPrec).
func NewDec(prec uint32) Dec {
	return Dec{v: new(apd.Decimal), prec: prec}
}

// DecFromInt64 returns v at the given precision.
func DecFromInt64(v int64, prec uint32) Dec {
	return Dec{v: new(apd.Decimal).SetInt64(v), prec: prec}
}

// DecFromUint64 returns v at the given precision.
func DecFromUint64(v uint64, prec uint32) Dec {
	d, _ := ParseDec(strconv.FormatUint(v, 10), prec)
	return d
}

// DecFromFloat64 returns the shortest decimal representation of f at the
// given precision.
func DecFromFloat64(f float64, prec uint32) Dec {
	d, err := ParseDec(strconv.FormatFloat(f, 'g', -1, 64), prec)
	if err != nil {
		return DecNaN(prec)
	}
	return d
}

// ParseDec parses a decimal literal ("1.5", "-2e10", "NaN", "Infinity", ...)
// at the given precision.
func ParseDec(s string, prec uint32) (Dec, error) {
	v, _, err := new(apd.Decimal).SetString(s)
	if err != nil {
		return Dec{}, errors.Wrapf(err, "apmath: invalid decimal literal %q", s)
	}
	d := Dec{v: v, prec: prec}
	return d.WithPrec(d.digits()), nil
}

// MustDec panics on error.
func MustDec(s string, prec uint32) Dec {
	d, err := ParseDec(s, prec)
	if err != nil {
		panic(err)
	}
	return d
}

// DecNaN returns NaN at the given precision.
func DecNaN(prec uint32) Dec {
	return Dec{v: &apd.Decimal{Form: apd.NaN}, prec: prec}
}

// DecInf returns signed Infinity at the given precision.
func DecInf(negative bool, prec uint32) Dec {
	return Dec{v: &apd.Decimal{Form: apd.Infinite, Negative: negative}, prec: prec}
}

func (d Dec) dec() *apd.Decimal {
	if d.v == nil {
		return new(apd.Decimal)
	}
	return d.v
}

func (d Dec) digits() uint32 {
	if d.prec == 0 {
		return DefaultPrec
	}
	return d.prec
}

// Prec returns the digit count carried by d.
func (d Dec) Prec() uint32 { return d.digits() }

// WithPrec returns d rounded to the given digit count (0 means DefaultPrec).
func (d Dec) WithPrec(prec uint32) Dec {
	if prec == 0 {
		prec = DefaultPrec
	}
	r := new(apd.Decimal)
	if _, err := apdCtx(prec).Round(r, d.dec()); err != nil {
		r.Form = apd.NaN
	}
	return Dec{v: r, prec: prec}
}

type unaryOp = func(*apd.Context, *apd.Decimal, *apd.Decimal) (apd.Condition, error)
type binaryOp = func(*apd.Context, *apd.Decimal, *apd.Decimal, *apd.Decimal) (apd.Condition, error)

func (d Dec) unary(op unaryOp) Dec {
	p := d.digits()
	r := new(apd.Decimal)
	if _, err := op(apdCtx(p), r, d.dec()); err != nil {
		r.Set(&apd.Decimal{Form: apd.NaN})
	}
	return Dec{v: r, prec: p}
}

func (d Dec) binary(y Dec, op binaryOp) Dec {
	p := d.digits()
	if q := y.digits(); q > p {
		p = q
	}
	r := new(apd.Decimal)
	if _, err := op(apdCtx(p), r, d.dec(), y.dec()); err != nil {
		r.Set(&apd.Decimal{Form: apd.NaN})
	}
	return Dec{v: r, prec: p}
}

// Arithmetic.

func (d Dec) Add(y Dec) Dec { return d.binary(y, (*apd.Context).Add) }
func (d Dec) Sub(y Dec) Dec { return d.binary(y, (*apd.Context).Sub) }
func (d Dec) Mul(y Dec) Dec { return d.binary(y, (*apd.Context).Mul) }
func (d Dec) Quo(y Dec) Dec { return d.binary(y, (*apd.Context).Quo) }
func (d Dec) Rem(y Dec) Dec { return d.binary(y, (*apd.Context).Rem) }
func (d Dec) Neg() Dec      { return d.unary((*apd.Context).Neg) }
func (d Dec) Abs() Dec      { return d.unary((*apd.Context).Abs) }

func (d Dec) Sqrt() Dec     { return d.unary((*apd.Context).Sqrt) }
func (d Dec) Exp() Dec      { return d.unary((*apd.Context).Exp) }
func (d Dec) Ln() Dec       { return d.unary((*apd.Context).Ln) }
func (d Dec) Log10() Dec    { return d.unary((*apd.Context).Log10) }
func (d Dec) Pow(y Dec) Dec { return d.binary(y, (*apd.Context).Pow) }

// Hypot returns sqrt(d*d + y*y), computed at elevated precision.
func (d Dec) Hypot(y Dec) Dec {
	p := d.digits()
	if q := y.digits(); q > p {
		p = q
	}
	if d.IsNaN() || y.IsNaN() {
		return DecNaN(p)
	}
	if d.IsInf() || y.IsInf() {
		return DecInf(false, p)
	}
	w := workPrec(p)
	a, b := d.WithPrec(w).Abs(), y.WithPrec(w).Abs()
	return a.Mul(a).Add(b.Mul(b)).Sqrt().WithPrec(p)
}

// Comparison and predicates.

// Cmp returns -1, 0 or +1. Ordering involving NaN is not meaningful;
// callers test IsNaN first.
func (d Dec) Cmp(y Dec) int { return d.dec().Cmp(y.dec()) }

func (d Dec) Signbit() bool { return d.dec().Negative }
func (d Dec) IsZero() bool  { return d.dec().Form == apd.Finite && d.dec().IsZero() }
func (d Dec) IsInf() bool   { return d.dec().Form == apd.Infinite }

func (d Dec) IsNaN() bool {
	f := d.dec().Form
	return f == apd.NaN || f == apd.NaNSignaling
}

func (d Dec) IsInteger() bool {
	x := d.dec()
	if x.Form != apd.Finite {
		return false
	}
	var r apd.Decimal
	r.Reduce(x)
	return r.Exponent >= 0
}

// Construction (prototype style: results inherit d's precision).

func (d Dec) FromInt64(v int64) Dec   { return DecFromInt64(v, d.digits()) }
func (d Dec) FromUint64(v uint64) Dec { return DecFromUint64(v, d.digits()) }

func (d Dec) FromString(s string) (Dec, error) { return ParseDec(s, d.digits()) }

// Int64 returns d truncated toward zero, and false if d is special or does
// not fit in an int64.
func (d Dec) Int64() (int64, bool) {
	if d.dec().Form != apd.Finite {
		return 0, false
	}
	c := apdCtx(25)
	c.Rounding = apd.RoundDown
	var t apd.Decimal
	if _, err := c.RoundToIntegralValue(&t, d.dec()); err != nil {
		return 0, false
	}
	n, err := t.Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

// Formatting.

func (d Dec) String() string { return d.dec().String() }

// Text formats d like apd/big.Float Text: 'e', 'f' or 'G'.
func (d Dec) Text(format byte) string { return d.dec().Text(format) }

// Convenience transcendental methods, delegating to the generic library.
// Angles are interpreted and returned in DefaultUnit.

func (d Dec) Sin() Dec             { return Sin(d) }
func (d Dec) Cos() Dec             { return Cos(d) }
func (d Dec) Tan() Dec             { return Tan(d) }
func (d Dec) SinCos() (Dec, Dec)   { return SinCos(d) }
func (d Dec) Asin() Dec            { return Asin(d) }
func (d Dec) Acos() Dec            { return Acos(d) }
func (d Dec) Atan() Dec            { return Atan(d) }
func (d Dec) Atan2(x Dec) Dec      { return Atan2(d, x) }
func (d Dec) Sinh() Dec            { return Sinh(d) }
func (d Dec) Cosh() Dec            { return Cosh(d) }
func (d Dec) Tanh() Dec            { return Tanh(d) }
func (d Dec) Asinh() Dec           { return Asinh(d) }
func (d Dec) Acosh() Dec           { return Acosh(d) }
func (d Dec) Atanh() Dec           { return Atanh(d) }
func (d Dec) Gamma() Dec           { return Gamma(d) }
func (d Dec) Factorial() Dec       { return Factorial(d) }
