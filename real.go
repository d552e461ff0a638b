package apmath

// Real is the capability contract every algorithm in this package consumes.
// A type satisfying Real supplies exact decimal primitives; the package
// derives all transcendental and special functions from them.
//
// Values are immutable: every operation returns a new value and leaves its
// operands untouched. Binary operations produce a result at the larger of the
// two operand precisions.
//
// Cmp is only meaningful for non-NaN operands; algorithms in this package
// test IsNaN before ordering. FromString must accept decimal literals in
// base 10 (including scientific notation) as well as "NaN", "Infinity" and
// "-Infinity". The From* constructors inherit the receiver's precision, which
// is how generic code conjures constants at the right digit count.
type Real[T any] interface {
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Quo(y T) T
	Rem(y T) T
	Neg() T
	Abs() T

	Sqrt() T
	Exp() T
	Ln() T
	Log10() T
	Pow(y T) T
	Hypot(y T) T

	Cmp(y T) int
	Signbit() bool
	IsZero() bool
	IsInteger() bool
	IsNaN() bool
	IsInf() bool

	FromInt64(v int64) T
	FromUint64(v uint64) T
	FromString(s string) (T, error)
	Int64() (int64, bool)

	Prec() uint32
	WithPrec(prec uint32) T

	String() string
}

// MaxIterations caps every convergence-driven loop (Taylor sums, the
// arctangent halving chain, the gamma asymptotic sum). A sum that has not
// converged when the cap is hit yields NaN rather than a silent partial
// result.
const MaxIterations = 1000

// workPrec returns the elevated digit count used for intermediate
// computation targeting prec digits.
func workPrec(prec uint32) uint32 {
	w := prec + prec/2
	if w < prec+4 {
		w = prec + 4
	}
	return w
}

func isSpecial[T Real[T]](x T) bool { return x.IsNaN() || x.IsInf() }

func nan[T Real[T]](like T) T {
	v, _ := like.FromString("NaN")
	return v
}

func inf[T Real[T]](like T, negative bool) T {
	s := "Infinity"
	if negative {
		s = "-Infinity"
	}
	v, _ := like.FromString(s)
	return v
}

// magExp returns the decimal magnitude of x, i.e. floor(log10 |x|).
// The second result is false for zero and special values.
func magExp[T Real[T]](x T) (int64, bool) {
	if x.IsZero() || isSpecial(x) {
		return 0, false
	}
	l := x.Abs().Log10()
	n, ok := l.Int64()
	if !ok {
		return 0, false
	}
	if l.Signbit() && l.Cmp(l.FromInt64(n)) != 0 {
		n--
	}
	return n, true
}
