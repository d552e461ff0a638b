package apmath

// Mapping from right-angle index to exact sin/cos values.
var (
	sinQuadrant = [4]int64{0, 1, 0, -1}
	cosQuadrant = [4]int64{1, 0, -1, 0}
)

// SinCos returns sin x and cos x, with x interpreted in DefaultUnit.
// Both values are always produced; discard the one you do not need.
func SinCos[T Real[T]](x T) (sin, cos T) { return SinCosU(x, DefaultUnit) }

// SinCosU is SinCos with an explicit angle unit.
func SinCosU[T Real[T]](x T, u Unit) (sin, cos T) {
	p := x.Prec()
	if isSpecial(x) {
		n := nan(x)
		return n, n
	}
	r, quadrant, exact := reduceAngle(x, u)
	if exact {
		return x.FromInt64(sinQuadrant[quadrant]), x.FromInt64(cosQuadrant[quadrant])
	}
	s, c := sinCosTaylor(r)
	return s.WithPrec(p), c.WithPrec(p)
}

// Sin returns sin x in DefaultUnit.
func Sin[T Real[T]](x T) T { s, _ := SinCos(x); return s }

// Cos returns cos x in DefaultUnit.
func Cos[T Real[T]](x T) T { _, c := SinCos(x); return c }

// Tan returns tan x in DefaultUnit; at odd right angles the cosine is an
// exact zero and the result is signed Infinity.
func Tan[T Real[T]](x T) T { return TanU(x, DefaultUnit) }

func SinU[T Real[T]](x T, u Unit) T { s, _ := SinCosU(x, u); return s }
func CosU[T Real[T]](x T, u Unit) T { _, c := SinCosU(x, u); return c }

func TanU[T Real[T]](x T, u Unit) T {
	s, c := SinCosU(x, u)
	return s.Quo(c)
}

// sinCosTaylor sums the Maclaurin series for sine and cosine together.
// x must be finite, reduced into [0, 2pi) and already carry working
// precision. A single running term t = x^(2k)/(2k+1)! is maintained by two
// divisions per step: after the first division it is the next cosine term,
// after the second the next sine term. Each sum stops independently once an
// iteration leaves it unchanged at the current precision; the final results
// are sin = s*x and cos = c.
func sinCosTaylor[T Real[T]](x T) (T, T) {
	one := x.FromInt64(1)
	xx := x.Mul(x)
	t := one
	s, c := one, one
	sdone, cdone := false, false
	negate := true
	n := int64(2)
	for i := 0; i < MaxIterations; i++ {
		t = t.Mul(xx).Quo(x.FromInt64(n))
		if !cdone {
			var next T
			if negate {
				next = c.Sub(t)
			} else {
				next = c.Add(t)
			}
			if next.Cmp(c) == 0 {
				cdone = true
			}
			c = next
		}
		t = t.Quo(x.FromInt64(n + 1))
		if !sdone {
			var next T
			if negate {
				next = s.Sub(t)
			} else {
				next = s.Add(t)
			}
			if next.Cmp(s) == 0 {
				sdone = true
			}
			s = next
		}
		if sdone && cdone {
			return s.Mul(x), c
		}
		n += 2
		negate = !negate
	}
	return nan(x), nan(x)
}
