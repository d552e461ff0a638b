package apmath

// Complex is a complex number over any Real implementation. Equality is
// component-wise; the argument convention is (-pi, pi]. Like the underlying
// reals, values are immutable and operations return new values.
type Complex[T Real[T]] struct {
	Re T
	Im T
}

// NewComplex returns re + i*im.
func NewComplex[T Real[T]](re, im T) Complex[T] { return Complex[T]{Re: re, Im: im} }

// NewReal returns re + 0i.
func NewReal[T Real[T]](re T) Complex[T] { return Complex[T]{Re: re, Im: re.FromInt64(0)} }

// FromPolar returns the complex number with the given magnitude and
// argument (radians).
func FromPolar[T Real[T]](r, theta T) Complex[T] {
	s, c := SinCosU(theta, Radians)
	return Complex[T]{Re: r.Mul(c), Im: r.Mul(s)}
}

func (z Complex[T]) prec() uint32 {
	p := z.Re.Prec()
	if q := z.Im.Prec(); q > p {
		p = q
	}
	return p
}

// WithPrec returns z with both components rounded to the given digit count.
func (z Complex[T]) WithPrec(prec uint32) Complex[T] {
	return Complex[T]{Re: z.Re.WithPrec(prec), Im: z.Im.WithPrec(prec)}
}

func (z Complex[T]) one() Complex[T] {
	return Complex[T]{Re: z.Re.FromInt64(1), Im: z.Re.FromInt64(0)}
}

func (z Complex[T]) zero() Complex[T] {
	return Complex[T]{Re: z.Re.FromInt64(0), Im: z.Re.FromInt64(0)}
}

func (z Complex[T]) nan() Complex[T] {
	return Complex[T]{Re: nan(z.Re), Im: nan(z.Re)}
}

// quoScalar divides both components by the small integer n.
func (z Complex[T]) quoScalar(n int64) Complex[T] {
	d := z.Re.FromInt64(n)
	return Complex[T]{Re: z.Re.Quo(d), Im: z.Im.Quo(d)}
}

// Predicates.

func (z Complex[T]) IsZero() bool { return z.Re.IsZero() && z.Im.IsZero() }
func (z Complex[T]) IsNaN() bool  { return z.Re.IsNaN() || z.Im.IsNaN() }
func (z Complex[T]) IsInf() bool  { return z.Re.IsInf() || z.Im.IsInf() }

// Equal reports exact component-wise equality (false if either side has a
// NaN component).
func (z Complex[T]) Equal(w Complex[T]) bool {
	if z.IsNaN() || w.IsNaN() {
		return false
	}
	return z.Re.Cmp(w.Re) == 0 && z.Im.Cmp(w.Im) == 0
}

// ApproxEqual reports whether z and w are exactly equal or within two units
// in the last place of the target precision, measured on the magnitude of
// the difference relative to the larger magnitude.
func (z Complex[T]) ApproxEqual(w Complex[T]) bool {
	if z.Equal(w) {
		return true
	}
	if z.IsNaN() || w.IsNaN() {
		return false
	}
	m := z.Abs()
	if n := w.Abs(); n.Cmp(m) > 0 {
		m = n
	}
	if m.IsZero() || m.IsInf() {
		return false
	}
	p := z.prec()
	if q := w.prec(); q > p {
		p = q
	}
	d := z.Sub(w).Abs()
	// 2 ulp relative: 2*10^(1-prec)
	tol := m.FromInt64(2).Mul(m.FromInt64(10).Pow(m.FromInt64(1 - int64(p))))
	return d.Quo(m).Cmp(tol) <= 0
}

// Arithmetic.

func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		Re: z.Re.Mul(w.Re).Sub(z.Im.Mul(w.Im)),
		Im: z.Re.Mul(w.Im).Add(z.Im.Mul(w.Re)),
	}
}

// Quo divides by w using the magnitude-balanced algorithm: the ratio r is
// formed from whichever component of w is larger, keeping intermediates
// near unity instead of squaring into overflow.
func (z Complex[T]) Quo(w Complex[T]) Complex[T] {
	c, d := w.Re, w.Im
	if c.Abs().Cmp(d.Abs()) >= 0 {
		r := d.Quo(c)
		den := c.Add(d.Mul(r))
		return Complex[T]{
			Re: z.Re.Add(z.Im.Mul(r)).Quo(den),
			Im: z.Im.Sub(z.Re.Mul(r)).Quo(den),
		}
	}
	r := c.Quo(d)
	den := d.Add(c.Mul(r))
	return Complex[T]{
		Re: z.Re.Mul(r).Add(z.Im).Quo(den),
		Im: z.Im.Mul(r).Sub(z.Re).Quo(den),
	}
}

// Neg returns -z.
func (z Complex[T]) Neg() Complex[T] { return Complex[T]{Re: z.Re.Neg(), Im: z.Im.Neg()} }

// Conj returns the complex conjugate.
func (z Complex[T]) Conj() Complex[T] { return Complex[T]{Re: z.Re, Im: z.Im.Neg()} }

// Inv returns 1/z.
func (z Complex[T]) Inv() Complex[T] { return z.one().Quo(z) }

// MulI returns i*z, a rotation by +90 degrees: (-im, re).
func (z Complex[T]) MulI() Complex[T] { return Complex[T]{Re: z.Im.Neg(), Im: z.Re} }

// mulNegI returns -i*z: (im, -re).
func (z Complex[T]) mulNegI() Complex[T] { return Complex[T]{Re: z.Im, Im: z.Re.Neg()} }

// Abs returns the magnitude hypot(re, im).
func (z Complex[T]) Abs() T { return z.Re.Hypot(z.Im) }

// Arg returns the argument in (-pi, pi], in radians.
func (z Complex[T]) Arg() T { return Atan2U(z.Im, z.Re, Radians) }

// Exponential-form functions.

// Exp returns e^z = e^re * (cos im + i*sin im).
func (z Complex[T]) Exp() Complex[T] {
	er := z.Re.Exp()
	s, c := SinCosU(z.Im, Radians)
	return Complex[T]{Re: er.Mul(c), Im: er.Mul(s)}
}

// Log returns the principal natural logarithm (ln |z|, arg z).
func (z Complex[T]) Log() Complex[T] {
	return Complex[T]{Re: z.Abs().Ln(), Im: z.Arg()}
}

// Sqrt returns the principal square root.
func (z Complex[T]) Sqrt() Complex[T] {
	if z.IsZero() {
		return z
	}
	r := z.Abs().Sqrt()
	s, c := SinCosU(z.Arg().Quo(z.Re.FromInt64(2)), Radians)
	return Complex[T]{Re: r.Mul(c), Im: r.Mul(s)}
}

// Pow returns z**p. Conventions: anything to the power 0 is 1 (including
// 0**0); 0 raised to a real positive power is 0, and NaN otherwise. A
// real-valued exact-integer exponent dispatches to binary powering, which is
// more accurate than the general exp(log(z)*p) path.
func (z Complex[T]) Pow(p Complex[T]) Complex[T] {
	if p.IsZero() {
		return z.one()
	}
	if z.IsZero() {
		if p.Im.IsZero() && !p.Re.Signbit() && !p.Re.IsNaN() {
			return z.zero()
		}
		return z.nan()
	}
	if p.Im.IsZero() && p.Re.IsInteger() {
		if n, ok := p.Re.Int64(); ok {
			return z.PowInt(n)
		}
	}
	return z.Log().Mul(p).Exp()
}

// PowInt returns z**n by square-and-multiply on |n|, inverting for n < 0.
func (z Complex[T]) PowInt(n int64) Complex[T] {
	if n == 0 {
		return z.one()
	}
	m := n
	if m < 0 {
		m = -m
	}
	acc := z.one()
	b := z
	for m > 0 {
		if m&1 == 1 {
			acc = acc.Mul(b)
		}
		m >>= 1
		if m > 0 {
			b = b.Mul(b)
		}
	}
	if n < 0 {
		return acc.Inv()
	}
	return acc
}

// Trigonometric and hyperbolic functions, all derived from Exp via Euler's
// identity. Arguments are always radians on the complex plane.

// Sin returns -i*(e^(iz) - e^(-iz))/2.
func (z Complex[T]) Sin() Complex[T] {
	iz := z.MulI()
	return iz.Exp().Sub(iz.Neg().Exp()).mulNegI().quoScalar(2)
}

// Cos returns (e^(iz) + e^(-iz))/2.
func (z Complex[T]) Cos() Complex[T] {
	iz := z.MulI()
	return iz.Exp().Add(iz.Neg().Exp()).quoScalar(2)
}

// Tan returns sin z / cos z.
func (z Complex[T]) Tan() Complex[T] { return z.Sin().Quo(z.Cos()) }

// Sinh returns (e^z - e^(-z))/2.
func (z Complex[T]) Sinh() Complex[T] {
	return z.Exp().Sub(z.Neg().Exp()).quoScalar(2)
}

// Cosh returns (e^z + e^(-z))/2.
func (z Complex[T]) Cosh() Complex[T] {
	return z.Exp().Add(z.Neg().Exp()).quoScalar(2)
}

// Tanh returns sinh z / cosh z.
func (z Complex[T]) Tanh() Complex[T] { return z.Sinh().Quo(z.Cosh()) }

// Asin returns -i*ln(iz + sqrt(1 - z^2)).
func (z Complex[T]) Asin() Complex[T] {
	one := z.one()
	return z.MulI().Add(one.Sub(z.Mul(z)).Sqrt()).Log().mulNegI()
}

// Acos returns -i*ln(z + i*sqrt(1 - z^2)).
func (z Complex[T]) Acos() Complex[T] {
	one := z.one()
	return z.Add(one.Sub(z.Mul(z)).Sqrt().MulI()).Log().mulNegI()
}

// Atan returns -i/2 * ln((1 + iz)/(1 - iz)).
func (z Complex[T]) Atan() Complex[T] {
	one := z.one()
	iz := z.MulI()
	return one.Add(iz).Quo(one.Sub(iz)).Log().mulNegI().quoScalar(2)
}

// Asinh returns ln(z + sqrt(z^2 + 1)).
func (z Complex[T]) Asinh() Complex[T] {
	return z.Add(z.Mul(z).Add(z.one()).Sqrt()).Log()
}

// Acosh returns ln(z + sqrt(z^2 - 1)).
func (z Complex[T]) Acosh() Complex[T] {
	return z.Add(z.Mul(z).Sub(z.one()).Sqrt()).Log()
}

// Atanh returns ln((1 + z)/(1 - z))/2.
func (z Complex[T]) Atanh() Complex[T] {
	one := z.one()
	return one.Add(z).Quo(one.Sub(z)).Log().quoScalar(2)
}
