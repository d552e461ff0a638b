package apmath

// expm1 returns e^x - 1 at x's precision, elevating by the number of digits
// the subtraction cancels so small arguments keep full accuracy.
func expm1[T Real[T]](x T) T {
	if x.IsZero() || x.IsNaN() {
		return x
	}
	if x.IsInf() {
		if x.Signbit() {
			return x.FromInt64(-1)
		}
		return x
	}
	w := x.Prec()
	xe := x
	if e, ok := magExp(x); ok && e < 0 {
		if e < -int64(w)-2 {
			return x // e^x - 1 == x at this precision
		}
		xe = x.WithPrec(w + uint32(-e) + 2)
	}
	return xe.Exp().Sub(xe.FromInt64(1)).WithPrec(w)
}

// log1p returns ln(1 + x) at x's precision, elevating so the 1+x sum keeps
// x's leading digits.
func log1p[T Real[T]](x T) T {
	if x.IsZero() || x.IsNaN() {
		return x
	}
	if x.IsInf() {
		if x.Signbit() {
			return nan(x)
		}
		return x
	}
	w := x.Prec()
	xe := x
	if e, ok := magExp(x); ok && e < 0 {
		if e < -int64(w)-2 {
			return x // ln(1+x) == x at this precision
		}
		xe = x.WithPrec(w + uint32(-e) + 2)
	}
	return xe.FromInt64(1).Add(xe).Ln().WithPrec(w)
}

// Sinh returns the hyperbolic sine of x.
func Sinh[T Real[T]](x T) T {
	p := x.Prec()
	if x.IsZero() || isSpecial(x) {
		return x // sinh(+-0) = +-0, sinh(+-Inf) = +-Inf, NaN propagates
	}
	w := workPrec(p)
	xw := x.WithPrec(w)
	one := xw.FromInt64(1)
	two := xw.FromInt64(2)
	var r T
	if xw.Abs().Cmp(one.Quo(two)) < 0 {
		// (e^x-1)(e^x+1)/(2e^x) avoids the cancellation of the direct
		// difference near zero; extra digits cover the e^x-1 subtraction.
		if e, ok := magExp(x); ok && e < 0 {
			xw = x.WithPrec(w + uint32(-e) + 2)
			one = xw.FromInt64(1)
			two = xw.FromInt64(2)
		}
		ex := xw.Exp()
		r = ex.Sub(one).Mul(ex.Add(one)).Quo(two.Mul(ex))
	} else {
		ex := xw.Exp()
		r = ex.Sub(one.Quo(ex)).Quo(two)
	}
	return r.WithPrec(p)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh[T Real[T]](x T) T {
	p := x.Prec()
	if x.IsNaN() {
		return x
	}
	if x.IsInf() {
		return inf(x, false)
	}
	if x.IsZero() {
		return x.FromInt64(1)
	}
	w := workPrec(p)
	xw := x.WithPrec(w)
	ex := xw.Exp()
	return ex.Add(xw.FromInt64(1).Quo(ex)).Quo(xw.FromInt64(2)).WithPrec(p)
}

// tanhSaturation is the magnitude beyond which tanh is +-1 at any practical
// precision; it spares computing e^x at extreme exponents.
const tanhSaturation = 100

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Real[T]](x T) T {
	p := x.Prec()
	if x.IsZero() || x.IsNaN() {
		return x
	}
	one := x.FromInt64(1)
	if x.IsInf() || x.Abs().Cmp(x.FromInt64(tanhSaturation)) > 0 {
		if x.Signbit() {
			return one.Neg()
		}
		return one
	}
	w := workPrec(p)
	xw := x.WithPrec(w)
	two := xw.FromInt64(2)
	// tanh(x) = expm1(2x) / (expm1(2x) + 2)
	e2 := expm1(two.Mul(xw))
	return e2.Quo(e2.Add(two)).WithPrec(p)
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[T Real[T]](x T) T {
	p := x.Prec()
	if x.IsZero() || isSpecial(x) {
		return x
	}
	// Odd symmetry; the positive branch keeps every term of the identity
	// below free of cancellation.
	if x.Signbit() {
		return Asinh(x.Neg()).Neg()
	}
	w := workPrec(p)
	xw := x.WithPrec(w)
	one := xw.FromInt64(1)
	// asinh(x) = log1p(x*(x/(sqrt(x^2+1)+1) + 1))
	t := xw.Quo(xw.Mul(xw).Add(one).Sqrt().Add(one)).Add(one)
	return log1p(xw.Mul(t)).WithPrec(p)
}

// Acosh returns the inverse hyperbolic cosine of x; NaN below 1.
func Acosh[T Real[T]](x T) T {
	p := x.Prec()
	if x.IsNaN() {
		return x
	}
	one := x.FromInt64(1)
	if x.IsInf() {
		if x.Signbit() {
			return nan(x)
		}
		return x
	}
	switch x.Cmp(one) {
	case -1:
		return nan(x)
	case 0:
		return x.FromInt64(0)
	}
	w := workPrec(p)
	xw := x.WithPrec(w)
	onew := xw.FromInt64(1)
	// acosh(x) = ln(x + sqrt(x^2-1))
	return xw.Add(xw.Mul(xw).Sub(onew).Sqrt()).Ln().WithPrec(p)
}

// Atanh returns the inverse hyperbolic tangent of x; exactly +-1 maps to
// signed Infinity, beyond that NaN.
func Atanh[T Real[T]](x T) T {
	p := x.Prec()
	if x.IsZero() || x.IsNaN() {
		return x
	}
	one := x.FromInt64(1)
	switch a := x.Abs(); {
	case x.IsInf() || a.Cmp(one) > 0:
		return nan(x)
	case a.Cmp(one) == 0:
		return inf(x, x.Signbit())
	}
	w := workPrec(p)
	xw := x.WithPrec(w)
	two := xw.FromInt64(2)
	// atanh(x) = log1p(2x/(1-x)) / 2
	return log1p(two.Mul(xw).Quo(xw.FromInt64(1).Sub(xw))).Quo(two).WithPrec(p)
}
