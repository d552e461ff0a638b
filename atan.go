package apmath

// Atan returns the arctangent of x expressed in DefaultUnit, principal value
// in (-pi/2, pi/2).
func Atan[T Real[T]](x T) T { return AtanU(x, DefaultUnit) }

// AtanU is Atan with an explicit result unit.
func AtanU[T Real[T]](x T, u Unit) T {
	p := x.Prec()
	r := atanRad(x.WithPrec(workPrec(p)))
	return fromRadians(r, u).WithPrec(p)
}

// atanRad returns atan x in radians at x's precision.
func atanRad[T Real[T]](x T) T {
	p := x.Prec()
	if x.IsNaN() || x.IsZero() {
		return x
	}
	if x.IsInf() {
		r := halfPiAt(x, p)
		if x.Signbit() {
			return r.Neg()
		}
		return r
	}
	w := workPrec(p)
	xw := x.WithPrec(w)
	one := xw.FromInt64(1)
	a := xw.Abs()
	invert := a.Cmp(one) > 0
	if invert {
		a = one.Quo(a)
	}
	// Tangent half-angle reduction: a <- a/(1+sqrt(1+a^2)) halves the angle.
	// Down at 0.1 the series needs only a handful of terms.
	tenth := one.Quo(xw.FromInt64(10))
	halvings := 0
	for i := 0; i < MaxIterations && a.Cmp(tenth) > 0; i++ {
		a = a.Quo(one.Add(one.Add(a.Mul(a)).Sqrt()))
		halvings++
	}
	r := atanTaylor(a)
	for ; halvings > 0; halvings-- {
		r = r.Add(r)
	}
	if invert {
		r = halfPiAt(xw, w).Sub(r)
	}
	if x.Signbit() {
		r = r.Neg()
	}
	return r.WithPrec(p)
}

// atanTaylor sums a - a^3/3 + a^5/5 - ... for |a| well below 1, stopping
// once two consecutive partial sums compare equal at current precision.
func atanTaylor[T Real[T]](a T) T {
	if a.IsZero() {
		return a
	}
	aa := a.Mul(a)
	pow := a
	sum := a
	negate := true
	for k := int64(3); k < 2*MaxIterations; k += 2 {
		pow = pow.Mul(aa)
		term := pow.Quo(a.FromInt64(k))
		var next T
		if negate {
			next = sum.Sub(term)
		} else {
			next = sum.Add(term)
		}
		if next.Cmp(sum) == 0 {
			return next
		}
		sum = next
		negate = !negate
	}
	return nan(a)
}

// Atan2 returns the angle of the point (x, y) in (-pi, pi], expressed in
// DefaultUnit. Every special combination of zero, negative and infinite
// operands yields the exact table value; NaN propagates.
func Atan2[T Real[T]](y, x T) T { return Atan2U(y, x, DefaultUnit) }

// Atan2U is Atan2 with an explicit result unit.
func Atan2U[T Real[T]](y, x T, u Unit) T {
	p := y.Prec()
	if q := x.Prec(); q > p {
		p = q
	}
	if y.IsNaN() || x.IsNaN() {
		return nan(y).WithPrec(p)
	}
	w := workPrec(p)
	signed := func(v T) T {
		if y.Signbit() {
			return v.Neg()
		}
		return v
	}
	var r T
	switch {
	case y.IsZero():
		if x.Signbit() && !x.IsNaN() {
			r = signed(piAt(y, w)) // x < 0 or x == -0: +-pi
		} else {
			return y.WithPrec(p) // +-0, sign of y preserved, any unit
		}
	case y.IsInf():
		switch {
		case x.IsInf() && !x.Signbit():
			r = signed(piAt(y, w).Quo(y.FromInt64(4).WithPrec(w)))
		case x.IsInf():
			q := piAt(y, w)
			r = signed(q.Mul(y.FromInt64(3)).Quo(y.FromInt64(4).WithPrec(w)))
		default:
			r = signed(halfPiAt(y, w))
		}
	case x.IsZero():
		r = signed(halfPiAt(y, w))
	case x.IsInf():
		if x.Signbit() {
			r = signed(piAt(y, w))
		} else {
			return signed(y.FromInt64(0)).WithPrec(p)
		}
	default:
		a := atanRad(y.WithPrec(w).Quo(x.WithPrec(w)))
		if x.Signbit() {
			if y.Signbit() {
				a = a.Sub(piAt(y, w))
			} else {
				a = a.Add(piAt(y, w))
			}
		}
		r = a
	}
	return fromRadians(r, u).WithPrec(p)
}

// Asin returns the arcsine of x in DefaultUnit; NaN outside [-1, 1].
func Asin[T Real[T]](x T) T { return AsinU(x, DefaultUnit) }

func AsinU[T Real[T]](x T, u Unit) T {
	p := x.Prec()
	if x.IsNaN() || x.IsZero() {
		return x
	}
	one := x.FromInt64(1)
	if x.IsInf() || x.Abs().Cmp(one) > 0 {
		return nan(x)
	}
	w := workPrec(p)
	xw := x.WithPrec(w)
	onew := xw.FromInt64(1)
	// asin(x) = 2*atan(x / (1 + sqrt(1 - x^2)))
	den := onew.Add(onew.Sub(xw.Mul(xw)).Sqrt())
	r := atanRad(xw.Quo(den))
	return fromRadians(r.Add(r), u).WithPrec(p)
}

// Acos returns the arccosine of x in DefaultUnit; NaN outside [-1, 1].
func Acos[T Real[T]](x T) T { return AcosU(x, DefaultUnit) }

func AcosU[T Real[T]](x T, u Unit) T {
	p := x.Prec()
	if x.IsNaN() {
		return x
	}
	one := x.FromInt64(1)
	if x.IsInf() || x.Abs().Cmp(one) > 0 {
		return nan(x)
	}
	// The endpoints would put a zero denominator under the half-angle
	// identity, so they are answered directly.
	if x.Cmp(one) == 0 {
		return x.FromInt64(0)
	}
	if x.Cmp(one.Neg()) == 0 {
		return fromRadians(piAt(x, workPrec(p)), u).WithPrec(p)
	}
	w := workPrec(p)
	xw := x.WithPrec(w)
	onew := xw.FromInt64(1)
	// acos(x) = 2*atan(sqrt(1 - x^2) / (1 + x))
	r := atanRad(onew.Sub(xw.Mul(xw)).Sqrt().Quo(onew.Add(xw)))
	return fromRadians(r.Add(r), u).WithPrec(p)
}
