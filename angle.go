package apmath

// Unit is an angle measurement unit.
type Unit uint8

const (
	Radians Unit = iota
	Degrees
	Gradians
)

// DefaultUnit is the process-wide unit applied by the trigonometric
// functions that do not take an explicit unit (Sin, Asin, Atan2, ...).
var DefaultUnit = Radians

func (u Unit) String() string {
	switch u {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	case Gradians:
		return "gradians"
	}
	return "unit(?)"
}

// circleOf returns one full turn in the given unit, at like's precision.
func circleOf[T Real[T]](like T, u Unit) T {
	switch u {
	case Degrees:
		return like.FromInt64(360)
	case Gradians:
		return like.FromInt64(400)
	}
	return twoPiAt(like, like.Prec())
}

// reduceAngle maps an angle in unit u to radians in [0, 2pi), detecting
// right-angle multiples so that callers can bypass series evaluation.
//
// When exact is true, quadrant is the right-angle index 0..3 and rad is
// meaningless. Exactness means the reduced angle equals a quarter-circle
// multiple either exactly (always the case for integral degrees/gradians
// boundaries) or to the caller's full digit count: pi/2 has no finite
// decimal representation, so for radians the test is at the input's own
// precision.
func reduceAngle[T Real[T]](x T, u Unit) (rad T, quadrant int, exact bool) {
	p := x.Prec()
	w := workPrec(p)
	if e, ok := magExp(x); ok && e > 0 {
		w += uint32(e)
	}
	xw := x.WithPrec(w)
	c := circleOf(xw, u)
	r := xw.Rem(c)
	if r.Signbit() && !r.IsZero() {
		r = r.Add(c)
	}
	quarter := c.Quo(xw.FromInt64(4))
	m := r.Rem(quarter)
	if m.IsZero() {
		k, _ := r.Quo(quarter).Int64()
		return r, int(k) & 3, true
	}
	// Precision-level boundary match (see doc comment).
	rp := r.WithPrec(p)
	for k := int64(0); k <= 4; k++ {
		if rp.Cmp(quarter.Mul(xw.FromInt64(k)).WithPrec(p)) == 0 {
			return r, int(k) & 3, true
		}
	}
	if u != Radians {
		r = r.Mul(twoPiAt(xw, w)).Quo(c)
	}
	return r, 0, false
}

// fromRadians converts an exact-radian result into the caller's unit.
func fromRadians[T Real[T]](r T, u Unit) T {
	if u == Radians || r.IsZero() || isSpecial(r) {
		return r
	}
	var full int64 = 360
	if u == Gradians {
		full = 400
	}
	return r.Mul(r.FromInt64(full)).Quo(twoPiAt(r, r.Prec()))
}
