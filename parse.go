package apmath

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseComplex parses a complex literal at like's precision. Accepts:
//
//	"a+bi", "a-bi", "bi", "i", "-i", plain real "a",
//	or the pair form "(a b)" / "(a, b)".
//
// Part numerals follow the underlying Real grammar, so scientific notation
// works in either part: "1e-5-2i" splits into real 1e-5 and imaginary -2.
// A bare imaginary marker has coefficient 1, or -1 after a lone sign.
func ParseComplex[T Real[T]](like T, s string) (Complex[T], error) {
	var z Complex[T]
	reStr, imStr, ok := splitComplex(s)
	if !ok {
		return z, errors.Errorf("apmath: invalid complex literal %q", s)
	}
	re, err := like.FromString(reStr)
	if err != nil {
		return z, errors.Wrapf(err, "apmath: real part of %q", s)
	}
	im, err := like.FromString(imStr)
	if err != nil {
		return z, errors.Wrapf(err, "apmath: imaginary part of %q", s)
	}
	return Complex[T]{Re: re, Im: im}, nil
}

// MustParseComplex panics on error.
func MustParseComplex[T Real[T]](like T, s string) Complex[T] {
	z, err := ParseComplex(like, s)
	if err != nil {
		panic(err)
	}
	return z
}

// ParseDecComplex parses a complex literal over Dec at the given precision.
func ParseDecComplex(s string, prec uint32) (Complex[Dec], error) {
	return ParseComplex(NewDec(prec), s)
}

// MustParseDecComplex panics on error.
func MustParseDecComplex(s string, prec uint32) Complex[Dec] {
	return MustParseComplex(NewDec(prec), s)
}

// splitComplex converts common literal forms into separate real/imag
// numerals.
func splitComplex(in string) (string, string, bool) {
	s := strings.TrimSpace(in)
	if s == "" {
		return "0", "0", true
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		mid := strings.TrimSpace(s[1 : len(s)-1])
		mid = strings.ReplaceAll(mid, ",", " ")
		f := strings.Fields(mid)
		switch {
		case len(f) == 1:
			return f[0], "0", true
		case len(f) >= 2:
			return f[0], f[1], true
		}
		return "", "", false
	}
	s = strings.ReplaceAll(s, "I", "i")
	if s == "i" || s == "+i" {
		return "0", "1", true
	}
	if s == "-i" {
		return "0", "-1", true
	}
	if strings.HasSuffix(s, "i") {
		core := strings.TrimSpace(s[:len(s)-1])
		idx := lastSignNotInExponent(core)
		if idx > 0 {
			re := strings.TrimSpace(core[:idx])
			im := strings.TrimSpace(core[idx:])
			// A trailing lone sign is a bare marker: "3+i" / "3-i".
			if im == "+" {
				im = "1"
			} else if im == "-" {
				im = "-1"
			}
			return re, im, true
		}
		return "0", core, true
	}
	return s, "0", true
}

// lastSignNotInExponent finds the last '+'/'-' that is not part of a
// scientific-notation exponent and not at position 0.
func lastSignNotInExponent(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] == '+' || s[i] == '-' {
			if s[i-1] != 'e' && s[i-1] != 'E' {
				return i
			}
		}
	}
	return -1
}

// String formats z as the syntactic inverse of ParseComplex: a zero
// imaginary part prints as the bare real, a zero real part as the bare
// imaginary, and an imaginary coefficient of exactly 1 or -1 collapses to
// "i"/"-i".
func (z Complex[T]) String() string {
	switch {
	case z.Im.IsZero():
		return z.Re.String()
	case z.Re.IsZero():
		return imagString(z.Im)
	}
	im := imagString(z.Im)
	if strings.HasPrefix(im, "-") {
		return z.Re.String() + im
	}
	return z.Re.String() + "+" + im
}

func imagString[T Real[T]](v T) string {
	switch s := v.String(); s {
	case "1":
		return "i"
	case "-1":
		return "-i"
	default:
		return s + "i"
	}
}
