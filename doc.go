// Package apmath provides exact-to-requested-precision transcendental and
// special functions over arbitrary-precision decimals, plus a generic
// complex-number algebra reusable over any type implementing the Real
// capability contract.
//
// Everything is derived from a small set of decimal primitives (add, sub,
// mul, div, rem, sqrt, exp, ln, log10, pow) via series expansion, range
// reduction and adaptive working precision. The one concrete Real
// implementation, Dec, is backed by cockroachdb/apd. Each value carries its
// own digit count; intermediate computation runs at elevated precision
// (typically 1.5x the target) and results are rounded back, so calls are
// pure and safe to run concurrently.
//
// Minimal usage:
//
//	x := apmath.MustDec("0.5", 50)
//	fmt.Println(apmath.Sin(x))            // 50-digit sin(0.5), radians
//
//	z := apmath.MustParseDecComplex("3-4i", 50)
//	fmt.Println(z.Abs())                  // 5
//	fmt.Println(z.Exp())
//
// Domain violations never abort: asin outside [-1, 1], gamma at a pole, or
// division of zero by zero yield NaN; overflow yields signed Infinity. Both
// propagate through subsequent operations, so callers test for them as
// first-class results.
//
// SPDX-License-Identifier: MIT
package apmath
