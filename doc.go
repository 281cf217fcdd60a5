// Package rational implements an exact rational number value type, over any
// signed integer width.
//
// A [Rational] is a numerator and denominator pair, kept in lowest terms with
// a positive denominator. Arithmetic is exact: every intermediate product is
// computed in 128 bits, and any result that does not fit the integer width
// fails with [ErrNumberTooLarge], rather than wrapping.
//
// Conversions from floating point use a bounded continued-fraction expansion,
// tunable via [WithIterations] and [WithThreshold]. The transcendental
// functions ([Rational.Sqrt], [Rational.Cos], [Rational.Exp], [Rational.Pow])
// evaluate in float64, then convert back, and are therefore approximations.
//
// See also the scaled package, which trades exactness for range, and the
// bignum package, which selects between the two.
package rational
