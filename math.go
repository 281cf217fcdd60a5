package rational

import (
	"math"
)

// Sqrt approximates the square root of x, see [FromFloat64] for the
// conversion options. Negative values fail with [ErrNegativeSqrt].
//
// Unlike [FromFloat64], results that round to zero are not an error.
func (x Rational[T]) Sqrt(options ...Option) (Rational[T], error) {
	if x.IsNegative() {
		return Rational[T]{}, ErrNegativeSqrt
	}
	return x.approximate(math.Sqrt, options)
}

// Cos approximates the cosine of x, in radians.
func (x Rational[T]) Cos(options ...Option) (Rational[T], error) {
	return x.approximate(math.Cos, options)
}

// Exp approximates e**x.
func (x Rational[T]) Exp(options ...Option) (Rational[T], error) {
	return x.approximate(math.Exp, options)
}

// Pow approximates x**k.
func (x Rational[T]) Pow(k float64, options ...Option) (Rational[T], error) {
	return x.approximate(func(v float64) float64 { return math.Pow(v, k) }, options)
}

func (x Rational[T]) approximate(fn func(float64) float64, options []Option) (Rational[T], error) {
	c := newConfig(options)
	return fromFloat64[T](fn(x.Float64()), false, &c)
}
