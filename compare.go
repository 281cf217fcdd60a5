package rational

import (
	"github.com/joeycumines/go-rational/internal/wide"
)

// Equal reports whether x and y have the same reduced form.
func (x Rational[T]) Equal(y Rational[T]) bool {
	return x.Simplify() == y.Simplify()
}

// Less compares the float64 conversions of x and y. Ordering is therefore
// approximate, for values that are not distinct as float64, see [Rational.Cmp]
// for an exact alternative.
func (x Rational[T]) Less(y Rational[T]) bool {
	return x.Float64() < y.Float64()
}

// LessEqual compares using float64, like [Rational.Less].
func (x Rational[T]) LessEqual(y Rational[T]) bool {
	return x.Float64() <= y.Float64()
}

// Greater compares using float64, like [Rational.Less].
func (x Rational[T]) Greater(y Rational[T]) bool {
	return x.Float64() > y.Float64()
}

// GreaterEqual compares using float64, like [Rational.Less].
func (x Rational[T]) GreaterEqual(y Rational[T]) bool {
	return x.Float64() >= y.Float64()
}

// Cmp compares x and y exactly, by cross multiplication, returning -1, 0, or
// 1, like [cmp.Compare]. Infinite values compare as if their denominator
// were positive and arbitrarily small.
func (x Rational[T]) Cmp(y Rational[T]) int {
	xNeg, a, b := x.parts()
	yNeg, c, d := y.parts()
	return wide.Mul(xNeg, a, false, d).Cmp(wide.Mul(yNeg, c, false, b))
}

// Min returns the least value, per [Rational.Less]. Ties resolve to the
// earliest value.
func Min[T Number](first Rational[T], rest ...Rational[T]) Rational[T] {
	for _, v := range rest {
		if v.Less(first) {
			first = v
		}
	}
	return first
}

// Max returns the greatest value, per [Rational.Less]. Ties resolve to the
// earliest value.
func Max[T Number](first Rational[T], rest ...Rational[T]) Rational[T] {
	for _, v := range rest {
		if first.Less(v) {
			first = v
		}
	}
	return first
}
