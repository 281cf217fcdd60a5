package rational

import (
	"github.com/joeycumines/floater"
)

// Round returns x rounded to prec decimal places, using half-to-even
// rounding. Negative values for prec are allowed, and indicate the number of
// places to the left of the decimal point. Infinite values fail with
// [ErrDivideByZero].
func (x Rational[T]) Round(prec int) (Rational[T], error) {
	r := x.Rat()
	if r == nil {
		return Rational[T]{}, ErrDivideByZero
	}
	return FromRat[T](floater.RoundRat(r, r, prec))
}
