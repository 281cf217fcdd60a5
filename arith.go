package rational

import (
	"fmt"

	"github.com/joeycumines/go-rational/internal/wide"
)

// Op is a binary arithmetic operation, see [Rational.Apply].
type Op int

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
)

var opNames = [...]string{
	OpAdd: `+`,
	OpSub: `-`,
	OpMul: `*`,
	OpDiv: `/`,
}

// String returns the operator symbol, e.g. "+".
func (x Op) String() string {
	if x > 0 && int(x) < len(opNames) {
		return opNames[x]
	}
	return fmt.Sprintf(`Op(%d)`, int(x))
}

// Add returns x+y.
func (x Rational[T]) Add(y Rational[T]) (Rational[T], error) {
	return x.Apply(OpAdd, y)
}

// Sub returns x-y.
func (x Rational[T]) Sub(y Rational[T]) (Rational[T], error) {
	return x.Apply(OpSub, y)
}

// Mul returns x*y.
func (x Rational[T]) Mul(y Rational[T]) (Rational[T], error) {
	return x.Apply(OpMul, y)
}

// Div returns x/y, failing with [ErrDivideByZero] if y is zero.
func (x Rational[T]) Div(y Rational[T]) (Rational[T], error) {
	return x.Apply(OpDiv, y)
}

// Inc returns x+1.
func (x Rational[T]) Inc() (Rational[T], error) {
	return x.Apply(OpAdd, One[T]())
}

// Dec returns x-1.
func (x Rational[T]) Dec() (Rational[T], error) {
	return x.Apply(OpSub, One[T]())
}

// Apply returns the result of the binary operation op, with x as the left
// operand. The result is always reduced.
//
// Products are computed in 128 bits, then reduced, and narrowed only if the
// result fits T, otherwise failing with [ErrNumberTooLarge].
func (x Rational[T]) Apply(op Op, y Rational[T]) (Rational[T], error) {
	if kindOf[T]().float {
		return Rational[T]{}, ErrFloatTypeGiven
	}

	xNeg, a, b := x.parts()
	yNeg, c, d := y.parts()

	var (
		num wide.Int
		den wide.Uint128
	)
	switch op {
	case OpAdd, OpSub:
		// (a*d + c*b) / (b*d)
		ad := wide.Mul(xNeg, a, false, d)
		cb := wide.Mul(yNeg, c, false, b)
		if op == OpSub {
			cb = cb.Negate()
		}
		var ok bool
		if num, ok = ad.Add(cb); !ok {
			return Rational[T]{}, ErrNumberTooLarge
		}
		den = wide.Mul64(b, d)
	case OpMul:
		// (a*c) / (b*d)
		num = wide.Mul(xNeg, a, yNeg, c)
		den = wide.Mul64(b, d)
	case OpDiv:
		// (a*d) / (b*c)
		if c == 0 {
			return Rational[T]{}, ErrDivideByZero
		}
		num = wide.Mul(xNeg, a, yNeg, d)
		den = wide.Mul64(b, c)
	default:
		panic(fmt.Sprintf(`rational: invalid op: %d`, int(op)))
	}

	n, dd, ok := wide.Reduce(num.Mag, den)
	if !ok {
		return Rational[T]{}, ErrNumberTooLarge
	}
	c2 := config{reduce: true, verifyDenominator: true}
	return build[T](num.Neg, n, dd, &c2)
}

// Neg returns -x. Negating the minimum value of T fails with
// [ErrNumberTooLarge].
func (x Rational[T]) Neg() (Rational[T], error) {
	neg, num, den := x.parts()
	var c config
	return build[T](!neg, num, den, &c)
}

// Abs returns |x|. The absolute value of the minimum value of T fails with
// [ErrNumberTooLarge].
func (x Rational[T]) Abs() (Rational[T], error) {
	_, num, den := x.parts()
	var c config
	return build[T](false, num, den, &c)
}

// Inverse returns den/num, with the sign retained by the numerator. The
// denominator is not verified, i.e. the inverse of zero is [Infinite].
func (x Rational[T]) Inverse() (Rational[T], error) {
	neg, num, den := x.parts()
	var c config
	return build[T](neg, den, num, &c)
}

// Of converts any integer or float scalar to a [Rational], floats using
// [FromFloat64]. Integers outside the range of T fail with
// [ErrNumberTooLarge].
func Of[T Number, S Real](s S, options ...Option) (Rational[T], error) {
	k := kindOf[S]()
	switch {
	case k.float:
		return FromFloat64[T](float64(s), options...)
	case k.unsigned:
		c := newConfig(options)
		return build[T](false, uint64(s), 1, &c)
	default:
		c := newConfig(options)
		neg, mag := split(int64(s))
		return build[T](neg, mag, 1, &c)
	}
}

// Scalar applies op with a rational left operand, and a scalar right operand,
// converted using [Of].
func Scalar[T Number, S Real](op Op, x Rational[T], s S, options ...Option) (Rational[T], error) {
	y, err := Of[T](s, options...)
	if err != nil {
		return Rational[T]{}, err
	}
	return x.Apply(op, y)
}

// ScalarLeft is [Scalar] with the operand order swapped, e.g. s-x.
func ScalarLeft[T Number, S Real](op Op, s S, x Rational[T], options ...Option) (Rational[T], error) {
	y, err := Of[T](s, options...)
	if err != nil {
		return Rational[T]{}, err
	}
	return y.Apply(op, x)
}
