package rational

// Rational is an exact fraction over the signed integer type T.
//
// The zero value is 0/1. Values are immutable, in that every operation
// returns a new value, excepting [Rational.Set] and the decoding methods.
// Unless otherwise documented, values are in lowest terms, with a positive
// denominator. The only exception is the infinite value, see [Infinite],
// which has a zero denominator.
type Rational[T Number] struct {
	num T
	// dm1 is the denominator minus one, so the zero value is valid
	dm1 T
}

// New constructs a new rational num/den. By default, the result is reduced,
// and a zero denominator fails with [ErrDivideByZero].
// Negative denominators are normalized by negating both components.
func New[T Number](num, den T, options ...Option) (Rational[T], error) {
	c := newConfig(options)
	if kindOf[T]().float {
		return Rational[T]{}, ErrFloatTypeGiven
	}
	numNeg, numMag := split(num)
	denNeg, denMag := split(den)
	return build[T](numNeg != denNeg, numMag, denMag, &c)
}

// Must panics if err is non-nil, otherwise returning v.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

// Zero returns 0/1.
func Zero[T Number]() Rational[T] {
	return Rational[T]{}
}

// One returns 1/1.
func One[T Number]() Rational[T] {
	return Rational[T]{num: 1}
}

// Pi returns 355/113, the best approximation of pi with a three digit
// denominator. It panics if T cannot represent it, e.g. int8.
func Pi[T Number]() Rational[T] {
	var c config
	return Must(build[T](false, 355, 113, &c))
}

// Infinite returns 1/0.
func Infinite[T Number]() Rational[T] {
	return Rational[T]{num: 1, dm1: -1}
}

// build is the single point at which values are constructed from sign and
// magnitude, and enforces every invariant.
func build[T Number](neg bool, num, den uint64, c *config) (Rational[T], error) {
	k := kindOf[T]()
	if k.float {
		return Rational[T]{}, ErrFloatTypeGiven
	}
	if den == 0 && c.verifyDenominator {
		return Rational[T]{}, ErrDivideByZero
	}
	if c.reduce {
		if g := gcd(num, den); g > 1 {
			num /= g
			den /= g
		}
	}
	if num == 0 {
		neg = false
	}
	if !k.fits(false, den) || !k.fits(neg, num) {
		return Rational[T]{}, ErrNumberTooLarge
	}
	return Rational[T]{
		num: join[T](neg, num),
		dm1: T(int64(den)) - 1,
	}, nil
}

// parts returns the sign and magnitudes of x.
func (x Rational[T]) parts() (neg bool, num, den uint64) {
	neg, num = split(x.num)
	den = uint64(int64(x.dm1) + 1)
	return
}

// Numerator returns the numerator, which carries the sign.
func (x Rational[T]) Numerator() T {
	return x.num
}

// Denominator returns the denominator, which is positive, or zero if x is
// infinite.
func (x Rational[T]) Denominator() T {
	return x.dm1 + 1
}

// At returns the numerator for id 0, or the denominator for id 1. Any other
// id fails with [ErrInvalidAccessArgument].
func (x Rational[T]) At(id int) (T, error) {
	switch id {
	case 0:
		return x.Numerator(), nil
	case 1:
		return x.Denominator(), nil
	default:
		return 0, ErrInvalidAccessArgument
	}
}

// Set assigns the numerator for id 0, or the denominator for id 1, without
// reducing. A zero denominator fails with [ErrDivideByZero], and a negative
// one is normalized, negating the numerator. On error, x is unchanged.
func (x *Rational[T]) Set(id int, v T) error {
	neg, num, den := x.parts()
	switch id {
	case 0:
		neg, num = split(v)
	case 1:
		var denNeg bool
		denNeg, den = split(v)
		neg = neg != denNeg
	default:
		return ErrInvalidAccessArgument
	}
	c := config{verifyDenominator: true}
	r, err := build[T](neg, num, den, &c)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// SetNumerator is equivalent to x.Set(0, v).
func (x *Rational[T]) SetNumerator(v T) error {
	return x.Set(0, v)
}

// SetDenominator is equivalent to x.Set(1, v).
func (x *Rational[T]) SetDenominator(v T) error {
	return x.Set(1, v)
}

// Simplify returns x in lowest terms. The value 0/0 (only reachable with
// verification disabled) is returned unchanged.
func (x Rational[T]) Simplify() Rational[T] {
	neg, num, den := x.parts()
	g := gcd(num, den)
	if g <= 1 {
		return x
	}
	return Rational[T]{
		num: join[T](neg, num/g),
		dm1: T(int64(den/g)) - 1,
	}
}

func (x Rational[T]) IsNegative() bool {
	return x.num < 0
}

func (x Rational[T]) IsZero() bool {
	return x.num == 0
}

// IsInteger reports whether the denominator divides the numerator.
func (x Rational[T]) IsInteger() bool {
	_, num, den := x.parts()
	return den != 0 && num%den == 0
}

// IsInfinite reports whether the denominator is zero.
func (x Rational[T]) IsInfinite() bool {
	return x.dm1 == -1
}

// Sign returns -1, 0 or 1, per the sign of the numerator.
func (x Rational[T]) Sign() int {
	switch {
	case x.num < 0:
		return -1
	case x.num > 0:
		return 1
	default:
		return 0
	}
}
