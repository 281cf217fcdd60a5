package rational

import (
	"math"
	"math/bits"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// FromFloat64 converts v using a continued-fraction expansion, bounded by
// [WithIterations], with remainders below [WithThreshold] treated as zero.
//
// A non-zero v that converts to zero fails with [ErrNumberTooLarge], as the
// precision was lost. So do NaN and infinite values.
func FromFloat64[T Number](v float64, options ...Option) (Rational[T], error) {
	c := newConfig(options)
	return fromFloat64[T](v, true, &c)
}

func fromFloat64[T Number](v float64, checkLoss bool, c *config) (Rational[T], error) {
	if kindOf[T]().float {
		return Rational[T]{}, ErrFloatTypeGiven
	}
	neg := v < 0
	if neg {
		v = -v
	}
	num, den, err := continued(v, c.iterations, c.threshold)
	if err != nil {
		return Rational[T]{}, err
	}
	if checkLoss && num == 0 && v != 0 {
		return Rational[T]{}, ErrNumberTooLarge
	}
	return build[T](neg, num, den, c)
}

// continued converts a non-negative v to num/den.
//
// This is an iterative form of the recursive definition:
//
//	f(v, n) = 0                         if v < threshold or n == 0
//	f(v, n) = 1 / f(1/v, n)             if v < 1
//	f(v, n) = floor(v) + f(v-floor(v), n-1)
//
// The partial quotients are collected first, then evaluated from the last,
// which yields the convergent in lowest terms.
func continued(v float64, iterations uint, threshold float64) (num, den uint64, err error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, 0, ErrNumberTooLarge
	}
	if v < threshold || v == 0 || iterations == 0 {
		return 0, 1, nil
	}

	reciprocal := v < 1
	if reciprocal {
		v = 1 / v
	}

	terms := make([]uint64, 0, min(iterations, 32))
	for {
		n := math.Floor(v)
		if n >= 1<<64 || math.IsNaN(n) {
			return 0, 0, ErrNumberTooLarge
		}
		terms = append(terms, uint64(n))
		v -= n
		iterations--
		if v < threshold || v == 0 || iterations == 0 {
			break
		}
		v = 1 / v
	}

	num, den = 0, 1
	for i := len(terms) - 1; i >= 0; i-- {
		// num/den = terms[i] + num/den
		hi, lo := bits.Mul64(terms[i], den)
		var carry uint64
		num, carry = bits.Add64(lo, num, 0)
		if hi != 0 || carry != 0 {
			return 0, 0, ErrNumberTooLarge
		}
		if i != 0 {
			num, den = den, num
		}
	}
	if reciprocal {
		num, den = den, num
	}
	return num, den, nil
}

// Convert copies x to a different integer width, failing with
// [ErrNumberTooLarge] if either component is out of range.
func Convert[T, U Number](x Rational[U]) (Rational[T], error) {
	neg, num, den := x.parts()
	c := config{verifyDenominator: !x.IsInfinite()}
	return build[T](neg, num, den, &c)
}

// ToInteger returns x, truncated towards zero. It fails with
// [ErrDivideByZero] if x is infinite.
func (x Rational[T]) ToInteger() (T, error) {
	if kindOf[T]().float {
		return 0, ErrFloatTypeGiven
	}
	neg, num, den := x.parts()
	if den == 0 {
		return 0, ErrDivideByZero
	}
	return join[T](neg, num/den), nil
}

// Float64 approximates x, returning an infinity if x is infinite.
func (x Rational[T]) Float64() float64 {
	return float64(x.num) / float64(x.Denominator())
}

// Float32 returns x as a float32.
func (x Rational[T]) Float32() float32 {
	return float32(x.Float64())
}

// ToReal converts x to the floating point type F, via float64.
func ToReal[F constraints.Float, T Number](x Rational[T]) F {
	return F(x.Float64())
}

// String formats x like "(num / den)".
func (x Rational[T]) String() string {
	b := make([]byte, 0, 24)
	b = append(b, '(')
	b = strconv.AppendInt(b, int64(x.num), 10)
	b = append(b, ' ', '/', ' ')
	b = strconv.AppendInt(b, int64(x.Denominator()), 10)
	b = append(b, ')')
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// RatString formats x like "num/den".
func (x Rational[T]) RatString() string {
	b := x.appendRat(make([]byte, 0, 24))
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func (x Rational[T]) appendRat(b []byte) []byte {
	b = strconv.AppendInt(b, int64(x.num), 10)
	b = append(b, '/')
	return strconv.AppendInt(b, int64(x.Denominator()), 10)
}

// ToApproximation rounds the float64 value of x to digits decimal places,
// half away from zero, then converts back. Requesting more digits than
// [WithMaxDigits] (default [DefaultMaxDigits]) fails with
// [ErrDigitsTooLarge].
func (x Rational[T]) ToApproximation(digits uint, options ...Option) (Rational[T], error) {
	c := newConfig(options)
	if digits > c.maxDigits {
		return Rational[T]{}, ErrDigitsTooLarge
	}
	scale := math.Pow10(int(digits))
	return fromFloat64[T](math.Round(x.Float64()*scale)/scale, false, &c)
}
