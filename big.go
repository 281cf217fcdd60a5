package rational

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// maxExponent bounds the exponent accepted by [Parse], as larger exponents
// cannot fit any supported width, and are expensive to evaluate.
const maxExponent = 1024

// Rat returns x as a new [math/big.Rat], or nil if x is infinite.
func (x Rational[T]) Rat() *big.Rat {
	if x.IsInfinite() {
		return nil
	}
	return big.NewRat(int64(x.num), int64(x.Denominator()))
}

// FromRat converts r, failing with [ErrNumberTooLarge] if it is out of range.
// A nil r converts to zero.
func FromRat[T Number](r *big.Rat, options ...Option) (Rational[T], error) {
	c := newConfig(options)
	if r == nil {
		return build[T](false, 0, 1, &c)
	}
	num, den := r.Num(), r.Denom()
	if num.BitLen() > 64 || den.BitLen() > 64 {
		if kindOf[T]().float {
			return Rational[T]{}, ErrFloatTypeGiven
		}
		return Rational[T]{}, ErrNumberTooLarge
	}
	return build[T](num.Sign() < 0, new(big.Int).Abs(num).Uint64(), den.Uint64(), &c)
}

// Parse converts the text s, which may be a fraction, like "-3/4", the
// [Rational.String] format, like "(-3 / 4)", an integer, or a decimal, with an
// optional exponent, like "1.5e-3". Decimals are converted exactly, and the
// result is always in lowest terms, regardless of [WithReduce].
//
// Malformed input fails with [ErrSyntax]. A zero denominator fails with
// [ErrDivideByZero], unless verification is disabled, and out of range values
// with [ErrNumberTooLarge].
func Parse[T Number](s string, options ...Option) (Rational[T], error) {
	text := strings.TrimSpace(s)
	if len(text) >= 2 && text[0] == '(' && text[len(text)-1] == ')' {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	numText, denText, isFrac := strings.Cut(text, `/`)
	num, err := parseDecimal(strings.TrimSpace(numText))
	if err != nil {
		return Rational[T]{}, fmt.Errorf(`%w: %q: %w`, ErrSyntax, s, err)
	}
	if !isFrac {
		return FromRat[T](num, options...)
	}

	den, err := parseDecimal(strings.TrimSpace(denText))
	if err != nil {
		return Rational[T]{}, fmt.Errorf(`%w: %q: %w`, ErrSyntax, s, err)
	}
	if den.Sign() == 0 {
		c := newConfig(options)
		if c.verifyDenominator {
			return Rational[T]{}, ErrDivideByZero
		}
		if !num.IsInt() || !den.IsInt() {
			return Rational[T]{}, fmt.Errorf(`%w: %q: non-integer infinite value`, ErrSyntax, s)
		}
		n := num.Num()
		if n.BitLen() > 64 {
			return Rational[T]{}, ErrNumberTooLarge
		}
		return build[T](n.Sign() < 0, new(big.Int).Abs(n).Uint64(), 0, &c)
	}

	return FromRat[T](num.Quo(num, den), options...)
}

func parseDecimal(s string) (*big.Rat, error) {
	if s == `` || strings.ContainsAny(s, `/ `) {
		return nil, fmt.Errorf(`invalid number: %q`, s)
	}
	markers := `eE`
	if t := strings.TrimLeft(s, `+-`); strings.HasPrefix(t, `0x`) || strings.HasPrefix(t, `0X`) {
		markers = `pP`
	}
	if i := strings.LastIndexAny(s, markers); i >= 0 {
		if exp, err := strconv.Atoi(s[i+1:]); err == nil && (exp > maxExponent || exp < -maxExponent) {
			return nil, fmt.Errorf(`%w: exponent out of range: %d`, ErrNumberTooLarge, exp)
		}
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf(`invalid number: %q`, s)
	}
	return r, nil
}
