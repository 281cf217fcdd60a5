package scaled

import (
	"math"
	"reflect"
	"strconv"
	"unsafe"

	"github.com/joeycumines/go-rational"
	"golang.org/x/exp/constraints"
)

type (
	// Number is the constraint for the mantissa type of [Rational].
	// Integer types satisfy it, but fail at runtime with
	// [rational.ErrIntTypeGiven].
	Number interface {
		constraints.Integer | constraints.Float
	}

	// Rational models (numMultiplier * 10**numExponent) /
	// (denMultiplier * 10**denExponent), where each multiplier has a
	// magnitude in [1, 10), or is 0 with an exponent of 0.
	//
	// The zero value is 0, i.e. 0e0 / 1e0.
	Rational[F Number] struct {
		numMant F
		denMant F
		numExp  int16
		denExp  int16
	}

	// part is an unconstrained mantissa and exponent, used during
	// calculations.
	part struct {
		m float64
		e int
	}
)

// New constructs (numMant * 10**numExp) / (denMant * 10**denExp), normalizing
// both parts. Mantissas keep their sign.
func New[F Number](numMant F, numExp int16, denMant F, denExp int16) (Rational[F], error) {
	if !isFloat[F]() {
		return Rational[F]{}, rational.ErrIntTypeGiven
	}
	if denMant == 0 {
		return Rational[F]{}, rational.ErrDivideByZero
	}
	return build[F](
		normalize(float64(numMant), int(numExp)),
		normalize(float64(denMant), int(denExp)),
	)
}

// FromInts constructs num/den, optionally simplifying, see
// [Rational.Simplify].
func FromInts[F Number](num, den int64, simplify bool) (Rational[F], error) {
	if !isFloat[F]() {
		return Rational[F]{}, rational.ErrIntTypeGiven
	}
	if den == 0 {
		return Rational[F]{}, rational.ErrDivideByZero
	}
	x, err := build[F](normalize(float64(num), 0), normalize(float64(den), 0))
	if err != nil || !simplify {
		return x, err
	}
	return x.Simplify()
}

// FromRational converts an exact rational. Infinite values fail with
// [rational.ErrDivideByZero].
func FromRational[F Number, T rational.Number](x rational.Rational[T]) (Rational[F], error) {
	if !isFloat[F]() {
		return Rational[F]{}, rational.ErrIntTypeGiven
	}
	if x.IsInfinite() {
		return Rational[F]{}, rational.ErrDivideByZero
	}
	return build[F](
		normalize(float64(x.Numerator()), 0),
		normalize(float64(x.Denominator()), 0),
	)
}

// FromFloat64 constructs v/1. NaN and infinite values fail with
// [rational.ErrNumberTooLarge].
func FromFloat64[F Number](v float64) (Rational[F], error) {
	if !isFloat[F]() {
		return Rational[F]{}, rational.ErrIntTypeGiven
	}
	return build[F](normalize(v, 0), part{m: 1})
}

func isFloat[F Number]() bool {
	switch reflect.TypeFor[F]().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

// normalize shifts m into [1, 10), adjusting e to compensate.
func normalize(m float64, e int) part {
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return part{m: m}
	}
	if math.Abs(m) < minNormal {
		// log10 is inaccurate for subnormals
		m *= 1e16
		e -= 16
	}
	shift := int(math.Floor(math.Log10(math.Abs(m))))
	m = scale(m, -shift)
	e += shift
	// log10 and scale may be off near powers of ten
	for math.Abs(m) >= 10 {
		m /= 10
		e++
	}
	for math.Abs(m) < 1 {
		m *= 10
		e--
	}
	return part{m: m, e: e}
}

// narrow converts p to the mantissa type, and range checks the exponent.
func narrow[F Number](p part) (F, int16, error) {
	if math.IsNaN(p.m) || math.IsInf(p.m, 0) {
		return 0, 0, rational.ErrNumberTooLarge
	}
	m := F(p.m)
	if math.Abs(float64(m)) >= 10 {
		// rounded up, e.g. to float32
		p = part{m: p.m / 10, e: p.e + 1}
		m = F(p.m)
	}
	if p.e < math.MinInt16 || p.e > math.MaxInt16 {
		return 0, 0, rational.ErrNumberTooLarge
	}
	return m, int16(p.e), nil
}

func build[F Number](num, den part) (Rational[F], error) {
	if !isFloat[F]() {
		return Rational[F]{}, rational.ErrIntTypeGiven
	}
	if den.m == 0 {
		return Rational[F]{}, rational.ErrDivideByZero
	}
	var (
		x   Rational[F]
		err error
	)
	if x.numMant, x.numExp, err = narrow[F](num); err != nil {
		return Rational[F]{}, err
	}
	if x.denMant, x.denExp, err = narrow[F](den); err != nil {
		return Rational[F]{}, err
	}
	return x, nil
}

func (x Rational[F]) parts() (num, den part) {
	num = part{m: float64(x.numMant), e: int(x.numExp)}
	if x.denMant == 0 {
		den = part{m: 1}
	} else {
		den = part{m: float64(x.denMant), e: int(x.denExp)}
	}
	return
}

func (p part) mul(q part) part {
	return normalize(p.m*q.m, p.e+q.e)
}

func (p part) quo(q part) part {
	return normalize(p.m/q.m, p.e-q.e)
}

// add aligns the exponents, shifting the mantissa of the part with the
// smaller exponent, then sums the mantissas.
func (p part) add(q part) part {
	switch {
	case q.m == 0:
		return p
	case p.m == 0:
		return q
	case p.e < q.e:
		p, q = q, p
	}
	return normalize(p.m+scale(q.m, q.e-p.e), p.e)
}

func (p part) neg() part {
	p.m = -p.m
	return p
}

// NumMultiplier returns the numerator mantissa.
func (x Rational[F]) NumMultiplier() F { return x.numMant }

// NumExponent returns the numerator exponent.
func (x Rational[F]) NumExponent() int16 { return x.numExp }

// DenMultiplier returns the denominator mantissa.
func (x Rational[F]) DenMultiplier() F {
	if x.denMant == 0 {
		return 1
	}
	return x.denMant
}

// DenExponent returns the denominator exponent.
func (x Rational[F]) DenExponent() int16 { return x.denExp }

// Add returns x+y. Both numerators are first put over the same denominator,
// then shifted to the same exponent.
func (x Rational[F]) Add(y Rational[F]) (Rational[F], error) {
	a, b := x.parts()
	c, d := y.parts()
	return build[F](a.mul(d).add(c.mul(b)), b.mul(d))
}

// Sub returns x-y, see [Rational.Add].
func (x Rational[F]) Sub(y Rational[F]) (Rational[F], error) {
	a, b := x.parts()
	c, d := y.parts()
	return build[F](a.mul(d).add(c.mul(b).neg()), b.mul(d))
}

// Mul returns x*y, multiplying the mantissas and adding the exponents.
func (x Rational[F]) Mul(y Rational[F]) (Rational[F], error) {
	a, b := x.parts()
	c, d := y.parts()
	return build[F](a.mul(c), b.mul(d))
}

// Div returns x/y, failing with [rational.ErrDivideByZero] if y is zero.
func (x Rational[F]) Div(y Rational[F]) (Rational[F], error) {
	a, b := x.parts()
	c, d := y.parts()
	if c.m == 0 {
		return Rational[F]{}, rational.ErrDivideByZero
	}
	return build[F](a.mul(d), b.mul(c))
}

// Neg returns -x.
func (x Rational[F]) Neg() Rational[F] {
	x.numMant = -x.numMant
	return x
}

// Inverse returns the reciprocal, failing with [rational.ErrDivideByZero]
// if x is zero.
func (x Rational[F]) Inverse() (Rational[F], error) {
	a, b := x.parts()
	return build[F](b, a)
}

// Simplify returns an equivalent value, with the quotient as the numerator,
// and a denominator of 1e0.
func (x Rational[F]) Simplify() (Rational[F], error) {
	a, b := x.parts()
	return build[F](a.quo(b), part{m: 1})
}

// Equal compares the mantissas and exponents. Equivalent values with
// different denominators are not equal, unless simplified.
func (x Rational[F]) Equal(y Rational[F]) bool {
	return x.numMant == y.numMant &&
		x.numExp == y.numExp &&
		x.DenMultiplier() == y.DenMultiplier() &&
		x.denExp == y.denExp
}

func (x Rational[F]) IsZero() bool {
	return x.numMant == 0
}

// Float64 returns the approximate value, which may be infinite.
func (x Rational[F]) Float64() float64 {
	a, b := x.parts()
	return scale(a.m/b.m, a.e-b.e)
}

// ToReal converts x to the floating point type G, via float64.
func ToReal[G constraints.Float, F Number](x Rational[F]) G {
	return G(x.Float64())
}

// ToRational converts x to an exact rational, via [rational.FromFloat64].
func ToRational[T rational.Number, F Number](x Rational[F], options ...rational.Option) (rational.Rational[T], error) {
	return rational.FromFloat64[T](x.Float64(), options...)
}

// String formats x like "(4.342434324e12 / 3.14347483689e11)", using
// [rational.DefaultPrintDigits] significant digits.
func (x Rational[F]) String() string {
	return x.Text(rational.DefaultPrintDigits)
}

// Text is [Rational.String] with a configurable number of significant
// digits. A negative value uses the minimum necessary to round trip.
func (x Rational[F]) Text(digits int) string {
	bitSize := x.bitSize()
	b := make([]byte, 0, 48)
	b = append(b, '(')
	b = strconv.AppendFloat(b, float64(x.numMant), 'g', digits, bitSize)
	b = append(b, 'e')
	b = strconv.AppendInt(b, int64(x.numExp), 10)
	b = append(b, ' ', '/', ' ')
	b = strconv.AppendFloat(b, float64(x.DenMultiplier()), 'g', digits, bitSize)
	b = append(b, 'e')
	b = strconv.AppendInt(b, int64(x.denExp), 10)
	b = append(b, ')')
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func (x Rational[F]) bitSize() int {
	if reflect.TypeFor[F]().Kind() == reflect.Float32 {
		return 32
	}
	return 64
}
