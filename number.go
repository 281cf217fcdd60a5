package rational

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

type (
	// Number is the constraint for the type parameter of [Rational].
	//
	// Floating point types satisfy the constraint, but every constructing
	// operation over them fails with [ErrFloatTypeGiven].
	Number interface {
		constraints.Signed | constraints.Float
	}

	// Real is any scalar that may be combined with a [Rational], see [Of].
	Real interface {
		constraints.Integer | constraints.Float
	}

	// kind models the properties of a numeric type parameter that matter for
	// range checks.
	kind struct {
		// max is the largest positive magnitude, zero for unsigned types
		max      uint64
		float    bool
		unsigned bool
	}
)

func kindOf[T Real]() kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return kind{max: math.MaxInt8}
	case reflect.Int16:
		return kind{max: math.MaxInt16}
	case reflect.Int32:
		return kind{max: math.MaxInt32}
	case reflect.Int:
		return kind{max: math.MaxInt}
	case reflect.Int64:
		return kind{max: math.MaxInt64}
	case reflect.Float32, reflect.Float64:
		return kind{float: true}
	default:
		return kind{unsigned: true}
	}
}

// fits reports whether the magnitude can be stored, given the sign.
// Negative values may be one larger, e.g. math.MinInt32.
func (k kind) fits(neg bool, mag uint64) bool {
	if neg {
		return mag == 0 || mag-1 <= k.max
	}
	return mag <= k.max
}

// split returns the sign and magnitude of a signed integer.
// The magnitude of math.MinInt64 is 1<<63.
func split[T Number](v T) (neg bool, mag uint64) {
	i := int64(v)
	if i < 0 {
		return true, uint64(-i)
	}
	return false, uint64(i)
}

// join is the inverse of split, and must only be called after a range check.
func join[T Number](neg bool, mag uint64) T {
	v := int64(mag)
	if neg {
		v = -v
	}
	return T(v)
}

// gcd returns the greatest common divisor of a and b, which is 0 only if
// both are 0.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
