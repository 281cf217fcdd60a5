package bignum

import (
	"strconv"

	"github.com/joeycumines/go-rational"
	"github.com/joeycumines/go-rational/scaled"
)

// Kind identifies which result a [Value] holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindExact
	KindScaled
	KindBool
)

// Value is the result of an evaluation. The zero value is invalid.
type Value struct {
	exact  rational.Rational[int64]
	scaled scaled.Rational[float64]
	kind   Kind
	truth  bool
}

// Exact wraps an exact rational.
func Exact(x rational.Rational[int64]) Value {
	return Value{exact: x, kind: KindExact}
}

// Scaled wraps an approximate scaled rational.
func Scaled(x scaled.Rational[float64]) Value {
	return Value{scaled: x, kind: KindScaled}
}

// Bool wraps the result of a comparison.
func Bool(b bool) Value {
	return Value{truth: b, kind: KindBool}
}

func (x Kind) String() string {
	switch x {
	case KindInvalid:
		return `invalid`
	case KindExact:
		return `exact`
	case KindScaled:
		return `scaled`
	case KindBool:
		return `bool`
	default:
		return `Kind(` + strconv.Itoa(int(x)) + `)`
	}
}

func (x Value) Kind() Kind { return x.kind }

// Exact returns the exact rational, and whether x holds one.
func (x Value) Exact() (rational.Rational[int64], bool) {
	return x.exact, x.kind == KindExact
}

// Scaled returns the scaled rational, and whether x holds one.
func (x Value) Scaled() (scaled.Rational[float64], bool) {
	return x.scaled, x.kind == KindScaled
}

// Bool returns the comparison result, and whether x holds one.
func (x Value) Bool() (bool, bool) {
	return x.truth, x.kind == KindBool
}

// Float64 approximates numeric values, and returns 1 or 0 for booleans.
func (x Value) Float64() float64 {
	switch x.kind {
	case KindExact:
		return x.exact.Float64()
	case KindScaled:
		return x.scaled.Float64()
	case KindBool:
		if x.truth {
			return 1
		}
	}
	return 0
}

func (x Value) String() string {
	switch x.kind {
	case KindExact:
		return x.exact.String()
	case KindScaled:
		return x.scaled.String()
	case KindBool:
		return strconv.FormatBool(x.truth)
	default:
		return `<invalid>`
	}
}
