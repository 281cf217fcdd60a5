// Package wide implements the 128-bit accumulator that rational arithmetic
// uses to detect overflow, before narrowing results to the target width.
//
// Every product of two 64-bit magnitudes fits in a Uint128, as does the sum
// of two such products, provided each magnitude is at most 1<<63.
package wide

import (
	"math/bits"
)

type (
	// Uint128 is an unsigned 128-bit integer.
	Uint128 struct {
		Hi uint64
		Lo uint64
	}

	// Int is a sign-magnitude 128-bit integer. The zero value is 0.
	// Negative zero is never produced by this package.
	Int struct {
		Mag Uint128
		Neg bool
	}
)

// From64 returns x as a Uint128.
func From64(x uint64) Uint128 {
	return Uint128{Lo: x}
}

// Mul64 returns the full 128-bit product of x and y.
func Mul64(x, y uint64) Uint128 {
	hi, lo := bits.Mul64(x, y)
	return Uint128{Hi: hi, Lo: lo}
}

// Add returns x+y, and false if the sum overflowed.
func (x Uint128) Add(y Uint128) (Uint128, bool) {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, carry := bits.Add64(x.Hi, y.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}, carry == 0
}

// Sub returns x-y, and false if the difference underflowed.
func (x Uint128) Sub(y Uint128) (Uint128, bool) {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, borrow := bits.Sub64(x.Hi, y.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}, borrow == 0
}

// Cmp behaves like [cmp.Compare].
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	}
	return 0
}

func (x Uint128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// Uint64 returns the low 64 bits, and whether the value fits in 64 bits.
func (x Uint128) Uint64() (uint64, bool) {
	return x.Lo, x.Hi == 0
}

// Mul returns the signed product of two sign-magnitude 64-bit operands.
func Mul(xNeg bool, x uint64, yNeg bool, y uint64) Int {
	mag := Mul64(x, y)
	return Int{Mag: mag, Neg: xNeg != yNeg && !mag.IsZero()}
}

// Add returns x+y, and false if the magnitude overflowed.
func (x Int) Add(y Int) (Int, bool) {
	if x.Neg == y.Neg {
		mag, ok := x.Mag.Add(y.Mag)
		return Int{Mag: mag, Neg: x.Neg && !mag.IsZero()}, ok
	}
	switch x.Mag.Cmp(y.Mag) {
	case 1:
		mag, _ := x.Mag.Sub(y.Mag)
		return Int{Mag: mag, Neg: x.Neg}, true
	case -1:
		mag, _ := y.Mag.Sub(x.Mag)
		return Int{Mag: mag, Neg: y.Neg}, true
	default:
		return Int{}, true
	}
}

// Sub returns x-y, and false if the magnitude overflowed.
func (x Int) Sub(y Int) (Int, bool) {
	return x.Add(y.Negate())
}

// Negate returns -x.
func (x Int) Negate() Int {
	if !x.Mag.IsZero() {
		x.Neg = !x.Neg
	}
	return x
}

// Sign returns -1, 0, or 1.
func (x Int) Sign() int {
	switch {
	case x.Mag.IsZero():
		return 0
	case x.Neg:
		return -1
	default:
		return 1
	}
}

// Cmp behaves like [cmp.Compare].
func (x Int) Cmp(y Int) int {
	if xs, ys := x.Sign(), y.Sign(); xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	c := x.Mag.Cmp(y.Mag)
	if x.Neg {
		return -c
	}
	return c
}
