package wide

import (
	"math/big"
)

// Big returns x as a new [math/big.Int].
func (x Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(x.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(x.Lo))
}

// Reduce divides num and den by their greatest common divisor, returning false
// if either quotient does not fit in 64 bits. If both are zero, they are
// returned as is.
func Reduce(num, den Uint128) (uint64, uint64, bool) {
	if n, ok := num.Uint64(); ok {
		if d, ok := den.Uint64(); ok {
			if g := gcd64(n, d); g > 1 {
				n /= g
				d /= g
			}
			return n, d, true
		}
	}
	n, d := num.Big(), den.Big()
	g := new(big.Int).GCD(nil, nil, n, d)
	if g.Sign() != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	if !n.IsUint64() || !d.IsUint64() {
		return 0, 0, false
	}
	return n.Uint64(), d.Uint64(), true
}

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
