package bignum

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/joeycumines/go-rational"
	"github.com/joeycumines/go-rational/scaled"
	"golang.org/x/exp/slices"
)

type function struct {
	name string
	// operands is the number of rational operands, or -1 for one or more
	operands int
	// params is the number of trailing numeric parameters, of which the
	// first required are mandatory
	params, required int
	safe             func(x *Engine, operands []rational.Rational[int64], params []string) (rational.Rational[int64], error)
	// experimental is nil where the function is only available in Safe mode
	experimental func(operands []scaled.Rational[float64], params []string) (scaled.Rational[float64], error)
}

// functions must be sorted by name
var functions = [...]function{
	{
		name:     `abs`,
		operands: 1,
		safe: func(_ *Engine, v []rational.Rational[int64], _ []string) (rational.Rational[int64], error) {
			return v[0].Abs()
		},
		experimental: func(v []scaled.Rational[float64], _ []string) (scaled.Rational[float64], error) {
			if sign(v[0]) < 0 {
				return v[0].Neg(), nil
			}
			return v[0], nil
		},
	},
	{
		name:     `approx`,
		operands: 1,
		params:   1,
		safe: func(x *Engine, v []rational.Rational[int64], p []string) (rational.Rational[int64], error) {
			digits := uint64(rational.DefaultKeptDigits)
			if len(p) != 0 {
				var err error
				if digits, err = strconv.ParseUint(p[0], 10, 0); err != nil {
					return rational.Rational[int64]{}, fmt.Errorf(`%w: %w`, rational.ErrSyntax, err)
				}
			}
			return v[0].ToApproximation(uint(digits), x.Options...)
		},
	},
	{
		name:     `cos`,
		operands: 1,
		safe: func(x *Engine, v []rational.Rational[int64], _ []string) (rational.Rational[int64], error) {
			return v[0].Cos(x.Options...)
		},
		experimental: func(v []scaled.Rational[float64], _ []string) (scaled.Rational[float64], error) {
			f := v[0].Float64()
			if math.IsInf(f, 0) {
				return scaled.Rational[float64]{}, rational.ErrNumberTooLarge
			}
			return scaled.FromFloat64[float64](math.Cos(f))
		},
	},
	{
		name:     `exp`,
		operands: 1,
		safe: func(x *Engine, v []rational.Rational[int64], _ []string) (rational.Rational[int64], error) {
			return v[0].Exp(x.Options...)
		},
		experimental: func(v []scaled.Rational[float64], _ []string) (scaled.Rational[float64], error) {
			return pow10(v[0].Float64() * math.Log10E)
		},
	},
	{
		name:     `inv`,
		operands: 1,
		safe: func(_ *Engine, v []rational.Rational[int64], _ []string) (rational.Rational[int64], error) {
			return v[0].Inverse()
		},
		experimental: func(v []scaled.Rational[float64], _ []string) (scaled.Rational[float64], error) {
			return v[0].Inverse()
		},
	},
	{
		name:     `max`,
		operands: -1,
		safe: func(_ *Engine, v []rational.Rational[int64], _ []string) (rational.Rational[int64], error) {
			return extremeExact(v, 1), nil
		},
		experimental: func(v []scaled.Rational[float64], _ []string) (scaled.Rational[float64], error) {
			return extreme(v, 1)
		},
	},
	{
		name:     `min`,
		operands: -1,
		safe: func(_ *Engine, v []rational.Rational[int64], _ []string) (rational.Rational[int64], error) {
			return extremeExact(v, -1), nil
		},
		experimental: func(v []scaled.Rational[float64], _ []string) (scaled.Rational[float64], error) {
			return extreme(v, -1)
		},
	},
	{
		name:     `neg`,
		operands: 1,
		safe: func(_ *Engine, v []rational.Rational[int64], _ []string) (rational.Rational[int64], error) {
			return v[0].Neg()
		},
		experimental: func(v []scaled.Rational[float64], _ []string) (scaled.Rational[float64], error) {
			return v[0].Neg(), nil
		},
	},
	{
		name:     `pow`,
		operands: 1,
		params:   1,
		required: 1,
		safe: func(x *Engine, v []rational.Rational[int64], p []string) (rational.Rational[int64], error) {
			k, err := parseFloat(p[0])
			if err != nil {
				return rational.Rational[int64]{}, err
			}
			return v[0].Pow(k, x.Options...)
		},
		experimental: func(v []scaled.Rational[float64], p []string) (scaled.Rational[float64], error) {
			k, err := parseFloat(p[0])
			if err != nil {
				return scaled.Rational[float64]{}, err
			}
			return powScaled(v[0], k)
		},
	},
	{
		name:     `round`,
		operands: 1,
		params:   1,
		safe: func(_ *Engine, v []rational.Rational[int64], p []string) (rational.Rational[int64], error) {
			var prec int
			if len(p) != 0 {
				var err error
				if prec, err = strconv.Atoi(p[0]); err != nil {
					return rational.Rational[int64]{}, fmt.Errorf(`%w: %w`, rational.ErrSyntax, err)
				}
			}
			return v[0].Round(prec)
		},
	},
	{
		name:     `sqrt`,
		operands: 1,
		safe: func(x *Engine, v []rational.Rational[int64], _ []string) (rational.Rational[int64], error) {
			return v[0].Sqrt(x.Options...)
		},
		experimental: sqrtScaled,
	},
}

// Functions returns the names of the supported functions, in sorted order.
func Functions() []string {
	names := make([]string, len(functions))
	for i := range functions {
		names[i] = functions[i].name
	}
	return names
}

func lookupFunction(name string) (*function, bool) {
	if i, ok := slices.BinarySearchFunc(functions[:], name, func(f function, name string) int {
		return strings.Compare(f.name, name)
	}); ok {
		return &functions[i], true
	}
	return nil, false
}

func parseFloat(s string) (float64, error) {
	k, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(k) || math.IsInf(k, 0) {
		return 0, fmt.Errorf(`%w: invalid parameter: %q`, rational.ErrSyntax, s)
	}
	return k, nil
}

// sign returns -1, 0, or 1.
func sign(x scaled.Rational[float64]) int {
	n, d := x.NumMultiplier(), x.DenMultiplier()
	switch {
	case n == 0:
		return 0
	case (n < 0) != (d < 0):
		return -1
	default:
		return 1
	}
}

func compareScaled(x, y scaled.Rational[float64]) (int, error) {
	d, err := x.Sub(y)
	if err != nil {
		return 0, err
	}
	return sign(d), nil
}

// extreme returns the least (want -1) or greatest (want 1) value, with ties
// resolving to the earliest.
func extreme(values []scaled.Rational[float64], want int) (scaled.Rational[float64], error) {
	result := values[0]
	for _, v := range values[1:] {
		c, err := compareScaled(v, result)
		if err != nil {
			return scaled.Rational[float64]{}, err
		}
		if c == want {
			result = v
		}
	}
	return result, nil
}

// extremeExact is extreme using the exact ordering, consistent with the
// comparison operators.
func extremeExact(values []rational.Rational[int64], want int) rational.Rational[int64] {
	result := values[0]
	for _, v := range values[1:] {
		if v.Cmp(result) == want {
			result = v
		}
	}
	return result
}

// pow10 returns 10**l, underflowing to zero.
func pow10(l float64) (scaled.Rational[float64], error) {
	if math.IsInf(l, -1) {
		return scaled.Rational[float64]{}, nil
	}
	e := math.Floor(l)
	switch {
	case math.IsNaN(e) || e > math.MaxInt16:
		return scaled.Rational[float64]{}, rational.ErrNumberTooLarge
	case e < math.MinInt16:
		return scaled.Rational[float64]{}, nil
	}
	return scaled.New(math.Pow(10, l-e), int16(e), 1, 0)
}

func sqrtScaled(v []scaled.Rational[float64], _ []string) (scaled.Rational[float64], error) {
	x, err := v[0].Simplify()
	if err != nil {
		return scaled.Rational[float64]{}, err
	}
	m, e := x.NumMultiplier(), int(x.NumExponent())
	if m < 0 {
		return scaled.Rational[float64]{}, rational.ErrNegativeSqrt
	}
	if e%2 != 0 {
		m *= 10
		e--
	}
	return scaled.New(math.Sqrt(m), int16(e/2), 1, 0)
}

// powScaled computes x**k via logarithms, so the result may exceed the range
// of float64. Negative bases require an integral k.
func powScaled(x scaled.Rational[float64], k float64) (scaled.Rational[float64], error) {
	x, err := x.Simplify()
	if err != nil {
		return scaled.Rational[float64]{}, err
	}
	m, e := x.NumMultiplier(), float64(x.NumExponent())
	if m == 0 {
		return scaled.FromFloat64[float64](math.Pow(0, k))
	}
	odd := false
	if m < 0 {
		if k != math.Trunc(k) {
			return scaled.Rational[float64]{}, rational.ErrNegativeSqrt
		}
		m = -m
		odd = math.Mod(k, 2) != 0
	}
	r, err := pow10(k * (math.Log10(m) + e))
	if err != nil || !odd {
		return r, err
	}
	return r.Neg(), nil
}
