package wide

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (x Int) big() *big.Int {
	v := x.Mag.Big()
	if x.Neg {
		v.Neg(v)
	}
	return v
}

func TestMul64(t *testing.T) {
	assert.Equal(t, Uint128{Hi: 0, Lo: 6}, Mul64(2, 3))
	assert.Equal(t, Uint128{Hi: math.MaxUint64 - 1, Lo: 1}, Mul64(math.MaxUint64, math.MaxUint64))
	assert.Equal(t, Uint128{Hi: 1 << 62, Lo: 0}, Mul64(1<<63, 1<<63))
	assert.True(t, Mul64(0, math.MaxUint64).IsZero())
}

func TestUint128_Add(t *testing.T) {
	v, ok := Uint128{Lo: math.MaxUint64}.Add(From64(1))
	require.True(t, ok)
	assert.Equal(t, Uint128{Hi: 1}, v)

	_, ok = Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}.Add(From64(1))
	assert.False(t, ok)
}

func TestUint128_Sub(t *testing.T) {
	v, ok := Uint128{Hi: 1}.Sub(From64(1))
	require.True(t, ok)
	assert.Equal(t, Uint128{Lo: math.MaxUint64}, v)

	_, ok = From64(1).Sub(From64(2))
	assert.False(t, ok)
}

func TestUint128_Cmp(t *testing.T) {
	assert.Equal(t, 0, Uint128{Hi: 1, Lo: 2}.Cmp(Uint128{Hi: 1, Lo: 2}))
	assert.Equal(t, -1, Uint128{Hi: 1, Lo: 2}.Cmp(Uint128{Hi: 1, Lo: 3}))
	assert.Equal(t, 1, Uint128{Hi: 2}.Cmp(Uint128{Hi: 1, Lo: math.MaxUint64}))
	assert.Equal(t, -1, Uint128{Lo: math.MaxUint64}.Cmp(Uint128{Hi: 1}))
}

func TestUint128_Uint64(t *testing.T) {
	v, ok := From64(42).Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), v)
	_, ok = Uint128{Hi: 1}.Uint64()
	assert.False(t, ok)
}

func TestInt_arithmetic(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	operand := func() (bool, uint64) {
		switch rng.IntN(4) {
		case 0:
			return rng.IntN(2) == 0, 0
		case 1:
			return rng.IntN(2) == 0, 1 << 63
		default:
			return rng.IntN(2) == 0, (rng.Uint64() >> 1) >> rng.UintN(64)
		}
	}
	for range 2000 {
		an, a := operand()
		bn, b := operand()
		cn, c := operand()
		dn, d := operand()
		x := Mul(an, a, bn, b)
		y := Mul(cn, c, dn, d)

		want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		if an != bn {
			want.Neg(want)
		}
		require.Equal(t, want.String(), x.big().String())
		require.Equal(t, want.Sign(), x.Sign())
		require.False(t, x.Neg && x.Mag.IsZero(), `negative zero`)

		sum, ok := x.Add(y)
		require.True(t, ok)
		require.Equal(t, new(big.Int).Add(x.big(), y.big()).String(), sum.big().String())
		require.False(t, sum.Neg && sum.Mag.IsZero(), `negative zero`)

		diff, ok := x.Sub(y)
		require.True(t, ok)
		require.Equal(t, new(big.Int).Sub(x.big(), y.big()).String(), diff.big().String())

		require.Equal(t, x.big().Cmp(y.big()), x.Cmp(y))
		require.Equal(t, 0, x.Cmp(x))
	}
}

func TestInt_Add_overflow(t *testing.T) {
	m := Int{Mag: Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}}
	_, ok := m.Add(Int{Mag: From64(1)})
	assert.False(t, ok)
	_, ok = m.Negate().Sub(Int{Mag: From64(1)})
	assert.False(t, ok)
	v, ok := m.Add(Int{Mag: From64(1), Neg: true})
	assert.True(t, ok)
	assert.Equal(t, Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64 - 1}, v.Mag)
}

func TestInt_Negate(t *testing.T) {
	assert.Equal(t, Int{}, Int{}.Negate())
	assert.Equal(t, Int{Mag: From64(1), Neg: true}, Int{Mag: From64(1)}.Negate())
	assert.Equal(t, Int{Mag: From64(1)}, Int{Mag: From64(1), Neg: true}.Negate())
}

func TestReduce(t *testing.T) {
	for _, tt := range [...]struct {
		name     string
		num, den Uint128
		wantNum  uint64
		wantDen  uint64
		wantOK   bool
	}{
		{`small`, From64(6), From64(8), 3, 4, true},
		{`zero`, From64(0), From64(8), 0, 1, true},
		{`both zero`, Uint128{}, Uint128{}, 0, 0, true},
		{`zero denominator`, From64(5), Uint128{}, 1, 0, true},
		{`wide`, Mul64(9, 1<<62), Mul64(3, 1<<61), 6, 1, true},
		{`wide denominator`, From64(1 << 62), Mul64(1<<62, 1<<63), 1, 1 << 63, true},
		{`too wide`, Mul64(math.MaxInt64, math.MaxInt64), From64(2), 0, 0, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			num, den, ok := Reduce(tt.num, tt.den)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantNum, num)
			assert.Equal(t, tt.wantDen, den)
		})
	}
}
