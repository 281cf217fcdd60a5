package rational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func r32(num, den int32) Rational[int32] {
	return Must(New(num, den))
}

func r64(num, den int64) Rational[int64] {
	return Must(New(num, den))
}

func TestNew(t *testing.T) {
	for _, tt := range [...]struct {
		name    string
		num     int32
		den     int32
		options []Option
		wantNum int32
		wantDen int32
		wantErr error
	}{
		{name: `simple`, num: 1, den: 4, wantNum: 1, wantDen: 4},
		{name: `reduced`, num: 6, den: 8, wantNum: 3, wantDen: 4},
		{name: `negative denominator`, num: 6, den: -8, wantNum: -3, wantDen: 4},
		{name: `both negative`, num: -6, den: -8, wantNum: 3, wantDen: 4},
		{name: `zero over negative`, num: 0, den: -1, wantNum: 0, wantDen: 1},
		{name: `zero over many`, num: 0, den: 7, wantNum: 0, wantDen: 1},
		{name: `not reduced`, num: 6, den: 8, options: []Option{WithReduce(false)}, wantNum: 6, wantDen: 8},
		{name: `not reduced negative`, num: 6, den: -8, options: []Option{WithReduce(false)}, wantNum: -6, wantDen: 8},
		{name: `zero denominator`, num: 1, den: 0, wantErr: ErrDivideByZero},
		{name: `zero denominator unverified`, num: 1, den: 0, options: []Option{WithVerifyDenominator(false)}, wantNum: 1, wantDen: 0},
		{name: `zero denominator unverified reduced`, num: -5, den: 0, options: []Option{WithVerifyDenominator(false)}, wantNum: -1, wantDen: 0},
		{name: `min numerator`, num: math.MinInt32, den: 1, wantNum: math.MinInt32, wantDen: 1},
		{name: `min numerator reduced`, num: math.MinInt32, den: 2, wantNum: math.MinInt32 / 2, wantDen: 1},
		{name: `min denominator`, num: 1, den: math.MinInt32, wantErr: ErrNumberTooLarge},
		{name: `min denominator reduced`, num: 2, den: math.MinInt32, wantNum: -1, wantDen: 1 << 30},
		{name: `min over min`, num: math.MinInt32, den: math.MinInt32, wantNum: 1, wantDen: 1},
		{name: `min numerator negated`, num: math.MinInt32, den: -1, wantErr: ErrNumberTooLarge},
	} {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.num, tt.den, tt.options...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Rational[int32]{}, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNum, v.Numerator())
			assert.Equal(t, tt.wantDen, v.Denominator())
		})
	}
}

func TestNew_normalization(t *testing.T) {
	for num := int64(-30); num <= 30; num++ {
		for den := int64(-30); den <= 30; den++ {
			if den == 0 {
				continue
			}
			v := r64(num, den)
			require.Greater(t, v.Denominator(), int64(0))
			neg, n, d := v.parts()
			require.Equal(t, uint64(1), gcd(n, d), `%d/%d`, num, den)
			require.Equal(t, num*den < 0, neg)
			require.Equal(t, float64(num)/float64(den), v.Float64())
		}
	}
}

func TestNew_floatTypeGiven(t *testing.T) {
	_, err := New[float64](1, 2)
	assert.ErrorIs(t, err, ErrFloatTypeGiven)
	_, err = New[float32](1, 2)
	assert.ErrorIs(t, err, ErrFloatTypeGiven)
	_, err = FromFloat64[float32](0.5)
	assert.ErrorIs(t, err, ErrFloatTypeGiven)
	_, err = Zero[float64]().Add(One[float64]())
	assert.ErrorIs(t, err, ErrFloatTypeGiven)
	_, err = Convert[float64](r32(1, 2))
	assert.ErrorIs(t, err, ErrFloatTypeGiven)
	_, err = Parse[float64](`1/2`)
	assert.ErrorIs(t, err, ErrFloatTypeGiven)
	// the zero value is still usable, as 0/1
	assert.Equal(t, `(0 / 1)`, Zero[float64]().String())
}

func TestNew_widths(t *testing.T) {
	_, err := New[int8](-128, 1)
	require.NoError(t, err)
	_, err = New[int8](1, -128)
	require.ErrorIs(t, err, ErrNumberTooLarge)

	v16 := Must(New[int16](math.MaxInt16, math.MinInt16+1))
	assert.Equal(t, int16(-1), v16.Numerator())
	assert.Equal(t, int16(1), v16.Denominator())

	type named int64
	v := Must(New[named](-4, 6))
	assert.Equal(t, named(-2), v.Numerator())
	assert.Equal(t, named(3), v.Denominator())

	vi := Must(New[int](math.MinInt, 1))
	assert.Equal(t, math.MinInt, vi.Numerator())
}

func TestFactories(t *testing.T) {
	assert.Equal(t, `(0 / 1)`, Zero[int32]().String())
	assert.Equal(t, `(1 / 1)`, One[int32]().String())
	assert.Equal(t, `(355 / 113)`, Pi[int16]().String())
	assert.Equal(t, `(1 / 0)`, Infinite[int64]().String())
	assert.True(t, Infinite[int8]().IsInfinite())
	assert.False(t, One[int8]().IsInfinite())
	assert.Equal(t, Zero[int32](), r32(0, 5))
	assert.Equal(t, One[int32](), r32(5, 5))
	assert.Equal(t, Infinite[int32](), Must(New[int32](3, 0, WithVerifyDenominator(false))))
}

func TestMust(t *testing.T) {
	assert.Equal(t, r32(1, 2), Must(New[int32](2, 4)))
	assert.PanicsWithValue(t, ErrDivideByZero, func() { Must(New[int32](2, 0)) })
}

func TestRational_At(t *testing.T) {
	v := r32(-3, 5)
	n, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, v.Numerator(), n)
	d, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, v.Denominator(), d)
	for _, id := range []int{-1, 2, 100} {
		_, err = v.At(id)
		assert.ErrorIs(t, err, ErrInvalidAccessArgument)
	}
}

func TestRational_Set(t *testing.T) {
	v := r32(3, 5)

	require.NoError(t, v.Set(1, -4))
	assert.Equal(t, `(-3 / 4)`, v.String())

	require.NoError(t, v.Set(0, 6))
	assert.Equal(t, `(6 / 4)`, v.String(), `set does not reduce`)

	require.ErrorIs(t, v.Set(1, 0), ErrDivideByZero)
	assert.Equal(t, `(6 / 4)`, v.String(), `unchanged on error`)

	require.ErrorIs(t, v.Set(2, 1), ErrInvalidAccessArgument)
	require.ErrorIs(t, v.Set(-1, 1), ErrInvalidAccessArgument)
	assert.Equal(t, `(6 / 4)`, v.String())

	require.NoError(t, v.SetNumerator(0))
	require.NoError(t, v.SetDenominator(-9))
	assert.Equal(t, `(0 / 9)`, v.String())
	assert.True(t, v.IsZero())

	i8 := Must(New[int8](1, 2))
	require.ErrorIs(t, i8.SetDenominator(-128), ErrNumberTooLarge)
	require.NoError(t, i8.SetNumerator(-128))
	assert.Equal(t, `(-128 / 2)`, i8.String())
	require.ErrorIs(t, i8.SetDenominator(-1), ErrNumberTooLarge)
	assert.Equal(t, `(-128 / 2)`, i8.String())
}

func TestRational_Simplify(t *testing.T) {
	v := Must(New[int32](-10, 4, WithReduce(false)))
	assert.Equal(t, `(-5 / 2)`, v.Simplify().String())
	assert.Equal(t, `(-10 / 4)`, v.String(), `pure`)

	zz := Must(New[int32](0, 0, WithVerifyDenominator(false)))
	assert.Equal(t, zz, zz.Simplify())

	m := Must(New[int64](math.MinInt64, 4, WithReduce(false)))
	assert.Equal(t, r64(math.MinInt64/4, 1), m.Simplify())
}

func TestRational_status(t *testing.T) {
	for _, tt := range [...]struct {
		name     string
		value    Rational[int32]
		negative bool
		integer  bool
		zero     bool
		infinite bool
		sign     int
	}{
		{name: `zero`, value: Zero[int32](), integer: true, zero: true},
		{name: `zero over negative`, value: r32(0, -1), integer: true, zero: true},
		{name: `integer`, value: r32(10000, 1), integer: true, sign: 1},
		{name: `unreduced integer`, value: Must(New[int32](-4, 2, WithReduce(false))), negative: true, integer: true, sign: -1},
		{name: `fraction`, value: r32(1, 2), sign: 1},
		{name: `negative fraction`, value: r32(-1, 2), negative: true, sign: -1},
		{name: `infinite`, value: Infinite[int32](), infinite: true, sign: 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.negative, tt.value.IsNegative())
			assert.Equal(t, tt.integer, tt.value.IsInteger())
			assert.Equal(t, tt.zero, tt.value.IsZero())
			assert.Equal(t, tt.infinite, tt.value.IsInfinite())
			assert.Equal(t, tt.sign, tt.value.Sign())
		})
	}
}

func TestConvert(t *testing.T) {
	v, err := Convert[int8](r32(-128, 127))
	require.NoError(t, err)
	assert.Equal(t, `(-128 / 127)`, v.String())

	_, err = Convert[int8](r32(200, 1))
	assert.ErrorIs(t, err, ErrNumberTooLarge)
	_, err = Convert[int8](r32(1, 200))
	assert.ErrorIs(t, err, ErrNumberTooLarge)
	_, err = Convert[int16](r64(math.MinInt64, 1))
	assert.ErrorIs(t, err, ErrNumberTooLarge)

	w, err := Convert[int64](r32(math.MinInt32, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt32), w.Numerator())
	assert.Equal(t, int64(3), w.Denominator())

	inf, err := Convert[int8](Infinite[int64]())
	require.NoError(t, err)
	assert.True(t, inf.IsInfinite())

	unreduced := Must(New[int64](2, 4, WithReduce(false)))
	c, err := Convert[int32](unreduced)
	require.NoError(t, err)
	assert.Equal(t, `(2 / 4)`, c.String())
}
