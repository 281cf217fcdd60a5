package rational

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRational_Rat(t *testing.T) {
	assert.Equal(t, big.NewRat(-3, 4), r32(-3, 4).Rat())
	assert.Equal(t, `-9223372036854775808/1`, r64(math.MinInt64, 1).Rat().String())
	assert.Nil(t, Infinite[int32]().Rat())
}

func TestFromRat(t *testing.T) {
	v, err := FromRat[int32](big.NewRat(6, -8))
	require.NoError(t, err)
	assert.Equal(t, r32(-3, 4), v)

	v, err = FromRat[int32](nil)
	require.NoError(t, err)
	assert.Equal(t, Zero[int32](), v)

	_, err = FromRat[int8](big.NewRat(1, 1000))
	assert.ErrorIs(t, err, ErrNumberTooLarge)

	huge, _ := new(big.Rat).SetString(`1e30`)
	_, err = FromRat[int64](huge)
	assert.ErrorIs(t, err, ErrNumberTooLarge)

	m, err := FromRat[int64](new(big.Rat).SetInt64(math.MinInt64))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), m.Numerator())
}

func TestParse(t *testing.T) {
	for _, tt := range [...]struct {
		name    string
		input   string
		options []Option
		want    Rational[int32]
		wantErr []error
	}{
		{name: `fraction`, input: `3/4`, want: r32(3, 4)},
		{name: `string format`, input: ` ( -6 / 8 ) `, want: r32(-3, 4)},
		{name: `negative denominator`, input: `3/-4`, want: r32(-3, 4)},
		{name: `integer`, input: `-12`, want: r32(-12, 1)},
		{name: `decimal`, input: `1.5`, want: r32(3, 2)},
		{name: `exponent`, input: `1.5e-3`, want: r32(3, 2000)},
		{name: `decimal fraction`, input: `1.5/0.5`, want: r32(3, 1)},
		{name: `always reduced`, input: `2/4`, options: []Option{WithReduce(false)}, want: r32(1, 2)},
		{name: `infinite`, input: `-3/0`, options: []Option{WithVerifyDenominator(false)}, want: Must(Infinite[int32]().Neg())},
		{name: `zero denominator`, input: `1/0`, wantErr: []error{ErrDivideByZero}},
		{name: `empty`, input: ``, wantErr: []error{ErrSyntax}},
		{name: `letters`, input: `abc`, wantErr: []error{ErrSyntax}},
		{name: `missing denominator`, input: `1/`, wantErr: []error{ErrSyntax}},
		{name: `two slashes`, input: `1/2/3`, wantErr: []error{ErrSyntax}},
		{name: `inner space`, input: `1 2/3`, wantErr: []error{ErrSyntax}},
		{name: `unbalanced`, input: `(1/2`, wantErr: []error{ErrSyntax}},
		{name: `infinity`, input: `Inf`, wantErr: []error{ErrSyntax}},
		{name: `decimal infinite`, input: `1.5/0`, options: []Option{WithVerifyDenominator(false)}, wantErr: []error{ErrSyntax}},
		{name: `huge exponent`, input: `1e5000`, wantErr: []error{ErrSyntax, ErrNumberTooLarge}},
		{name: `out of range`, input: `99999999999`, wantErr: []error{ErrNumberTooLarge}},
		{name: `out of range denominator`, input: `1/99999999999`, wantErr: []error{ErrNumberTooLarge}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse[int32](tt.input, tt.options...)
			if tt.wantErr != nil {
				for _, e := range tt.wantErr {
					require.ErrorIs(t, err, e)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func FuzzParse(f *testing.F) {
	for _, s := range [...]string{
		`3/4`,
		`(1 / 4)`,
		`-12`,
		`1.5e-3`,
		`0x10`,
		`1/0`,
		`9223372036854775807/-9223372036854775808`,
		``,
	} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		v, err := Parse[int64](s)
		if err != nil {
			return
		}
		if v.Denominator() <= 0 {
			t.Fatalf(`invalid denominator: %s`, v)
		}
		if _, n, d := v.parts(); gcd(n, d) != 1 {
			t.Fatalf(`not reduced: %s`, v)
		}
		w, err := Parse[int64](v.String())
		if err != nil {
			t.Fatal(err)
		}
		if w != v {
			t.Fatalf(`round trip: %s != %s`, w, v)
		}
	})
}
