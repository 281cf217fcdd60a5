package scaled

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/joeycumines/go-rational"
	"github.com/joeycumines/go-utilpkg/jsonenc"
)

type jsonRational struct {
	NumMultiplier float64 `json:"numMultiplier"`
	NumExponent   int16   `json:"numExponent"`
	DenMultiplier float64 `json:"denMultiplier"`
	DenExponent   int16   `json:"denExponent"`
}

// MarshalJSON encodes x as an object, with a field for each accessor.
func (x Rational[F]) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 96)
	b = append(b, `{"numMultiplier":`...)
	b = x.appendMultiplier(b, x.NumMultiplier())
	b = append(b, `,"numExponent":`...)
	b = strconv.AppendInt(b, int64(x.NumExponent()), 10)
	b = append(b, `,"denMultiplier":`...)
	b = x.appendMultiplier(b, x.DenMultiplier())
	b = append(b, `,"denExponent":`...)
	b = strconv.AppendInt(b, int64(x.DenExponent()), 10)
	b = append(b, '}')
	return b, nil
}

func (x Rational[F]) appendMultiplier(b []byte, m F) []byte {
	if x.bitSize() == 32 {
		return jsonenc.AppendFloat32(b, float32(m))
	}
	return jsonenc.AppendFloat64(b, float64(m))
}

// UnmarshalJSON decodes the format of [Rational.MarshalJSON], normalizing
// the result, as per [New].
func (x *Rational[F]) UnmarshalJSON(b []byte) error {
	var v jsonRational
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf(`%w: %w`, rational.ErrSyntax, err)
	}
	r, err := New(F(v.NumMultiplier), v.NumExponent, F(v.DenMultiplier), v.DenExponent)
	if err != nil {
		return err
	}
	*x = r
	return nil
}
