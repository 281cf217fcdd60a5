package rational

import (
	"encoding/json"
	"fmt"

	"github.com/joeycumines/go-utilpkg/jsonenc"
)

// MarshalJSON encodes x as a JSON string, formatted by [Rational.RatString].
func (x Rational[T]) MarshalJSON() ([]byte, error) {
	return jsonenc.AppendString(make([]byte, 0, 26), x.RatString()), nil
}

// UnmarshalJSON decodes a JSON string, in any format accepted by [Parse], or
// a JSON number, which is converted exactly.
func (x *Rational[T]) UnmarshalJSON(b []byte) error {
	var text string
	if len(b) != 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf(`%w: %w`, ErrSyntax, err)
		}
		if n == `` {
			return fmt.Errorf(`%w: invalid value: %s`, ErrSyntax, b)
		}
		text = n.String()
	}
	v, err := Parse[T](text)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalText implements [encoding.TextMarshaler], see [Rational.RatString].
func (x Rational[T]) MarshalText() ([]byte, error) {
	return x.appendRat(make([]byte, 0, 24)), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], see [Parse].
func (x *Rational[T]) UnmarshalText(b []byte) error {
	v, err := Parse[T](string(b))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
