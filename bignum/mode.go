package bignum

import (
	"fmt"
	"strings"
)

// Mode selects the representation used to evaluate expressions.
type Mode int

const (
	// Safe evaluates using rational.Rational[int64], failing on overflow.
	Safe Mode = iota
	// Experimental evaluates using scaled.Rational[float64], which has a
	// far greater range, but is approximate.
	Experimental
)

// ParseMode parses the (case-insensitive) name of a mode, as returned by
// [Mode.String].
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case `safe`:
		return Safe, nil
	case `experimental`:
		return Experimental, nil
	default:
		return 0, fmt.Errorf(`bignum: invalid mode: %q`, s)
	}
}

func (x Mode) String() string {
	switch x {
	case Safe:
		return `safe`
	case Experimental:
		return `experimental`
	default:
		return fmt.Sprintf(`Mode(%d)`, int(x))
	}
}

func (x Mode) valid() bool {
	return x == Safe || x == Experimental
}

// MarshalText implements encoding.TextMarshaler, and fails for unknown modes.
func (x Mode) MarshalText() ([]byte, error) {
	if !x.valid() {
		return nil, fmt.Errorf(`bignum: invalid mode: %d`, int(x))
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, see [ParseMode].
func (x *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
