package rational

import (
	"fmt"
	"io"

	"github.com/joeycumines/floater"
)

// Print writes each value to w, formatted by [Rational.String], one per line.
func Print[T Number](w io.Writer, values ...Rational[T]) error {
	b := make([]byte, 0, 32)
	for _, v := range values {
		b = append(b[:0], v.String()...)
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Format implements [fmt.Formatter].
//
// The verbs v and s format like [Rational.String], q quotes
// [Rational.RatString], and the float verbs (e E f F g G) format the float64
// value. Flags, width, and precision are passed through.
func (x Rational[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), x.String())
	case 'q':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), x.RatString())
	case 'e', 'E', 'f', 'F', 'g', 'G':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), x.Float64())
	default:
		_, _ = fmt.Fprintf(f, `%%!%c(rational.Rational=%s)`, verb, x.String())
	}
}

// FloatString returns x in decimal notation, with prec digits after the
// decimal point, rounding the last digit half to even. A negative prec
// formats as many digits as a float of the same precision would. Infinite
// values format as "+Inf" or "-Inf".
func (x Rational[T]) FloatString(prec int) string {
	r := x.Rat()
	if r == nil {
		if x.IsNegative() {
			return `-Inf`
		}
		return `+Inf`
	}
	return floater.FormatDecimalRat(r, prec, 0)
}
