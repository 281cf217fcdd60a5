package bignum

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/joeycumines/go-rational"
	"github.com/joeycumines/go-rational/scaled"
	"github.com/joeycumines/logiface"
)

var (
	// ErrUnsupported indicates the operation is not available in the
	// configured [Mode].
	ErrUnsupported = errors.New(`bignum: operation unsupported in this mode`)

	arithmetic = map[string]rational.Op{
		`+`: rational.OpAdd,
		`-`: rational.OpSub,
		`*`: rational.OpMul,
		`/`: rational.OpDiv,
	}

	// categories are checked in order, to find the category of a failure
	categories = [...]error{
		rational.ErrDivideByZero,
		rational.ErrNegativeSqrt,
		rational.ErrDigitsTooLarge,
		rational.ErrNumberTooLarge,
		rational.ErrSyntax,
		ErrUnsupported,
	}

	comparisons = map[string]func(c int) bool{
		`==`: func(c int) bool { return c == 0 },
		`!=`: func(c int) bool { return c != 0 },
		`<`:  func(c int) bool { return c < 0 },
		`<=`: func(c int) bool { return c <= 0 },
		`>`:  func(c int) bool { return c > 0 },
		`>=`: func(c int) bool { return c >= 0 },
	}
)

type (
	// Engine evaluates expressions, see the package documentation for the
	// syntax. The zero value evaluates in [Safe] mode, with default options.
	Engine struct {
		// Logger is optional, failures are logged at warning level, and
		// results at debug level.
		Logger *logiface.Logger[logiface.Event]
		// Limiter optionally rate limits the logging of failures, per
		// category, where the category is the sentinel error, see also
		// github.com/joeycumines/go-catrate.
		Limiter Limiter
		// Options are passed to every rational operation that accepts them.
		Options []rational.Option
		Mode    Mode
	}

	// Limiter models a rate limiter keyed by category.
	Limiter interface {
		Allow(category any) (time.Time, bool)
	}
)

// Eval evaluates a single expression. Errors wrap the sentinel errors of the
// rational package, or [ErrUnsupported].
func (x *Engine) Eval(line string) (Value, error) {
	v, op, err := x.eval(line)
	if err != nil {
		if x.Limiter != nil {
			if _, ok := x.Limiter.Allow(category(err)); !ok {
				return Value{}, err
			}
		}
		x.Logger.Warning().
			Str(`op`, op).
			Str(`expr`, line).
			Stringer(`mode`, x.Mode).
			Err(err).
			Log(`evaluation failed`)
		return Value{}, err
	}
	x.Logger.Debug().
		Str(`op`, op).
		Str(`expr`, line).
		Stringer(`result`, v).
		Log(`evaluated`)
	return v, nil
}

// category returns the first of categories that err wraps, or the message.
func category(err error) any {
	for _, c := range categories {
		if errors.Is(err, c) {
			return c
		}
	}
	return err.Error()
}

func (x *Engine) eval(line string) (Value, string, error) {
	if !x.Mode.valid() {
		return Value{}, ``, fmt.Errorf(`bignum: invalid mode: %d`, int(x.Mode))
	}

	tokens, err := tokenize(line)
	if err != nil {
		return Value{}, ``, err
	}

	if len(tokens) != 0 {
		if fn, ok := lookupFunction(tokens[0]); ok {
			v, err := x.call(fn, tokens[1:])
			return v, fn.name, err
		}
	}

	switch len(tokens) {
	case 0:
		return Value{}, ``, fmt.Errorf(`%w: empty expression`, rational.ErrSyntax)
	case 1:
		v, err := x.literal(tokens[0])
		return v, `literal`, err
	case 3:
		v, err := x.binary(tokens[1], tokens[0], tokens[2])
		return v, tokens[1], err
	default:
		return Value{}, ``, fmt.Errorf(`%w: unexpected expression: %q`, rational.ErrSyntax, strings.TrimSpace(line))
	}
}

func (x *Engine) literal(s string) (Value, error) {
	if x.Mode == Experimental {
		v, err := parseScaled(s)
		if err != nil {
			return Value{}, err
		}
		return Scaled(v), nil
	}
	v, err := x.parseExact(s)
	if err != nil {
		return Value{}, err
	}
	return Exact(v), nil
}

func (x *Engine) binary(op, a, b string) (Value, error) {
	arith, isArith := arithmetic[op]
	cmp, isCmp := comparisons[op]
	if !isArith && !isCmp {
		return Value{}, fmt.Errorf(`%w: unknown operator: %q`, rational.ErrSyntax, op)
	}

	if x.Mode == Experimental {
		l, err := parseScaled(a)
		if err != nil {
			return Value{}, err
		}
		r, err := parseScaled(b)
		if err != nil {
			return Value{}, err
		}
		if isCmp {
			c, err := compareScaled(l, r)
			if err != nil {
				return Value{}, err
			}
			return Bool(cmp(c)), nil
		}
		var v scaled.Rational[float64]
		switch arith {
		case rational.OpAdd:
			v, err = l.Add(r)
		case rational.OpSub:
			v, err = l.Sub(r)
		case rational.OpMul:
			v, err = l.Mul(r)
		default:
			v, err = l.Div(r)
		}
		if err != nil {
			return Value{}, err
		}
		return Scaled(v), nil
	}

	l, err := x.parseExact(a)
	if err != nil {
		return Value{}, err
	}
	r, err := x.parseExact(b)
	if err != nil {
		return Value{}, err
	}
	if isCmp {
		return Bool(cmp(l.Cmp(r))), nil
	}
	v, err := l.Apply(arith, r)
	if err != nil {
		return Value{}, err
	}
	return Exact(v), nil
}

func (x *Engine) call(fn *function, args []string) (Value, error) {
	n := fn.operands
	if n < 0 {
		n = len(args)
	}
	if n == 0 || len(args) < n+fn.required || len(args) > n+fn.params {
		return Value{}, fmt.Errorf(`%w: %s: unexpected number of arguments: %d`, rational.ErrSyntax, fn.name, len(args))
	}
	operands, params := args[:n], args[n:]

	if x.Mode == Experimental {
		if fn.experimental == nil {
			return Value{}, fmt.Errorf(`%w: %s`, ErrUnsupported, fn.name)
		}
		values := make([]scaled.Rational[float64], len(operands))
		for i, s := range operands {
			var err error
			if values[i], err = parseScaled(s); err != nil {
				return Value{}, err
			}
		}
		v, err := fn.experimental(values, params)
		if err != nil {
			return Value{}, err
		}
		return Scaled(v), nil
	}

	values := make([]rational.Rational[int64], len(operands))
	for i, s := range operands {
		var err error
		if values[i], err = x.parseExact(s); err != nil {
			return Value{}, err
		}
	}
	v, err := fn.safe(x, values, params)
	if err != nil {
		return Value{}, err
	}
	return Exact(v), nil
}

func (x *Engine) parseExact(s string) (rational.Rational[int64], error) {
	return rational.Parse[int64](s, x.Options...)
}

// parseScaled parses n or n/d, where each part is a decimal with an optional
// exponent, which may exceed the range of float64, e.g. "6.022e23/1e-400".
func parseScaled(s string) (scaled.Rational[float64], error) {
	text := strings.TrimSpace(s)
	if len(text) >= 2 && text[0] == '(' && text[len(text)-1] == ')' {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}
	numText, denText, isFrac := strings.Cut(text, `/`)
	numMant, numExp, err := parseScientific(strings.TrimSpace(numText))
	if err != nil {
		return scaled.Rational[float64]{}, fmt.Errorf(`%w: %q`, err, s)
	}
	denMant, denExp := 1.0, int16(0)
	if isFrac {
		if denMant, denExp, err = parseScientific(strings.TrimSpace(denText)); err != nil {
			return scaled.Rational[float64]{}, fmt.Errorf(`%w: %q`, err, s)
		}
	}
	return scaled.New(numMant, numExp, denMant, denExp)
}

func parseScientific(s string) (float64, int16, error) {
	mantText, expText, hasExp := s, ``, false
	if i := strings.IndexAny(s, `eE`); i >= 0 {
		mantText, expText, hasExp = s[:i], s[i+1:], true
	}
	if mantText == `` || (hasExp && expText == ``) || strings.ContainsAny(mantText, `xXpP_`) {
		return 0, 0, rational.ErrSyntax
	}
	m, err := strconv.ParseFloat(mantText, 64)
	if err != nil || math.IsNaN(m) || math.IsInf(m, 0) {
		if errors.Is(err, strconv.ErrRange) {
			return 0, 0, rational.ErrNumberTooLarge
		}
		return 0, 0, rational.ErrSyntax
	}
	if !hasExp {
		return m, 0, nil
	}
	e, err := strconv.ParseInt(expText, 10, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, 0, rational.ErrNumberTooLarge
		}
		return 0, 0, rational.ErrSyntax
	}
	return m, int16(e), nil
}
