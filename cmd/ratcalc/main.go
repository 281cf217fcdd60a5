// Command ratcalc evaluates rational expressions.
//
// Usage:
//
//	ratcalc [flags] [expression]
//
// With no expression, one expression is read per line of stdin, skipping
// blank lines. The -i flag starts an interactive session instead. Results are
// written to stdout, and errors to stderr, as JSON logs.
//
// The exit code is 0 on success, 1 if any expression failed to evaluate, and
// 2 for invalid usage.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/go-rational"
	"github.com/joeycumines/go-rational/bignum"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

const (
	exitOK = iota
	exitEval
	exitUsage
)

// logRates limits failure logs, per category
var logRates = map[time.Duration]int{
	time.Second: 3,
	time.Minute: 30,
}

type (
	config struct {
		mode        bignum.Mode
		iterations  uint
		threshold   float64
		maxDigits   uint
		logLevel    logiface.Level
		logLevelSet bool
		interactive bool
	}

	calculator struct {
		engine bignum.Engine
		stdout io.Writer
	}
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, expr, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	c := newCalculator(cfg, stdout, stderr)

	switch {
	case cfg.interactive:
		c.interactive()
		return exitOK
	case expr != ``:
		return c.eval(expr)
	default:
		return c.evalLines(stdin)
	}
}

func parseArgs(args []string, stderr io.Writer) (config, string, error) {
	cfg := config{
		mode:       bignum.Safe,
		iterations: rational.DefaultIterations,
		threshold:  rational.DefaultThreshold,
		maxDigits:  rational.DefaultMaxDigits,
		logLevel:   logiface.LevelWarning,
	}

	fs := flag.NewFlagSet(`ratcalc`, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: ratcalc [flags] [expression]\n\nFunctions: %s\n\nFlags:\n", strings.Join(bignum.Functions(), `, `))
		fs.PrintDefaults()
	}
	fs.TextVar(&cfg.mode, `mode`, cfg.mode, "evaluation `mode`, safe or experimental")
	fs.UintVar(&cfg.iterations, `iterations`, cfg.iterations, `maximum continued fraction terms, when converting from floating point`)
	fs.Float64Var(&cfg.threshold, `threshold`, cfg.threshold, `remainder below which a continued fraction terminates`)
	fs.UintVar(&cfg.maxDigits, `max-digits`, cfg.maxDigits, `maximum digits accepted by approx`)
	fs.Func(`log-level`, "log `level`, e.g. debug, info, warning, or disabled (default warning)", func(s string) (err error) {
		cfg.logLevel, err = parseLevel(s)
		cfg.logLevelSet = true
		return
	})
	fs.BoolVar(&cfg.interactive, `i`, false, `start an interactive session, which prints errors, and disables logging unless -log-level is set`)

	if err := fs.Parse(args); err != nil {
		return config{}, ``, err
	}

	expr := strings.Join(fs.Args(), ` `)
	if cfg.interactive && expr != `` {
		err := errors.New(`an expression may not be given with -i`)
		_, _ = fmt.Fprintln(fs.Output(), err)
		fs.Usage()
		return config{}, ``, err
	}
	if cfg.interactive && !cfg.logLevelSet {
		cfg.logLevel = logiface.LevelDisabled
	}

	return cfg, expr, nil
}

func parseLevel(s string) (logiface.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for level := logiface.LevelDisabled; level <= logiface.LevelTrace; level++ {
		if level.String() == s {
			return level, nil
		}
	}
	switch s {
	case `error`:
		return logiface.LevelError, nil
	case `warn`:
		return logiface.LevelWarning, nil
	}
	return 0, fmt.Errorf(`invalid log level: %q`, s)
}

func newCalculator(cfg config, stdout, stderr io.Writer) *calculator {
	return &calculator{
		engine: bignum.Engine{
			Logger: stumpy.L.New(
				stumpy.L.WithStumpy(stumpy.WithWriter(stderr)),
				stumpy.L.WithLevel(cfg.logLevel),
			).Logger(),
			Limiter: catrate.NewLimiter(logRates),
			Options: []rational.Option{
				rational.WithIterations(cfg.iterations),
				rational.WithThreshold(cfg.threshold),
				rational.WithMaxDigits(cfg.maxDigits),
			},
			Mode: cfg.mode,
		},
		stdout: stdout,
	}
}

// eval evaluates a single expression, writing the result to stdout, and
// returning the exit code.
func (x *calculator) eval(expr string) int {
	v, err := x.engine.Eval(expr)
	if err != nil {
		return exitEval
	}
	_, _ = fmt.Fprintln(x.stdout, v)
	return exitOK
}

// evalLines evaluates each non-blank line, continuing after failures.
func (x *calculator) evalLines(r io.Reader) int {
	code := exitOK
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == `` || strings.HasPrefix(line, `#`) {
			continue
		}
		if c := x.eval(line); c != exitOK {
			code = c
		}
	}
	if err := scanner.Err(); err != nil {
		x.engine.Logger.Err().Err(err).Log(`failed to read input`)
		return exitEval
	}
	return code
}
