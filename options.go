package rational

const (
	// DefaultIterations is the default bound on the number of partial
	// quotients, used when converting from floating point.
	DefaultIterations = 10

	// DefaultThreshold is the default magnitude below which a (remainder of
	// a) floating point value is treated as zero.
	DefaultThreshold = 0.01

	// DefaultMaxDigits is the default maximum accepted by
	// [Rational.ToApproximation].
	DefaultMaxDigits = 7

	// DefaultKeptDigits is the conventional number of decimal digits to keep,
	// when approximating.
	DefaultKeptDigits = 3

	// DefaultPrintDigits is the default number of significant digits used
	// when printing approximate values.
	DefaultPrintDigits = 10
)

type (
	// Option configures construction and conversion, see [New] and
	// [FromFloat64].
	Option func(c *config)

	config struct {
		threshold         float64
		iterations        uint
		maxDigits         uint
		reduce            bool
		verifyDenominator bool
	}
)

// WithReduce configures whether the result will be reduced to lowest terms,
// defaults to true. Arithmetic results are always reduced.
func WithReduce(reduce bool) Option {
	return func(c *config) {
		c.reduce = reduce
	}
}

// WithVerifyDenominator configures whether a zero denominator results in
// [ErrDivideByZero], defaults to true. Disabling verification is how
// [Infinite] is built.
func WithVerifyDenominator(verify bool) Option {
	return func(c *config) {
		c.verifyDenominator = verify
	}
}

// WithIterations bounds the number of partial quotients evaluated when
// converting from floating point. Zero converts every value to zero.
func WithIterations(iterations uint) Option {
	return func(c *config) {
		c.iterations = iterations
	}
}

// WithThreshold sets the magnitude below which a floating point remainder is
// treated as zero.
func WithThreshold(threshold float64) Option {
	return func(c *config) {
		c.threshold = threshold
	}
}

// WithMaxDigits sets the maximum number of digits accepted by
// [Rational.ToApproximation].
func WithMaxDigits(maxDigits uint) Option {
	return func(c *config) {
		c.maxDigits = maxDigits
	}
}

func newConfig(options []Option) config {
	c := config{
		threshold:         DefaultThreshold,
		iterations:        DefaultIterations,
		maxDigits:         DefaultMaxDigits,
		reduce:            true,
		verifyDenominator: true,
	}
	for _, o := range options {
		if o != nil {
			o(&c)
		}
	}
	return c
}
