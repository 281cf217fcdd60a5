package rational

import (
	"errors"
)

var (
	// ErrDivideByZero indicates a zero denominator, where one was verified.
	ErrDivideByZero = errors.New(`rational: denominator must not be null`)

	// ErrNegativeSqrt is returned by [Rational.Sqrt] for negative values.
	ErrNegativeSqrt = errors.New(`rational: the rational must not be negative when calling sqrt`)

	// ErrInvalidAccessArgument is returned by indexed access, for any index
	// other than 0 (numerator) or 1 (denominator).
	ErrInvalidAccessArgument = errors.New(`rational: the parameter must be 0 (numerator) or 1 (denominator)`)

	// ErrFloatTypeGiven is returned when a [Rational] is constructed over a
	// floating point type.
	ErrFloatTypeGiven = errors.New(`rational: the type given to a rational must not be a floating point`)

	// ErrIntTypeGiven is returned when a scaled rational is constructed over
	// an integral multiplier type.
	ErrIntTypeGiven = errors.New(`rational: the type given to a scaled rational multiplier must not be an integer`)

	// ErrNumberTooLarge indicates that a value cannot be represented by the
	// destination integer type.
	ErrNumberTooLarge = errors.New(`rational: the given integer type doesn't have the capacity to store the rational`)

	// ErrDigitsTooLarge is returned by [Rational.ToApproximation], if more
	// digits are requested than the configured maximum.
	ErrDigitsTooLarge = errors.New(`rational: the given precision seems too large to be wanted`)

	// ErrSyntax indicates malformed text input.
	ErrSyntax = errors.New(`rational: invalid syntax`)
)
