// Package scaled implements an experimental rational number representation,
// where the numerator and denominator are each a decimal mantissa and
// exponent pair.
//
// This trades the exactness of the parent package for range: the mantissas
// are floating point, and drift as operations are combined, but values far
// beyond the range of any integer type may be represented.
package scaled
