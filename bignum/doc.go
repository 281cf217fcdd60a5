// Package bignum evaluates simple rational expressions, under an explicit
// [Mode] that selects between exact 64-bit rationals and the experimental
// scaled representation, which trades exactness for range.
//
// Expressions are whitespace separated, and take one of the forms:
//
//	x
//	x op y
//	fn x [param]
//	fn x y ...
//
// Where op is one of + - * / == != < <= > >=, operands are integers,
// decimals, or fractions like "3/4" and "(3 / 4)", and fn is one of the
// functions listed by [Functions].
//
// In [Safe] mode, comparisons and min/max use the exact ordering of
// rational.Rational.Cmp, rather than comparing float64 approximations.
package bignum
