package scaled

// pow10Max is the largest power of ten exactly representable as a float64.
const pow10Max = 22

var pow10Table = [pow10Max + 1]float64{
	1e00, 1e01, 1e02, 1e03, 1e04, 1e05, 1e06, 1e07, 1e08, 1e09,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

// scale returns m * 10**n. Negative powers divide by the exact positive
// power, and exponents beyond the table are applied in steps.
func scale(m float64, n int) float64 {
	for n > pow10Max {
		m *= pow10Table[pow10Max]
		n -= pow10Max
	}
	for n < -pow10Max {
		m /= pow10Table[pow10Max]
		n += pow10Max
	}
	if n < 0 {
		return m / pow10Table[-n]
	}
	return m * pow10Table[n]
}
