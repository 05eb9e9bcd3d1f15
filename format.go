package outline

import (
	"math"
	"strconv"
)

// appendNumber appends the shortest decimal representation of v that
// round-trips, using the notation browsers accept in path data:
// plain decimals in [1e-6, 1e21), exponent form outside that range,
// "0" for negative zero and NaN/Infinity/-Infinity for non-finite values.
func appendNumber(b []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(b, "NaN"...)
	case math.IsInf(v, 1):
		return append(b, "Infinity"...)
	case math.IsInf(v, -1):
		return append(b, "-Infinity"...)
	case v == 0:
		return append(b, '0')
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return appendExponent(b, v)
	}
	return strconv.AppendFloat(b, v, 'f', -1, 64)
}

// appendExponent writes v in exponent form without exponent zero padding
// ("1e-7", not "1e-07").
func appendExponent(b []byte, v float64) []byte {
	s := strconv.AppendFloat(nil, v, 'e', -1, 64)
	for i, c := range s {
		if c != 'e' {
			continue
		}
		// s[i+1] is the exponent sign.
		digits := s[i+2:]
		for len(digits) > 1 && digits[0] == '0' {
			digits = digits[1:]
		}
		b = append(b, s[:i+2]...)
		return append(b, digits...)
	}
	return append(b, s...)
}

// formatNumber is the string form of appendNumber.
func formatNumber(v float64) string {
	return string(appendNumber(nil, v))
}

func appendFlag(b []byte, f bool) []byte {
	if f {
		return append(b, '1')
	}
	return append(b, '0')
}
