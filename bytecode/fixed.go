package bytecode

import (
	"math"
	"strconv"
)

// Fixed is a signed fixed point number with 10 fractional bits.
type Fixed int32

const (
	RadixPoint = 10
	fixedOne   = 1 << RadixPoint
)

func FixedFromInt(i int) Fixed {
	return saturate(float64(i) * fixedOne)
}

func FixedFromFloat(f float64) Fixed {
	return saturate(f * fixedOne)
}

func saturate(v float64) Fixed {
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return Fixed(v)
}

func (f Fixed) Float64() float64 {
	return float64(f) / fixedOne
}

func (f Fixed) String() string {
	return strconv.FormatFloat(f.Float64(), 'f', -1, 64)
}

// ParseFixed reads a CSS number from the start of s: optional sign, integer
// digits and an optional fraction. It returns the value and number of bytes
// consumed, 0 means s does not start with a number. Integer part saturates,
// fraction digits beyond the fixed point precision are ignored.
func ParseFixed(s string) (Fixed, int) {
	var (
		i        int
		negative bool
	)
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	var intpart int64
	start := i
	for ; i < len(s) && isDigit(s[i]); i++ {
		if intpart < math.MaxInt32 {
			intpart = intpart*10 + int64(s[i]-'0')
		}
	}
	digits := i - start

	var fracpart, den int64 = 0, 1
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
			if den < 1e7 {
				fracpart = fracpart*10 + int64(s[i]-'0')
				den *= 10
			}
		}
	}
	if digits == 0 {
		return 0, 0
	}

	v := float64(intpart)*fixedOne + float64(fracpart*fixedOne)/float64(den)
	if negative {
		v = -v
	}
	return saturate(v), i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
