package entropy

import "math"

// Character class sizes used for the charset estimate. Anything outside
// [A-Za-z0-9] counts as a symbol with a flat pool of 32, no matter how many
// distinct symbols actually appear.
const (
	lowerPool  = 26
	upperPool  = 26
	digitPool  = 10
	symbolPool = 32
)

// Estimate returns a coarse bit-strength estimate for a password, computed as
// length * log2(charset), where charset is the sum of the pools for each
// character class present. It deliberately ignores repetition, dictionary
// words, and structure; those are the pattern detector's job.
func Estimate(password string) float64 {
	if len(password) == 0 {
		return 0.0
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	charset := 0
	if lower {
		charset += lowerPool
	}
	if upper {
		charset += upperPool
	}
	if digit {
		charset += digitPool
	}
	if symbol {
		charset += symbolPool
	}

	if charset == 0 {
		return 0.0
	}

	return float64(len(password)) * math.Log2(float64(charset))
}
