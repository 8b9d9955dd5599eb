package utils

import "golang.org/x/exp/constraints"

func GetZero[T any]() T {
	var result T
	return result
}

// CheckedMul returns a*b and false if the product overflows N.
func CheckedMul[N constraints.Integer](a, b N) (N, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	p := a * b
	if p/b != a {
		return p, false
	}

	// signed MinValue * -1 wraps to itself and passes the division check
	if (a < 0) != (b < 0) && p > 0 {
		return p, false
	}
	if (a < 0) == (b < 0) && p < 0 {
		return p, false
	}

	return p, true
}
