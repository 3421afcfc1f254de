package scalar

import "golang.org/x/exp/constraints"

// Checked primitives shared by the native kinds. Overflow is detected by
// probing the wrapped result rather than by precomputed bounds, so the same
// code serves the signed and unsigned kinds of every width.

func addOK[T constraints.Integer](x, y T) (T, bool) {
	z := x + y
	if (y > 0 && z < x) || (y < 0 && z > x) {
		return 0, false
	}
	return z, true
}

func subOK[T constraints.Integer](x, y T) (T, bool) {
	z := x - y
	if (y > 0 && z > x) || (y < 0 && z < x) {
		return 0, false
	}
	return z, true
}

func mulOK[T constraints.Integer](x, y T) (T, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	// The signed minimum times -1 wraps and would make the quotient probe
	// below trap, so it is rejected up front. Unsigned kinds never take
	// this branch: x < 0 is unsatisfiable for them.
	if y == ^T(0) && x < 0 && -x == x {
		return 0, false
	}
	z := x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

func divOK[T constraints.Integer](x, y T) (T, bool) {
	if y == 0 {
		return 0, false
	}
	// signed minimum / -1
	if y == ^T(0) && x < 0 && -x == x {
		return 0, false
	}
	return x / y, true
}

func remOK[T constraints.Integer](x, y T) (T, bool) {
	if y == 0 {
		return 0, false
	}
	// signed minimum % -1 traps in Go even though the result would be zero
	if y == ^T(0) && x < 0 && -x == x {
		return 0, false
	}
	return x % y, true
}

func negOK[T constraints.Integer](x T) (T, bool) {
	if x == 0 {
		return 0, true
	}
	z := -x
	// Negation must flip the sign. It cannot for the signed minimum or for
	// any nonzero unsigned value.
	if (z < 0) == (x < 0) {
		return 0, false
	}
	return z, true
}

func shlOK[T constraints.Integer](x T, n, width uint32) (T, bool) {
	if n >= width {
		return 0, false
	}
	return x << n, true
}

func shrOK[T constraints.Integer](x T, n, width uint32) (T, bool) {
	if n >= width {
		return 0, false
	}
	return x >> n, true
}
