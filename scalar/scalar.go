// Package scalar defines the closed set of integer kinds that can be
// wrapped by a checked number: signed and unsigned integers of width
// 8/16/32/64/128 plus the zero-excluding NonZero refinement of each.
//
// Every kind provides the overflow-checked primitives (AddOK, SubOK, ...)
// in the comma-ok idiom. The checked wrapper builds its poison-propagation
// semantics entirely on top of these primitives.
//
// The set is deliberately closed: the Int constraint carries an unexported
// marker method, so no kind outside this package can satisfy it. There is
// no wrapping-arithmetic refinement and none may be added; checked
// arithmetic on an already-wrapping value would mask exactly the overflow
// it exists to detect.
package scalar

// Int is the capability constraint satisfied by every scalar kind in this
// package and by nothing else.
//
// The checked primitives return the comma-ok pair (result, true) on
// success and (zero, false) when the operation leaves the kind's range:
// overflow, underflow, division or remainder by zero, an out-of-range
// shift, or (for NonZero kinds) a result of zero.
type Int[T any] interface {
	isScalar()

	// IsZero reports whether the value is zero.
	IsZero() bool
	// Equal reports whether two values of the same kind are equal.
	Equal(T) bool
	// Less reports whether the receiver orders strictly before the argument.
	Less(T) bool

	AddOK(T) (T, bool)
	SubOK(T) (T, bool)
	MulOK(T) (T, bool)
	DivOK(T) (T, bool)
	RemOK(T) (T, bool)
	NegOK() (T, bool)

	// Shift amounts are 32-bit unsigned regardless of the kind's width.
	// Amounts at or beyond the width are out of range.
	ShlOK(uint32) (T, bool)
	ShrOK(uint32) (T, bool)

	// Bitwise operations cannot leave the range of a plain kind and always
	// report true for them; NonZero kinds report false when the result is
	// zero.
	AndOK(T) (T, bool)
	OrOK(T) (T, bool)
	XorOK(T) (T, bool)
}
