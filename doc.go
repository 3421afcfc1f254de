// Package checkednum provides overflow-checked integers that keep the
// ergonomics of ordinary arithmetic.
//
// A Checked value behaves like a native fixed-width integer until an
// operation leaves the representable range. At that point the value does
// not wrap and does not panic; it becomes poisoned, and the poison
// propagates through every further operation the way NaN propagates
// through floating-point arithmetic. The caller discovers the failure by
// asking, not by catching:
//
//	v := checkednum.NewU16(123).Add(210).Mul(2)
//	if v.Overflowed() {
//	    // somewhere upstream an operation left the uint16 range
//	}
//	n, ok := v.Value() // 666, true
//
// # Poison propagation
//
// Every failure mode is folded into the poisoned state: overflow and
// underflow, division or remainder by zero, shifts at or beyond the bit
// width, and negation of values with no representable negation. Once a
// value is poisoned it stays poisoned:
//
//	a := checkednum.NewI8(100)
//	b := a.Add(100).Sub(100) // poisoned at Add, still poisoned after Sub
//	b.Overflowed()           // true
//
// With wrapping arithmetic the chain above would quietly produce 100.
//
// # Equality and ordering
//
// Poisoned values compare like NaN. They are never equal to anything,
// themselves included, and they order against nothing:
//
//	x := checkednum.NewU8(255).Add(1)
//	y := checkednum.NewU8(255).Add(1)
//	x.EqualChecked(y)   // false, even though both poisoned identically
//	x.EqualChecked(x)   // false, poison destroys reflexivity
//	_, ok := x.Compare(7) // ok == false: incomparable
//
// # Mixed operands
//
// Binary operators come in two forms: one taking a bare scalar of the same
// kind on the right-hand side and one taking another checked value
// (Add/AddChecked, Or/OrChecked, and so on). The checked value is always
// the receiver; Go has no operator overloading, so the left-hand position
// is fixed by the method call itself.
//
// # The capability set
//
// The kinds that can be wrapped form a closed set defined in the scalar
// subpackage: signed and unsigned integers of width 8 through 128 and the
// zero-excluding NonZero refinement of each, twenty kinds in all. The set
// is sealed; types outside the scalar package cannot satisfy the
// constraint. Named instantiations (CheckedU8 through CheckedNonZeroI128)
// cover every kind.
//
// # Iteration
//
// A checked value can stand at the head of an iterator pipeline as a
// sequence of at most one element. Draining is single-use:
//
//	v := checkednum.NewU32(42)
//	for n := range v.All() { // yields 42 once; nothing if poisoned
//	    fmt.Println(n)
//	}
//
// The package performs no allocation, no I/O and no locking; every value
// is immutable and freely copyable across goroutines.
package checkednum
