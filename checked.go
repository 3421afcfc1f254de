package checkednum

import (
	"iter"

	"github.com/hupe1980/checkednum/scalar"
)

// Checked is an overflow-checked number over one of the scalar kinds.
//
// A Checked value is either valid, holding exactly one scalar, or
// poisoned, holding nothing. Every operation returns a new value; nothing
// mutates in place except the draining iteration methods, which take a
// pointer receiver for that reason.
//
// The zero value of Checked is poisoned.
type Checked[T scalar.Int[T]] struct {
	val T
	ok  bool
}

// New wraps a scalar. The result is always valid.
func New[T scalar.Int[T]](v T) Checked[T] {
	return Checked[T]{val: v, ok: true}
}

// FromOK wraps the comma-ok result of a checked primitive: valid when ok
// is true, poisoned otherwise. Every operator funnels its result through
// here.
func FromOK[T scalar.Int[T]](v T, ok bool) Checked[T] {
	if !ok {
		return Checked[T]{}
	}
	return Checked[T]{val: v, ok: true}
}

// Value returns the contained scalar and true, or the zero scalar and
// false if the value is poisoned. It is the only way out of the wrapper.
func (c Checked[T]) Value() (T, bool) {
	if !c.ok {
		var zero T
		return zero, false
	}
	return c.val, true
}

// Overflowed reports whether the value is poisoned, that is, whether an
// overflow occurred somewhere in the chain of operations that produced it.
func (c Checked[T]) Overflowed() bool { return !c.ok }

// Add returns c + rhs. The result is poisoned if c is poisoned or the sum
// leaves the kind's range.
func (c Checked[T]) Add(rhs T) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return FromOK(c.val.AddOK(rhs))
}

// AddChecked is Add with a checked right-hand side.
func (c Checked[T]) AddChecked(rhs Checked[T]) Checked[T] {
	if !rhs.ok {
		return Checked[T]{}
	}
	return c.Add(rhs.val)
}

// Sub returns c - rhs.
func (c Checked[T]) Sub(rhs T) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return FromOK(c.val.SubOK(rhs))
}

// SubChecked is Sub with a checked right-hand side.
func (c Checked[T]) SubChecked(rhs Checked[T]) Checked[T] {
	if !rhs.ok {
		return Checked[T]{}
	}
	return c.Sub(rhs.val)
}

// Mul returns c * rhs.
func (c Checked[T]) Mul(rhs T) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return FromOK(c.val.MulOK(rhs))
}

// MulChecked is Mul with a checked right-hand side.
func (c Checked[T]) MulChecked(rhs Checked[T]) Checked[T] {
	if !rhs.ok {
		return Checked[T]{}
	}
	return c.Mul(rhs.val)
}

// Div returns c / rhs. Division by zero poisons the result; it is not a
// separate error condition.
func (c Checked[T]) Div(rhs T) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return FromOK(c.val.DivOK(rhs))
}

// DivChecked is Div with a checked right-hand side.
func (c Checked[T]) DivChecked(rhs Checked[T]) Checked[T] {
	if !rhs.ok {
		return Checked[T]{}
	}
	return c.Div(rhs.val)
}

// Rem returns c % rhs. Remainder by zero poisons the result.
func (c Checked[T]) Rem(rhs T) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return FromOK(c.val.RemOK(rhs))
}

// RemChecked is Rem with a checked right-hand side.
func (c Checked[T]) RemChecked(rhs Checked[T]) Checked[T] {
	if !rhs.ok {
		return Checked[T]{}
	}
	return c.Rem(rhs.val)
}

// Shl returns c << n. Shift amounts at or beyond the kind's bit width
// poison the result.
func (c Checked[T]) Shl(n uint32) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return FromOK(c.val.ShlOK(n))
}

// ShlChecked is Shl with a checked shift amount.
func (c Checked[T]) ShlChecked(n Checked[scalar.U32]) Checked[T] {
	v, ok := n.Value()
	if !ok {
		return Checked[T]{}
	}
	return c.Shl(uint32(v))
}

// Shr returns c >> n; arithmetic for the signed kinds, logical for the
// unsigned ones. Shift amounts at or beyond the bit width poison the
// result.
func (c Checked[T]) Shr(n uint32) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return FromOK(c.val.ShrOK(n))
}

// ShrChecked is Shr with a checked shift amount.
func (c Checked[T]) ShrChecked(n Checked[scalar.U32]) Checked[T] {
	v, ok := n.Value()
	if !ok {
		return Checked[T]{}
	}
	return c.Shr(uint32(v))
}

// And returns c & rhs. Bitwise operations only propagate existing poison
// on the plain kinds; on a NonZero kind a zero result also poisons.
func (c Checked[T]) And(rhs T) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return FromOK(c.val.AndOK(rhs))
}

// AndChecked is And with a checked right-hand side.
func (c Checked[T]) AndChecked(rhs Checked[T]) Checked[T] {
	if !rhs.ok {
		return Checked[T]{}
	}
	return c.And(rhs.val)
}

// Or returns c | rhs.
func (c Checked[T]) Or(rhs T) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return FromOK(c.val.OrOK(rhs))
}

// OrChecked is Or with a checked right-hand side.
func (c Checked[T]) OrChecked(rhs Checked[T]) Checked[T] {
	if !rhs.ok {
		return Checked[T]{}
	}
	return c.Or(rhs.val)
}

// Xor returns c ^ rhs.
func (c Checked[T]) Xor(rhs T) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return FromOK(c.val.XorOK(rhs))
}

// XorChecked is Xor with a checked right-hand side.
func (c Checked[T]) XorChecked(rhs Checked[T]) Checked[T] {
	if !rhs.ok {
		return Checked[T]{}
	}
	return c.Xor(rhs.val)
}

// Neg returns -c. Negating the signed minimum poisons the result; on the
// unsigned kinds any nonzero value does.
func (c Checked[T]) Neg() Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return FromOK(c.val.NegOK())
}

// Equal reports whether c holds a valid scalar equal to rhs. A poisoned
// value is equal to nothing.
func (c Checked[T]) Equal(rhs T) bool {
	return c.ok && c.val.Equal(rhs)
}

// EqualChecked reports whether both values are valid and their scalars
// are equal. Two poisoned values are never equal, even when produced from
// identical inputs; in particular a value stops being equal to itself
// once poisoned.
func (c Checked[T]) EqualChecked(rhs Checked[T]) bool {
	return c.ok && rhs.ok && c.val.Equal(rhs.val)
}

// Compare orders c against rhs. When c is valid it returns -1, 0 or +1
// and true. When c is poisoned no ordering holds and it returns 0 and
// false; the 0 carries no meaning.
func (c Checked[T]) Compare(rhs T) (int, bool) {
	if !c.ok {
		return 0, false
	}
	switch {
	case c.val.Less(rhs):
		return -1, true
	case rhs.Less(c.val):
		return 1, true
	}
	return 0, true
}

// CompareChecked is Compare with a checked right-hand side. Either side
// being poisoned makes the pair incomparable.
func (c Checked[T]) CompareChecked(rhs Checked[T]) (int, bool) {
	if !rhs.ok {
		return 0, false
	}
	return c.Compare(rhs.val)
}

// Less reports whether c < rhs. It is false when the pair is
// incomparable.
func (c Checked[T]) Less(rhs T) bool {
	r, ok := c.Compare(rhs)
	return ok && r < 0
}

// LessChecked is Less with a checked right-hand side.
func (c Checked[T]) LessChecked(rhs Checked[T]) bool {
	r, ok := c.CompareChecked(rhs)
	return ok && r < 0
}

// Greater reports whether c > rhs. It is false when the pair is
// incomparable.
func (c Checked[T]) Greater(rhs T) bool {
	r, ok := c.Compare(rhs)
	return ok && r > 0
}

// GreaterChecked is Greater with a checked right-hand side.
func (c Checked[T]) GreaterChecked(rhs Checked[T]) bool {
	r, ok := c.CompareChecked(rhs)
	return ok && r > 0
}

// Next drains the value: the first call on a valid value returns its
// scalar and true and leaves the value empty, so further calls return
// false. On a poisoned value it returns false immediately. Draining again
// requires constructing a new value.
func (c *Checked[T]) Next() (T, bool) {
	if !c.ok {
		var zero T
		return zero, false
	}
	c.ok = false
	return c.val, true
}

// All returns a single-use sequence over the value: one element if valid,
// none if poisoned. Ranging over it drains the value just like Next.
func (c *Checked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v, ok := c.Next(); ok {
			yield(v)
		}
	}
}
