package scalar

// NonZero is the zero-excluding refinement of a scalar kind. It is itself
// a member of the capability set, so a checked number can wrap it.
//
// The refinement is enforced twice: at construction, where NonZeroOf
// rejects zero, and after every checked primitive, where a raw result of
// zero is reported as out of range exactly like an overflow. Bitwise OR of
// two nonzero values can never produce zero, so it never fails; AND and
// XOR can, and do.
//
// The zero value of NonZero violates the refinement and must not be used;
// always construct through NonZeroOf.
type NonZero[T Int[T]] struct {
	v T
}

// NonZeroOf refines v. It reports false if v is zero.
func NonZeroOf[T Int[T]](v T) (NonZero[T], bool) {
	if v.IsZero() {
		return NonZero[T]{}, false
	}
	return NonZero[T]{v: v}, true
}

// Get returns the underlying scalar.
func (n NonZero[T]) Get() T { return n.v }

func (NonZero[T]) isScalar() {}

// IsZero reports whether the underlying scalar is zero. It is false for
// every properly constructed value.
func (n NonZero[T]) IsZero() bool { return n.v.IsZero() }

// Equal reports whether the underlying scalars are equal.
func (n NonZero[T]) Equal(m NonZero[T]) bool { return n.v.Equal(m.v) }

// Less reports whether the underlying scalar of n orders before that of m.
func (n NonZero[T]) Less(m NonZero[T]) bool { return n.v.Less(m.v) }

// refine re-checks the zero exclusion on a primitive's result.
func refine[T Int[T]](v T, ok bool) (NonZero[T], bool) {
	if !ok || v.IsZero() {
		return NonZero[T]{}, false
	}
	return NonZero[T]{v: v}, true
}

func (n NonZero[T]) AddOK(m NonZero[T]) (NonZero[T], bool) { return refine(n.v.AddOK(m.v)) }
func (n NonZero[T]) SubOK(m NonZero[T]) (NonZero[T], bool) { return refine(n.v.SubOK(m.v)) }
func (n NonZero[T]) MulOK(m NonZero[T]) (NonZero[T], bool) { return refine(n.v.MulOK(m.v)) }
func (n NonZero[T]) DivOK(m NonZero[T]) (NonZero[T], bool) { return refine(n.v.DivOK(m.v)) }
func (n NonZero[T]) RemOK(m NonZero[T]) (NonZero[T], bool) { return refine(n.v.RemOK(m.v)) }
func (n NonZero[T]) NegOK() (NonZero[T], bool) { return refine(n.v.NegOK()) }

func (n NonZero[T]) ShlOK(k uint32) (NonZero[T], bool) { return refine(n.v.ShlOK(k)) }
func (n NonZero[T]) ShrOK(k uint32) (NonZero[T], bool) { return refine(n.v.ShrOK(k)) }

func (n NonZero[T]) AndOK(m NonZero[T]) (NonZero[T], bool) { return refine(n.v.AndOK(m.v)) }
func (n NonZero[T]) OrOK(m NonZero[T]) (NonZero[T], bool) { return refine(n.v.OrOK(m.v)) }
func (n NonZero[T]) XorOK(m NonZero[T]) (NonZero[T], bool) { return refine(n.v.XorOK(m.v)) }

// Width aliases for the ten nonzero-refined kinds.
type (
	NonZeroU8   = NonZero[U8]
	NonZeroU16  = NonZero[U16]
	NonZeroU32  = NonZero[U32]
	NonZeroU64  = NonZero[U64]
	NonZeroU128 = NonZero[U128]
	NonZeroI8   = NonZero[I8]
	NonZeroI16  = NonZero[I16]
	NonZeroI32  = NonZero[I32]
	NonZeroI64  = NonZero[I64]
	NonZeroI128 = NonZero[I128]
)
