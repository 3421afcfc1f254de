package scalar

// The native kinds are defined types over Go's fixed-width integers. The
// defined types exist so that the checked primitives are methods, which is
// what lets the Int constraint enumerate them; untyped constants still
// convert implicitly, so call sites read like plain arithmetic.

// U8 is the 8-bit unsigned kind.
type U8 uint8

func (U8) isScalar() {}

// IsZero reports whether x is zero.
func (x U8) IsZero() bool { return x == 0 }

// Equal reports whether x == y.
func (x U8) Equal(y U8) bool { return x == y }

// Less reports whether x < y.
func (x U8) Less(y U8) bool { return x < y }

// AddOK returns x + y and whether the sum stayed in range.
func (x U8) AddOK(y U8) (U8, bool) { return addOK(x, y) }

// SubOK returns x - y and whether the difference stayed in range.
func (x U8) SubOK(y U8) (U8, bool) { return subOK(x, y) }

// MulOK returns x * y and whether the product stayed in range.
func (x U8) MulOK(y U8) (U8, bool) { return mulOK(x, y) }

// DivOK returns x / y; division by zero reports false.
func (x U8) DivOK(y U8) (U8, bool) { return divOK(x, y) }

// RemOK returns x % y; remainder by zero reports false.
func (x U8) RemOK(y U8) (U8, bool) { return remOK(x, y) }

// NegOK reports false for any nonzero unsigned value.
func (x U8) NegOK() (U8, bool) { return negOK(x) }

// ShlOK returns x << n; shifts of 8 or more report false.
func (x U8) ShlOK(n uint32) (U8, bool) { return shlOK(x, n, 8) }

// ShrOK returns x >> n; shifts of 8 or more report false.
func (x U8) ShrOK(n uint32) (U8, bool) { return shrOK(x, n, 8) }

// AndOK returns x & y; bitwise operations on plain kinds never fail.
func (x U8) AndOK(y U8) (U8, bool) { return x & y, true }

// OrOK returns x | y.
func (x U8) OrOK(y U8) (U8, bool) { return x | y, true }

// XorOK returns x ^ y.
func (x U8) XorOK(y U8) (U8, bool) { return x ^ y, true }

// U16 is the 16-bit unsigned kind.
type U16 uint16

func (U16) isScalar() {}

func (x U16) IsZero() bool { return x == 0 }
func (x U16) Equal(y U16) bool { return x == y }
func (x U16) Less(y U16) bool { return x < y }
func (x U16) AddOK(y U16) (U16, bool) { return addOK(x, y) }
func (x U16) SubOK(y U16) (U16, bool) { return subOK(x, y) }
func (x U16) MulOK(y U16) (U16, bool) { return mulOK(x, y) }
func (x U16) DivOK(y U16) (U16, bool) { return divOK(x, y) }
func (x U16) RemOK(y U16) (U16, bool) { return remOK(x, y) }
func (x U16) NegOK() (U16, bool) { return negOK(x) }
func (x U16) ShlOK(n uint32) (U16, bool) { return shlOK(x, n, 16) }
func (x U16) ShrOK(n uint32) (U16, bool) { return shrOK(x, n, 16) }
func (x U16) AndOK(y U16) (U16, bool) { return x & y, true }
func (x U16) OrOK(y U16) (U16, bool) { return x | y, true }
func (x U16) XorOK(y U16) (U16, bool) { return x ^ y, true }

// U32 is the 32-bit unsigned kind. It doubles as the shift-amount kind for
// every checked shift operation.
type U32 uint32

func (U32) isScalar() {}

func (x U32) IsZero() bool { return x == 0 }
func (x U32) Equal(y U32) bool { return x == y }
func (x U32) Less(y U32) bool { return x < y }
func (x U32) AddOK(y U32) (U32, bool) { return addOK(x, y) }
func (x U32) SubOK(y U32) (U32, bool) { return subOK(x, y) }
func (x U32) MulOK(y U32) (U32, bool) { return mulOK(x, y) }
func (x U32) DivOK(y U32) (U32, bool) { return divOK(x, y) }
func (x U32) RemOK(y U32) (U32, bool) { return remOK(x, y) }
func (x U32) NegOK() (U32, bool) { return negOK(x) }
func (x U32) ShlOK(n uint32) (U32, bool) { return shlOK(x, n, 32) }
func (x U32) ShrOK(n uint32) (U32, bool) { return shrOK(x, n, 32) }
func (x U32) AndOK(y U32) (U32, bool) { return x & y, true }
func (x U32) OrOK(y U32) (U32, bool) { return x | y, true }
func (x U32) XorOK(y U32) (U32, bool) { return x ^ y, true }

// U64 is the 64-bit unsigned kind.
type U64 uint64

func (U64) isScalar() {}

func (x U64) IsZero() bool { return x == 0 }
func (x U64) Equal(y U64) bool { return x == y }
func (x U64) Less(y U64) bool { return x < y }
func (x U64) AddOK(y U64) (U64, bool) { return addOK(x, y) }
func (x U64) SubOK(y U64) (U64, bool) { return subOK(x, y) }
func (x U64) MulOK(y U64) (U64, bool) { return mulOK(x, y) }
func (x U64) DivOK(y U64) (U64, bool) { return divOK(x, y) }
func (x U64) RemOK(y U64) (U64, bool) { return remOK(x, y) }
func (x U64) NegOK() (U64, bool) { return negOK(x) }
func (x U64) ShlOK(n uint32) (U64, bool) { return shlOK(x, n, 64) }
func (x U64) ShrOK(n uint32) (U64, bool) { return shrOK(x, n, 64) }
func (x U64) AndOK(y U64) (U64, bool) { return x & y, true }
func (x U64) OrOK(y U64) (U64, bool) { return x | y, true }
func (x U64) XorOK(y U64) (U64, bool) { return x ^ y, true }

// I8 is the 8-bit signed kind.
type I8 int8

func (I8) isScalar() {}

func (x I8) IsZero() bool { return x == 0 }
func (x I8) Equal(y I8) bool { return x == y }
func (x I8) Less(y I8) bool { return x < y }
func (x I8) AddOK(y I8) (I8, bool) { return addOK(x, y) }
func (x I8) SubOK(y I8) (I8, bool) { return subOK(x, y) }
func (x I8) MulOK(y I8) (I8, bool) { return mulOK(x, y) }
func (x I8) DivOK(y I8) (I8, bool) { return divOK(x, y) }
func (x I8) RemOK(y I8) (I8, bool) { return remOK(x, y) }

// NegOK reports false only for the minimum value.
func (x I8) NegOK() (I8, bool) { return negOK(x) }

func (x I8) ShlOK(n uint32) (I8, bool) { return shlOK(x, n, 8) }
func (x I8) ShrOK(n uint32) (I8, bool) { return shrOK(x, n, 8) }
func (x I8) AndOK(y I8) (I8, bool) { return x & y, true }
func (x I8) OrOK(y I8) (I8, bool) { return x | y, true }
func (x I8) XorOK(y I8) (I8, bool) { return x ^ y, true }

// I16 is the 16-bit signed kind.
type I16 int16

func (I16) isScalar() {}

func (x I16) IsZero() bool { return x == 0 }
func (x I16) Equal(y I16) bool { return x == y }
func (x I16) Less(y I16) bool { return x < y }
func (x I16) AddOK(y I16) (I16, bool) { return addOK(x, y) }
func (x I16) SubOK(y I16) (I16, bool) { return subOK(x, y) }
func (x I16) MulOK(y I16) (I16, bool) { return mulOK(x, y) }
func (x I16) DivOK(y I16) (I16, bool) { return divOK(x, y) }
func (x I16) RemOK(y I16) (I16, bool) { return remOK(x, y) }
func (x I16) NegOK() (I16, bool) { return negOK(x) }
func (x I16) ShlOK(n uint32) (I16, bool) { return shlOK(x, n, 16) }
func (x I16) ShrOK(n uint32) (I16, bool) { return shrOK(x, n, 16) }
func (x I16) AndOK(y I16) (I16, bool) { return x & y, true }
func (x I16) OrOK(y I16) (I16, bool) { return x | y, true }
func (x I16) XorOK(y I16) (I16, bool) { return x ^ y, true }

// I32 is the 32-bit signed kind.
type I32 int32

func (I32) isScalar() {}

func (x I32) IsZero() bool { return x == 0 }
func (x I32) Equal(y I32) bool { return x == y }
func (x I32) Less(y I32) bool { return x < y }
func (x I32) AddOK(y I32) (I32, bool) { return addOK(x, y) }
func (x I32) SubOK(y I32) (I32, bool) { return subOK(x, y) }
func (x I32) MulOK(y I32) (I32, bool) { return mulOK(x, y) }
func (x I32) DivOK(y I32) (I32, bool) { return divOK(x, y) }
func (x I32) RemOK(y I32) (I32, bool) { return remOK(x, y) }
func (x I32) NegOK() (I32, bool) { return negOK(x) }
func (x I32) ShlOK(n uint32) (I32, bool) { return shlOK(x, n, 32) }
func (x I32) ShrOK(n uint32) (I32, bool) { return shrOK(x, n, 32) }
func (x I32) AndOK(y I32) (I32, bool) { return x & y, true }
func (x I32) OrOK(y I32) (I32, bool) { return x | y, true }
func (x I32) XorOK(y I32) (I32, bool) { return x ^ y, true }

// I64 is the 64-bit signed kind.
type I64 int64

func (I64) isScalar() {}

func (x I64) IsZero() bool { return x == 0 }
func (x I64) Equal(y I64) bool { return x == y }
func (x I64) Less(y I64) bool { return x < y }
func (x I64) AddOK(y I64) (I64, bool) { return addOK(x, y) }
func (x I64) SubOK(y I64) (I64, bool) { return subOK(x, y) }
func (x I64) MulOK(y I64) (I64, bool) { return mulOK(x, y) }
func (x I64) DivOK(y I64) (I64, bool) { return divOK(x, y) }
func (x I64) RemOK(y I64) (I64, bool) { return remOK(x, y) }
func (x I64) NegOK() (I64, bool) { return negOK(x) }
func (x I64) ShlOK(n uint32) (I64, bool) { return shlOK(x, n, 64) }
func (x I64) ShrOK(n uint32) (I64, bool) { return shrOK(x, n, 64) }
func (x I64) AndOK(y I64) (I64, bool) { return x & y, true }
func (x I64) OrOK(y I64) (I64, bool) { return x | y, true }
func (x I64) XorOK(y I64) (I64, bool) { return x ^ y, true }
