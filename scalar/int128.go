package scalar

import (
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is the 128-bit unsigned kind, built from two 64-bit limbs.
type U128 struct {
	hi, lo uint64
}

// MaxU128 is the largest representable U128 value, 2^128 - 1.
var MaxU128 = U128{hi: ^uint64(0), lo: ^uint64(0)}

// U128From64 widens a 64-bit unsigned value.
func U128From64(v uint64) U128 { return U128{lo: v} }

// U128FromParts assembles a U128 from its high and low 64-bit limbs.
func U128FromParts(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }

// Parts returns the high and low 64-bit limbs.
func (x U128) Parts() (hi, lo uint64) { return x.hi, x.lo }

// Big returns x as a math/big integer.
func (x U128) Big() *big.Int {
	b := new(big.Int).SetUint64(x.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(x.lo))
}

// String returns the decimal representation of x.
func (x U128) String() string {
	if x.hi == 0 {
		return strconv.FormatUint(x.lo, 10)
	}
	return x.Big().String()
}

func (U128) isScalar() {}

// IsZero reports whether x is zero.
func (x U128) IsZero() bool { return x.hi == 0 && x.lo == 0 }

// Equal reports whether x == y.
func (x U128) Equal(y U128) bool { return x == y }

// Less reports whether x < y.
func (x U128) Less(y U128) bool {
	if x.hi != y.hi {
		return x.hi < y.hi
	}
	return x.lo < y.lo
}

// AddOK returns x + y and whether the carry out was zero.
func (x U128) AddOK(y U128) (U128, bool) {
	lo, c := bits.Add64(x.lo, y.lo, 0)
	hi, c := bits.Add64(x.hi, y.hi, c)
	return U128{hi: hi, lo: lo}, c == 0
}

// SubOK returns x - y and whether no borrow was needed.
func (x U128) SubOK(y U128) (U128, bool) {
	lo, b := bits.Sub64(x.lo, y.lo, 0)
	hi, b := bits.Sub64(x.hi, y.hi, b)
	return U128{hi: hi, lo: lo}, b == 0
}

// MulOK returns x * y and whether the full product fit in 128 bits.
func (x U128) MulOK(y U128) (U128, bool) {
	if x.hi != 0 && y.hi != 0 {
		return U128{}, false
	}
	hi, lo := bits.Mul64(x.lo, y.lo)
	p1hi, p1lo := bits.Mul64(x.hi, y.lo)
	p2hi, p2lo := bits.Mul64(x.lo, y.hi)
	if p1hi != 0 || p2hi != 0 {
		return U128{}, false
	}
	hi, c1 := bits.Add64(hi, p1lo, 0)
	hi, c2 := bits.Add64(hi, p2lo, 0)
	if c1 != 0 || c2 != 0 {
		return U128{}, false
	}
	return U128{hi: hi, lo: lo}, true
}

// DivOK returns x / y; division by zero reports false.
func (x U128) DivOK(y U128) (U128, bool) {
	if y.IsZero() {
		return U128{}, false
	}
	q, _ := x.divmod(y)
	return q, true
}

// RemOK returns x % y; remainder by zero reports false.
func (x U128) RemOK(y U128) (U128, bool) {
	if y.IsZero() {
		return U128{}, false
	}
	_, r := x.divmod(y)
	return r, true
}

// divmod computes the quotient and remainder of x / y. y must be nonzero.
//
// When the divisor fits in one limb the division reduces to two chained
// 64-bit steps. Otherwise the divisor is normalized so its top bit is set
// and a trial quotient is taken from the high limbs (Hacker's Delight,
// 9-5); the trial is at most one short, so a single correction suffices.
func (x U128) divmod(y U128) (q, r U128) {
	if y.hi == 0 {
		if x.hi < y.lo {
			qlo, rem := bits.Div64(x.hi, x.lo, y.lo)
			return U128{lo: qlo}, U128{lo: rem}
		}
		qhi := x.hi / y.lo
		qlo, rem := bits.Div64(x.hi%y.lo, x.lo, y.lo)
		return U128{hi: qhi, lo: qlo}, U128{lo: rem}
	}
	n := uint(bits.LeadingZeros64(y.hi))
	y1 := y.shl(n)
	x1 := x.shr(1)
	tq, _ := bits.Div64(x1.hi, x1.lo, y1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	q = U128{lo: tq}
	r, _ = x.SubOK(y.mul64(tq))
	if !r.Less(y) {
		q.lo++
		r, _ = r.SubOK(y)
	}
	return q, r
}

// NegOK reports false for any nonzero value.
func (x U128) NegOK() (U128, bool) {
	if x.IsZero() {
		return U128{}, true
	}
	return U128{}, false
}

// ShlOK returns x << n; shifts of 128 or more report false.
func (x U128) ShlOK(n uint32) (U128, bool) {
	if n >= 128 {
		return U128{}, false
	}
	return x.shl(uint(n)), true
}

// ShrOK returns x >> n; shifts of 128 or more report false.
func (x U128) ShrOK(n uint32) (U128, bool) {
	if n >= 128 {
		return U128{}, false
	}
	return x.shr(uint(n)), true
}

// AndOK returns x & y.
func (x U128) AndOK(y U128) (U128, bool) {
	return U128{hi: x.hi & y.hi, lo: x.lo & y.lo}, true
}

// OrOK returns x | y.
func (x U128) OrOK(y U128) (U128, bool) {
	return U128{hi: x.hi | y.hi, lo: x.lo | y.lo}, true
}

// XorOK returns x ^ y.
func (x U128) XorOK(y U128) (U128, bool) {
	return U128{hi: x.hi ^ y.hi, lo: x.lo ^ y.lo}, true
}

// shl shifts left without a range check; counts of 128 or more yield zero.
func (x U128) shl(n uint) U128 {
	if n >= 64 {
		return U128{hi: x.lo << (n - 64)}
	}
	return U128{hi: x.hi<<n | x.lo>>(64-n), lo: x.lo << n}
}

// shr shifts right without a range check; counts of 128 or more yield zero.
func (x U128) shr(n uint) U128 {
	if n >= 64 {
		return U128{lo: x.hi >> (n - 64)}
	}
	return U128{hi: x.hi >> n, lo: x.lo>>n | x.hi<<(64-n)}
}

// mul64 returns the low 128 bits of x * m.
func (x U128) mul64(m uint64) U128 {
	hi, lo := bits.Mul64(x.lo, m)
	return U128{hi: hi + x.hi*m, lo: lo}
}

// I128 is the 128-bit signed kind, a two's complement value over two
// 64-bit limbs. The sign lives in the top bit of the high limb.
type I128 struct {
	hi, lo uint64
}

// MaxI128 is the largest representable I128 value, 2^127 - 1.
var MaxI128 = I128{hi: 1<<63 - 1, lo: ^uint64(0)}

// MinI128 is the smallest representable I128 value, -2^127.
var MinI128 = I128{hi: 1 << 63, lo: 0}

// I128From64 sign-extends a 64-bit signed value.
func I128From64(v int64) I128 {
	return I128{hi: uint64(v >> 63), lo: uint64(v)}
}

// I128FromParts assembles an I128 from the raw two's complement limbs.
func I128FromParts(hi, lo uint64) I128 { return I128{hi: hi, lo: lo} }

// Parts returns the raw two's complement limbs.
func (x I128) Parts() (hi, lo uint64) { return x.hi, x.lo }

// Sign returns -1, 0 or +1.
func (x I128) Sign() int {
	if x.hi == 0 && x.lo == 0 {
		return 0
	}
	if x.hi>>63 != 0 {
		return -1
	}
	return 1
}

// Big returns x as a math/big integer.
func (x I128) Big() *big.Int {
	b := x.abs().Big()
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

// String returns the decimal representation of x.
func (x I128) String() string { return x.Big().String() }

func (I128) isScalar() {}

// IsZero reports whether x is zero.
func (x I128) IsZero() bool { return x.hi == 0 && x.lo == 0 }

// Equal reports whether x == y.
func (x I128) Equal(y I128) bool { return x == y }

// Less reports whether x < y.
func (x I128) Less(y I128) bool {
	// Flipping the sign bit maps the signed order onto the unsigned one.
	xh, yh := x.hi^(1<<63), y.hi^(1<<63)
	if xh != yh {
		return xh < yh
	}
	return x.lo < y.lo
}

// AddOK returns x + y and whether the sum stayed in range.
func (x I128) AddOK(y I128) (I128, bool) {
	lo, c := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, c)
	z := I128{hi: hi, lo: lo}
	// overflow iff the operands share a sign and the sum does not
	if x.hi>>63 == y.hi>>63 && z.hi>>63 != x.hi>>63 {
		return I128{}, false
	}
	return z, true
}

// SubOK returns x - y and whether the difference stayed in range.
func (x I128) SubOK(y I128) (I128, bool) {
	lo, b := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, b)
	z := I128{hi: hi, lo: lo}
	// overflow iff the operand signs differ and the result took y's sign
	if x.hi>>63 != y.hi>>63 && z.hi>>63 == y.hi>>63 {
		return I128{}, false
	}
	return z, true
}

// MulOK returns x * y and whether the product stayed in range.
func (x I128) MulOK(y I128) (I128, bool) {
	if x.IsZero() || y.IsZero() {
		return I128{}, true
	}
	neg := x.hi>>63 != y.hi>>63
	p, ok := x.abs().MulOK(y.abs())
	if !ok {
		return I128{}, false
	}
	if neg {
		// a negative product may reach magnitude 2^127
		if (U128{hi: 1 << 63}).Less(p) {
			return I128{}, false
		}
		return I128{hi: p.hi, lo: p.lo}.neg(), true
	}
	if (U128{hi: 1<<63 - 1, lo: ^uint64(0)}).Less(p) {
		return I128{}, false
	}
	return I128{hi: p.hi, lo: p.lo}, true
}

// DivOK returns x / y, truncated toward zero. Division by zero and
// MinI128 / -1 report false.
func (x I128) DivOK(y I128) (I128, bool) {
	if y.IsZero() {
		return I128{}, false
	}
	if x == MinI128 && y == I128From64(-1) {
		return I128{}, false
	}
	q, _ := x.abs().divmod(y.abs())
	z := I128{hi: q.hi, lo: q.lo}
	if x.hi>>63 != y.hi>>63 {
		z = z.neg()
	}
	return z, true
}

// RemOK returns x % y with the sign of the dividend. Remainder by zero and
// MinI128 % -1 report false.
func (x I128) RemOK(y I128) (I128, bool) {
	if y.IsZero() {
		return I128{}, false
	}
	if x == MinI128 && y == I128From64(-1) {
		return I128{}, false
	}
	_, r := x.abs().divmod(y.abs())
	z := I128{hi: r.hi, lo: r.lo}
	if x.Sign() < 0 {
		z = z.neg()
	}
	return z, true
}

// NegOK returns -x; negating MinI128 reports false.
func (x I128) NegOK() (I128, bool) {
	if x == MinI128 {
		return I128{}, false
	}
	return x.neg(), true
}

// ShlOK returns x << n; shifts of 128 or more report false.
func (x I128) ShlOK(n uint32) (I128, bool) {
	if n >= 128 {
		return I128{}, false
	}
	u := U128{hi: x.hi, lo: x.lo}.shl(uint(n))
	return I128{hi: u.hi, lo: u.lo}, true
}

// ShrOK returns x >> n, an arithmetic shift; shifts of 128 or more report
// false.
func (x I128) ShrOK(n uint32) (I128, bool) {
	if n >= 128 {
		return I128{}, false
	}
	return x.shr(uint(n)), true
}

// AndOK returns x & y.
func (x I128) AndOK(y I128) (I128, bool) {
	return I128{hi: x.hi & y.hi, lo: x.lo & y.lo}, true
}

// OrOK returns x | y.
func (x I128) OrOK(y I128) (I128, bool) {
	return I128{hi: x.hi | y.hi, lo: x.lo | y.lo}, true
}

// XorOK returns x ^ y.
func (x I128) XorOK(y I128) (I128, bool) {
	return I128{hi: x.hi ^ y.hi, lo: x.lo ^ y.lo}, true
}

// neg is two's complement negation; MinI128 maps to itself.
func (x I128) neg() I128 {
	lo, b := bits.Sub64(0, x.lo, 0)
	hi, _ := bits.Sub64(0, x.hi, b)
	return I128{hi: hi, lo: lo}
}

// abs returns the magnitude of x as an unsigned value; the magnitude of
// MinI128 is 2^127, which U128 represents exactly.
func (x I128) abs() U128 {
	if x.hi>>63 != 0 {
		n := x.neg()
		return U128{hi: n.hi, lo: n.lo}
	}
	return U128{hi: x.hi, lo: x.lo}
}

// shr is an arithmetic right shift without a range check.
func (x I128) shr(n uint) I128 {
	if n == 0 {
		return x
	}
	if n >= 64 {
		fill := uint64(int64(x.hi) >> 63)
		return I128{hi: fill, lo: uint64(int64(x.hi) >> (n - 64))}
	}
	return I128{hi: uint64(int64(x.hi) >> n), lo: x.lo>>n | x.hi<<(64-n)}
}
