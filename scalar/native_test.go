package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU8AddOK(t *testing.T) {
	tests := []struct {
		name     string
		a, b     U8
		expected U8
		ok       bool
	}{
		{"Simple", 1, 2, 3, true},
		{"Zero", 0, 0, 0, true},
		{"AtMax", 254, 1, 255, true},
		{"PastMax", 255, 1, 0, false},
		{"FarPastMax", 200, 100, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.AddOK(tt.b)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestI8AddOK(t *testing.T) {
	tests := []struct {
		name     string
		a, b     I8
		expected I8
		ok       bool
	}{
		{"Simple", 1, 2, 3, true},
		{"Negative", -100, -28, -128, true},
		{"PastMax", 100, 100, 0, false},
		{"PastMin", -100, -100, 0, false},
		{"MixedSigns", 127, -128, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.AddOK(tt.b)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestSubOK(t *testing.T) {
	t.Run("UnsignedUnderflow", func(t *testing.T) {
		_, ok := U16(3).SubOK(5)
		assert.False(t, ok)
	})

	t.Run("SignedUnderflow", func(t *testing.T) {
		_, ok := I8(math.MinInt8).SubOK(1)
		assert.False(t, ok)
	})

	t.Run("SignedOverflow", func(t *testing.T) {
		_, ok := I8(math.MaxInt8).SubOK(-1)
		assert.False(t, ok)
	})

	t.Run("BorrowFromZero", func(t *testing.T) {
		got, ok := I32(0).SubOK(math.MinInt32 + 1)
		require.True(t, ok)
		assert.Equal(t, I32(math.MaxInt32), got)
	})
}

func TestMulOK(t *testing.T) {
	t.Run("Unsigned", func(t *testing.T) {
		got, ok := U8(15).MulOK(17)
		require.True(t, ok)
		assert.Equal(t, U8(255), got)

		_, ok = U8(16).MulOK(16)
		assert.False(t, ok)
	})

	t.Run("ZeroOperand", func(t *testing.T) {
		got, ok := U64(0).MulOK(math.MaxUint64)
		require.True(t, ok)
		assert.Equal(t, U64(0), got)
	})

	t.Run("SignedMinTimesMinusOne", func(t *testing.T) {
		_, ok := I64(math.MinInt64).MulOK(-1)
		assert.False(t, ok)

		_, ok = I64(-1).MulOK(math.MinInt64)
		assert.False(t, ok)
	})

	t.Run("SignedNegative", func(t *testing.T) {
		got, ok := I16(-100).MulOK(300)
		require.True(t, ok)
		assert.Equal(t, I16(-30000), got)

		_, ok = I16(-200).MulOK(300)
		assert.False(t, ok)
	})
}

func TestDivRemOK(t *testing.T) {
	t.Run("ByZero", func(t *testing.T) {
		_, ok := U32(10).DivOK(0)
		assert.False(t, ok)

		_, ok = U32(10).RemOK(0)
		assert.False(t, ok)
	})

	t.Run("MinByMinusOne", func(t *testing.T) {
		_, ok := I32(math.MinInt32).DivOK(-1)
		assert.False(t, ok)

		_, ok = I32(math.MinInt32).RemOK(-1)
		assert.False(t, ok)
	})

	t.Run("TruncationAndSign", func(t *testing.T) {
		q, ok := I8(-7).DivOK(2)
		require.True(t, ok)
		assert.Equal(t, I8(-3), q)

		r, ok := I8(-7).RemOK(2)
		require.True(t, ok)
		assert.Equal(t, I8(-1), r)
	})
}

func TestNegOK(t *testing.T) {
	t.Run("Signed", func(t *testing.T) {
		got, ok := I64(5).NegOK()
		require.True(t, ok)
		assert.Equal(t, I64(-5), got)

		got, ok = I64(math.MinInt64 + 1).NegOK()
		require.True(t, ok)
		assert.Equal(t, I64(math.MaxInt64), got)

		_, ok = I64(math.MinInt64).NegOK()
		assert.False(t, ok)
	})

	t.Run("Unsigned", func(t *testing.T) {
		got, ok := U8(0).NegOK()
		require.True(t, ok)
		assert.Equal(t, U8(0), got)

		_, ok = U8(1).NegOK()
		assert.False(t, ok)
	})
}

func TestShiftOK(t *testing.T) {
	t.Run("WidthBoundary", func(t *testing.T) {
		got, ok := U8(1).ShlOK(7)
		require.True(t, ok)
		assert.Equal(t, U8(128), got)

		_, ok = U8(1).ShlOK(8)
		assert.False(t, ok)

		_, ok = U64(1).ShlOK(64)
		assert.False(t, ok)

		got64, ok := U64(1).ShlOK(63)
		require.True(t, ok)
		assert.Equal(t, U64(1)<<63, got64)
	})

	t.Run("ArithmeticShr", func(t *testing.T) {
		got, ok := I8(-128).ShrOK(7)
		require.True(t, ok)
		assert.Equal(t, I8(-1), got)
	})

	t.Run("LogicalShr", func(t *testing.T) {
		got, ok := U8(128).ShrOK(7)
		require.True(t, ok)
		assert.Equal(t, U8(1), got)
	})
}

func TestComparisons(t *testing.T) {
	assert.True(t, I8(-1).Less(0))
	assert.False(t, U8(255).Less(0))
	assert.True(t, U64(0).Less(math.MaxUint64))
	assert.True(t, I64(math.MinInt64).Less(math.MaxInt64))
	assert.True(t, U32(7).Equal(7))
	assert.False(t, U32(7).Equal(8))
	assert.True(t, U16(0).IsZero())
	assert.False(t, I16(-1).IsZero())
}

func FuzzI32Arithmetic(f *testing.F) {
	f.Add(int32(0), int32(0))
	f.Add(int32(math.MaxInt32), int32(1))
	f.Add(int32(math.MinInt32), int32(-1))
	f.Add(int32(-1), int32(math.MinInt32))

	f.Fuzz(func(t *testing.T, a, b int32) {
		// cross-check every primitive against 64-bit reference arithmetic
		wa, wb := int64(a), int64(b)
		inRange := func(v int64) bool {
			return v >= math.MinInt32 && v <= math.MaxInt32
		}

		got, ok := I32(a).AddOK(I32(b))
		assert.Equal(t, inRange(wa+wb), ok)
		if ok {
			assert.Equal(t, I32(wa+wb), got)
		}

		got, ok = I32(a).SubOK(I32(b))
		assert.Equal(t, inRange(wa-wb), ok)
		if ok {
			assert.Equal(t, I32(wa-wb), got)
		}

		got, ok = I32(a).MulOK(I32(b))
		assert.Equal(t, inRange(wa*wb), ok)
		if ok {
			assert.Equal(t, I32(wa*wb), got)
		}

		got, ok = I32(a).DivOK(I32(b))
		if b == 0 || (a == math.MinInt32 && b == -1) {
			assert.False(t, ok)
		} else {
			require.True(t, ok)
			assert.Equal(t, I32(wa/wb), got)
		}
	})
}

func FuzzU16Arithmetic(f *testing.F) {
	f.Add(uint16(0), uint16(0))
	f.Add(uint16(math.MaxUint16), uint16(1))
	f.Add(uint16(256), uint16(256))

	f.Fuzz(func(t *testing.T, a, b uint16) {
		wa, wb := uint32(a), uint32(b)

		got, ok := U16(a).AddOK(U16(b))
		assert.Equal(t, wa+wb <= math.MaxUint16, ok)
		if ok {
			assert.Equal(t, U16(wa+wb), got)
		}

		got, ok = U16(a).SubOK(U16(b))
		assert.Equal(t, a >= b, ok)
		if ok {
			assert.Equal(t, U16(a-b), got)
		}

		got, ok = U16(a).MulOK(U16(b))
		assert.Equal(t, wa*wb <= math.MaxUint16, ok)
		if ok {
			assert.Equal(t, U16(wa*wb), got)
		}
	})
}
