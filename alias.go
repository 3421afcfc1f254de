package checkednum

import "github.com/hupe1980/checkednum/scalar"

// Named instantiations for every kind in the capability set.
type (
	CheckedU8   = Checked[scalar.U8]
	CheckedU16  = Checked[scalar.U16]
	CheckedU32  = Checked[scalar.U32]
	CheckedU64  = Checked[scalar.U64]
	CheckedU128 = Checked[scalar.U128]

	CheckedI8   = Checked[scalar.I8]
	CheckedI16  = Checked[scalar.I16]
	CheckedI32  = Checked[scalar.I32]
	CheckedI64  = Checked[scalar.I64]
	CheckedI128 = Checked[scalar.I128]

	CheckedNonZeroU8   = Checked[scalar.NonZeroU8]
	CheckedNonZeroU16  = Checked[scalar.NonZeroU16]
	CheckedNonZeroU32  = Checked[scalar.NonZeroU32]
	CheckedNonZeroU64  = Checked[scalar.NonZeroU64]
	CheckedNonZeroU128 = Checked[scalar.NonZeroU128]

	CheckedNonZeroI8   = Checked[scalar.NonZeroI8]
	CheckedNonZeroI16  = Checked[scalar.NonZeroI16]
	CheckedNonZeroI32  = Checked[scalar.NonZeroI32]
	CheckedNonZeroI64  = Checked[scalar.NonZeroI64]
	CheckedNonZeroI128 = Checked[scalar.NonZeroI128]
)

// Constructors taking native Go integers, for the common case where the
// caller does not already hold a scalar kind. NonZero kinds have no
// shortcut; refine through scalar.NonZeroOf and wrap with New.

// NewU8 wraps an 8-bit unsigned value.
func NewU8(v uint8) CheckedU8 { return New(scalar.U8(v)) }

// NewU16 wraps a 16-bit unsigned value.
func NewU16(v uint16) CheckedU16 { return New(scalar.U16(v)) }

// NewU32 wraps a 32-bit unsigned value.
func NewU32(v uint32) CheckedU32 { return New(scalar.U32(v)) }

// NewU64 wraps a 64-bit unsigned value.
func NewU64(v uint64) CheckedU64 { return New(scalar.U64(v)) }

// NewU128 wraps a 64-bit unsigned value widened to 128 bits. Values above
// the 64-bit range are built with scalar.U128FromParts and New.
func NewU128(v uint64) CheckedU128 { return New(scalar.U128From64(v)) }

// NewI8 wraps an 8-bit signed value.
func NewI8(v int8) CheckedI8 { return New(scalar.I8(v)) }

// NewI16 wraps a 16-bit signed value.
func NewI16(v int16) CheckedI16 { return New(scalar.I16(v)) }

// NewI32 wraps a 32-bit signed value.
func NewI32(v int32) CheckedI32 { return New(scalar.I32(v)) }

// NewI64 wraps a 64-bit signed value.
func NewI64(v int64) CheckedI64 { return New(scalar.I64(v)) }

// NewI128 wraps a 64-bit signed value sign-extended to 128 bits.
func NewI128(v int64) CheckedI128 { return New(scalar.I128From64(v)) }
