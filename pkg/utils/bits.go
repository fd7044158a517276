package utils

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

const BitsPerByte = 8

// Returns the size in bits of n bytes
func Bits(bytes int) int {
	return bytes * BitsPerByte
}

// Returns the size in bytes of values of a type
func Sizeof[T any]() int {
	var val T
	return int(unsafe.Sizeof(val))
}

// Returns the size in bits of values of a type
func SizeofBits[T any]() int {
	return Bits(Sizeof[T]())
}

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	if bits >= SizeofBits[T]() {
		return ^T(0)
	}

	return (T(1) << bits) - T(1)
}

// Sign extends the lowest n bits of value to a full 32 bit signed integer.
// Bit n-1 is taken as the sign bit.
func SignExtend[T constraints.Unsigned](value T, bits int) int32 {
	if bits <= 0 {
		return 0
	}
	if bits >= 32 {
		return int32(uint32(value))
	}

	shift := 32 - bits
	return int32(uint32(value)<<shift) >> shift
}

// Implements a read-only view over an unsigned integer, allowing reading individual bits easily
type BitView[T constraints.Unsigned] struct {
	Bits T
}

// Returns the viewed unsigned int value
func (v BitView[T]) Value() T {
	return v.Bits
}

// Returns the size in bits of the viewed value
func (v BitView[T]) SizeofBits() int {
	return SizeofBits[T]()
}

// Extracts a range of bits given a first bit and a width
func (v BitView[T]) Read(bit int, width int) T {
	if width <= 0 || bit >= v.SizeofBits() {
		return 0
	}

	mask := AllOnes[T](width)
	return (v.Value() >> bit) & mask
}

// Returns true if the given bit is set
func (v BitView[T]) Bit(bit int) bool {
	return v.Read(bit, 1) == 1
}

// Reads several ranges and concatenates them, the first range ending up in the most significant bits.
// Returns the concatenated value and its total width.
func (v BitView[T]) ReadConcat(ranges ...BitRange) (T, int) {
	var result T
	width := 0

	for _, r := range ranges {
		result = (result << r.Width) | v.Read(r.Position, r.Width)
		width += r.Width
	}

	return result, width
}

// A contiguous range of bits within an integer
type BitRange struct {
	// Least significant bit of the range
	Position int
	// Number of bits of the range
	Width int
}

// Returns the most significant bit of the range
func (r BitRange) MostSignificantBit() int {
	return r.Position + r.Width - 1
}

// Creates a bit view out of an unsigned int
func CreateBitView[T constraints.Unsigned](value T) BitView[T] {
	return BitView[T]{
		Bits: value,
	}
}
