package instructions

import (
	"errors"
	"strings"

	"github.com/Manu343726/tricore/pkg/utils"
)

// Maximum number of operands of a decoded instruction
const MaxOperands = 8

// Fixed capacity, ordered operand list
type Operands struct {
	values [MaxOperands]Operand
	count  uint8
}

var ErrTooManyOperands = errors.New("too many operands")

// Appends an operand, failing if the list is full or the operand is invalid
func (o *Operands) Append(operand Operand) error {
	if operand.Kind() == OperandKind_Invalid {
		return utils.MakeError(ErrInvalidOperand, "cannot append an invalid operand")
	}

	if int(o.count) >= MaxOperands {
		return utils.MakeError(ErrTooManyOperands, "an instruction holds at most %v operands", MaxOperands)
	}

	o.values[o.count] = operand
	o.count++

	return nil
}

// Returns the number of operands
func (o Operands) Len() int {
	return int(o.count)
}

// Returns the i-th operand. Indices out of [0, Len()) return an invalid operand
func (o Operands) At(i int) Operand {
	if i < 0 || i >= int(o.count) {
		return Operand{}
	}

	return o.values[i]
}

// Returns a copy of the operands as a slice
func (o Operands) Slice() []Operand {
	result := make([]Operand, o.count)
	copy(result, o.values[:o.count])
	return result
}

// Stores a fully decoded instruction
type Instruction struct {
	// Address the instruction was decoded at
	Address uint64
	// Encoding length in bytes (2 or 4)
	Size int
	// Raw instruction bytes, only the first Size bytes are meaningful
	Bytes [4]byte
	// Instruction mnemonic, Mnemonic_Invalid if the bytes do not encode a known instruction
	Mnemonic Mnemonic
	// Groups the instruction belongs to
	Groups Groups
	// Operands in destination then source order
	Operands Operands
}

// Returns false if the instruction bytes could not be decoded
func (i *Instruction) IsValid() bool {
	return i.Mnemonic.IsValid()
}

// Returns true if the instruction belongs to the given group
func (i *Instruction) InGroup(g Group) bool {
	return i.Groups.Has(g)
}

// Returns the number of operands
func (i *Instruction) OperandCount() int {
	return i.Operands.Len()
}

// Returns the i-th operand
func (i *Instruction) Operand(index int) Operand {
	return i.Operands.At(index)
}

// Returns the raw instruction bytes
func (i *Instruction) RawBytes() []byte {
	return i.Bytes[:i.Size]
}

// Returns the instruction word, zero extended to 32 bits for 16 bit instructions
func (i *Instruction) Word() uint32 {
	var word uint32

	for j := i.Size - 1; j >= 0; j-- {
		word = word<<utils.BitsPerByte | uint32(i.Bytes[j])
	}

	return word
}

func (i *Instruction) String() string {
	var builder strings.Builder

	builder.WriteString(i.Mnemonic.String())

	for j := 0; j < i.Operands.Len(); j++ {
		if j == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}
		builder.WriteString(i.Operands.At(j).String())
	}

	return builder.String()
}
