package instructions

import (
	"encoding/binary"
	"fmt"

	"github.com/Manu343726/tricore/pkg/utils"
)

// Contains information about all decodable instructions, indexed by primary opcode
type InstructionsDescriptor struct {
	instructions []*InstructionDescriptor
	dispatch     [256][]*InstructionDescriptor
}

// Returns all decodable instructions, in table order
func (d *InstructionsDescriptor) AllInstructions() []*InstructionDescriptor {
	return d.instructions
}

// Returns the instructions sharing the given primary opcode
func (d *InstructionsDescriptor) WithOp1(op1 uint8) []*InstructionDescriptor {
	return d.dispatch[op1]
}

// Returns all the encodings of the given mnemonic
func (d *InstructionsDescriptor) WithMnemonic(m Mnemonic) []*InstructionDescriptor {
	var result []*InstructionDescriptor

	for _, instruction := range d.instructions {
		if instruction.Mnemonic == m {
			result = append(result, instruction)
		}
	}

	return result
}

// Returns the instruction encoded in the given word. Size is the encoding length in bytes
// as classified from the first halfword.
func (d *InstructionsDescriptor) Lookup(word uint32, size int) (*InstructionDescriptor, error) {
	op1 := uint8(utils.CreateBitView(word).Read(Op1Field.Position, Op1Field.Width))

	for _, instruction := range d.dispatch[op1] {
		if instruction.FormatDescriptor().Bytes() == size && instruction.Matches(word) {
			return instruction, nil
		}
	}

	return nil, utils.MakeError(ErrUnrecognizedOpcode, "no %v bit instruction matches word %v (op1 %02X)", utils.Bits(size), utils.FormatUintHex(uint64(word), size*2), op1)
}

func fixInstructionOperands(instr *InstructionDescriptor) {
	if len(instr.Operands) > MaxOperands {
		panic(fmt.Errorf("instruction %v has %v operands, at most %v are supported", instr, len(instr.Operands), MaxOperands))
	}

	bits := instr.InstructionBits()

	for i, operand := range instr.Operands {
		operand.Index = i

		for _, field := range operand.Fields() {
			if field.Width <= 0 || field.MostSignificantBit() >= bits {
				panic(fmt.Errorf("operand %v of instruction %v (%v) has field [%v:%v] out of the %v bit encoding", i, instr, instr.Format, field.MostSignificantBit(), field.Position, bits))
			}
		}
	}
}

func checkOpCodes(instr *InstructionDescriptor) {
	format := instr.FormatDescriptor()

	if format.Format == Format_Invalid {
		panic(fmt.Errorf("instruction %v has no encoding format", instr))
	}

	// The low bit of op1 is the length bit
	if InstructionSize(uint16(instr.Op1)) != format.Bytes() {
		panic(fmt.Errorf("instruction %v: op1 %02X does not classify as a %v bit instruction", instr, instr.Op1, format.Bits))
	}

	if format.HasOp2() && uint64(instr.Op2) > uint64(utils.AllOnes[uint32](format.Op2.Width)) {
		panic(fmt.Errorf("instruction %v: op2 %X does not fit in the %v bit op2 field", instr, instr.Op2, format.Op2.Width))
	}
}

// Two encodings sharing op1 conflict if no op2 value tells them apart
func conflicts(a, b *InstructionDescriptor) bool {
	if a.Format.Descriptor().Bytes() != b.Format.Descriptor().Bytes() {
		return false
	}

	if a.Format != b.Format {
		return true
	}

	if !a.FormatDescriptor().HasOp2() {
		return true
	}

	return a.Op2 == b.Op2
}

// Initializes an instructions descriptor with all the given instructions.
// Panics if the table is inconsistent
func NewInstructionsDescriptor(instructions []*InstructionDescriptor) InstructionsDescriptor {
	d := InstructionsDescriptor{
		instructions: instructions,
	}

	for _, instr := range instructions {
		if !instr.Mnemonic.IsValid() {
			panic(fmt.Errorf("instruction with op1 %02X has an invalid mnemonic", instr.Op1))
		}

		checkOpCodes(instr)
		fixInstructionOperands(instr)

		for _, other := range d.dispatch[instr.Op1] {
			if conflicts(instr, other) {
				panic(fmt.Errorf("instructions %v (%v %v) and %v (%v %v) have conflicting encodings", instr, instr.Format, instr.OpCodeString(), other, other.Format, other.OpCodeString()))
			}
		}

		d.dispatch[instr.Op1] = append(d.dispatch[instr.Op1], instr)
	}

	return d
}

// Decodes an instruction word of the given size (2 or 4 bytes) located at the given address.
//
// The returned instruction is always well formed: if the word does not encode a known instruction
// it is an invalid instruction of the given size, and the error explains why
// (ErrUnrecognizedOpcode or ErrUnknownRegister).
func (d *InstructionsDescriptor) DecodeWord(word uint32, size int, address uint64) (Instruction, error) {
	if size != 2 && size != 4 {
		return Instruction{}, utils.MakeError(ErrInvalidOperand, "instruction size must be 2 or 4 bytes, got %v", size)
	}

	if size == 2 {
		word &= uint32(utils.AllOnes[uint16](16))
	}

	result := Instruction{
		Address: address,
		Size:    size,
	}
	binary.LittleEndian.PutUint32(result.Bytes[:], word)

	descriptor, err := d.Lookup(word, size)
	if err != nil {
		return result, err
	}

	operands, err := descriptor.DecodeOperands(word, address)
	if err != nil {
		return result, err
	}

	result.Mnemonic = descriptor.Mnemonic
	result.Groups = descriptor.Groups
	result.Operands = operands

	return result, nil
}

// Decodes the instruction at the start of code, located at the given address.
//
// Returns the decoded instruction and the number of bytes it consumed (2 or 4). Byte
// sequences which do not encode a known instruction decode as an invalid instruction with
// a nil error, so callers can skip over them. The only error is ErrBufferTooShort, returned
// when code holds fewer bytes than the instruction length.
func (d *InstructionsDescriptor) Decode(code []byte, address uint64) (Instruction, int, error) {
	if len(code) < 2 {
		return Instruction{}, 0, utils.MakeError(ErrBufferTooShort, "need at least 2 bytes at %v, got %v", utils.FormatUintHex(address, 8), len(code))
	}

	size := InstructionSize(binary.LittleEndian.Uint16(code))
	if len(code) < size {
		return Instruction{}, 0, utils.MakeError(ErrBufferTooShort, "32 bit instruction at %v needs 4 bytes, got %v", utils.FormatUintHex(address, 8), len(code))
	}

	var word uint32
	if size == 4 {
		word = binary.LittleEndian.Uint32(code)
	} else {
		word = uint32(binary.LittleEndian.Uint16(code))
	}

	// Unknown encodings are not errors for the caller, they decode as invalid instructions
	instruction, _ := d.DecodeWord(word, size, address)
	if !instruction.IsValid() {
		instruction.Operands = Operands{}
		instruction.Groups = 0
	}

	return instruction, size, nil
}

// Decodes the instruction at the start of code using the TriCore instruction table.
// See [InstructionsDescriptor.Decode]
func Decode(code []byte, address uint64) (Instruction, int, error) {
	return Instructions.Decode(code, address)
}

// Decodes an instruction word using the TriCore instruction table.
// See [InstructionsDescriptor.DecodeWord]
func DecodeWord(word uint32, size int, address uint64) (Instruction, error) {
	return Instructions.DecodeWord(word, size, address)
}
