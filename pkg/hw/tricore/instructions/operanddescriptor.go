package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/tricore/pkg/hw/tricore/registers"
	"github.com/Manu343726/tricore/pkg/utils"
)

// How an immediate or displacement field is widened to 32 bits
type Extension uint8

const (
	Extension_Unsigned Extension = iota
	Extension_Signed
)

func (e Extension) String() string {
	if e == Extension_Signed {
		return "signed"
	}

	return "unsigned"
}

// Contains information about an instruction operand: which bits hold it and how they are interpreted
type OperandDescriptor struct {
	// Type of operand
	Kind OperandKind
	// Role the operand takes in the instruction
	Role OperandRole
	// Register class of a register operand, or of the base register of a memory operand
	RegisterClass registers.RegisterClass
	// Instruction field selecting the register. Nil if the register is implicit
	RegisterField *utils.BitRange
	// Register used when RegisterField is nil
	ImplicitRegister registers.Register
	// Fields holding an immediate value or memory displacement, concatenated most significant first.
	// A memory operand without value fields has a zero displacement
	ValueFields []utils.BitRange
	// Extension applied to the concatenated value fields
	Extension Extension
	// Left shift applied to the value after extension
	Scale int
	// If true the value is a halfword displacement relative to the instruction address and the
	// operand holds the absolute target address
	PCRelative bool
	// Operand description (for documentation and debugging)
	Description string
	// Position within the set of operands of the instruction, indexed from 0 to total operands - 1
	Index int
}

// Returns true if the operand is a register operand
func (o *OperandDescriptor) IsRegister() bool {
	return o.Kind == OperandKind_Register
}

// Returns true if the operand is an immediate operand
func (o *OperandDescriptor) IsImmediate() bool {
	return o.Kind == OperandKind_Immediate
}

// Returns true if the operand is a memory operand
func (o *OperandDescriptor) IsMemory() bool {
	return o.Kind == OperandKind_Memory
}

// Returns the total width in bits of the value fields
func (o *OperandDescriptor) ValueBits() int {
	return utils.Accumulate(o.ValueFields, func(r utils.BitRange) int { return r.Width })
}

// Returns all the instruction fields read by this operand
func (o *OperandDescriptor) Fields() []utils.BitRange {
	fields := make([]utils.BitRange, 0, len(o.ValueFields)+1)

	if o.RegisterField != nil {
		fields = append(fields, *o.RegisterField)
	}

	return append(fields, o.ValueFields...)
}

// Returns an human readable string describing the operand (See [InstructionDescriptor.Documentation])
func (o *OperandDescriptor) String() string {
	switch o.Kind {
	case OperandKind_Register:
		return o.registerString()
	case OperandKind_Immediate:
		if o.PCRelative {
			return fmt.Sprintf("<target:%v%v>", o.Extension, o.ValueBits())
		}
		return fmt.Sprintf("<imm:%v%v%v>", o.Extension, o.ValueBits(), o.scaleString())
	case OperandKind_Memory:
		if len(o.ValueFields) == 0 {
			return fmt.Sprintf("[%v]", o.registerString())
		}
		return fmt.Sprintf("[%v]<off:%v%v%v>", o.registerString(), o.Extension, o.ValueBits(), o.scaleString())
	}

	return "<invalid>"
}

func (o *OperandDescriptor) registerString() string {
	if o.RegisterField == nil {
		return o.ImplicitRegister.String()
	}

	var prefix string
	switch o.RegisterClass {
	case registers.RegisterClass_Data:
		prefix = "d"
	case registers.RegisterClass_Address:
		prefix = "a"
	case registers.RegisterClass_Extended:
		prefix = "e"
	default:
		prefix = "csfr"
	}

	return fmt.Sprintf("%v[%v:%v]", strings.ToUpper(prefix), o.RegisterField.MostSignificantBit(), o.RegisterField.Position)
}

func (o *OperandDescriptor) scaleString() string {
	if o.Scale == 0 {
		return ""
	}

	return fmt.Sprintf("*%v", 1<<o.Scale)
}

// Builds the operand value from an instruction word.
// The address is only used by PC relative operands.
func (o *OperandDescriptor) Build(word uint32, address uint64) (Operand, error) {
	view := utils.CreateBitView(word)

	switch o.Kind {
	case OperandKind_Register:
		register, err := o.decodeRegister(view)
		if err != nil {
			return Operand{}, err
		}

		return RegisterOperand(register), nil
	case OperandKind_Immediate:
		return ImmediateOperand(o.decodeValue(view, address)), nil
	case OperandKind_Memory:
		base, err := o.decodeRegister(view)
		if err != nil {
			return Operand{}, err
		}

		return MemOperand(base, o.decodeValue(view, 0)), nil
	}

	return Operand{}, utils.MakeError(ErrInvalidOperand, "operand descriptor %v has no valid kind", o.Index)
}

func (o *OperandDescriptor) decodeRegister(view utils.BitView[uint32]) (registers.Register, error) {
	if o.RegisterField == nil {
		if !o.ImplicitRegister.IsValid() {
			return registers.Register_Invalid, utils.MakeError(ErrInvalidOperand, "operand %v has neither a register field nor an implicit register", o.Index)
		}

		return o.ImplicitRegister, nil
	}

	raw := view.Read(o.RegisterField.Position, o.RegisterField.Width)
	register, err := registers.Resolve(o.RegisterClass, raw)
	if err != nil {
		return registers.Register_Invalid, utils.MakeError(err, "operand %v", o.Index)
	}

	return register, nil
}

func (o *OperandDescriptor) decodeValue(view utils.BitView[uint32], address uint64) int32 {
	raw, width := view.ReadConcat(o.ValueFields...)

	var value int32
	if o.Extension == Extension_Signed {
		value = utils.SignExtend(raw, width)
	} else {
		value = int32(raw)
	}

	value <<= o.Scale

	if o.PCRelative {
		value = int32(uint32(address) + uint32(value))
	}

	return value
}
