package instructions

import (
	"fmt"

	"github.com/Manu343726/tricore/pkg/hw/tricore/registers"
)

// Represents the kind of value an operand holds
type OperandKind uint8

const (
	// Uninitialized operand
	OperandKind_Invalid OperandKind = iota
	OperandKind_Register
	OperandKind_Immediate
	OperandKind_Memory
)

func (k OperandKind) String() string {
	switch k {
	case OperandKind_Invalid:
		return "Invalid"
	case OperandKind_Register:
		return "Register"
	case OperandKind_Immediate:
		return "Immediate"
	case OperandKind_Memory:
		return "Memory"
	}

	return fmt.Sprintf("OperandKind(%d)", uint8(k))
}

// Base register plus displacement memory reference
type MemoryOperand struct {
	Base         registers.Register
	Displacement int32
}

func (m MemoryOperand) String() string {
	if m.Displacement == 0 {
		return fmt.Sprintf("[%v]", m.Base)
	}

	return fmt.Sprintf("[%v]%d", m.Base, m.Displacement)
}

// A decoded instruction operand. Exactly one payload is meaningful, selected by Kind().
// The zero value is an invalid operand.
type Operand struct {
	kind      OperandKind
	register  registers.Register
	immediate int32
	memory    MemoryOperand
}

// Returns a register operand
func RegisterOperand(register registers.Register) Operand {
	return Operand{
		kind:     OperandKind_Register,
		register: register,
	}
}

// Returns an immediate operand
func ImmediateOperand(value int32) Operand {
	return Operand{
		kind:      OperandKind_Immediate,
		immediate: value,
	}
}

// Returns a base + displacement memory operand
func MemOperand(base registers.Register, displacement int32) Operand {
	return Operand{
		kind: OperandKind_Memory,
		memory: MemoryOperand{
			Base:         base,
			Displacement: displacement,
		},
	}
}

// Returns the kind of the operand
func (o Operand) Kind() OperandKind {
	return o.kind
}

func (o Operand) IsRegister() bool {
	return o.kind == OperandKind_Register
}

func (o Operand) IsImmediate() bool {
	return o.kind == OperandKind_Immediate
}

func (o Operand) IsMemory() bool {
	return o.kind == OperandKind_Memory
}

// Returns the register of a register operand. Panics for any other kind
func (o Operand) Register() registers.Register {
	if o.kind != OperandKind_Register {
		panic(fmt.Errorf("operand is not a register, it is %v", o.kind))
	}

	return o.register
}

// Returns the value of an immediate operand. Panics for any other kind
func (o Operand) Immediate() int32 {
	if o.kind != OperandKind_Immediate {
		panic(fmt.Errorf("operand is not an immediate, it is %v", o.kind))
	}

	return o.immediate
}

// Returns the memory reference of a memory operand. Panics for any other kind
func (o Operand) Memory() MemoryOperand {
	if o.kind != OperandKind_Memory {
		panic(fmt.Errorf("operand is not a memory reference, it is %v", o.kind))
	}

	return o.memory
}

// Returns the assembly representation of the operand
func (o Operand) String() string {
	switch o.kind {
	case OperandKind_Register:
		return o.register.String()
	case OperandKind_Immediate:
		return fmt.Sprintf("#%d", o.immediate)
	case OperandKind_Memory:
		return o.memory.String()
	}

	return "<invalid>"
}
