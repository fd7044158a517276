package registers

import (
	"errors"
	"fmt"

	"github.com/Manu343726/tricore/pkg/utils"
)

type RegisterClassDescriptor struct {
	Class              RegisterClass
	Description        string
	RegisterNamePrefix string

	// Width in bits of the instruction field selecting a register of this class
	FieldBits int

	registers  []*RegisterDescriptor
	byEncoding map[uint32]*RegisterDescriptor
}

// Returns the number of registers in the class
func (d *RegisterClassDescriptor) TotalRegisters() int {
	return len(d.registers)
}

// Returns the set of all registers in the class, ordered by enumerant
func (d *RegisterClassDescriptor) AllRegisters() []*RegisterDescriptor {
	return d.registers
}

var ErrUnknownRegister = errors.New("unknown register")
var ErrWrongRegisterClass = errors.New("wrong register class")

// Returns the register selected by the given raw instruction field bits
func (d *RegisterClassDescriptor) Resolve(raw uint32) (Register, error) {
	if register, hasRegister := d.byEncoding[raw]; hasRegister {
		return register.Register, nil
	}

	return Register_Invalid, utils.MakeError(ErrUnknownRegister, "encoding %v does not select any of the %v (class has %v registers)", utils.FormatUintHex(uint64(raw), 2), d.Class, d.TotalRegisters())
}

// Returns the name used to refer to a register of the class in case the register didn't specify a custom one
func (d *RegisterClassDescriptor) DefaultRegisterName(encoding uint32) string {
	return d.RegisterNamePrefix + fmt.Sprint(encoding)
}

// Initializes a register class descriptor with the given registers
func NewRegisterClassDescriptor(descriptor *RegisterClassDescriptor, registers []*RegisterDescriptor) *RegisterClassDescriptor {
	descriptor.registers = registers
	descriptor.byEncoding = utils.GenMap(registers, func(r *RegisterDescriptor) uint32 { return r.Encoding })

	if len(descriptor.byEncoding) != len(registers) {
		panic(fmt.Errorf("register class '%v' has registers sharing the same encoding", descriptor.Class))
	}

	for _, register := range registers {
		register.Class = descriptor
	}

	return descriptor
}
