package registers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/tricore/pkg/utils"
)

type RegisterClassesDescriptor struct {
	classes    map[RegisterClass]*RegisterClassDescriptor
	registers  map[Register]*RegisterDescriptor
	namesToReg map[string]*RegisterDescriptor
}

var ErrInvalidRegisterClass = errors.New("invalid register class")

// Returns the descriptor of a register class
func (d *RegisterClassesDescriptor) Class(rc RegisterClass) (*RegisterClassDescriptor, error) {
	if class, hasClass := d.classes[rc]; hasClass {
		return class, nil
	}

	return nil, utils.MakeError(ErrInvalidRegisterClass, "%v", rc)
}

// Returns all the register classes, in class order
func (d *RegisterClassesDescriptor) AllClasses() []*RegisterClassDescriptor {
	result := make([]*RegisterClassDescriptor, 0, len(d.classes))

	for rc := RegisterClass_None + 1; rc < TOTAL_REGISTER_CLASSES; rc++ {
		result = append(result, d.classes[rc])
	}

	return result
}

// Returns the register selected by the raw bits of an instruction field of the given register class
func (d *RegisterClassesDescriptor) Resolve(rc RegisterClass, raw uint32) (Register, error) {
	class, err := d.Class(rc)
	if err != nil {
		return Register_Invalid, err
	}

	return class.Resolve(raw)
}

// Returns the descriptor of a register
func (d *RegisterClassesDescriptor) Register(r Register) (*RegisterDescriptor, error) {
	if register, hasRegister := d.registers[r]; hasRegister {
		return register, nil
	}

	return nil, utils.MakeError(ErrUnknownRegister, "register id %v", uint8(r))
}

// Returns a register given its name. Names are case insensitive ("d15", "A10", "psw")
func (d *RegisterClassesDescriptor) RegisterByName(name string) (*RegisterDescriptor, error) {
	if register, hasRegister := d.namesToReg[strings.ToLower(name)]; hasRegister {
		return register, nil
	}

	return nil, utils.MakeError(ErrUnknownRegister, "'%v'", name)
}

// Initializes a register classes descriptor with all the given register class descriptors
func NewRegisterClassesDescriptor(classes []*RegisterClassDescriptor) RegisterClassesDescriptor {
	classMap := utils.GenMap(classes, func(class *RegisterClassDescriptor) RegisterClass {
		return class.Class
	})

	for rc := RegisterClass_None + 1; rc < TOTAL_REGISTER_CLASSES; rc++ {
		if _, hasClass := classMap[rc]; !hasClass {
			panic(fmt.Sprintf("missing entry for register class '%v' in registers classes descriptor. Make sure you've added an entry for all register classes in the NewRegisterClassesDescriptor() call", rc))
		}
	}

	d := RegisterClassesDescriptor{
		classes:    classMap,
		registers:  make(map[Register]*RegisterDescriptor, TOTAL_REGISTERS),
		namesToReg: make(map[string]*RegisterDescriptor, TOTAL_REGISTERS),
	}

	for _, class := range classes {
		for _, register := range class.AllRegisters() {
			if register.Register.Class() != class.Class {
				panic(fmt.Errorf("register %v is declared in '%v' but its id belongs to '%v'", register, class.Class, register.Register.Class()))
			}

			d.registers[register.Register] = register
			d.namesToReg[strings.ToLower(register.Name())] = register
		}
	}

	for r := Register_Invalid + 1; r < TOTAL_REGISTERS; r++ {
		if _, hasRegister := d.registers[r]; !hasRegister {
			panic(fmt.Sprintf("register id %v has no descriptor", uint8(r)))
		}
	}

	return d
}
