package registers

import (
	"fmt"
	"strings"
)

type RegisterDescriptor struct {
	// Register enumerant
	Register Register

	// Register class
	Class *RegisterClassDescriptor

	// Raw value of the instruction field selecting this register (register index, or CSFR offset for control registers)
	Encoding uint32

	// Custom name for the register instead of the default RegisterNamePrefix + Encoding name
	CustomName string

	// Register description (for documentation/debugging)
	Description string
}

// Returns the register name
func (d *RegisterDescriptor) Name() string {
	if len(d.CustomName) > 0 {
		return d.CustomName
	} else {
		return d.Class.DefaultRegisterName(d.Encoding)
	}
}

func (d *RegisterDescriptor) String() string {
	return d.Name()
}

// Returns a one line documentation entry for the register
func (d *RegisterDescriptor) Documentation() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%-5v encoding: 0x%04x", d.Name(), d.Encoding))

	if len(d.Description) > 0 {
		builder.WriteString(" ")
		builder.WriteString(d.Description)
	}

	return builder.String()
}

// Creates the registers of an indexed register file, mapping consecutive enumerants to encodings
// first, first+step, first+2*step...
func MakeRegisters(first Register, count int, step uint32) []*RegisterDescriptor {
	result := make([]*RegisterDescriptor, count)

	for i := range result {
		result[i] = &RegisterDescriptor{
			Register: first + Register(i),
			Encoding: uint32(i) * step,
		}
	}

	return result
}
