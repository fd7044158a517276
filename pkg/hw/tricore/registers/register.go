package registers

import "fmt"

// Identifies a TriCore architectural register.
//
// Values are stable: new registers are only appended before TOTAL_REGISTERS.
type Register uint8

const (
	// Not a register. Never produced by a successful decode
	Register_Invalid Register = iota

	Register_D0
	Register_D1
	Register_D2
	Register_D3
	Register_D4
	Register_D5
	Register_D6
	Register_D7
	Register_D8
	Register_D9
	Register_D10
	Register_D11
	Register_D12
	Register_D13
	Register_D14
	Register_D15
	Register_A0
	Register_A1
	Register_A2
	Register_A3
	Register_A4
	Register_A5
	Register_A6
	Register_A7
	Register_A8
	Register_A9
	Register_A10
	Register_A11
	Register_A12
	Register_A13
	Register_A14
	Register_A15
	Register_E0
	Register_E2
	Register_E4
	Register_E6
	Register_E8
	Register_E10
	Register_E12
	Register_E14

	// Core special function registers
	Register_PSW
	Register_PCXI
	Register_PC
	Register_FCX

	// Total registers, including Register_Invalid
	TOTAL_REGISTERS
)

// Returns true if the register is a real architectural register
func (r Register) IsValid() bool {
	return r > Register_Invalid && r < TOTAL_REGISTERS
}

// Returns the register class the register belongs to
func (r Register) Class() RegisterClass {
	switch {
	case r >= Register_D0 && r <= Register_D15:
		return RegisterClass_Data
	case r >= Register_A0 && r <= Register_A15:
		return RegisterClass_Address
	case r >= Register_E0 && r <= Register_E14:
		return RegisterClass_Extended
	case r >= Register_PSW && r <= Register_FCX:
		return RegisterClass_Control
	}

	return RegisterClass_None
}

// Returns the register name in lowercase assembly syntax (d0, a15, e4, psw...)
func (r Register) Name() string {
	if !r.IsValid() {
		return "invalid"
	}

	descriptor, err := RegisterClasses.Register(r)
	if err != nil {
		return "invalid"
	}

	return descriptor.Name()
}

func (r Register) String() string {
	if !r.IsValid() {
		return fmt.Sprintf("Register(%d)", uint8(r))
	}

	return r.Name()
}
