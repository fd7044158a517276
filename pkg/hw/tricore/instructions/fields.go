package instructions

import (
	"github.com/Manu343726/tricore/pkg/hw/tricore/registers"
	"github.com/Manu343726/tricore/pkg/utils"
)

// Instruction fields of the 16 bit formats
var (
	// s1/d register field
	field16_S1 = utils.BitRange{Position: 8, Width: 4}
	// s2 register field
	field16_S2 = utils.BitRange{Position: 12, Width: 4}
	// SRC 4 bit constant
	field16_Const4 = utils.BitRange{Position: 12, Width: 4}
	// SC 8 bit constant
	field16_Const8 = utils.BitRange{Position: 8, Width: 8}
	// SLRO/SRO/SSRO 4 bit offset
	field16_Off4 = utils.BitRange{Position: 12, Width: 4}
	// SB 8 bit displacement
	field16_Disp8 = utils.BitRange{Position: 8, Width: 8}
	// SBR 4 bit displacement
	field16_Disp4 = utils.BitRange{Position: 8, Width: 4}
)

// Instruction fields of the 32 bit formats
var (
	field32_S1      = utils.BitRange{Position: 8, Width: 4}
	field32_S2      = utils.BitRange{Position: 12, Width: 4}
	field32_D       = utils.BitRange{Position: 28, Width: 4}
	field32_Const9  = utils.BitRange{Position: 12, Width: 9}
	field32_Shift9  = utils.BitRange{Position: 12, Width: 6}
	field32_Const16 = utils.BitRange{Position: 12, Width: 16}
	field32_Const4  = utils.BitRange{Position: 12, Width: 4}
	field32_Width   = utils.BitRange{Position: 16, Width: 5}
	field32_Pos     = utils.BitRange{Position: 23, Width: 5}

	// off10 = {[31:28], [21:16]}
	field32_Off10 = []utils.BitRange{{Position: 28, Width: 4}, {Position: 16, Width: 6}}
	// off16 = {[27:22], [31:28], [21:16]}
	field32_Off16 = []utils.BitRange{{Position: 22, Width: 6}, {Position: 28, Width: 4}, {Position: 16, Width: 6}}
	// disp24 = {[15:8], [31:16]}
	field32_Disp24 = []utils.BitRange{{Position: 8, Width: 8}, {Position: 16, Width: 16}}
)

// Load/store element sizes, as displacement scales
const (
	scaleByte     = 0
	scaleHalfword = 1
	scaleWord     = 2
)

// Register operand selected by an instruction field
func registerOperand(class registers.RegisterClass, field utils.BitRange, role OperandRole, description string) *OperandDescriptor {
	return &OperandDescriptor{
		Kind:          OperandKind_Register,
		Role:          role,
		RegisterClass: class,
		RegisterField: &field,
		Description:   description,
	}
}

func dataDst(field utils.BitRange) *OperandDescriptor {
	return registerOperand(registers.RegisterClass_Data, field, OperandRole_Destination, "destination data register")
}

// Data register both read and written by two operand 16 bit instructions
func dataAcc(field utils.BitRange) *OperandDescriptor {
	return registerOperand(registers.RegisterClass_Data, field, OperandRole_SourceDestination, "source and destination data register")
}

func dataSrc(field utils.BitRange) *OperandDescriptor {
	return registerOperand(registers.RegisterClass_Data, field, OperandRole_Source, "source data register")
}

func addrDst(field utils.BitRange) *OperandDescriptor {
	return registerOperand(registers.RegisterClass_Address, field, OperandRole_Destination, "destination address register")
}

func addrAcc(field utils.BitRange) *OperandDescriptor {
	return registerOperand(registers.RegisterClass_Address, field, OperandRole_SourceDestination, "source and destination address register")
}

func addrSrc(field utils.BitRange) *OperandDescriptor {
	return registerOperand(registers.RegisterClass_Address, field, OperandRole_Source, "source address register")
}

func extDst(field utils.BitRange) *OperandDescriptor {
	return registerOperand(registers.RegisterClass_Extended, field, OperandRole_Destination, "destination extended register")
}

// Register operand not encoded in the instruction
func implicitRegister(register registers.Register, role OperandRole) *OperandDescriptor {
	return &OperandDescriptor{
		Kind:             OperandKind_Register,
		Role:             role,
		RegisterClass:    register.Class(),
		ImplicitRegister: register,
		Description:      "implicit " + register.Name(),
	}
}

// Immediate operand built from the concatenation of the given fields
func immediate(extension Extension, description string, fields ...utils.BitRange) *OperandDescriptor {
	return &OperandDescriptor{
		Kind:        OperandKind_Immediate,
		Role:        OperandRole_Source,
		ValueFields: fields,
		Extension:   extension,
		Description: description,
	}
}

func signedImm(field utils.BitRange) *OperandDescriptor {
	return immediate(Extension_Signed, "signed constant", field)
}

func unsignedImm(field utils.BitRange) *OperandDescriptor {
	return immediate(Extension_Unsigned, "unsigned constant", field)
}

// Branch target: halfword displacement relative to the instruction address
func branchTarget(extension Extension, fields ...utils.BitRange) *OperandDescriptor {
	return &OperandDescriptor{
		Kind:        OperandKind_Immediate,
		Role:        OperandRole_Source,
		ValueFields: fields,
		Extension:   extension,
		Scale:       1,
		PCRelative:  true,
		Description: "branch target address",
	}
}

// Memory operand with a base address register selected by an instruction field
func memory(base utils.BitRange, role OperandRole, extension Extension, scale int, displacement ...utils.BitRange) *OperandDescriptor {
	return &OperandDescriptor{
		Kind:          OperandKind_Memory,
		Role:          role,
		RegisterClass: registers.RegisterClass_Address,
		RegisterField: &base,
		ValueFields:   displacement,
		Extension:     extension,
		Scale:         scale,
		Description:   "base address register plus offset",
	}
}

// Memory operand with an implicit base address register
func implicitMemory(base registers.Register, role OperandRole, extension Extension, scale int, displacement ...utils.BitRange) *OperandDescriptor {
	return &OperandDescriptor{
		Kind:             OperandKind_Memory,
		Role:             role,
		RegisterClass:    registers.RegisterClass_Address,
		ImplicitRegister: base,
		ValueFields:      displacement,
		Extension:        extension,
		Scale:            scale,
		Description:      "implicit " + base.Name() + " plus offset",
	}
}
