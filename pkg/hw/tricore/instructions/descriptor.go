package instructions

import (
	"github.com/Manu343726/tricore/pkg/hw/tricore/registers"
)

// Contains all the decodable TriCore instruction encodings
var Instructions InstructionsDescriptor = NewInstructionsDescriptor(concat(
	systemInstructions(),
	moveInstructions(),
	arithmeticInstructions(),
	logicalInstructions(),
	compareInstructions(),
	bitFieldInstructions(),
	branchInstructions(),
	loadInstructions(),
	storeInstructions(),
))

func concat(groups ...[]*InstructionDescriptor) []*InstructionDescriptor {
	var result []*InstructionDescriptor

	for _, group := range groups {
		result = append(result, group...)
	}

	return result
}

func groupsOf(m Mnemonic) Groups {
	switch m {
	case Mnemonic_J, Mnemonic_JZ, Mnemonic_JNZ:
		return MakeGroups(Group_Jump)
	}

	return 0
}

func instruction(m Mnemonic, f Format, op1 uint8, op2 uint32, description string, operands ...*OperandDescriptor) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    m,
		Format:      f,
		Op1:         op1,
		Op2:         op2,
		Operands:    operands,
		Groups:      groupsOf(m),
		Description: description,
	}
}

// Three data register RR instruction: D[c] = D[a] op D[b]
func rrData(m Mnemonic, op1 uint8, op2 uint32, description string) *InstructionDescriptor {
	return instruction(m, Format_RR, op1, op2, description,
		dataDst(field32_D),
		dataSrc(field32_S1),
		dataSrc(field32_S2),
	)
}

// Data register and 9 bit constant RC instruction: D[c] = D[a] op const9
func rcData(m Mnemonic, op1 uint8, op2 uint32, extension Extension, description string) *InstructionDescriptor {
	return instruction(m, Format_RC, op1, op2, description,
		dataDst(field32_D),
		dataSrc(field32_S1),
		immediate(extension, "9 bit constant", field32_Const9),
	)
}

func systemInstructions() []*InstructionDescriptor {
	return []*InstructionDescriptor{
		instruction(Mnemonic_RET, Format_SR, 0x00, 0x9, "Return from call, restoring the caller's upper context"),
		instruction(Mnemonic_RET, Format_SYS, 0x0D, 0x06, "Return from call, restoring the caller's upper context"),
	}
}

func moveInstructions() []*InstructionDescriptor {
	return []*InstructionDescriptor{
		instruction(Mnemonic_MOV, Format_SRC, 0x82, 0, "Move sign extended 4 bit constant into a data register",
			dataDst(field16_S1), signedImm(field16_Const4)),
		instruction(Mnemonic_MOV, Format_SC, 0xDA, 0, "Move zero extended 8 bit constant into D15",
			implicitRegister(registers.Register_D15, OperandRole_Destination), unsignedImm(field16_Const8)),
		instruction(Mnemonic_MOV, Format_SRR, 0x02, 0, "Move data register",
			dataDst(field16_S1), dataSrc(field16_S2)),
		instruction(Mnemonic_MOV, Format_RR, 0x0B, 0x1F, "Move data register",
			dataDst(field32_D), dataSrc(field32_S2)),
		instruction(Mnemonic_MOV, Format_RLC, 0x3B, 0, "Move sign extended 16 bit constant into a data register",
			dataDst(field32_D), signedImm(field32_Const16)),
		instruction(Mnemonic_MOV_U, Format_RLC, 0xBB, 0, "Move zero extended 16 bit constant into a data register",
			dataDst(field32_D), unsignedImm(field32_Const16)),
		instruction(Mnemonic_MOVH, Format_RLC, 0x7B, 0, "Move 16 bit constant into the most significant half of a data register",
			dataDst(field32_D), unsignedImm(field32_Const16)),

		instruction(Mnemonic_MOV_A, Format_SRC, 0xA0, 0, "Move zero extended 4 bit constant into an address register",
			addrDst(field16_S1), unsignedImm(field16_Const4)),
		instruction(Mnemonic_MOV_A, Format_SRR, 0x60, 0, "Move data register into an address register",
			addrDst(field16_S1), dataSrc(field16_S2)),
		instruction(Mnemonic_MOV_A, Format_RR, 0x01, 0x63, "Move data register into an address register",
			addrDst(field32_D), dataSrc(field32_S2)),
		instruction(Mnemonic_MOV_AA, Format_SRR, 0x40, 0, "Move address register",
			addrDst(field16_S1), addrSrc(field16_S2)),
		instruction(Mnemonic_MOV_AA, Format_RR, 0x01, 0x00, "Move address register",
			addrDst(field32_D), addrSrc(field32_S2)),
		instruction(Mnemonic_MOV_D, Format_SRR, 0x80, 0, "Move address register into a data register",
			dataDst(field16_S1), addrSrc(field16_S2)),
		instruction(Mnemonic_MOV_D, Format_RR, 0x01, 0x4C, "Move address register into a data register",
			dataDst(field32_D), addrSrc(field32_S2)),
	}
}

func arithmeticInstructions() []*InstructionDescriptor {
	d15Dst := func() *OperandDescriptor { return implicitRegister(registers.Register_D15, OperandRole_Destination) }
	d15Src := func() *OperandDescriptor { return implicitRegister(registers.Register_D15, OperandRole_Source) }

	return []*InstructionDescriptor{
		instruction(Mnemonic_ADD, Format_SRC, 0xC2, 0, "Add sign extended 4 bit constant",
			dataAcc(field16_S1), signedImm(field16_Const4)),
		instruction(Mnemonic_ADD, Format_SRC, 0x92, 0, "Add D15 and sign extended 4 bit constant",
			dataDst(field16_S1), d15Src(), signedImm(field16_Const4)),
		instruction(Mnemonic_ADD, Format_SRC, 0x9A, 0, "Add data register and sign extended 4 bit constant into D15",
			d15Dst(), dataSrc(field16_S1), signedImm(field16_Const4)),
		instruction(Mnemonic_ADD, Format_SRR, 0x42, 0, "Add data registers",
			dataAcc(field16_S1), dataSrc(field16_S2)),
		instruction(Mnemonic_ADD, Format_SRR, 0x12, 0, "Add D15 and data register",
			dataDst(field16_S1), d15Src(), dataSrc(field16_S2)),
		instruction(Mnemonic_ADD, Format_SRR, 0x1A, 0, "Add data registers into D15",
			d15Dst(), dataSrc(field16_S1), dataSrc(field16_S2)),
		rrData(Mnemonic_ADD, 0x0B, 0x00, "Add data registers"),
		rrData(Mnemonic_ADDX, 0x0B, 0x04, "Add data registers, setting the carry"),
		rrData(Mnemonic_ADDC, 0x0B, 0x05, "Add data registers with carry"),
		rcData(Mnemonic_ADD, 0x8B, 0x00, Extension_Signed, "Add sign extended 9 bit constant"),
		rcData(Mnemonic_ADDX, 0x8B, 0x04, Extension_Signed, "Add sign extended 9 bit constant, setting the carry"),
		rcData(Mnemonic_ADDC, 0x8B, 0x05, Extension_Signed, "Add sign extended 9 bit constant with carry"),
		instruction(Mnemonic_ADDI, Format_RLC, 0x1B, 0, "Add sign extended 16 bit constant",
			dataDst(field32_D), dataSrc(field32_S1), signedImm(field32_Const16)),

		instruction(Mnemonic_ADD_A, Format_SRC, 0xB0, 0, "Add sign extended 4 bit constant to an address register",
			addrAcc(field16_S1), signedImm(field16_Const4)),
		instruction(Mnemonic_ADD_A, Format_SRR, 0x30, 0, "Add address registers",
			addrAcc(field16_S1), addrSrc(field16_S2)),
		instruction(Mnemonic_ADD_A, Format_RR, 0x01, 0x01, "Add address registers",
			addrDst(field32_D), addrSrc(field32_S1), addrSrc(field32_S2)),

		instruction(Mnemonic_SUB, Format_SRR, 0xA2, 0, "Subtract data registers",
			dataAcc(field16_S1), dataSrc(field16_S2)),
		instruction(Mnemonic_SUB, Format_SRR, 0x52, 0, "Subtract data register from D15",
			dataDst(field16_S1), d15Src(), dataSrc(field16_S2)),
		instruction(Mnemonic_SUB, Format_SRR, 0x5A, 0, "Subtract data registers into D15",
			d15Dst(), dataSrc(field16_S1), dataSrc(field16_S2)),
		rrData(Mnemonic_SUB, 0x0B, 0x08, "Subtract data registers"),
		rrData(Mnemonic_SUBX, 0x0B, 0x0C, "Subtract data registers, setting the carry"),
		rrData(Mnemonic_SUBC, 0x0B, 0x0D, "Subtract data registers with carry"),
		instruction(Mnemonic_SUB_A, Format_SC, 0x20, 0, "Subtract zero extended 8 bit constant from the stack pointer",
			implicitRegister(registers.Register_A10, OperandRole_SourceDestination), unsignedImm(field16_Const8)),
		instruction(Mnemonic_SUB_A, Format_RR, 0x01, 0x02, "Subtract address registers",
			addrDst(field32_D), addrSrc(field32_S1), addrSrc(field32_S2)),

		instruction(Mnemonic_RSUB, Format_SR, 0x32, 0x5, "Negate data register",
			dataAcc(field16_S1)),
		rcData(Mnemonic_RSUB, 0x8B, 0x08, Extension_Signed, "Subtract data register from sign extended 9 bit constant"),

		instruction(Mnemonic_ABS, Format_RR, 0x0B, 0x1C, "Absolute value of data register",
			dataDst(field32_D), dataSrc(field32_S2)),

		instruction(Mnemonic_MUL, Format_SRR, 0xE2, 0, "Multiply data registers",
			dataAcc(field16_S1), dataSrc(field16_S2)),
		instruction(Mnemonic_MUL, Format_RR2, 0x73, 0x00A, "Multiply data registers",
			dataDst(field32_D), dataSrc(field32_S1), dataSrc(field32_S2)),
		rcData(Mnemonic_MUL, 0x53, 0x01, Extension_Signed, "Multiply by sign extended 9 bit constant"),
	}
}

func logicalInstructions() []*InstructionDescriptor {
	return []*InstructionDescriptor{
		instruction(Mnemonic_AND, Format_SRR, 0x26, 0, "Bitwise AND of data registers",
			dataAcc(field16_S1), dataSrc(field16_S2)),
		instruction(Mnemonic_AND, Format_SC, 0x16, 0, "Bitwise AND of D15 and zero extended 8 bit constant",
			implicitRegister(registers.Register_D15, OperandRole_SourceDestination), unsignedImm(field16_Const8)),
		instruction(Mnemonic_OR, Format_SRR, 0xA6, 0, "Bitwise OR of data registers",
			dataAcc(field16_S1), dataSrc(field16_S2)),
		instruction(Mnemonic_OR, Format_SC, 0x96, 0, "Bitwise OR of D15 and zero extended 8 bit constant",
			implicitRegister(registers.Register_D15, OperandRole_SourceDestination), unsignedImm(field16_Const8)),
		instruction(Mnemonic_XOR, Format_SRR, 0xC6, 0, "Bitwise XOR of data registers",
			dataAcc(field16_S1), dataSrc(field16_S2)),
		instruction(Mnemonic_NOT, Format_SR, 0x46, 0x0, "Bitwise complement of data register",
			dataAcc(field16_S1)),

		rrData(Mnemonic_AND, 0x0F, 0x08, "Bitwise AND"),
		rrData(Mnemonic_NAND, 0x0F, 0x09, "Bitwise NAND"),
		rrData(Mnemonic_OR, 0x0F, 0x0A, "Bitwise OR"),
		rrData(Mnemonic_NOR, 0x0F, 0x0B, "Bitwise NOR"),
		rrData(Mnemonic_XOR, 0x0F, 0x0C, "Bitwise XOR"),
		rrData(Mnemonic_XNOR, 0x0F, 0x0D, "Bitwise XNOR"),
		rrData(Mnemonic_ANDN, 0x0F, 0x0E, "Bitwise AND with complement"),
		rrData(Mnemonic_ORN, 0x0F, 0x0F, "Bitwise OR with complement"),
		rcData(Mnemonic_AND, 0x8F, 0x08, Extension_Unsigned, "Bitwise AND with zero extended 9 bit constant"),
		rcData(Mnemonic_NAND, 0x8F, 0x09, Extension_Unsigned, "Bitwise NAND with zero extended 9 bit constant"),
		rcData(Mnemonic_OR, 0x8F, 0x0A, Extension_Unsigned, "Bitwise OR with zero extended 9 bit constant"),
		rcData(Mnemonic_NOR, 0x8F, 0x0B, Extension_Unsigned, "Bitwise NOR with zero extended 9 bit constant"),
		rcData(Mnemonic_XOR, 0x8F, 0x0C, Extension_Unsigned, "Bitwise XOR with zero extended 9 bit constant"),
		rcData(Mnemonic_XNOR, 0x8F, 0x0D, Extension_Unsigned, "Bitwise XNOR with zero extended 9 bit constant"),
		rcData(Mnemonic_ANDN, 0x8F, 0x0E, Extension_Unsigned, "Bitwise AND with complemented zero extended 9 bit constant"),
		rcData(Mnemonic_ORN, 0x8F, 0x0F, Extension_Unsigned, "Bitwise OR with complemented zero extended 9 bit constant"),

		instruction(Mnemonic_SH, Format_SRC, 0x06, 0, "Logical shift by signed 4 bit count, positive shifts left",
			dataAcc(field16_S1), signedImm(field16_Const4)),
		instruction(Mnemonic_SHA, Format_SRC, 0x86, 0, "Arithmetic shift by signed 4 bit count, positive shifts left",
			dataAcc(field16_S1), signedImm(field16_Const4)),
		rrData(Mnemonic_SH, 0x0F, 0x00, "Logical shift by the signed count in the low 6 bits of D[b]"),
		rrData(Mnemonic_SHA, 0x0F, 0x01, "Arithmetic shift by the signed count in the low 6 bits of D[b]"),
		instruction(Mnemonic_SH, Format_RC, 0x8F, 0x00, "Logical shift by signed 6 bit count",
			dataDst(field32_D), dataSrc(field32_S1), immediate(Extension_Signed, "shift count", field32_Shift9)),
		instruction(Mnemonic_SHA, Format_RC, 0x8F, 0x01, "Arithmetic shift by signed 6 bit count",
			dataDst(field32_D), dataSrc(field32_S1), immediate(Extension_Signed, "shift count", field32_Shift9)),
	}
}

func compareInstructions() []*InstructionDescriptor {
	d15 := func() *OperandDescriptor { return implicitRegister(registers.Register_D15, OperandRole_Destination) }

	result := []*InstructionDescriptor{
		instruction(Mnemonic_EQ, Format_SRC, 0xBA, 0, "D15 = D[a] == sign extended 4 bit constant",
			d15(), dataSrc(field16_S1), signedImm(field16_Const4)),
		instruction(Mnemonic_EQ, Format_SRR, 0x3A, 0, "D15 = D[a] == D[b]",
			d15(), dataSrc(field16_S1), dataSrc(field16_S2)),
		instruction(Mnemonic_LT, Format_SRC, 0xFA, 0, "D15 = D[a] < sign extended 4 bit constant",
			d15(), dataSrc(field16_S1), signedImm(field16_Const4)),
		instruction(Mnemonic_LT, Format_SRR, 0x7A, 0, "D15 = D[a] < D[b]",
			d15(), dataSrc(field16_S1), dataSrc(field16_S2)),
	}

	comparisons := []struct {
		mnemonic  Mnemonic
		op2       uint32
		extension Extension
		text      string
	}{
		{Mnemonic_EQ, 0x10, Extension_Signed, "Equal"},
		{Mnemonic_NE, 0x11, Extension_Signed, "Not equal"},
		{Mnemonic_LT, 0x12, Extension_Signed, "Less than"},
		{Mnemonic_GE, 0x14, Extension_Signed, "Greater than or equal"},
		{Mnemonic_AND_EQ, 0x20, Extension_Signed, "Equal accumulating with AND"},
		{Mnemonic_AND_NE, 0x21, Extension_Signed, "Not equal accumulating with AND"},
		{Mnemonic_AND_LT, 0x22, Extension_Signed, "Less than accumulating with AND"},
		{Mnemonic_AND_LT_U, 0x23, Extension_Unsigned, "Unsigned less than accumulating with AND"},
		{Mnemonic_AND_GE, 0x24, Extension_Signed, "Greater than or equal accumulating with AND"},
		{Mnemonic_AND_GE_U, 0x25, Extension_Unsigned, "Unsigned greater than or equal accumulating with AND"},
		{Mnemonic_OR_EQ, 0x27, Extension_Signed, "Equal accumulating with OR"},
		{Mnemonic_OR_NE, 0x28, Extension_Signed, "Not equal accumulating with OR"},
		{Mnemonic_OR_LT, 0x29, Extension_Signed, "Less than accumulating with OR"},
		{Mnemonic_OR_LT_U, 0x2A, Extension_Unsigned, "Unsigned less than accumulating with OR"},
		{Mnemonic_OR_GE, 0x2B, Extension_Signed, "Greater than or equal accumulating with OR"},
		{Mnemonic_OR_GE_U, 0x2C, Extension_Unsigned, "Unsigned greater than or equal accumulating with OR"},
		{Mnemonic_XOR_EQ, 0x2F, Extension_Signed, "Equal accumulating with XOR"},
		{Mnemonic_XOR_NE, 0x30, Extension_Signed, "Not equal accumulating with XOR"},
		{Mnemonic_XOR_LT, 0x31, Extension_Signed, "Less than accumulating with XOR"},
		{Mnemonic_XOR_LT_U, 0x32, Extension_Unsigned, "Unsigned less than accumulating with XOR"},
		{Mnemonic_XOR_GE, 0x33, Extension_Signed, "Greater than or equal accumulating with XOR"},
		{Mnemonic_XOR_GE_U, 0x34, Extension_Unsigned, "Unsigned greater than or equal accumulating with XOR"},
	}

	for _, c := range comparisons {
		result = append(result,
			rrData(c.mnemonic, 0x0B, c.op2, c.text),
			rcData(c.mnemonic, 0x8B, c.op2, c.extension, c.text+" with 9 bit constant"),
		)
	}

	return result
}

func bitFieldInstructions() []*InstructionDescriptor {
	pos := func() *OperandDescriptor { return immediate(Extension_Unsigned, "bit position", field32_Pos) }
	width := func() *OperandDescriptor { return immediate(Extension_Unsigned, "bit field width", field32_Width) }

	return []*InstructionDescriptor{
		instruction(Mnemonic_EXTR, Format_RRPW, 0x37, 0x2, "Extract sign extended bit field",
			dataDst(field32_D), dataSrc(field32_S1), pos(), width()),
		instruction(Mnemonic_IMASK, Format_RRPW, 0x37, 0x1, "Insert mask: build a value/mask pair from D[b]",
			extDst(field32_D), dataSrc(field32_S2), pos(), width()),
		instruction(Mnemonic_IMASK, Format_RCPW, 0xB7, 0x1, "Insert mask: build a value/mask pair from a 4 bit constant",
			extDst(field32_D), unsignedImm(field32_Const4), pos(), width()),
		instruction(Mnemonic_DEXTR, Format_RRPW, 0x77, 0x0, "Extract 32 bits from the concatenation D[a]:D[b]",
			dataDst(field32_D), dataSrc(field32_S1), dataSrc(field32_S2), pos()),
	}
}

func branchInstructions() []*InstructionDescriptor {
	d15 := func() *OperandDescriptor { return implicitRegister(registers.Register_D15, OperandRole_Source) }

	return []*InstructionDescriptor{
		instruction(Mnemonic_J, Format_SB, 0x3C, 0, "Jump to PC relative sign extended 8 bit displacement",
			branchTarget(Extension_Signed, field16_Disp8)),
		instruction(Mnemonic_J, Format_B, 0x1D, 0, "Jump to PC relative sign extended 24 bit displacement",
			branchTarget(Extension_Signed, field32_Disp24...)),
		instruction(Mnemonic_CALL, Format_SB, 0x5C, 0, "Call PC relative sign extended 8 bit displacement",
			branchTarget(Extension_Signed, field16_Disp8)),
		instruction(Mnemonic_CALL, Format_B, 0x6D, 0, "Call PC relative sign extended 24 bit displacement",
			branchTarget(Extension_Signed, field32_Disp24...)),
		instruction(Mnemonic_JZ, Format_SB, 0x6E, 0, "Jump if D15 is zero",
			d15(), branchTarget(Extension_Signed, field16_Disp8)),
		instruction(Mnemonic_JNZ, Format_SB, 0xEE, 0, "Jump if D15 is not zero",
			d15(), branchTarget(Extension_Signed, field16_Disp8)),
		instruction(Mnemonic_JZ, Format_SBR, 0x76, 0, "Jump forward if D[b] is zero",
			dataSrc(field16_S2), branchTarget(Extension_Unsigned, field16_Disp4)),
		instruction(Mnemonic_JNZ, Format_SBR, 0xF6, 0, "Jump forward if D[b] is not zero",
			dataSrc(field16_S2), branchTarget(Extension_Unsigned, field16_Disp4)),
	}
}

func loadInstructions() []*InstructionDescriptor {
	d15 := func() *OperandDescriptor { return implicitRegister(registers.Register_D15, OperandRole_Destination) }

	result := []*InstructionDescriptor{
		instruction(Mnemonic_LD_BU, Format_SLR, 0x14, 0, "Load zero extended byte",
			dataDst(field16_S1), memory(field16_S2, OperandRole_Source, Extension_Unsigned, scaleByte)),
		instruction(Mnemonic_LD_BU, Format_SLRO, 0x08, 0, "Load zero extended byte from A15 plus offset",
			dataDst(field16_S1), implicitMemory(registers.Register_A15, OperandRole_Source, Extension_Unsigned, scaleByte, field16_Off4)),
		instruction(Mnemonic_LD_BU, Format_SRO, 0x0C, 0, "Load zero extended byte into D15",
			d15(), memory(field16_S1, OperandRole_Source, Extension_Unsigned, scaleByte, field16_Off4)),
		instruction(Mnemonic_LD_H, Format_SLR, 0x94, 0, "Load sign extended halfword",
			dataDst(field16_S1), memory(field16_S2, OperandRole_Source, Extension_Unsigned, scaleHalfword)),
		instruction(Mnemonic_LD_H, Format_SLRO, 0x88, 0, "Load sign extended halfword from A15 plus offset",
			dataDst(field16_S1), implicitMemory(registers.Register_A15, OperandRole_Source, Extension_Unsigned, scaleHalfword, field16_Off4)),
		instruction(Mnemonic_LD_H, Format_SRO, 0x8C, 0, "Load sign extended halfword into D15",
			d15(), memory(field16_S1, OperandRole_Source, Extension_Unsigned, scaleHalfword, field16_Off4)),
		instruction(Mnemonic_LD_W, Format_SLR, 0x54, 0, "Load word",
			dataDst(field16_S1), memory(field16_S2, OperandRole_Source, Extension_Unsigned, scaleWord)),
		instruction(Mnemonic_LD_W, Format_SLRO, 0x48, 0, "Load word from A15 plus offset",
			dataDst(field16_S1), implicitMemory(registers.Register_A15, OperandRole_Source, Extension_Unsigned, scaleWord, field16_Off4)),
		instruction(Mnemonic_LD_W, Format_SRO, 0x4C, 0, "Load word into D15",
			d15(), memory(field16_S1, OperandRole_Source, Extension_Unsigned, scaleWord, field16_Off4)),
		instruction(Mnemonic_LD_W, Format_SC, 0x58, 0, "Load word from the stack into D15",
			d15(), implicitMemory(registers.Register_A10, OperandRole_Source, Extension_Unsigned, scaleWord, field16_Const8)),
	}

	shortOffset := []struct {
		mnemonic Mnemonic
		op2      uint32
		class    registers.RegisterClass
	}{
		{Mnemonic_LD_B, 0x20, registers.RegisterClass_Data},
		{Mnemonic_LD_BU, 0x21, registers.RegisterClass_Data},
		{Mnemonic_LD_H, 0x22, registers.RegisterClass_Data},
		{Mnemonic_LD_HU, 0x23, registers.RegisterClass_Data},
		{Mnemonic_LD_W, 0x24, registers.RegisterClass_Data},
		{Mnemonic_LD_D, 0x25, registers.RegisterClass_Extended},
	}

	for _, load := range shortOffset {
		result = append(result, instruction(load.mnemonic, Format_BO, 0x09, load.op2, "Load from base address register plus sign extended 10 bit offset",
			registerOperand(load.class, field32_S1, OperandRole_Destination, "destination register"),
			memory(field32_S2, OperandRole_Source, Extension_Signed, 0, field32_Off10...)))
	}

	longOffset := []struct {
		mnemonic Mnemonic
		op1      uint8
	}{
		{Mnemonic_LD_W, 0x19},
		{Mnemonic_LD_B, 0x79},
		{Mnemonic_LD_BU, 0x39},
		{Mnemonic_LD_H, 0xC9},
		{Mnemonic_LD_HU, 0xB9},
	}

	for _, load := range longOffset {
		result = append(result, instruction(load.mnemonic, Format_BOL, load.op1, 0, "Load from base address register plus sign extended 16 bit offset",
			dataDst(field32_S1),
			memory(field32_S2, OperandRole_Source, Extension_Signed, 0, field32_Off16...)))
	}

	return result
}

func storeInstructions() []*InstructionDescriptor {
	d15 := func() *OperandDescriptor { return implicitRegister(registers.Register_D15, OperandRole_Source) }
	a15 := func() *OperandDescriptor { return implicitRegister(registers.Register_A15, OperandRole_Source) }

	result := []*InstructionDescriptor{
		instruction(Mnemonic_ST_B, Format_SSR, 0x34, 0, "Store byte",
			memory(field16_S2, OperandRole_Destination, Extension_Unsigned, scaleByte), dataSrc(field16_S1)),
		instruction(Mnemonic_ST_B, Format_SSRO, 0x28, 0, "Store byte to A15 plus offset",
			implicitMemory(registers.Register_A15, OperandRole_Destination, Extension_Unsigned, scaleByte, field16_Off4), dataSrc(field16_S1)),
		instruction(Mnemonic_ST_B, Format_SRO, 0x2C, 0, "Store byte from D15",
			memory(field16_S1, OperandRole_Destination, Extension_Unsigned, scaleByte, field16_Off4), d15()),
		instruction(Mnemonic_ST_H, Format_SSR, 0xB4, 0, "Store halfword",
			memory(field16_S2, OperandRole_Destination, Extension_Unsigned, scaleHalfword), dataSrc(field16_S1)),
		instruction(Mnemonic_ST_H, Format_SSRO, 0xA8, 0, "Store halfword to A15 plus offset",
			implicitMemory(registers.Register_A15, OperandRole_Destination, Extension_Unsigned, scaleHalfword, field16_Off4), dataSrc(field16_S1)),
		instruction(Mnemonic_ST_H, Format_SRO, 0xAC, 0, "Store halfword from D15",
			memory(field16_S1, OperandRole_Destination, Extension_Unsigned, scaleHalfword, field16_Off4), d15()),
		instruction(Mnemonic_ST_W, Format_SSR, 0x74, 0, "Store word",
			memory(field16_S2, OperandRole_Destination, Extension_Unsigned, scaleWord), dataSrc(field16_S1)),
		instruction(Mnemonic_ST_W, Format_SSRO, 0x68, 0, "Store word to A15 plus offset",
			implicitMemory(registers.Register_A15, OperandRole_Destination, Extension_Unsigned, scaleWord, field16_Off4), dataSrc(field16_S1)),
		instruction(Mnemonic_ST_W, Format_SRO, 0x6C, 0, "Store word from D15",
			memory(field16_S1, OperandRole_Destination, Extension_Unsigned, scaleWord, field16_Off4), d15()),
		instruction(Mnemonic_ST_W, Format_SC, 0x78, 0, "Store D15 to the stack",
			implicitMemory(registers.Register_A10, OperandRole_Destination, Extension_Unsigned, scaleWord, field16_Const8), d15()),
		instruction(Mnemonic_ST_A, Format_SSR, 0xF4, 0, "Store address register",
			memory(field16_S2, OperandRole_Destination, Extension_Unsigned, scaleWord), addrSrc(field16_S1)),
		instruction(Mnemonic_ST_A, Format_SSRO, 0xE8, 0, "Store address register to A15 plus offset",
			implicitMemory(registers.Register_A15, OperandRole_Destination, Extension_Unsigned, scaleWord, field16_Off4), addrSrc(field16_S1)),
		instruction(Mnemonic_ST_A, Format_SRO, 0xEC, 0, "Store A15",
			memory(field16_S1, OperandRole_Destination, Extension_Unsigned, scaleWord, field16_Off4), a15()),
		instruction(Mnemonic_ST_A, Format_SC, 0xF8, 0, "Store A15 to the stack",
			implicitMemory(registers.Register_A10, OperandRole_Destination, Extension_Unsigned, scaleWord, field16_Const8), a15()),
	}

	shortOffset := []struct {
		mnemonic Mnemonic
		op2      uint32
		class    registers.RegisterClass
	}{
		{Mnemonic_ST_B, 0x20, registers.RegisterClass_Data},
		{Mnemonic_ST_H, 0x22, registers.RegisterClass_Data},
		{Mnemonic_ST_W, 0x24, registers.RegisterClass_Data},
		{Mnemonic_ST_D, 0x25, registers.RegisterClass_Extended},
		{Mnemonic_ST_A, 0x26, registers.RegisterClass_Address},
	}

	for _, store := range shortOffset {
		result = append(result, instruction(store.mnemonic, Format_BO, 0x89, store.op2, "Store to base address register plus sign extended 10 bit offset",
			memory(field32_S2, OperandRole_Destination, Extension_Signed, 0, field32_Off10...),
			registerOperand(store.class, field32_S1, OperandRole_Source, "source register")))
	}

	longOffset := []struct {
		mnemonic Mnemonic
		op1      uint8
		class    registers.RegisterClass
	}{
		{Mnemonic_ST_W, 0x59, registers.RegisterClass_Data},
		{Mnemonic_ST_B, 0xE9, registers.RegisterClass_Data},
		{Mnemonic_ST_H, 0xF9, registers.RegisterClass_Data},
		{Mnemonic_ST_A, 0xB5, registers.RegisterClass_Address},
	}

	for _, store := range longOffset {
		result = append(result, instruction(store.mnemonic, Format_BOL, store.op1, 0, "Store to base address register plus sign extended 16 bit offset",
			memory(field32_S2, OperandRole_Destination, Extension_Signed, 0, field32_Off16...),
			registerOperand(store.class, field32_S1, OperandRole_Source, "source register")))
	}

	return result
}
