package instructions

import (
	"fmt"

	"github.com/Manu343726/tricore/pkg/utils"
)

// Identifies an instruction encoding format: the bit layout shared by a class of instructions
type Format uint8

const (
	Format_Invalid Format = iota

	// 16 bit formats
	Format_SR
	Format_SRC
	Format_SRR
	Format_SC
	Format_SLR
	Format_SLRO
	Format_SRO
	Format_SSR
	Format_SSRO
	Format_SB
	Format_SBR

	// 32 bit formats
	Format_RR
	Format_RR2
	Format_RC
	Format_RLC
	Format_RRPW
	Format_RCPW
	Format_BO
	Format_BOL
	Format_B
	Format_SYS

	TOTAL_FORMATS
)

func (f Format) String() string {
	return Formats[f].Name
}

// Returns the descriptor of the format
func (f Format) Descriptor() *FormatDescriptor {
	return &Formats[f]
}

// Contains the layout information of an instruction format
type FormatDescriptor struct {
	Format Format
	Name   string
	// Encoding length in bits (16 or 32)
	Bits int
	// Secondary opcode field, nil if the primary opcode alone identifies the instruction
	Op2 *utils.BitRange
}

// Primary opcode field, common to all formats
var Op1Field = utils.BitRange{Position: 0, Width: 8}

// Returns the encoding length in bytes
func (d *FormatDescriptor) Bytes() int {
	return d.Bits / utils.BitsPerByte
}

// Returns true if the format has a secondary opcode field
func (d *FormatDescriptor) HasOp2() bool {
	return d.Op2 != nil
}

// Returns the value of the secondary opcode field of an instruction word
func (d *FormatDescriptor) ReadOp2(word uint32) uint32 {
	if d.Op2 == nil {
		return 0
	}

	return utils.CreateBitView(word).Read(d.Op2.Position, d.Op2.Width)
}

func (d *FormatDescriptor) String() string {
	return fmt.Sprintf("%v (%v bits)", d.Name, d.Bits)
}

func format16(f Format, name string, op2 *utils.BitRange) FormatDescriptor {
	return FormatDescriptor{Format: f, Name: name, Bits: 16, Op2: op2}
}

func format32(f Format, name string, op2 *utils.BitRange) FormatDescriptor {
	return FormatDescriptor{Format: f, Name: name, Bits: 32, Op2: op2}
}

func op2Field(position, width int) *utils.BitRange {
	return &utils.BitRange{Position: position, Width: width}
}

// Layout information of all instruction formats, indexed by Format
var Formats = [TOTAL_FORMATS]FormatDescriptor{
	Format_Invalid: {Format: Format_Invalid, Name: "invalid"},

	Format_SR:   format16(Format_SR, "SR", op2Field(12, 4)),
	Format_SRC:  format16(Format_SRC, "SRC", nil),
	Format_SRR:  format16(Format_SRR, "SRR", nil),
	Format_SC:   format16(Format_SC, "SC", nil),
	Format_SLR:  format16(Format_SLR, "SLR", nil),
	Format_SLRO: format16(Format_SLRO, "SLRO", nil),
	Format_SRO:  format16(Format_SRO, "SRO", nil),
	Format_SSR:  format16(Format_SSR, "SSR", nil),
	Format_SSRO: format16(Format_SSRO, "SSRO", nil),
	Format_SB:   format16(Format_SB, "SB", nil),
	Format_SBR:  format16(Format_SBR, "SBR", nil),

	Format_RR:   format32(Format_RR, "RR", op2Field(20, 8)),
	Format_RR2:  format32(Format_RR2, "RR2", op2Field(16, 12)),
	Format_RC:   format32(Format_RC, "RC", op2Field(21, 7)),
	Format_RLC:  format32(Format_RLC, "RLC", nil),
	Format_RRPW: format32(Format_RRPW, "RRPW", op2Field(21, 2)),
	Format_RCPW: format32(Format_RCPW, "RCPW", op2Field(21, 2)),
	Format_BO:   format32(Format_BO, "BO", op2Field(22, 6)),
	Format_BOL:  format32(Format_BOL, "BOL", nil),
	Format_B:    format32(Format_B, "B", nil),
	Format_SYS:  format32(Format_SYS, "SYS", op2Field(22, 6)),
}

// Returns the encoding length in bytes of the instruction starting with the given halfword.
// Bit 0 of the first halfword is set for 32 bit instructions and clear for 16 bit ones.
func InstructionSize(firstHalfword uint16) int {
	if firstHalfword&1 != 0 {
		return 4
	}

	return 2
}
