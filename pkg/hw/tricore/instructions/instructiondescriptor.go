package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/tricore/pkg/utils"
)

// Contains information describing an instruction encoding
type InstructionDescriptor struct {
	// Instruction mnemonic
	Mnemonic Mnemonic
	// Encoding format
	Format Format
	// Primary opcode
	Op1 uint8
	// Secondary opcode, ignored if the format has no secondary opcode field
	Op2 uint32
	// Instruction operands, in destination then source order
	Operands []*OperandDescriptor
	// Groups the instruction belongs to
	Groups Groups
	// Instruction description (for documentation and debugging)
	Description string
}

// Returns the format descriptor of the instruction
func (d *InstructionDescriptor) FormatDescriptor() *FormatDescriptor {
	return d.Format.Descriptor()
}

// Returns the encoding length in bits
func (d *InstructionDescriptor) InstructionBits() int {
	return d.FormatDescriptor().Bits
}

// Returns true if the instruction word carries this instruction's opcodes
func (d *InstructionDescriptor) Matches(word uint32) bool {
	if uint8(utils.CreateBitView(word).Read(Op1Field.Position, Op1Field.Width)) != d.Op1 {
		return false
	}

	format := d.FormatDescriptor()
	return !format.HasOp2() || format.ReadOp2(word) == d.Op2
}

// Builds all operands of the instruction from the instruction word
func (d *InstructionDescriptor) DecodeOperands(word uint32, address uint64) (Operands, error) {
	var operands Operands

	for _, descriptor := range d.Operands {
		operand, err := descriptor.Build(word, address)
		if err != nil {
			return Operands{}, utils.MakeError(err, "decoding %v", d.Mnemonic)
		}

		if err := operands.Append(operand); err != nil {
			return Operands{}, err
		}
	}

	return operands, nil
}

// Returns a human readable string representation of the instruction
func (d *InstructionDescriptor) String() string {
	var builder strings.Builder

	builder.WriteString(d.Mnemonic.String())

	for i, operand := range d.Operands {
		if i == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}

		builder.WriteString(operand.String())
	}

	return builder.String()
}

// Returns the opcode in "op1" or "op1/op2" hex notation
func (d *InstructionDescriptor) OpCodeString() string {
	if d.FormatDescriptor().HasOp2() {
		return fmt.Sprintf("%02X/%02X", d.Op1, d.Op2)
	}

	return fmt.Sprintf("%02X", d.Op1)
}

// Returns the fields of the bitfield diagram of the instruction
func (d *InstructionDescriptor) layoutFields() []utils.LayoutField {
	format := d.FormatDescriptor()
	fields := []utils.LayoutField{
		{
			Name:     utils.FormatUintHex(uint64(d.Op1), 2),
			BitRange: Op1Field,
		},
	}

	if format.HasOp2() {
		fields = append(fields, utils.LayoutField{
			Name:     utils.FormatUintHex(uint64(d.Op2), (format.Op2.Width+3)/4),
			BitRange: *format.Op2,
		})
	}

	seen := map[utils.BitRange]bool{}

	for _, operand := range d.Operands {
		for _, field := range operand.Fields() {
			if seen[field] {
				continue
			}
			seen[field] = true

			fields = append(fields, utils.LayoutField{
				Name:     fmt.Sprintf("[%v]", operand.Index),
				BitRange: field,
			})
		}
	}

	return fields
}

// Returns full documentation for the instruction
func (d *InstructionDescriptor) Documentation(leftpad int) (string, error) {
	var builder strings.Builder
	leftpad_str := strings.Repeat(" ", leftpad)

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("%v (%v, opcode %v)\n\n", d, d.Format, d.OpCodeString()))

	leftpad_str += "  "
	leftpad += 2

	if len(d.Description) > 0 {
		builder.WriteString(leftpad_str)
		builder.WriteString("Description:\n\n  ")
		builder.WriteString(leftpad_str)
		builder.WriteString(d.Description)
		builder.WriteString("\n\n")
	}

	builder.WriteString(leftpad_str)
	builder.WriteString("Memory layout:\n\n")

	layout, err := utils.DrawBitLayout(d.layoutFields(), d.InstructionBits(), leftpad+2)
	if err != nil {
		return "", fmt.Errorf("error generating documentation for instruction %v: %w", d, err)
	}

	builder.WriteString(layout)
	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Operands:\n\n")

	if len(d.Operands) > 0 {
		for i, operand := range d.Operands {
			builder.WriteString(leftpad_str)
			builder.WriteString(fmt.Sprintf(" [%v] %v (%v): %v\n", i, operand, operand.Role, operand.Description))
		}
	} else {
		builder.WriteString(leftpad_str)
		builder.WriteString("  (none)\n")
	}

	if groups := d.Groups.All(); len(groups) > 0 {
		builder.WriteString("\n")
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("Groups: %v\n", d.Groups))
	}

	return builder.String(), nil
}
