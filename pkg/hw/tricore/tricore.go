package tricore

import (
	"fmt"
	"strings"

	"github.com/Manu343726/tricore/pkg/hw/tricore/instructions"
	"github.com/Manu343726/tricore/pkg/hw/tricore/registers"
)

// Contains implementation information about the TriCore machine code
type MachineCodeDescriptor struct {
	// Information about machine instructions
	Instructions *instructions.InstructionsDescriptor
	// Information about machine registers classes
	RegisterClasses *registers.RegisterClassesDescriptor
}

// Dumps the register catalog as a multiline string
func (d *MachineCodeDescriptor) RegistersDocumentation(leftpad int) string {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	for _, class := range d.RegisterClasses.AllClasses() {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("%v (%v, %v bit field): %v\n\n", class.Class, class.TotalRegisters(), class.FieldBits, class.Description))

		for _, register := range class.AllRegisters() {
			builder.WriteString(fmt.Sprintf(" - %v%v\n", leftpad_str, register.Documentation()))
		}

		builder.WriteString("\n")
	}

	return builder.String()
}

// Dumps the instruction table, including the bitfield layout of each encoding
func (d *MachineCodeDescriptor) InstructionsDocumentation(leftpad int) (string, error) {
	var builder strings.Builder

	for _, instruction := range d.Instructions.AllInstructions() {
		doc, err := instruction.Documentation(leftpad)
		if err != nil {
			return "", err
		}

		builder.WriteString(doc)
		builder.WriteString("\n\n")
	}

	return builder.String(), nil
}

// Dumps all the MC description as one big multiline string
func (d *MachineCodeDescriptor) Documentation(leftpad int) (string, error) {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total mnemonics: %v\n", instructions.TOTAL_MNEMONICS-1))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total instruction encodings: %v\n", len(d.Instructions.AllInstructions())))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total registers: %v\n", registers.TOTAL_REGISTERS-1))
	builder.WriteString(leftpad_str)
	builder.WriteString("instruction encoding length (bits): 16 if bit 0 of the first halfword is clear, 32 otherwise\n\n")

	builder.WriteString(leftpad_str)
	builder.WriteString("Formats:\n\n")

	for f := instructions.Format_Invalid + 1; f < instructions.TOTAL_FORMATS; f++ {
		builder.WriteString(fmt.Sprintf(" - %v%v\n", leftpad_str, f.Descriptor()))
	}

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Registers:\n\n")
	builder.WriteString(d.RegistersDocumentation(leftpad + 2))

	builder.WriteString(leftpad_str)
	builder.WriteString("Instructions:\n\n")

	instructionsDoc, err := d.InstructionsDocumentation(leftpad + 2)
	if err != nil {
		return "", err
	}

	builder.WriteString(instructionsDoc)

	return builder.String(), nil
}

// Like Documentation(), but with zero leftpad
func (d *MachineCodeDescriptor) DocString() (string, error) {
	return d.Documentation(0)
}

func makeMachineCodeDescriptor() MachineCodeDescriptor {
	return MachineCodeDescriptor{
		Instructions:    &instructions.Instructions,
		RegisterClasses: &registers.RegisterClasses,
	}
}

// Contains implementation information about the TriCore machine code
var Descriptor MachineCodeDescriptor = makeMachineCodeDescriptor()
