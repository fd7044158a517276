package instructions

// How an instruction accesses one of its operands
type OperandRole uint

const (
	// Read only
	OperandRole_Source OperandRole = iota
	// Written only
	OperandRole_Destination
	// Read and then overwritten with the result, like D[a] in the 16 bit "add d[a], d[b]"
	OperandRole_SourceDestination
)

// Returns true if the instruction reads the operand
func (o OperandRole) Reads() bool {
	return o != OperandRole_Destination
}

// Returns true if the instruction writes the operand
func (o OperandRole) Writes() bool {
	return o != OperandRole_Source
}

func (o OperandRole) String() string {
	switch o {
	case OperandRole_Source:
		return "Source"
	case OperandRole_Destination:
		return "Destination"
	case OperandRole_SourceDestination:
		return "Source/Destination"
	}

	panic("unreachable")
}
