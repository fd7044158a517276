package registers

type RegisterClass uint

const (
	// Not a register class, used for invalid registers
	RegisterClass_None RegisterClass = iota

	// 32 bit data registers D0..D15
	RegisterClass_Data

	// 32 bit address registers A0..A15
	RegisterClass_Address

	// 64 bit extended data registers E0..E14, each one aliasing an even/odd pair of data registers
	RegisterClass_Extended

	// Core special function registers addressed by their CSFR offset
	RegisterClass_Control

	// Number of register classes
	TOTAL_REGISTER_CLASSES
)

func (rc RegisterClass) String() string {
	switch rc {
	case RegisterClass_None:
		return "no register class"
	case RegisterClass_Data:
		return "data registers"
	case RegisterClass_Address:
		return "address registers"
	case RegisterClass_Extended:
		return "extended data registers"
	case RegisterClass_Control:
		return "core special function registers"
	}

	return "unknown register class"
}
