package instructions

import (
	"errors"

	"github.com/Manu343726/tricore/pkg/hw/tricore/registers"
)

// The bit pattern does not match any known instruction format and opcode
var ErrUnrecognizedOpcode = errors.New("unrecognized opcode")

// Fewer bytes are available than the instruction encoding requires
var ErrBufferTooShort = errors.New("buffer too short")

// A register field does not select any architectural register
var ErrUnknownRegister = registers.ErrUnknownRegister

// An operand descriptor or operand value is malformed
var ErrInvalidOperand = errors.New("invalid operand")
