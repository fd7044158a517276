package instructions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/tricore/pkg/utils"
)

// Identifies a TriCore instruction mnemonic.
//
// Values are stable: new mnemonics are only appended before TOTAL_MNEMONICS.
type Mnemonic uint16

const (
	// Unrecognized instruction
	Mnemonic_Invalid Mnemonic = iota

	Mnemonic_ABS
	Mnemonic_ADDC
	Mnemonic_ADDI
	Mnemonic_ADDX
	Mnemonic_ADD_A
	Mnemonic_ADD
	Mnemonic_ANDN
	Mnemonic_AND_EQ
	Mnemonic_AND_GE_U
	Mnemonic_AND_GE
	Mnemonic_AND_LT_U
	Mnemonic_AND_LT
	Mnemonic_AND_NE
	Mnemonic_AND
	Mnemonic_CALL
	Mnemonic_DEXTR
	Mnemonic_EQ
	Mnemonic_EXTR
	Mnemonic_GE
	Mnemonic_IMASK
	Mnemonic_JNZ
	Mnemonic_JZ
	Mnemonic_J
	Mnemonic_LD_BU
	Mnemonic_LD_B
	Mnemonic_LD_D
	Mnemonic_LD_HU
	Mnemonic_LD_H
	Mnemonic_LD_W
	Mnemonic_LT
	Mnemonic_MOVH
	Mnemonic_MOV_AA
	Mnemonic_MOV_A
	Mnemonic_MOV_D
	Mnemonic_MOV_U
	Mnemonic_MOV
	Mnemonic_MUL
	Mnemonic_NAND
	Mnemonic_NE
	Mnemonic_NOR
	Mnemonic_NOT
	Mnemonic_ORN
	Mnemonic_OR_EQ
	Mnemonic_OR_GE_U
	Mnemonic_OR_GE
	Mnemonic_OR_LT_U
	Mnemonic_OR_LT
	Mnemonic_OR_NE
	Mnemonic_OR
	Mnemonic_RET
	Mnemonic_RSUB
	Mnemonic_SHA
	Mnemonic_SH
	Mnemonic_ST_A
	Mnemonic_ST_B
	Mnemonic_ST_D
	Mnemonic_ST_H
	Mnemonic_ST_W
	Mnemonic_SUBC
	Mnemonic_SUBX
	Mnemonic_SUB_A
	Mnemonic_SUB
	// Code generator pseudo instruction, it has no machine encoding
	Mnemonic_Select8
	Mnemonic_XNOR
	Mnemonic_XOR_EQ
	Mnemonic_XOR_GE_U
	Mnemonic_XOR_GE
	Mnemonic_XOR_LT_U
	Mnemonic_XOR_LT
	Mnemonic_XOR_NE
	Mnemonic_XOR

	// Total mnemonics, including Mnemonic_Invalid
	TOTAL_MNEMONICS
)

var mnemonicNames = [TOTAL_MNEMONICS]string{
	Mnemonic_Invalid:  "invalid",
	Mnemonic_ABS:      "abs",
	Mnemonic_ADDC:     "addc",
	Mnemonic_ADDI:     "addi",
	Mnemonic_ADDX:     "addx",
	Mnemonic_ADD_A:    "add.a",
	Mnemonic_ADD:      "add",
	Mnemonic_ANDN:     "andn",
	Mnemonic_AND_EQ:   "and.eq",
	Mnemonic_AND_GE_U: "and.ge.u",
	Mnemonic_AND_GE:   "and.ge",
	Mnemonic_AND_LT_U: "and.lt.u",
	Mnemonic_AND_LT:   "and.lt",
	Mnemonic_AND_NE:   "and.ne",
	Mnemonic_AND:      "and",
	Mnemonic_CALL:     "call",
	Mnemonic_DEXTR:    "dextr",
	Mnemonic_EQ:       "eq",
	Mnemonic_EXTR:     "extr",
	Mnemonic_GE:       "ge",
	Mnemonic_IMASK:    "imask",
	Mnemonic_JNZ:      "jnz",
	Mnemonic_JZ:       "jz",
	Mnemonic_J:        "j",
	Mnemonic_LD_BU:    "ld.bu",
	Mnemonic_LD_B:     "ld.b",
	Mnemonic_LD_D:     "ld.d",
	Mnemonic_LD_HU:    "ld.hu",
	Mnemonic_LD_H:     "ld.h",
	Mnemonic_LD_W:     "ld.w",
	Mnemonic_LT:       "lt",
	Mnemonic_MOVH:     "movh",
	Mnemonic_MOV_AA:   "mov.aa",
	Mnemonic_MOV_A:    "mov.a",
	Mnemonic_MOV_D:    "mov.d",
	Mnemonic_MOV_U:    "mov.u",
	Mnemonic_MOV:      "mov",
	Mnemonic_MUL:      "mul",
	Mnemonic_NAND:     "nand",
	Mnemonic_NE:       "ne",
	Mnemonic_NOR:      "nor",
	Mnemonic_NOT:      "not",
	Mnemonic_ORN:      "orn",
	Mnemonic_OR_EQ:    "or.eq",
	Mnemonic_OR_GE_U:  "or.ge.u",
	Mnemonic_OR_GE:    "or.ge",
	Mnemonic_OR_LT_U:  "or.lt.u",
	Mnemonic_OR_LT:    "or.lt",
	Mnemonic_OR_NE:    "or.ne",
	Mnemonic_OR:       "or",
	Mnemonic_RET:      "ret",
	Mnemonic_RSUB:     "rsub",
	Mnemonic_SHA:      "sha",
	Mnemonic_SH:       "sh",
	Mnemonic_ST_A:     "st.a",
	Mnemonic_ST_B:     "st.b",
	Mnemonic_ST_D:     "st.d",
	Mnemonic_ST_H:     "st.h",
	Mnemonic_ST_W:     "st.w",
	Mnemonic_SUBC:     "subc",
	Mnemonic_SUBX:     "subx",
	Mnemonic_SUB_A:    "sub.a",
	Mnemonic_SUB:      "sub",
	Mnemonic_Select8:  "select8",
	Mnemonic_XNOR:     "xnor",
	Mnemonic_XOR_EQ:   "xor.eq",
	Mnemonic_XOR_GE_U: "xor.ge.u",
	Mnemonic_XOR_GE:   "xor.ge",
	Mnemonic_XOR_LT_U: "xor.lt.u",
	Mnemonic_XOR_LT:   "xor.lt",
	Mnemonic_XOR_NE:   "xor.ne",
	Mnemonic_XOR:      "xor",
}

var namesToMnemonic = func() map[string]Mnemonic {
	result := make(map[string]Mnemonic, TOTAL_MNEMONICS)

	for m, name := range mnemonicNames {
		if len(name) == 0 {
			panic(fmt.Sprintf("missing name for mnemonic %v. Make sure you've added all Mnemonic -> name entries in the mnemonicNames table", m))
		}

		result[name] = Mnemonic(m)
	}

	return result
}()

// Returns true if the mnemonic identifies a real instruction
func (m Mnemonic) IsValid() bool {
	return m > Mnemonic_Invalid && m < TOTAL_MNEMONICS
}

// Returns the assembly name of the mnemonic ("ld.w", "mov.aa"...)
func (m Mnemonic) String() string {
	if m < TOTAL_MNEMONICS {
		return mnemonicNames[m]
	}

	return fmt.Sprintf("Mnemonic(%d)", uint16(m))
}

var ErrUnknownMnemonic = errors.New("unknown mnemonic")

// Returns the mnemonic with the given assembly name. Names are case insensitive
func ParseMnemonic(name string) (Mnemonic, error) {
	if mnemonic, hasMnemonic := namesToMnemonic[strings.ToLower(name)]; hasMnemonic && mnemonic != Mnemonic_Invalid {
		return mnemonic, nil
	}

	return Mnemonic_Invalid, utils.MakeError(ErrUnknownMnemonic, "'%v'", name)
}

// Encodes the mnemonic as its name
func (m Mnemonic) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Decodes a mnemonic name. See [ParseMnemonic]
func (m *Mnemonic) UnmarshalText(text []byte) error {
	parsed, err := ParseMnemonic(string(text))
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
