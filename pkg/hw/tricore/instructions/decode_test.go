package instructions

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/Manu343726/tricore/pkg/hw/tricore/registers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeFixture struct {
	name     string
	bytes    []byte
	address  uint64
	mnemonic Mnemonic
	size     int
	text     string
}

var decodeFixtures = []decodeFixture{
	{"mov 16 bit constant", []byte{0x82, 0x50}, 0, Mnemonic_MOV, 2, "mov d0, #5"},
	{"mov negative constant", []byte{0x82, 0xF0}, 0, Mnemonic_MOV, 2, "mov d0, #-1"},
	{"ret 16 bit", []byte{0x00, 0x90}, 0, Mnemonic_RET, 2, "ret"},
	{"ret 32 bit", []byte{0x0D, 0x00, 0x80, 0x01}, 0, Mnemonic_RET, 4, "ret"},
	{"ld.w short offset", []byte{0x09, 0x21, 0x04, 0x09}, 0, Mnemonic_LD_W, 4, "ld.w d1, [a2]4"},
	{"ld.w negative short offset", []byte{0x09, 0x21, 0x3C, 0xF9}, 0, Mnemonic_LD_W, 4, "ld.w d1, [a2]-4"},
	{"ld.w negative long offset", []byte{0x19, 0x21, 0xFE, 0xFF}, 0, Mnemonic_LD_W, 4, "ld.w d1, [a2]-2"},
	{"ld.d even register pair", []byte{0x09, 0x22, 0x40, 0x09}, 0, Mnemonic_LD_D, 4, "ld.d e2, [a2]"},
	{"ld.w a15 relative", []byte{0x48, 0x23}, 0, Mnemonic_LD_W, 2, "ld.w d3, [a15]8"},
	{"ld.w stack relative", []byte{0x58, 0x05}, 0, Mnemonic_LD_W, 2, "ld.w d15, [a10]20"},
	{"st.w register indirect", []byte{0x74, 0x54}, 0, Mnemonic_ST_W, 2, "st.w [a5], d4"},
	{"st.a implicit a15", []byte{0xEC, 0x12}, 0, Mnemonic_ST_A, 2, "st.a [a2]4, a15"},
	{"add three registers", []byte{0x0B, 0x21, 0x00, 0x30}, 0, Mnemonic_ADD, 4, "add d3, d1, d2"},
	{"add signed const9", []byte{0x8B, 0x01, 0x10, 0x20}, 0, Mnemonic_ADD, 4, "add d2, d1, #-256"},
	{"and unsigned const9", []byte{0x8F, 0x01, 0x10, 0x21}, 0, Mnemonic_AND, 4, "and d2, d1, #256"},
	{"addi signed const16", []byte{0x1B, 0xF2, 0xFF, 0x1F}, 0, Mnemonic_ADDI, 4, "addi d1, d2, #-1"},
	{"mov signed const16", []byte{0x3B, 0x00, 0x00, 0x48}, 0, Mnemonic_MOV, 4, "mov d4, #-32768"},
	{"mov.u unsigned const16", []byte{0xBB, 0xF0, 0xFF, 0x1F}, 0, Mnemonic_MOV_U, 4, "mov.u d1, #65535"},
	{"abs", []byte{0x0B, 0x60, 0xC0, 0x51}, 0, Mnemonic_ABS, 4, "abs d5, d6"},
	{"mul rr2", []byte{0x73, 0x32, 0x0A, 0x10}, 0, Mnemonic_MUL, 4, "mul d1, d2, d3"},
	{"not", []byte{0x46, 0x07}, 0, Mnemonic_NOT, 2, "not d7"},
	{"sh negative count", []byte{0x06, 0xC2}, 0, Mnemonic_SH, 2, "sh d2, #-4"},
	{"imask constant", []byte{0xB7, 0xA0, 0x24, 0x24}, 0, Mnemonic_IMASK, 4, "imask e2, #10, #8, #4"},
	{"j backwards", []byte{0x3C, 0xFE}, 0x1000, Mnemonic_J, 2, "j #4092"},
	{"jnz most negative disp8", []byte{0xEE, 0x80}, 0x1000, Mnemonic_JNZ, 2, "jnz d15, #3840"},
	{"jz forward disp4", []byte{0x76, 0x32}, 0x200, Mnemonic_JZ, 2, "jz d3, #516"},
	{"call disp8", []byte{0x5C, 0x02}, 0x100, Mnemonic_CALL, 2, "call #260"},
}

func TestDecode_Fixtures(t *testing.T) {
	for _, fixture := range decodeFixtures {
		t.Run(fixture.name, func(t *testing.T) {
			instruction, size, err := Decode(fixture.bytes, fixture.address)

			require.NoError(t, err)
			assert.Equal(t, fixture.size, size)
			assert.Equal(t, fixture.size, instruction.Size)
			assert.Equal(t, fixture.address, instruction.Address)
			assert.Equal(t, fixture.mnemonic, instruction.Mnemonic)
			assert.Equal(t, fixture.text, instruction.String())
			assert.Equal(t, fixture.bytes, instruction.RawBytes())
			assert.True(t, instruction.IsValid())
		})
	}
}

func TestDecode_MovOperands(t *testing.T) {
	instruction, size, err := Decode([]byte{0x82, 0x50}, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, size)
	require.Equal(t, 2, instruction.OperandCount())
	assert.Equal(t, registers.Register_D0, instruction.Operand(0).Register())
	assert.Equal(t, int32(5), instruction.Operand(1).Immediate())
	assert.False(t, instruction.InGroup(Group_Jump))
}

func TestDecode_LoadWordOperands(t *testing.T) {
	instruction, size, err := Decode([]byte{0x09, 0x21, 0x04, 0x09}, 0)

	require.NoError(t, err)
	assert.Equal(t, 4, size)
	require.Equal(t, 2, instruction.OperandCount())
	assert.Equal(t, registers.Register_D1, instruction.Operand(0).Register())
	assert.Equal(t, MemoryOperand{Base: registers.Register_A2, Displacement: 4}, instruction.Operand(1).Memory())
	assert.Equal(t, uint32(0x09042109), instruction.Word())
}

func TestDecode_RetHasNoOperands(t *testing.T) {
	for _, code := range [][]byte{{0x00, 0x90}, {0x0D, 0x00, 0x80, 0x01}} {
		instruction, _, err := Decode(code, 0)

		require.NoError(t, err)
		assert.Equal(t, Mnemonic_RET, instruction.Mnemonic)
		assert.Equal(t, 0, instruction.OperandCount())
		assert.False(t, instruction.InGroup(Group_Jump))
	}
}

func TestDecode_JumpGroup(t *testing.T) {
	jumps := [][]byte{
		{0x3C, 0xFE},
		{0xEE, 0x80},
		{0x6E, 0x04},
		{0x76, 0x32},
		{0xF6, 0x32},
		{0x1D, 0x00, 0x10, 0x00},
	}

	for _, code := range jumps {
		instruction, _, err := Decode(code, 0x1000)
		require.NoError(t, err)
		assert.True(t, instruction.InGroup(Group_Jump), "%v", instruction)
	}

	notJumps := [][]byte{
		{0x5C, 0x02},
		{0x6D, 0x00, 0x10, 0x00},
		{0x00, 0x90},
		{0x82, 0x50},
	}

	for _, code := range notJumps {
		instruction, _, err := Decode(code, 0x1000)
		require.NoError(t, err)
		assert.False(t, instruction.InGroup(Group_Jump), "%v", instruction)
	}
}

func TestDecode_BranchTargetsWrapAt32Bits(t *testing.T) {
	// j +0x20 at 0x80000000
	instruction, _, err := Decode([]byte{0x1D, 0x00, 0x10, 0x00}, 0x80000000)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x80000020), uint32(instruction.Operand(0).Immediate()))

	// j -2 at 0
	instruction, _, err = Decode([]byte{0x1D, 0xFF, 0xFF, 0xFF}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFFFFFE), uint32(instruction.Operand(0).Immediate()))
}

func TestDecode_BufferTooShort(t *testing.T) {
	_, size, err := Decode(nil, 0)
	assert.ErrorIs(t, err, ErrBufferTooShort)
	assert.Equal(t, 0, size)

	_, _, err = Decode([]byte{0x82}, 0)
	assert.ErrorIs(t, err, ErrBufferTooShort)

	// bit 0 set: 32 bit instruction
	_, _, err = Decode([]byte{0x09, 0x21}, 0)
	assert.ErrorIs(t, err, ErrBufferTooShort)

	_, _, err = Decode([]byte{0x09, 0x21, 0x04}, 0)
	assert.ErrorIs(t, err, ErrBufferTooShort)
}

func TestDecode_InvalidEncodings(t *testing.T) {
	cases := []struct {
		name  string
		bytes []byte
		size  int
	}{
		{"all zeros halfword", []byte{0x00, 0x00}, 2},
		{"unknown sr op2", []byte{0x00, 0x10}, 2},
		{"unknown sys op2", []byte{0x0D, 0x00, 0x00, 0x00}, 4},
		{"unknown rr op2", []byte{0x0B, 0x00, 0xF0, 0x0F}, 4},
		{"unused op1", []byte{0xFF, 0xFF, 0xFF, 0xFF}, 4},
		{"odd extended register", []byte{0x09, 0x21, 0x40, 0x09}, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			instruction, size, err := Decode(c.bytes, 0x100)

			require.NoError(t, err)
			assert.Equal(t, c.size, size)
			assert.False(t, instruction.IsValid())
			assert.Equal(t, Mnemonic_Invalid, instruction.Mnemonic)
			assert.Equal(t, 0, instruction.OperandCount())
			assert.Equal(t, Groups(0), instruction.Groups)
			assert.Equal(t, c.bytes, instruction.RawBytes())
			assert.Equal(t, "invalid", instruction.String())
		})
	}
}

func TestDecodeWord_ReportsReason(t *testing.T) {
	_, err := DecodeWord(0x0000, 2, 0)
	assert.ErrorIs(t, err, ErrUnrecognizedOpcode)

	instruction, err := DecodeWord(0x09402109, 4, 0)
	assert.ErrorIs(t, err, ErrUnknownRegister)
	assert.False(t, instruction.IsValid())
	assert.Equal(t, 4, instruction.Size)

	instruction, err = DecodeWord(0x09042109, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, Mnemonic_LD_W, instruction.Mnemonic)

	_, err = DecodeWord(0x5082, 3, 0)
	assert.Error(t, err)
}

func TestDecode_IgnoresTrailingBytes(t *testing.T) {
	instruction, size, err := Decode([]byte{0x82, 0x50, 0xFF, 0xFF, 0xFF}, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, size)
	assert.Equal(t, "mov d0, #5", instruction.String())
}

func TestDecode_EveryTableEntry(t *testing.T) {
	for _, descriptor := range Instructions.AllInstructions() {
		format := descriptor.FormatDescriptor()
		word := uint32(descriptor.Op1)

		if format.HasOp2() {
			word |= descriptor.Op2 << format.Op2.Position
		}

		code := make([]byte, 4)
		binary.LittleEndian.PutUint32(code, word)
		code = code[:format.Bytes()]

		instruction, size, err := Decode(code, 0)

		require.NoError(t, err, "%v", descriptor)
		assert.Equal(t, format.Bytes(), size, "%v", descriptor)
		assert.Equal(t, descriptor.Mnemonic, instruction.Mnemonic, "%v (%v %v)", descriptor, descriptor.Format, descriptor.OpCodeString())
		assert.Equal(t, len(descriptor.Operands), instruction.OperandCount(), "%v", descriptor)
	}
}

func TestDecode_RandomInputs(t *testing.T) {
	random := rand.New(rand.NewSource(0x7C))
	code := make([]byte, 4)

	for i := 0; i < 20000; i++ {
		random.Read(code)
		address := uint64(random.Uint32())

		first, size, err := Decode(code, address)
		require.NoError(t, err)
		require.Contains(t, []int{2, 4}, size)
		assert.Equal(t, size, first.Size)
		assert.LessOrEqual(t, first.OperandCount(), MaxOperands)

		if !first.IsValid() {
			assert.Equal(t, 0, first.OperandCount())
		}

		for j := 0; j < first.OperandCount(); j++ {
			assert.NotEqual(t, OperandKind_Invalid, first.Operand(j).Kind())
		}

		second, secondSize, err := Decode(code, address)
		require.NoError(t, err)
		assert.Equal(t, size, secondSize)
		assert.Equal(t, first, second)
	}
}

func TestDecode_RandomStreamsTerminate(t *testing.T) {
	random := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		code := make([]byte, random.Intn(64))
		random.Read(code)

		offset := 0
		steps := 0

		for offset < len(code) {
			_, size, err := Decode(code[offset:], uint64(offset))
			if err != nil {
				assert.ErrorIs(t, err, ErrBufferTooShort)
				assert.Less(t, len(code)-offset, 4)
				break
			}

			require.GreaterOrEqual(t, size, 2)
			offset += size
			steps++
		}

		assert.LessOrEqual(t, steps, len(code)/2)
	}
}
