package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_DataAndAddressRegisters(t *testing.T) {
	for i := uint32(0); i < 16; i++ {
		d, err := Resolve(RegisterClass_Data, i)
		require.NoError(t, err)
		assert.Equal(t, Register_D0+Register(i), d)

		a, err := Resolve(RegisterClass_Address, i)
		require.NoError(t, err)
		assert.Equal(t, Register_A0+Register(i), a)
	}
}

func TestResolve_ExtendedRegistersOnlyEven(t *testing.T) {
	e, err := Resolve(RegisterClass_Extended, 0)
	require.NoError(t, err)
	assert.Equal(t, Register_E0, e)

	e, err = Resolve(RegisterClass_Extended, 14)
	require.NoError(t, err)
	assert.Equal(t, Register_E14, e)

	for _, odd := range []uint32{1, 3, 5, 7, 9, 11, 13, 15} {
		r, err := Resolve(RegisterClass_Extended, odd)
		assert.ErrorIs(t, err, ErrUnknownRegister)
		assert.Equal(t, Register_Invalid, r)
	}
}

func TestResolve_ControlRegisters(t *testing.T) {
	cases := map[uint32]Register{
		0xFE00: Register_PCXI,
		0xFE04: Register_PSW,
		0xFE08: Register_PC,
		0xFE38: Register_FCX,
	}

	for encoding, expected := range cases {
		r, err := Resolve(RegisterClass_Control, encoding)
		require.NoError(t, err)
		assert.Equal(t, expected, r)
	}

	_, err := Resolve(RegisterClass_Control, 0xFE0C)
	assert.ErrorIs(t, err, ErrUnknownRegister)
}

func TestResolve_OutOfRangeNeverPanics(t *testing.T) {
	for rc := RegisterClass_None; rc <= TOTAL_REGISTER_CLASSES; rc++ {
		for _, raw := range []uint32{16, 0xFF, 0xFFFF, 0xFFFFFFFF} {
			assert.NotPanics(t, func() {
				r, err := Resolve(rc, raw)
				assert.Error(t, err)
				assert.Equal(t, Register_Invalid, r)
			})
		}
	}
}

func TestResolve_InvalidClass(t *testing.T) {
	_, err := Resolve(RegisterClass_None, 0)
	assert.ErrorIs(t, err, ErrInvalidRegisterClass)
}

func TestRegister_Names(t *testing.T) {
	assert.Equal(t, "d0", Register_D0.Name())
	assert.Equal(t, "d15", Register_D15.Name())
	assert.Equal(t, "a10", Register_A10.Name())
	assert.Equal(t, "e4", Register_E4.Name())
	assert.Equal(t, "e14", Register_E14.Name())
	assert.Equal(t, "psw", Register_PSW.Name())
	assert.Equal(t, "pcxi", Register_PCXI.String())
	assert.Equal(t, "invalid", Register_Invalid.Name())
	assert.Equal(t, "Register(45)", TOTAL_REGISTERS.String())
}

func TestRegister_Classes(t *testing.T) {
	assert.Equal(t, RegisterClass_Data, Register_D7.Class())
	assert.Equal(t, RegisterClass_Address, Register_A0.Class())
	assert.Equal(t, RegisterClass_Extended, Register_E8.Class())
	assert.Equal(t, RegisterClass_Control, Register_FCX.Class())
	assert.Equal(t, RegisterClass_None, Register_Invalid.Class())
	assert.Equal(t, RegisterClass_None, TOTAL_REGISTERS.Class())
}

func TestRegister_EnumerationIsStable(t *testing.T) {
	assert.EqualValues(t, 0, Register_Invalid)
	assert.EqualValues(t, 1, Register_D0)
	assert.EqualValues(t, 17, Register_A0)
	assert.EqualValues(t, 33, Register_E0)
	assert.EqualValues(t, 41, Register_PSW)
	assert.EqualValues(t, 44, Register_FCX)
	assert.EqualValues(t, 45, TOTAL_REGISTERS)
}

func TestRegisterByName(t *testing.T) {
	assert.Equal(t, Register_D15, ByName("d15"))
	assert.Equal(t, Register_A10, ByName("A10"))
	assert.Equal(t, Register_PSW, ByName("PSW"))

	_, err := RegisterClasses.RegisterByName("e3")
	assert.ErrorIs(t, err, ErrUnknownRegister)

	assert.Panics(t, func() { ByName("x0") })
}

func TestAllClasses_CoverAllRegisters(t *testing.T) {
	total := 0
	for _, class := range RegisterClasses.AllClasses() {
		total += class.TotalRegisters()
	}

	assert.Equal(t, int(TOTAL_REGISTERS)-1, total)
}
