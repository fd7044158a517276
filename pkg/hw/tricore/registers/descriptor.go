package registers

// Contains all the metadata describing the registers and register classes of the TriCore architecture
var RegisterClasses RegisterClassesDescriptor = NewRegisterClassesDescriptor([]*RegisterClassDescriptor{
	DataRegisters(),
	AddressRegisters(),
	ExtendedRegisters(),
	ControlRegisters(),
})

// Data registers descriptor
func DataRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_Data,
		Description:        "General purpose 32 bit data registers",
		RegisterNamePrefix: "d",
		FieldBits:          4,
	}, MakeRegisters(Register_D0, 16, 1))
}

// Address registers descriptor
func AddressRegisters() *RegisterClassDescriptor {
	registers := MakeRegisters(Register_A0, 16, 1)
	registers[10].Description = "Stack pointer"
	registers[11].Description = "Return address"
	registers[15].Description = "Implicit base address register of short load/store forms"

	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_Address,
		Description:        "General purpose 32 bit address registers",
		RegisterNamePrefix: "a",
		FieldBits:          4,
	}, registers)
}

// Extended data registers descriptor. Only even register fields select an extended register
func ExtendedRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_Extended,
		Description:        "64 bit extended data registers, E[n] is the pair D[n+1]:D[n]",
		RegisterNamePrefix: "e",
		FieldBits:          4,
	}, MakeRegisters(Register_E0, 8, 2))
}

// Core special function registers descriptor. Encodings are CSFR offsets
func ControlRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:       RegisterClass_Control,
		Description: "Core special function registers",
		FieldBits:   16,
	}, []*RegisterDescriptor{
		Pcxi(),
		Psw(),
		Pc(),
		Fcx(),
	})
}

// Previous context information register descriptor
func Pcxi() *RegisterDescriptor {
	return &RegisterDescriptor{
		Register:    Register_PCXI,
		Encoding:    0xFE00,
		CustomName:  "pcxi",
		Description: "Previous context information",
	}
}

// Program status word descriptor
func Psw() *RegisterDescriptor {
	return &RegisterDescriptor{
		Register:    Register_PSW,
		Encoding:    0xFE04,
		CustomName:  "psw",
		Description: "Program status word",
	}
}

// Program counter descriptor
func Pc() *RegisterDescriptor {
	return &RegisterDescriptor{
		Register:    Register_PC,
		Encoding:    0xFE08,
		CustomName:  "pc",
		Description: "Program counter",
	}
}

// Free context list head pointer descriptor
func Fcx() *RegisterDescriptor {
	return &RegisterDescriptor{
		Register:    Register_FCX,
		Encoding:    0xFE38,
		CustomName:  "fcx",
		Description: "Free CSA list head pointer",
	}
}

// Returns the register selected by the raw bits of an instruction field of the given register class
func Resolve(rc RegisterClass, raw uint32) (Register, error) {
	return RegisterClasses.Resolve(rc, raw)
}

// Returns a register by name, panics if no such register exists
func ByName(name string) Register {
	reg, err := RegisterClasses.RegisterByName(name)

	if err != nil {
		panic(err)
	}

	return reg.Register
}
