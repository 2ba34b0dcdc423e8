package chip8

// handler executes one decoded instruction against the machine state.
type handler func(c *CPU, in instr) error

// Dispatch is a two-level lookup. The primary table is keyed by the top
// nibble; families 0x0, 0xE and 0xF resolve a secondary key from the low
// byte and family 0x8 from the low nibble. Every 16-bit word lands on
// exactly one handler or on an *UnknownOpcodeError.
var primary = [16]handler{
	0x0: dispatch0,
	0x1: opJump,
	0x2: opCall,
	0x3: opSkipEqImm,
	0x4: opSkipNeImm,
	0x5: opSkipEqReg,
	0x6: opLoadImm,
	0x7: opAddImm,
	0x8: dispatch8,
	0x9: opSkipNeReg,
	0xA: opSetIndex,
	0xB: opJumpOffset,
	0xC: opRandom,
	0xD: opDraw,
	0xE: dispatchE,
	0xF: dispatchF,
}

var family0 = map[uint8]handler{
	0xE0: opClearScreen,
	0xEE: opReturn,
}

var family8 = [16]handler{
	0x0: opMove,
	0x1: opOr,
	0x2: opAnd,
	0x3: opXor,
	0x4: opAddReg,
	0x5: opSubReg,
	0x6: opShiftRight,
	0x7: opSubReversed,
	0xE: opShiftLeft,
}

var familyE = map[uint8]handler{
	0x9E: opSkipKeyPressed,
	0xA1: opSkipKeyNotPressed,
}

var familyF = map[uint8]handler{
	0x07: opGetDelay,
	0x0A: opWaitKey,
	0x15: opSetDelay,
	0x18: opSetSound,
	0x1E: opAddIndex,
	0x29: opFontChar,
	0x33: opStoreBCD,
	0x55: opStoreRegisters,
	0x65: opLoadRegisters,
}

func dispatch(c *CPU, in instr) error {
	return primary[in.family](c, in)
}

func dispatch0(c *CPU, in instr) error {
	if h, ok := family0[in.nn]; ok {
		return h(c, in)
	}
	return &UnknownOpcodeError{Opcode: in.word, PC: c.PC}
}

func dispatch8(c *CPU, in instr) error {
	if h := family8[in.n]; h != nil {
		return h(c, in)
	}
	return &UnknownOpcodeError{Opcode: in.word, PC: c.PC}
}

func dispatchE(c *CPU, in instr) error {
	if h, ok := familyE[in.nn]; ok {
		return h(c, in)
	}
	return &UnknownOpcodeError{Opcode: in.word, PC: c.PC}
}

func dispatchF(c *CPU, in instr) error {
	if h, ok := familyF[in.nn]; ok {
		return h(c, in)
	}
	return &UnknownOpcodeError{Opcode: in.word, PC: c.PC}
}
