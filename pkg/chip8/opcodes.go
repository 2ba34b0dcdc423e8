package chip8

import "gochip8/pkg/grid"

// The 35 instruction handlers. Each one reads the decoded fields and mutates
// the machine state; the fetch advance of +2 has already happened by the time
// a handler runs, so branch handlers overwrite PC and skip handlers add a
// further instruction width.

// 00E0: clear the framebuffer.
func opClearScreen(c *CPU, in instr) error {
	c.Video = [VideoWidth * VideoHeight]byte{}
	return nil
}

// 00EE: return from a subroutine. Returning with no active call is a
// CallStackError and the return is skipped.
func opReturn(c *CPU, in instr) error {
	if c.SP == 0 {
		return &CallStackError{Op: "ret", SP: c.SP}
	}
	c.SP--
	c.PC = c.Stack[c.SP]
	return nil
}

// 1NNN: jump to NNN.
func opJump(c *CPU, in instr) error {
	c.PC = in.nnn
	return nil
}

// 2NNN: call the subroutine at NNN. The pushed value is the address of the
// instruction after the call (PC has already advanced past it), so a later
// return resumes at the call site, not inside the callee. More than 16
// nested calls is a CallStackError and the call is skipped.
func opCall(c *CPU, in instr) error {
	if c.SP >= StackDepth {
		return &CallStackError{Op: "call", SP: c.SP}
	}
	c.Stack[c.SP] = c.PC
	c.SP++
	c.PC = in.nnn
	return nil
}

// 3XNN: skip the next instruction if Vx == NN.
func opSkipEqImm(c *CPU, in instr) error {
	if c.V[in.x] == in.nn {
		c.PC += 2
	}
	return nil
}

// 4XNN: skip the next instruction if Vx != NN.
func opSkipNeImm(c *CPU, in instr) error {
	if c.V[in.x] != in.nn {
		c.PC += 2
	}
	return nil
}

// 5XY0: skip the next instruction if Vx == Vy.
func opSkipEqReg(c *CPU, in instr) error {
	if in.n != 0 {
		return &UnknownOpcodeError{Opcode: in.word, PC: c.PC}
	}
	if c.V[in.x] == c.V[in.y] {
		c.PC += 2
	}
	return nil
}

// 6XNN: Vx = NN.
func opLoadImm(c *CPU, in instr) error {
	c.V[in.x] = in.nn
	return nil
}

// 7XNN: Vx += NN, wrapping mod 256, no flag.
func opAddImm(c *CPU, in instr) error {
	c.V[in.x] += in.nn
	return nil
}

// 8XY0: Vx = Vy.
func opMove(c *CPU, in instr) error {
	c.V[in.x] = c.V[in.y]
	return nil
}

// 8XY1: Vx |= Vy.
func opOr(c *CPU, in instr) error {
	c.V[in.x] |= c.V[in.y]
	return nil
}

// 8XY2: Vx &= Vy.
func opAnd(c *CPU, in instr) error {
	c.V[in.x] &= c.V[in.y]
	return nil
}

// 8XY3: Vx ^= Vy.
func opXor(c *CPU, in instr) error {
	c.V[in.x] ^= c.V[in.y]
	return nil
}

// 8XY4: Vx += Vy. VF = 1 on unsigned carry past 255; the stored result is
// the explicitly truncated low 8 bits of the sum. The flag write lands
// after the result so that VF as a destination still ends up holding the
// carry.
func opAddReg(c *CPU, in instr) error {
	sum := uint16(c.V[in.x]) + uint16(c.V[in.y])
	c.V[in.x] = uint8(sum)
	if sum > 0xFF {
		c.V[0xF] = 1
	} else {
		c.V[0xF] = 0
	}
	return nil
}

// 8XY5: Vx -= Vy. VF = 1 iff Vx > Vy before the subtraction (no borrow);
// the difference wraps mod 256.
func opSubReg(c *CPU, in instr) error {
	noBorrow := c.V[in.x] > c.V[in.y]
	c.V[in.x] -= c.V[in.y]
	if noBorrow {
		c.V[0xF] = 1
	} else {
		c.V[0xF] = 0
	}
	return nil
}

// 8XY6: Vx = Vy >> 1, VF = the shifted-out low bit of Vy. Note the source
// register is Vy, original COSMAC semantics.
func opShiftRight(c *CPU, in instr) error {
	bit := c.V[in.y] & 0x01
	c.V[in.x] = c.V[in.y] >> 1
	c.V[0xF] = bit
	return nil
}

// 8XY7: Vx = Vy - Vx. VF = 1 iff Vy > Vx (no borrow).
func opSubReversed(c *CPU, in instr) error {
	noBorrow := c.V[in.y] > c.V[in.x]
	c.V[in.x] = c.V[in.y] - c.V[in.x]
	if noBorrow {
		c.V[0xF] = 1
	} else {
		c.V[0xF] = 0
	}
	return nil
}

// 8XYE: Vx = Vy << 1, VF = the shifted-out high bit of Vy.
func opShiftLeft(c *CPU, in instr) error {
	bit := c.V[in.y] >> 7
	c.V[in.x] = c.V[in.y] << 1
	c.V[0xF] = bit
	return nil
}

// 9XY0: skip the next instruction if Vx != Vy.
func opSkipNeReg(c *CPU, in instr) error {
	if in.n != 0 {
		return &UnknownOpcodeError{Opcode: in.word, PC: c.PC}
	}
	if c.V[in.x] != c.V[in.y] {
		c.PC += 2
	}
	return nil
}

// ANNN: I = NNN.
func opSetIndex(c *CPU, in instr) error {
	c.I = in.nnn
	return nil
}

// BNNN: jump to NNN + V0.
func opJumpOffset(c *CPU, in instr) error {
	c.PC = in.nnn + uint16(c.V[0])
	return nil
}

// CXNN: Vx = random byte AND NN.
func opRandom(c *CPU, in instr) error {
	c.V[in.x] = uint8(c.rng.IntN(256)) & in.nn
	return nil
}

// DXYN: XOR an 8-wide, N-tall sprite from memory at I onto the framebuffer
// at (Vx mod 64, Vy mod 32). VF = 1 iff any lit pixel was turned unlit.
// Only the start coordinate wraps; rows past the bottom edge and columns
// past the right edge are clipped.
func opDraw(c *CPU, in instr) error {
	if int(c.I)+int(in.n) > MemorySize {
		return &OutOfBoundsError{Addr: int(c.I), Len: int(in.n)}
	}

	x0 := int(c.V[in.x]) % VideoWidth
	y0 := int(c.V[in.y]) % VideoHeight

	c.V[0xF] = 0
	for row := 0; row < int(in.n); row++ {
		y := y0 + row
		if y >= VideoHeight {
			break
		}
		bits := c.Memory[int(c.I)+row]
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			x := x0 + col
			if x >= VideoWidth {
				break
			}
			idx := grid.Index(x, y, VideoWidth)
			if c.Video[idx] != 0 {
				c.V[0xF] = 1
			}
			c.Video[idx] ^= 1
		}
	}
	return nil
}

// EX9E: skip the next instruction if the key numbered by Vx is pressed.
func opSkipKeyPressed(c *CPU, in instr) error {
	key := c.V[in.x]
	if key >= NumKeys {
		return &InvalidRegisterIndexError{Index: int(key)}
	}
	if c.Keys[key] {
		c.PC += 2
	}
	return nil
}

// EXA1: skip the next instruction if the key numbered by Vx is not pressed.
func opSkipKeyNotPressed(c *CPU, in instr) error {
	key := c.V[in.x]
	if key >= NumKeys {
		return &InvalidRegisterIndexError{Index: int(key)}
	}
	if !c.Keys[key] {
		c.PC += 2
	}
	return nil
}

// FX07: Vx = delay timer.
func opGetDelay(c *CPU, in instr) error {
	c.V[in.x] = c.DelayTimer
	return nil
}

// FX0A: wait for a key press and store its index in Vx. The handler only
// arms the key-wait latch; Step scans the keypad on subsequent cycles until
// a key is observed pressed, so control still returns to the caller after
// every cycle.
func opWaitKey(c *CPU, in instr) error {
	c.WaitingForKey = true
	c.WaitReg = in.x
	return nil
}

// FX15: delay timer = Vx.
func opSetDelay(c *CPU, in instr) error {
	c.DelayTimer = c.V[in.x]
	return nil
}

// FX18: sound timer = Vx.
func opSetSound(c *CPU, in instr) error {
	c.SoundTimer = c.V[in.x]
	return nil
}

// FX1E: I += Vx. No overflow flag is defined for this instruction.
func opAddIndex(c *CPU, in instr) error {
	c.I += uint16(c.V[in.x])
	return nil
}

// FX29: I = address of the font glyph for the digit in Vx. The index is
// overwritten, not accumulated.
func opFontChar(c *CPU, in instr) error {
	digit := c.V[in.x]
	if digit >= 16 {
		return &InvalidRegisterIndexError{Index: int(digit)}
	}
	c.I = FontAddress + GlyphSize*uint16(digit)
	return nil
}

// FX33: store the decimal digits of Vx at I, I+1, I+2.
func opStoreBCD(c *CPU, in instr) error {
	if int(c.I)+3 > MemorySize {
		return &OutOfBoundsError{Addr: int(c.I), Len: 3}
	}
	v := c.V[in.x]
	c.Memory[c.I] = v / 100
	c.Memory[c.I+1] = (v / 10) % 10
	c.Memory[c.I+2] = v % 10
	return nil
}

// FX55: store registers V0 through Vx inclusive at memory starting at I.
// I itself is left unchanged.
func opStoreRegisters(c *CPU, in instr) error {
	if int(c.I)+int(in.x)+1 > MemorySize {
		return &OutOfBoundsError{Addr: int(c.I), Len: int(in.x) + 1}
	}
	for i := uint16(0); i <= uint16(in.x); i++ {
		c.Memory[c.I+i] = c.V[i]
	}
	return nil
}

// FX65: load registers V0 through Vx inclusive from memory starting at I.
// I itself is left unchanged.
func opLoadRegisters(c *CPU, in instr) error {
	if int(c.I)+int(in.x)+1 > MemorySize {
		return &OutOfBoundsError{Addr: int(c.I), Len: int(in.x) + 1}
	}
	for i := uint16(0); i <= uint16(in.x); i++ {
		c.V[i] = c.Memory[c.I+i]
	}
	return nil
}
