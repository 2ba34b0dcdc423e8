package chip8

// instr holds the operand fields extracted from a 16-bit instruction word.
// Decoding is pure bit arithmetic; every field is always populated and the
// handler picks the ones its encoding defines.
type instr struct {
	word   uint16
	family uint8  // top nibble, selects the opcode family
	x      uint8  // Vx register index, bits 8-11
	y      uint8  // Vy register index, bits 4-7
	n      uint8  // low nibble, sprite height / secondary key for 0x8
	nn     uint8  // low byte, 8-bit immediate
	nnn    uint16 // low 12 bits, memory address
}

func decode(word uint16) instr {
	return instr{
		word:   word,
		family: uint8(word >> 12),
		x:      uint8(word>>8) & 0x0F,
		y:      uint8(word>>4) & 0x0F,
		n:      uint8(word) & 0x0F,
		nn:     uint8(word),
		nnn:    word & 0x0FFF,
	}
}
