package chip8

import (
	"math/rand/v2"
	"time"
)

const (
	// MemorySize is the full addressable memory, 0x000-0xFFF.
	MemorySize = 4096
	// StartAddress is where loaded programs begin executing.
	StartAddress = 0x200
	// FontAddress is the base of the 80-byte hexadecimal glyph block.
	FontAddress = 0x050
	// GlyphSize is the height in bytes of one font glyph.
	GlyphSize = 5

	VideoWidth  = 64
	VideoHeight = 32

	NumRegisters = 16
	NumKeys      = 16
	StackDepth   = 16
)

// fontset holds the 4x5 bitmap glyphs for the hexadecimal digits 0-F.
// It is copied into memory at FontAddress on construction; programs may
// legally overwrite that region afterwards.
var fontset = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// CPU holds the complete state of one CHIP-8 machine: registers, memory,
// call stack, timers, keypad latch and framebuffer. All state, including
// the random source, is instance-local, so independent CPU values may run
// concurrently without sharing anything.
type CPU struct {
	V      [NumRegisters]uint8
	Memory [MemorySize]byte

	I  uint16
	PC uint16

	Stack [StackDepth]uint16
	SP    uint8

	DelayTimer uint8
	SoundTimer uint8

	Keys [NumKeys]bool

	// Video is the 64x32 monochrome framebuffer, one byte per pixel,
	// row-major, 0 = unlit and 1 = lit. Consumers may read it directly
	// or through the framebuffer export helpers.
	Video [VideoWidth * VideoHeight]byte

	// Key-wait latch for the FX0A instruction. While WaitingForKey is
	// set, Step scans the keypad instead of fetching; the first pressed
	// key (lowest index) lands in V[WaitReg] and clears the latch.
	WaitingForKey bool
	WaitReg       uint8

	rng *rand.Rand
}

// NewCPU returns a machine with the program counter at StartAddress, the
// font glyphs loaded at FontAddress and everything else zeroed. The random
// source is seeded from the wall clock.
func NewCPU() *CPU {
	now := uint64(time.Now().UnixNano())
	c := &CPU{
		PC:  StartAddress,
		rng: rand.New(rand.NewPCG(now, now>>21)),
	}
	copy(c.Memory[FontAddress:], fontset[:])
	return c
}

// LoadProgram copies program into memory starting at StartAddress. If the
// program would run past the end of memory, nothing is written and an
// *OutOfBoundsError is returned.
func (c *CPU) LoadProgram(program []byte) error {
	if StartAddress+len(program) > MemorySize {
		return &OutOfBoundsError{Addr: StartAddress, Len: len(program)}
	}
	copy(c.Memory[StartAddress:], program)
	return nil
}

// Step executes exactly one fetch-decode-execute cycle. A runtime fault
// (unknown opcode, out-of-range access, bad key index) is returned to the
// caller, but the program counter has already advanced past the faulting
// instruction, so the caller may keep stepping.
func (c *CPU) Step() error {
	if c.WaitingForKey {
		for i, pressed := range c.Keys {
			if pressed {
				c.V[c.WaitReg] = uint8(i)
				c.WaitingForKey = false
				break
			}
		}
		return nil
	}

	// The program counter addresses 12 bits of memory; it wraps rather
	// than running off the end of the array.
	c.PC &= 0x0FFF
	word := uint16(c.Memory[c.PC])<<8 | uint16(c.Memory[(c.PC+1)&0x0FFF])
	c.PC += 2

	return dispatch(c, decode(word))
}

// Tick decrements the delay and sound timers by one, floored at zero. It is
// independent of Step and must be driven by the host at a fixed 60 Hz
// cadence regardless of instruction throughput.
func (c *CPU) Tick() {
	if c.DelayTimer > 0 {
		c.DelayTimer--
	}
	if c.SoundTimer > 0 {
		c.SoundTimer--
	}
}

// SetKey marks keypad key i (0-15) as pressed or released.
func (c *CPU) SetKey(i int, pressed bool) error {
	if i < 0 || i >= NumKeys {
		return &InvalidRegisterIndexError{Index: i}
	}
	c.Keys[i] = pressed
	return nil
}

// KeyPressed reports whether keypad key i (0-15) is currently pressed.
func (c *CPU) KeyPressed(i int) (bool, error) {
	if i < 0 || i >= NumKeys {
		return false, &InvalidRegisterIndexError{Index: i}
	}
	return c.Keys[i], nil
}

// ToneActive reports whether the host should be playing the beeper tone.
func (c *CPU) ToneActive() bool {
	return c.SoundTimer > 0
}
