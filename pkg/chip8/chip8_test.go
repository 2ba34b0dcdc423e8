package chip8

import (
	"errors"
	"testing"
)

// loadWords writes big-endian instruction words into memory starting at addr.
// Used to assemble small test programs in place.
func loadWords(c *CPU, addr uint16, words ...uint16) {
	for _, w := range words {
		c.Memory[addr] = byte(w >> 8)
		c.Memory[addr+1] = byte(w)
		addr += 2
	}
}

// step runs one cycle and fails the test on an unexpected error.
func step(t *testing.T, c *CPU) {
	t.Helper()
	if err := c.Step(); err != nil {
		t.Fatalf("Step: unexpected error: %v", err)
	}
}

func TestNewCPU(t *testing.T) {
	c := NewCPU()

	if c.PC != StartAddress {
		t.Errorf("PC: expected 0x%03X, got 0x%03X", StartAddress, c.PC)
	}
	if c.SP != 0 || c.I != 0 {
		t.Errorf("SP/I: expected 0/0, got %d/%d", c.SP, c.I)
	}

	// Font block: glyph 0 starts the block, glyph F ends it.
	glyph0 := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}
	for i, want := range glyph0 {
		if got := c.Memory[FontAddress+i]; got != want {
			t.Errorf("font byte %d: expected 0x%02X, got 0x%02X", i, want, got)
		}
	}
	if got := c.Memory[FontAddress+79]; got != 0x80 {
		t.Errorf("last font byte: expected 0x80, got 0x%02X", got)
	}

	// Everything outside the font block is zero.
	if c.Memory[0x000] != 0 || c.Memory[StartAddress] != 0 || c.Memory[MemorySize-1] != 0 {
		t.Errorf("expected memory outside the font block to be zero")
	}
	for i, px := range c.Video {
		if px != 0 {
			t.Fatalf("video pixel %d: expected unlit", i)
		}
	}
}

func TestLoadProgram(t *testing.T) {
	c := NewCPU()
	if err := c.LoadProgram([]byte{0x12, 0x34, 0x56}); err != nil {
		t.Fatalf("LoadProgram: unexpected error: %v", err)
	}
	if c.Memory[StartAddress] != 0x12 || c.Memory[StartAddress+2] != 0x56 {
		t.Errorf("program bytes not copied to 0x%03X", StartAddress)
	}

	// Exactly filling memory is fine.
	c = NewCPU()
	if err := c.LoadProgram(make([]byte, MemorySize-StartAddress)); err != nil {
		t.Errorf("LoadProgram at exact capacity: unexpected error: %v", err)
	}

	// One byte over fails and writes nothing.
	c = NewCPU()
	err := c.LoadProgram(make([]byte, MemorySize-StartAddress+1))
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("LoadProgram oversized: expected *OutOfBoundsError, got %v", err)
	}
	if c.Memory[StartAddress] != 0 {
		t.Errorf("failed load must leave memory untouched")
	}
}

func TestTickFloorsAtZero(t *testing.T) {
	c := NewCPU()
	c.DelayTimer = 2
	c.SoundTimer = 1

	c.Tick()
	if c.DelayTimer != 1 || c.SoundTimer != 0 {
		t.Errorf("after 1 tick: expected 1/0, got %d/%d", c.DelayTimer, c.SoundTimer)
	}

	// Repeated ticks past zero never wrap negative.
	for i := 0; i < 5; i++ {
		c.Tick()
	}
	if c.DelayTimer != 0 || c.SoundTimer != 0 {
		t.Errorf("after repeated ticks: expected 0/0, got %d/%d", c.DelayTimer, c.SoundTimer)
	}
	if c.PC != StartAddress {
		t.Errorf("Tick must not move PC")
	}
}

func TestKeyAccess(t *testing.T) {
	c := NewCPU()

	if err := c.SetKey(0xA, true); err != nil {
		t.Fatalf("SetKey: unexpected error: %v", err)
	}
	pressed, err := c.KeyPressed(0xA)
	if err != nil || !pressed {
		t.Errorf("KeyPressed(0xA): expected true, got %v, %v", pressed, err)
	}

	var idx *InvalidRegisterIndexError
	if err := c.SetKey(16, true); !errors.As(err, &idx) {
		t.Errorf("SetKey(16): expected *InvalidRegisterIndexError, got %v", err)
	}
	if err := c.SetKey(-1, true); !errors.As(err, &idx) {
		t.Errorf("SetKey(-1): expected *InvalidRegisterIndexError, got %v", err)
	}
	if _, err := c.KeyPressed(16); !errors.As(err, &idx) {
		t.Errorf("KeyPressed(16): expected *InvalidRegisterIndexError, got %v", err)
	}
}

func TestToneActive(t *testing.T) {
	c := NewCPU()
	if c.ToneActive() {
		t.Errorf("tone must be silent with sound timer at zero")
	}
	c.SoundTimer = 3
	if !c.ToneActive() {
		t.Errorf("tone must be active with sound timer above zero")
	}
	c.Tick()
	c.Tick()
	c.Tick()
	if c.ToneActive() {
		t.Errorf("tone must fall silent when the sound timer reaches zero")
	}
}

func TestFetchWrapsProgramCounter(t *testing.T) {
	// Fetching at the very top of memory must not panic; the program
	// counter wraps within the 12-bit address space.
	c := NewCPU()
	c.PC = 0x0FFE
	if err := c.Step(); err != nil {
		var unk *UnknownOpcodeError
		if !errors.As(err, &unk) {
			t.Fatalf("expected *UnknownOpcodeError from zeroed memory, got %v", err)
		}
	}
	if err := c.Step(); err != nil {
		var unk *UnknownOpcodeError
		if !errors.As(err, &unk) {
			t.Fatalf("wrapped fetch: expected *UnknownOpcodeError, got %v", err)
		}
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	a := NewCPU()
	b := NewCPU()

	loadWords(a, StartAddress, 0x6142) // V1 = 0x42
	step(t, a)

	if b.V[1] != 0 || b.Memory[StartAddress] != 0 || b.PC != StartAddress {
		t.Errorf("stepping one machine must not affect another")
	}
}
