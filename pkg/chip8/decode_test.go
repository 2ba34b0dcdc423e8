package chip8

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		word   uint16
		family uint8
		x, y   uint8
		n, nn  uint8
		nnn    uint16
	}{
		{0x0000, 0x0, 0x0, 0x0, 0x0, 0x00, 0x000},
		{0x1234, 0x1, 0x2, 0x3, 0x4, 0x34, 0x234},
		{0x8AB4, 0x8, 0xA, 0xB, 0x4, 0xB4, 0xAB4},
		{0xDF15, 0xD, 0xF, 0x1, 0x5, 0x15, 0xF15},
		{0xFFFF, 0xF, 0xF, 0xF, 0xF, 0xFF, 0xFFF},
		{0xA9C3, 0xA, 0x9, 0xC, 0x3, 0xC3, 0x9C3},
	}

	for _, tc := range tests {
		in := decode(tc.word)
		if in.word != tc.word {
			t.Errorf("decode(0x%04X): word = 0x%04X", tc.word, in.word)
		}
		if in.family != tc.family {
			t.Errorf("decode(0x%04X): family = 0x%X, want 0x%X", tc.word, in.family, tc.family)
		}
		if in.x != tc.x || in.y != tc.y {
			t.Errorf("decode(0x%04X): x,y = %X,%X, want %X,%X", tc.word, in.x, in.y, tc.x, tc.y)
		}
		if in.n != tc.n || in.nn != tc.nn {
			t.Errorf("decode(0x%04X): n,nn = %X,%02X, want %X,%02X", tc.word, in.n, in.nn, tc.n, tc.nn)
		}
		if in.nnn != tc.nnn {
			t.Errorf("decode(0x%04X): nnn = 0x%03X, want 0x%03X", tc.word, in.nnn, tc.nnn)
		}
	}
}
