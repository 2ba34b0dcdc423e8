package chip8

import "fmt"

// OutOfBoundsError reports a memory access, explicit or via index-register
// arithmetic, that would fall outside 0x000-0xFFF. At load time it is fatal
// to the load; at run time the program counter has already moved past the
// faulting instruction.
type OutOfBoundsError struct {
	Addr int // base address of the access
	Len  int // number of bytes the access covers
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("memory access out of bounds: 0x%03X+%d exceeds 0x%03X", e.Addr, e.Len, MemorySize-1)
}

// InvalidRegisterIndexError reports a register or keypad index outside 0-15.
type InvalidRegisterIndexError struct {
	Index int
}

func (e *InvalidRegisterIndexError) Error() string {
	return fmt.Sprintf("register or key index out of range: %d", e.Index)
}

// UnknownOpcodeError reports an instruction word that matches no handler.
// PC is the address of the instruction after the unknown word, since the
// fetch advance has already happened.
type UnknownOpcodeError struct {
	Opcode uint16
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%04X at 0x%03X", e.Opcode, e.PC-2)
}

// CallStackError reports a call past the 16-frame stack limit or a return
// with no active call. The offending call or return is skipped.
type CallStackError struct {
	Op string // "call" or "ret"
	SP uint8
}

func (e *CallStackError) Error() string {
	return fmt.Sprintf("call stack fault: %s with SP=%d", e.Op, e.SP)
}
