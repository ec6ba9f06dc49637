// Package op defines opcodes used by the compiler and virtual machine.
package op

// Code is an integer opcode that indicates an operation to execute.
// Exactly eight valid opcodes exist, one per Brainfuck instruction.
type Code uint8

const (
	Invalid Code = iota

	// Pointer movement
	Right // >
	Left  // <

	// Cell arithmetic
	Increment // +
	Decrement // -

	// I/O
	Output // .
	Input  // ,

	// Jump
	JumpIfZero    // [ jump forward past the matching ] when the cell is zero
	JumpIfNotZero // ] jump back to the matching [ when the cell is nonzero
)

// Info contains the name and source symbol for one opcode.
type Info struct {
	Code   Code
	Name   string
	Symbol byte
}

var infos = [...]Info{
	Right:         {Right, "RIGHT", '>'},
	Left:          {Left, "LEFT", '<'},
	Increment:     {Increment, "INCREMENT", '+'},
	Decrement:     {Decrement, "DECREMENT", '-'},
	Output:        {Output, "OUTPUT", '.'},
	Input:         {Input, "INPUT", ','},
	JumpIfZero:    {JumpIfZero, "JUMP_IF_ZERO", '['},
	JumpIfNotZero: {JumpIfNotZero, "JUMP_IF_NOT_ZERO", ']'},
}

// GetInfo returns information about the given opcode.
func GetInfo(c Code) (Info, bool) {
	if c == Invalid || int(c) >= len(infos) {
		return Info{}, false
	}
	return infos[c], true
}

// String returns the opcode name, e.g. "INCREMENT" for Increment.
func (c Code) String() string {
	info, ok := GetInfo(c)
	if !ok {
		return "INVALID"
	}
	return info.Name
}

// Symbol returns the source character for the opcode, e.g. '+' for Increment.
func (c Code) Symbol() byte {
	info, ok := GetInfo(c)
	if !ok {
		return 0
	}
	return info.Symbol
}

// IsJump indicates whether the opcode is one of the two bracket instructions.
func (c Code) IsJump() bool {
	return c == JumpIfZero || c == JumpIfNotZero
}

// FromSymbol returns the opcode for an instruction character. The boolean
// is false for any character outside the eight-symbol instruction set;
// such characters are comments and never reach the compiled program.
func FromSymbol(ch byte) (Code, bool) {
	switch ch {
	case '>':
		return Right, true
	case '<':
		return Left, true
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case '.':
		return Output, true
	case ',':
		return Input, true
	case '[':
		return JumpIfZero, true
	case ']':
		return JumpIfNotZero, true
	default:
		return Invalid, false
	}
}
