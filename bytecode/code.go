// Package bytecode defines the compiled representation of a program.
package bytecode

import (
	"strings"

	"github.com/ktfth/brainfuck-go/op"
	"github.com/ktfth/brainfuck-go/token"
)

// Code is a compiled program: the instruction sequence plus the resolved
// jump table for its brackets. It is immutable after creation and safe for
// concurrent use, so one Code may back any number of Machine runs.
type Code struct {
	instructions []op.Code
	jumps        []int
	positions    []token.Position
	source       string
	filename     string
}

// CodeParams contains parameters for creating a new Code.
type CodeParams struct {
	Instructions []op.Code
	// Jumps holds, for each bracket instruction, the index of its matching
	// partner. Entries for non-bracket instructions are -1.
	Jumps     []int
	Positions []token.Position
	Source    string
	Filename  string
}

// NewCode creates a new immutable Code from the given parameters. Input
// slices are copied so later mutation by the caller cannot be observed.
func NewCode(params CodeParams) *Code {
	instructions := make([]op.Code, len(params.Instructions))
	copy(instructions, params.Instructions)
	jumps := make([]int, len(params.Jumps))
	copy(jumps, params.Jumps)
	positions := make([]token.Position, len(params.Positions))
	copy(positions, params.Positions)
	return &Code{
		instructions: instructions,
		jumps:        jumps,
		positions:    positions,
		source:       params.Source,
		filename:     params.Filename,
	}
}

// InstructionCount returns the number of instructions.
func (c *Code) InstructionCount() int {
	return len(c.instructions)
}

// Instruction returns the opcode at the given index.
func (c *Code) Instruction(i int) op.Code {
	return c.instructions[i]
}

// JumpTarget returns the index of the matching partner for the bracket
// instruction at the given index, or -1 for non-bracket instructions.
func (c *Code) JumpTarget(i int) int {
	return c.jumps[i]
}

// Position returns the source position of the instruction at the given index.
func (c *Code) Position(i int) token.Position {
	return c.positions[i]
}

// Source returns the raw source text the code was compiled from.
func (c *Code) Source() string {
	return c.source
}

// Filename returns the name of the file the source came from, if any.
func (c *Code) Filename() string {
	return c.filename
}

// SourceLine returns the text of the given 0-indexed source line, for use
// in error snippets. Returns "" when the line does not exist.
func (c *Code) SourceLine(line int) string {
	lines := strings.Split(c.source, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return lines[line]
}
