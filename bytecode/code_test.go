package bytecode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ktfth/brainfuck-go/op"
	"github.com/ktfth/brainfuck-go/token"
)

func TestNewCodeCopiesInputs(t *testing.T) {
	instructions := []op.Code{op.JumpIfZero, op.JumpIfNotZero}
	jumps := []int{1, 0}
	positions := []token.Position{{Char: 0}, {Char: 1}}
	code := NewCode(CodeParams{
		Instructions: instructions,
		Jumps:        jumps,
		Positions:    positions,
		Source:       "[]",
	})

	instructions[0] = op.Increment
	jumps[0] = 99
	positions[0] = token.Position{Char: 42}

	require.Equal(t, op.JumpIfZero, code.Instruction(0))
	require.Equal(t, 1, code.JumpTarget(0))
	require.Equal(t, 0, code.Position(0).Char)
}

func TestAccessors(t *testing.T) {
	code := NewCode(CodeParams{
		Instructions: []op.Code{op.Increment},
		Jumps:        []int{-1},
		Positions:    []token.Position{{}},
		Source:       "+",
		Filename:     "add.bf",
	})
	require.Equal(t, 1, code.InstructionCount())
	require.Equal(t, "+", code.Source())
	require.Equal(t, "add.bf", code.Filename())
}

func TestSourceLine(t *testing.T) {
	code := NewCode(CodeParams{Source: "+++\n---\n"})
	require.Equal(t, "+++", code.SourceLine(0))
	require.Equal(t, "---", code.SourceLine(1))
	require.Equal(t, "", code.SourceLine(5))
	require.Equal(t, "", code.SourceLine(-1))
}
