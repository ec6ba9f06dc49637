package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ktfth/brainfuck-go/op"
)

func TestParse(t *testing.T) {
	program := Parse("+-><.,[]")
	require.Equal(t, 8, program.Len())
	expected := []op.Code{
		op.Increment, op.Decrement, op.Right, op.Left,
		op.Output, op.Input, op.JumpIfZero, op.JumpIfNotZero,
	}
	for i, code := range expected {
		require.Equal(t, code, program.Token(i).Op)
	}
}

func TestParseSkipsComments(t *testing.T) {
	// Everything outside the eight-symbol set is a comment. The comma in
	// "byte," is itself an instruction; only the letters and spaces drop.
	program := Parse("read a byte, add one: ,+. done!")
	require.Equal(t, 4, program.Len())
	require.Equal(t, op.Input, program.Token(0).Op)
	require.Equal(t, op.Input, program.Token(1).Op)
	require.Equal(t, op.Increment, program.Token(2).Op)
	require.Equal(t, op.Output, program.Token(3).Op)
}

func TestParsePositions(t *testing.T) {
	program := Parse("+x\n >")
	require.Equal(t, 2, program.Len())

	plus := program.Token(0)
	require.Equal(t, 0, plus.Position.Char)
	require.Equal(t, 1, plus.Position.LineNumber())
	require.Equal(t, 1, plus.Position.ColumnNumber())

	right := program.Token(1)
	require.Equal(t, 4, right.Position.Char)
	require.Equal(t, 2, right.Position.LineNumber())
	require.Equal(t, 2, right.Position.ColumnNumber())
}

func TestParseEmpty(t *testing.T) {
	require.Equal(t, 0, Parse("").Len())
	require.Equal(t, 0, Parse("no instructions here").Len())
}

func TestParseFilename(t *testing.T) {
	program := Parse("+", WithFilename("hello.bf"))
	require.Equal(t, "hello.bf", program.Filename())
	require.Equal(t, "+", program.Source())
}

func TestTokensCopy(t *testing.T) {
	program := Parse("++")
	tokens := program.Tokens()
	tokens[0].Op = op.Output
	require.Equal(t, op.Increment, program.Token(0).Op)
}
