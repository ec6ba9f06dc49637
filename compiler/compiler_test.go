package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ktfth/brainfuck-go/errz"
	"github.com/ktfth/brainfuck-go/parser"
)

func TestCompileJumpTable(t *testing.T) {
	code, err := Compile(parser.Parse("+[-]"))
	require.NoError(t, err)
	require.Equal(t, 4, code.InstructionCount())
	require.Equal(t, -1, code.JumpTarget(0))
	require.Equal(t, 3, code.JumpTarget(1))
	require.Equal(t, -1, code.JumpTarget(2))
	require.Equal(t, 1, code.JumpTarget(3))
}

func TestCompileSymmetry(t *testing.T) {
	// The jump table is a symmetric bijection between matched bracket
	// positions, with the closing bracket strictly after the opening one.
	for _, source := range []string{"[]", "[[]]", "[[][]]", "+[>[-]<]", "[][][]"} {
		code, err := Compile(parser.Parse(source))
		require.NoError(t, err, source)
		for i := 0; i < code.InstructionCount(); i++ {
			target := code.JumpTarget(i)
			if !code.Instruction(i).IsJump() {
				require.Equal(t, -1, target, source)
				continue
			}
			require.NotEqual(t, -1, target, source)
			require.Equal(t, i, code.JumpTarget(target), source)
			if code.Instruction(i).Symbol() == '[' {
				require.Greater(t, target, i, source)
			}
		}
	}
}

func TestCompileUnexpectedClose(t *testing.T) {
	_, err := Compile(parser.Parse("+]"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unbalanced brackets: unexpected ']'")
	require.Contains(t, err.Error(), "(1:2)")
}

func TestCompileUnclosedOpen(t *testing.T) {
	_, err := Compile(parser.Parse("[+"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unbalanced brackets: unclosed '['")
	require.Contains(t, err.Error(), "(1:1)")
}

func TestCompileReportsAllBrackets(t *testing.T) {
	_, err := Compile(parser.Parse("]\n["))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected ']'")
	require.Contains(t, err.Error(), "unclosed '['")
	require.Contains(t, err.Error(), "(2:1)")
}

func TestCompileErrorKind(t *testing.T) {
	_, err := Compile(parser.Parse("]", parser.WithFilename("bad.bf")))
	require.Error(t, err)
	var structured *errz.StructuredError
	require.ErrorAs(t, err, &structured)
	require.Equal(t, errz.ErrSyntax, structured.Kind)
	require.Equal(t, "bad.bf", structured.Location.Filename)
}

func TestCompileEmpty(t *testing.T) {
	code, err := Compile(parser.Parse("just a comment"))
	require.NoError(t, err)
	require.Equal(t, 0, code.InstructionCount())
}
