package dis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ktfth/brainfuck-go/compiler"
	"github.com/ktfth/brainfuck-go/parser"
)

func TestDisassemble(t *testing.T) {
	code, err := compiler.Compile(parser.Parse("+[-]"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Disassemble(code, &out))
	listing := out.String()

	require.Contains(t, listing, "INCREMENT")
	require.Contains(t, listing, "JUMP_IF_ZERO")
	require.Contains(t, listing, "-> 0003")
	require.Contains(t, listing, "JUMP_IF_NOT_ZERO")
	require.Contains(t, listing, "-> 0001")
	require.Contains(t, listing, "(1:2)")
}

func TestDisassembleEmpty(t *testing.T) {
	code, err := compiler.Compile(parser.Parse(""))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, Disassemble(code, &out))
	require.Equal(t, "", out.String())
}
