package errz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := New(ErrSyntax, "unbalanced brackets: unexpected ']'", SourceLocation{Line: 2, Column: 5})
	require.Equal(t, "syntax error: unbalanced brackets: unexpected ']' (2:5)", err.Error())
}

func TestErrorNoLocation(t *testing.T) {
	err := New(ErrRuntime, "boom", SourceLocation{})
	require.Equal(t, "runtime error: boom", err.Error())
}

func TestFriendlyErrorMessage(t *testing.T) {
	err := New(ErrRuntime, "cannot move data pointer left of cell zero", SourceLocation{
		Line:   1,
		Column: 3,
		Source: "++<",
	})
	msg := err.FriendlyErrorMessage()
	require.Contains(t, msg, "runtime error: cannot move data pointer left of cell zero (1:3)")
	require.Contains(t, msg, " | ++<")
	require.Contains(t, msg, " |   ^")
}

func TestNewf(t *testing.T) {
	err := Newf(ErrSyntax, SourceLocation{}, "unexpected %q", ']')
	require.Contains(t, err.Error(), "unexpected ']'")
	require.Equal(t, ErrSyntax, err.Kind)
}
