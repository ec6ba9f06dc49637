package tape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	tp := New(1)
	require.Equal(t, byte(0), tp.Read())
	tp.Write(42)
	require.Equal(t, byte(42), tp.Read())
}

func TestIncrementWraparound(t *testing.T) {
	tp := New(1)
	for i := 0; i < 256; i++ {
		tp.Increment()
	}
	require.Equal(t, byte(0), tp.Read())
}

func TestDecrementWraparound(t *testing.T) {
	tp := New(1)
	tp.Decrement()
	require.Equal(t, byte(255), tp.Read())
}

func TestMoveRightGrows(t *testing.T) {
	tp := New(1)
	for i := 0; i < 10; i++ {
		tp.MoveRight()
		require.Equal(t, byte(0), tp.Read())
	}
	require.Equal(t, 10, tp.Pointer())
	require.GreaterOrEqual(t, tp.Len(), 11)
}

func TestMoveLeft(t *testing.T) {
	tp := New(4)
	tp.MoveRight()
	require.NoError(t, tp.MoveLeft())
	require.Equal(t, 0, tp.Pointer())
}

func TestMoveLeftAtOrigin(t *testing.T) {
	tp := New(4)
	err := tp.MoveLeft()
	require.ErrorIs(t, err, ErrOutOfBounds)
	// No wraparound and no movement.
	require.Equal(t, 0, tp.Pointer())
}

func TestNewMinimumSize(t *testing.T) {
	tp := New(0)
	require.Equal(t, 1, tp.Len())
}
