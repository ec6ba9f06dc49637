// Package tape implements the linear byte memory a program operates on.
package tape

import "errors"

// ErrOutOfBounds is returned when the data pointer would move below index
// zero. The tape grows without bound to the right but has a hard left edge.
var ErrOutOfBounds = errors.New("data pointer out of bounds")

// DefaultSize is the number of cells allocated up front when no size is
// given. The classic layout from the original interpreter; the tape still
// grows past it on demand.
const DefaultSize = 30000

// Tape is a growable sequence of unsigned 8-bit cells plus a data pointer
// selecting the current cell. All cells start at zero. A Tape is owned by
// exactly one Machine for the lifetime of one run; it is not safe for
// concurrent use.
type Tape struct {
	cells []byte
	ptr   int
}

// New creates a Tape with the given number of zero cells allocated.
// Sizes below one are treated as one.
func New(size int) *Tape {
	if size < 1 {
		size = 1
	}
	return &Tape{cells: make([]byte, size)}
}

// MoveRight advances the data pointer by one cell, appending a zero cell
// when the pointer moves past the allocated end.
func (t *Tape) MoveRight() {
	t.ptr++
	if t.ptr == len(t.cells) {
		t.cells = append(t.cells, 0)
	}
}

// MoveLeft decrements the data pointer by one cell. Moving left at index
// zero returns ErrOutOfBounds; there is no wraparound and no clamping.
func (t *Tape) MoveLeft() error {
	if t.ptr == 0 {
		return ErrOutOfBounds
	}
	t.ptr--
	return nil
}

// Increment adds one to the current cell, wrapping 255 to 0.
func (t *Tape) Increment() {
	t.cells[t.ptr]++
}

// Decrement subtracts one from the current cell, wrapping 0 to 255.
func (t *Tape) Decrement() {
	t.cells[t.ptr]--
}

// Read returns the value of the current cell.
func (t *Tape) Read() byte {
	return t.cells[t.ptr]
}

// Write sets the value of the current cell.
func (t *Tape) Write(v byte) {
	t.cells[t.ptr] = v
}

// Pointer returns the current data pointer index.
func (t *Tape) Pointer() int {
	return t.ptr
}

// Len returns the number of allocated cells.
func (t *Tape) Len() int {
	return len(t.cells)
}
