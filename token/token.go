// Package token defines instruction tokens and source positions used when
// scanning source code.
package token

import "github.com/ktfth/brainfuck-go/op"

// Position points to a particular location in an input string.
type Position struct {
	Char   int // 0-indexed offset into the raw source
	Line   int // 0-indexed line
	Column int // 0-indexed column
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Token represents one instruction scanned from the input source code.
// Comment characters never produce tokens.
type Token struct {
	Op       op.Code
	Symbol   byte
	Position Position
}
