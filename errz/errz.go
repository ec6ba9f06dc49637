// Package errz defines structured error types shared across the interpreter.
package errz

import (
	"bytes"
	"fmt"
	"strings"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrSyntax indicates the program could not be compiled, e.g. because
	// of unbalanced brackets.
	ErrSyntax ErrorKind = iota
	// ErrRuntime indicates a fatal condition during execution, e.g. moving
	// the data pointer below zero.
	ErrRuntime
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrRuntime:
		return "runtime error"
	default:
		return "error"
	}
}

// SourceLocation identifies a position in the program source text.
type SourceLocation struct {
	Filename string
	Line     int    // 1-indexed
	Column   int    // 1-indexed
	Source   string // the relevant line of source text, if available
}

// IsZero returns whether the location carries no position information.
func (l SourceLocation) IsZero() bool {
	return l.Line == 0 && l.Column == 0
}

// StructuredError is an error with a kind and a source location, used for
// actionable diagnostics on both compile and run failures.
type StructuredError struct {
	Kind     ErrorKind
	Message  string
	Location SourceLocation
	Cause    error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Location.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%d:%d)", e.Kind, e.Message, e.Location.Line, e.Location.Column)
}

// Unwrap returns the underlying cause of the error.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// FriendlyErrorMessage returns a human-friendly message with a source
// snippet and a caret pointing at the offending instruction.
func (e *StructuredError) FriendlyErrorMessage() string {
	var msg bytes.Buffer
	msg.WriteString(e.Error())
	msg.WriteString("\n")
	if e.Location.Source != "" {
		msg.WriteString(" | ")
		msg.WriteString(e.Location.Source)
		msg.WriteString("\n")
		if e.Location.Column > 0 {
			msg.WriteString(" | ")
			msg.WriteString(strings.Repeat(" ", e.Location.Column-1))
			msg.WriteString("^\n")
		}
	}
	return msg.String()
}

// New creates a new StructuredError.
func New(kind ErrorKind, message string, loc SourceLocation) *StructuredError {
	return &StructuredError{Kind: kind, Message: message, Location: loc}
}

// Newf creates a new StructuredError with a formatted message.
func Newf(kind ErrorKind, loc SourceLocation, format string, args ...any) *StructuredError {
	return &StructuredError{Kind: kind, Message: fmt.Sprintf(format, args...), Location: loc}
}
