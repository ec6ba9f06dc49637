// Package parser converts raw source text into the filtered instruction
// sequence for a program.
//
// Brainfuck treats every character outside its eight-symbol instruction set
// as a comment, so parsing cannot fail: any input text yields a valid
// (possibly empty) Program. Bracket balance is checked later, by the
// compiler.
package parser

import (
	"github.com/ktfth/brainfuck-go/op"
	"github.com/ktfth/brainfuck-go/token"
)

// Program is an immutable ordered sequence of instruction tokens scanned
// from one source text. Created once at program start and never mutated.
type Program struct {
	tokens   []token.Token
	source   string
	filename string
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.tokens)
}

// Token returns the instruction token at the given index.
func (p *Program) Token(i int) token.Token {
	return p.tokens[i]
}

// Tokens returns a copy of the program's instruction tokens.
func (p *Program) Tokens() []token.Token {
	out := make([]token.Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// Source returns the raw source text the program was scanned from.
func (p *Program) Source() string {
	return p.source
}

// Filename returns the name of the file the source came from, if any.
func (p *Program) Filename() string {
	return p.filename
}

// Option is a configuration function for a parse.
type Option func(*config)

type config struct {
	filename string
}

// WithFilename sets the file name associated with the source code. This is
// used for error messages.
func WithFilename(filename string) Option {
	return func(c *config) {
		c.filename = filename
	}
}

// Parse scans the given source text and returns the program's instruction
// sequence. Characters outside the instruction set are skipped, while line
// and column positions are tracked across them so that diagnostics point
// into the original text.
func Parse(input string, options ...Option) *Program {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}
	var tokens []token.Token
	line, column := 0, 0
	for i := 0; i < len(input); i++ {
		ch := input[i]
		if code, ok := op.FromSymbol(ch); ok {
			tokens = append(tokens, token.Token{
				Op:       code,
				Symbol:   ch,
				Position: token.Position{Char: i, Line: line, Column: column},
			})
		}
		if ch == '\n' {
			line++
			column = 0
		} else {
			column++
		}
	}
	return &Program{tokens: tokens, source: input, filename: cfg.filename}
}
