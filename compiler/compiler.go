// Package compiler builds executable bytecode from a parsed program.
//
// Compilation is a single pass that resolves every bracket pair into a
// bidirectional jump table, so the virtual machine never scans for a
// matching bracket at run time.
package compiler

import (
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/ktfth/brainfuck-go/bytecode"
	"github.com/ktfth/brainfuck-go/errz"
	"github.com/ktfth/brainfuck-go/op"
	"github.com/ktfth/brainfuck-go/parser"
	"github.com/ktfth/brainfuck-go/token"
)

// Compile transforms a parsed program into bytecode. It walks the
// instruction sequence maintaining a stack of open-bracket indices: each
// `[` pushes its index and each `]` pops one and records the pair in both
// directions of the jump table.
//
// A `]` with no open bracket, or a `[` left open at the end of the
// program, is an unbalanced-brackets syntax error. All such brackets found
// in the pass are reported together, each with its source position, and no
// bytecode is produced.
func Compile(program *parser.Program) (*bytecode.Code, error) {
	n := program.Len()
	instructions := make([]op.Code, n)
	positions := make([]token.Position, n)
	jumps := make([]int, n)

	var openBrackets []int
	var result *multierror.Error

	for i := 0; i < n; i++ {
		tok := program.Token(i)
		instructions[i] = tok.Op
		positions[i] = tok.Position
		jumps[i] = -1
		switch tok.Op {
		case op.JumpIfZero:
			openBrackets = append(openBrackets, i)
		case op.JumpIfNotZero:
			if len(openBrackets) == 0 {
				result = multierror.Append(result, unbalancedError(program, tok, "unexpected ']'"))
				continue
			}
			open := openBrackets[len(openBrackets)-1]
			openBrackets = openBrackets[:len(openBrackets)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}
	for _, open := range openBrackets {
		result = multierror.Append(result, unbalancedError(program, program.Token(open), "unclosed '['"))
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return bytecode.NewCode(bytecode.CodeParams{
		Instructions: instructions,
		Jumps:        jumps,
		Positions:    positions,
		Source:       program.Source(),
		Filename:     program.Filename(),
	}), nil
}

func unbalancedError(program *parser.Program, tok token.Token, detail string) error {
	return errz.Newf(errz.ErrSyntax, errz.SourceLocation{
		Filename: program.Filename(),
		Line:     tok.Position.LineNumber(),
		Column:   tok.Position.ColumnNumber(),
		Source:   sourceLine(program.Source(), tok.Position.Line),
	}, "unbalanced brackets: %s", detail)
}

func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return lines[line]
}
