// Package brainfuck provides a high-level API for compiling and running
// Brainfuck programs.
//
// The pipeline is parse (strip comments, record positions), compile
// (resolve the bracket jump table) and run (fetch-execute loop against a
// byte tape and the I/O boundary):
//
//	err := brainfuck.Eval(ctx, source,
//	    brainfuck.WithInput(os.Stdin),
//	    brainfuck.WithOutput(os.Stdout))
package brainfuck

import (
	"context"
	"io"

	"github.com/ktfth/brainfuck-go/bytecode"
	"github.com/ktfth/brainfuck-go/compiler"
	"github.com/ktfth/brainfuck-go/parser"
	"github.com/ktfth/brainfuck-go/vm"
)

// Option configures a compilation or execution.
type Option func(*options)

type options struct {
	filename             string
	input                io.Reader
	output               io.Writer
	tapeSize             int
	contextCheckInterval int
	observer             vm.Observer
}

func collectOptions(opts ...Option) *options {
	o := &options{contextCheckInterval: -1}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts() []parser.Option {
	var opts []parser.Option
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	return opts
}

func (o *options) vmOpts() []vm.Option {
	var opts []vm.Option
	if o.input != nil {
		opts = append(opts, vm.WithInput(o.input))
	}
	if o.output != nil {
		opts = append(opts, vm.WithOutput(o.output))
	}
	if o.tapeSize > 0 {
		opts = append(opts, vm.WithTapeSize(o.tapeSize))
	}
	if o.contextCheckInterval >= 0 {
		opts = append(opts, vm.WithContextCheckInterval(o.contextCheckInterval))
	}
	if o.observer != nil {
		opts = append(opts, vm.WithObserver(o.observer))
	}
	return opts
}

// WithFilename sets the filename for the source code being evaluated.
// This is used for error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithInput sets the byte source read by the `,` instruction.
func WithInput(input io.Reader) Option {
	return func(o *options) {
		o.input = input
	}
}

// WithOutput sets the byte sink written by the `.` instruction.
func WithOutput(output io.Writer) Option {
	return func(o *options) {
		o.output = output
	}
}

// WithTapeSize sets the number of tape cells allocated up front.
func WithTapeSize(size int) Option {
	return func(o *options) {
		o.tapeSize = size
	}
}

// WithContextCheckInterval sets how often ctx.Done() is checked during
// execution, in instructions. Zero disables the check.
func WithContextCheckInterval(interval int) Option {
	return func(o *options) {
		o.contextCheckInterval = interval
	}
}

// WithObserver sets an observer for execution events, e.g. to trace or
// bound a run.
func WithObserver(observer vm.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// Compile parses and compiles the given source code, returning reusable
// bytecode. Compilation fails only on unbalanced brackets.
func Compile(source string, opts ...Option) (*bytecode.Code, error) {
	o := collectOptions(opts...)
	return compiler.Compile(parser.Parse(source, o.parserOpts()...))
}

// Eval compiles and runs the given source code.
func Eval(ctx context.Context, source string, opts ...Option) error {
	o := collectOptions(opts...)
	code, err := compiler.Compile(parser.Parse(source, o.parserOpts()...))
	if err != nil {
		return err
	}
	return vm.Run(ctx, code, o.vmOpts()...)
}
