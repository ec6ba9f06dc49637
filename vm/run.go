package vm

import (
	"context"

	"github.com/ktfth/brainfuck-go/bytecode"
)

// Run executes the given code on a new Machine.
func Run(ctx context.Context, code *bytecode.Code, options ...Option) error {
	return New(code, options...).Run(ctx)
}
