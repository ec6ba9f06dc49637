// Package dis supports disassembling compiled code into a readable listing.
package dis

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ktfth/brainfuck-go/bytecode"
)

// Disassemble writes a listing of the given code to w. Each line shows the
// instruction offset, source symbol, opcode name and source position, plus
// the jump target for bracket instructions.
func Disassemble(code *bytecode.Code, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i := 0; i < code.InstructionCount(); i++ {
		instr := code.Instruction(i)
		pos := code.Position(i)
		target := ""
		if instr.IsJump() {
			target = fmt.Sprintf("-> %04d", code.JumpTarget(i))
		}
		fmt.Fprintf(tw, "%04d\t%c\t%s\t%s\t(%d:%d)\n",
			i, instr.Symbol(), instr, target, pos.LineNumber(), pos.ColumnNumber())
	}
	return tw.Flush()
}
