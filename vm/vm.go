// Package vm provides a Machine that executes compiled Brainfuck code.
package vm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ktfth/brainfuck-go/bytecode"
	"github.com/ktfth/brainfuck-go/errz"
	"github.com/ktfth/brainfuck-go/op"
	"github.com/ktfth/brainfuck-go/tape"
)

// DefaultContextCheckInterval is the number of instructions between
// deterministic checks of ctx.Done(). Set to 0 to disable.
const DefaultContextCheckInterval = 1000

// ErrHalted is returned by Run when an observer stops execution.
var ErrHalted = errors.New("execution halted by observer")

// Machine executes one compiled program. It exclusively owns a tape and an
// instruction pointer; execution is single-threaded and runs to completion
// or to the first fatal error, with no suspended state in between.
//
// A Machine is not safe for concurrent use, but each Run starts from a
// fresh tape and instruction pointer, so running the same Machine twice
// produces identical output.
type Machine struct {
	ip                   int
	code                 *bytecode.Code
	tape                 *tape.Tape
	input                io.Reader
	output               io.Writer
	tapeSize             int
	contextCheckInterval int
	observer             Observer
	running              bool
}

// New creates a Machine for the given compiled code.
func New(code *bytecode.Code, options ...Option) *Machine {
	m := &Machine{
		code:                 code,
		input:                os.Stdin,
		output:               os.Stdout,
		tapeSize:             tape.DefaultSize,
		contextCheckInterval: DefaultContextCheckInterval,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Run drives the fetch-execute loop until the instruction pointer passes
// the end of the program or a fatal error occurs. Bytes already written to
// the output before a fatal error remain delivered.
//
// The context is checked between instructions at the configured interval;
// cancellation ends the run with the context's error. The core enforces no
// step limit: a non-terminating program is a user error, and hosts wanting
// a bound should cancel the context or attach an Observer.
func (m *Machine) Run(ctx context.Context) error {
	if m.running {
		return fmt.Errorf("machine is already running")
	}
	m.running = true
	defer func() { m.running = false }()

	m.ip = 0
	m.tape = tape.New(m.tapeSize)

	var (
		observe        StepMode = StepNone
		sampleInterval          = 1
	)
	if m.observer != nil {
		cfg := m.observer.Config()
		observe = cfg.StepMode
		if cfg.SampleInterval > 0 {
			sampleInterval = cfg.SampleInterval
		}
	}

	count := m.code.InstructionCount()
	var steps int64
	for m.ip < count {
		if m.contextCheckInterval > 0 && steps%int64(m.contextCheckInterval) == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		instr := m.code.Instruction(m.ip)
		if observe == StepAll || (observe == StepSampled && steps%int64(sampleInterval) == 0) {
			event := StepEvent{
				IP:          m.ip,
				Opcode:      instr,
				Position:    m.code.Position(m.ip),
				DataPointer: m.tape.Pointer(),
				Cell:        m.tape.Read(),
				Step:        steps,
			}
			if !m.observer.OnStep(event) {
				return ErrHalted
			}
		}
		steps++

		switch instr {
		case op.Right:
			m.tape.MoveRight()
		case op.Left:
			if err := m.tape.MoveLeft(); err != nil {
				return m.runtimeError("cannot move data pointer left of cell zero")
			}
		case op.Increment:
			m.tape.Increment()
		case op.Decrement:
			m.tape.Decrement()
		case op.Output:
			if err := m.emit(m.tape.Read()); err != nil {
				return err
			}
		case op.Input:
			b, err := m.readByte()
			if err != nil {
				return err
			}
			m.tape.Write(b)
		case op.JumpIfZero:
			if m.tape.Read() == 0 {
				// Resume at the matching ]; its own test advances past it.
				m.ip = m.code.JumpTarget(m.ip)
				continue
			}
		case op.JumpIfNotZero:
			if m.tape.Read() != 0 {
				m.ip = m.code.JumpTarget(m.ip)
				continue
			}
		default:
			return m.runtimeError(fmt.Sprintf("invalid opcode: %d", instr))
		}
		m.ip++
	}
	return nil
}

// Tape returns the machine's tape, for inspection after a run. It is nil
// before the first Run call.
func (m *Machine) Tape() *tape.Tape {
	return m.tape
}

// IP returns the current instruction pointer. After a normal run it equals
// the program's instruction count.
func (m *Machine) IP() int {
	return m.ip
}

func (m *Machine) emit(b byte) error {
	if _, err := m.output.Write([]byte{b}); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// readByte reads one byte from the input source. An exhausted source reads
// as zero, which is this interpreter's documented EOF convention for `,`.
func (m *Machine) readByte() (byte, error) {
	if m.input == nil {
		return 0, nil
	}
	var buf [1]byte
	if _, err := io.ReadFull(m.input, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("read input: %w", err)
	}
	return buf[0], nil
}

func (m *Machine) runtimeError(message string) error {
	pos := m.code.Position(m.ip)
	return errz.New(errz.ErrRuntime, message, errz.SourceLocation{
		Filename: m.code.Filename(),
		Line:     pos.LineNumber(),
		Column:   pos.ColumnNumber(),
		Source:   m.code.SourceLine(pos.Line),
	})
}
