package vm

import (
	"github.com/ktfth/brainfuck-go/op"
	"github.com/ktfth/brainfuck-go/token"
)

// StepMode controls when OnStep callbacks are triggered.
type StepMode uint8

const (
	// StepAll calls OnStep for every instruction.
	// Use for: detailed tracing, step limits.
	StepAll StepMode = iota

	// StepNone never calls OnStep.
	StepNone

	// StepSampled calls OnStep every N instructions.
	// Use for: statistical profiling of long-running programs.
	StepSampled
)

// ObserverConfig specifies what events an observer wants to receive.
type ObserverConfig struct {
	// StepMode controls OnStep callback frequency.
	StepMode StepMode

	// SampleInterval is the number of instructions between OnStep calls
	// when StepMode is StepSampled. Values <= 0 are treated as 1.
	// Ignored for other modes.
	SampleInterval int
}

// Observer is an interface for observing machine execution events.
// Implementations can be used for tracing, profiling, or bounding a run
// without modifying the core.
//
// OnStep is called synchronously during execution, so implementations
// should be fast. Returning false halts execution immediately and the run
// ends with ErrHalted.
type Observer interface {
	// Config returns the observer's configuration. Called once when the
	// observer is attached to a Machine.
	Config() ObserverConfig

	// OnStep is called before an instruction executes, based on the
	// StepMode in the observer's config. Returns false to halt execution.
	OnStep(event StepEvent) bool
}

// StepEvent contains information about a single instruction step.
type StepEvent struct {
	// IP is the instruction pointer (index into the instruction sequence).
	IP int

	// Opcode is the operation about to execute.
	Opcode op.Code

	// Position is the source position of the instruction.
	Position token.Position

	// DataPointer is the current data pointer index into the tape.
	DataPointer int

	// Cell is the value of the current tape cell.
	Cell byte

	// Step is the number of instructions executed so far in this run.
	Step int64
}

// NoOpObserver is an Observer implementation that does nothing. Embed it
// to provide defaults for methods you do not need.
type NoOpObserver struct{}

// Config returns a configuration with StepAll mode.
func (NoOpObserver) Config() ObserverConfig {
	return ObserverConfig{StepMode: StepAll}
}

// OnStep does nothing and continues execution.
func (NoOpObserver) OnStep(StepEvent) bool { return true }

var _ Observer = NoOpObserver{}
