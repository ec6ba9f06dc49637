package vm

import "io"

// Option is a configuration function for a Machine.
type Option func(*Machine)

// WithInput sets the byte source consumed by the `,` instruction. Each `,`
// reads exactly one byte; once the source is exhausted, `,` writes zero to
// the current cell. The default input is os.Stdin.
func WithInput(input io.Reader) Option {
	return func(m *Machine) {
		m.input = input
	}
}

// WithOutput sets the byte sink written by the `.` instruction. Each `.`
// writes exactly one byte, in instruction-execution order. The default
// output is os.Stdout.
func WithOutput(output io.Writer) Option {
	return func(m *Machine) {
		m.output = output
	}
}

// WithTapeSize sets the number of tape cells allocated up front for each
// run. The tape still grows past this on demand. The default is
// tape.DefaultSize.
func WithTapeSize(size int) Option {
	return func(m *Machine) {
		m.tapeSize = size
	}
}

// WithContextCheckInterval sets how often the machine checks ctx.Done()
// during execution, in number of instructions. A value of 0 disables the
// check entirely. The default is DefaultContextCheckInterval.
//
// Lower values provide more responsive cancellation at a small dispatch
// cost. The core enforces no step limit of its own; cancellation and step
// bounds are host concerns layered on via the context and an Observer.
func WithContextCheckInterval(interval int) Option {
	return func(m *Machine) {
		m.contextCheckInterval = interval
	}
}

// WithObserver sets an observer for machine execution events. Returning
// false from OnStep halts execution with ErrHalted.
func WithObserver(observer Observer) Option {
	return func(m *Machine) {
		m.observer = observer
	}
}
