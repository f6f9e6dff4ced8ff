package intcode

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"
)

// ErrInputExhausted is returned when an IN instruction executes with an
// empty input queue. It means the caller supplied too few inputs for the
// program's behavior.
var ErrInputExhausted = errors.New("input exhausted")

// InvalidAddressError reports a parameter that resolved to a negative
// address. It signals a malformed program or runaway relative-base
// arithmetic.
type InvalidAddressError struct {
	Addr int64
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address %d", e.Addr)
}

// Machine executes one Intcode program. It owns the memory, the instruction
// pointer, the relative base register, a FIFO input queue and an append-only
// output log. A Machine is single-use: construct a fresh one for every run.
type Machine struct {
	mem     Memory
	ip      int64
	relBase int64 // signed; validated only when an address is resolved
	input   []int64
	output  []int64

	// Trace enables per-step debug logging of the decoded instruction,
	// instruction pointer and relative base.
	Trace bool

	log commonlog.Logger
}

// New creates a Machine with the program loaded at addresses 0..len-1 and
// the given input queue. Both slices are copied; the caller keeps ownership.
func New(program, input []int64) *Machine {
	mem := NewMemory()
	mem.WriteRange(0, program)

	return &Machine{
		mem:    mem,
		input:  append([]int64(nil), input...),
		output: make([]int64, 0, 8),
		log:    commonlog.GetLogger("intcode.machine"),
	}
}

// PushInput appends values to the back of the input queue. Inputs may be
// supplied incrementally between steps; IN only faults if the queue is
// empty at the moment it executes.
func (m *Machine) PushInput(values ...int64) {
	m.input = append(m.input, values...)
}

// Output returns the values emitted so far, in emission order.
func (m *Machine) Output() []int64 {
	return m.output
}

// ReadRange returns the memory words in the half-open range [start, end),
// reading zero for addresses never written. Intended for inspection and
// tests.
func (m *Machine) ReadRange(start, end int64) []int64 {
	return m.mem.ReadRange(start, end)
}

// Run executes the fetch-decode-execute loop until a HALT instruction or a
// fault. Faults (invalid instruction, invalid address, input exhausted) are
// fatal: the run aborts immediately and cannot be resumed.
func (m *Machine) Run() error {
	for {
		halted, err := m.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// Step fetches, decodes and executes a single instruction. It returns true
// when the instruction was HALT.
func (m *Machine) Step() (bool, error) {
	in, err := Decode(m.mem.Read(m.ip))
	if err != nil {
		return false, err
	}

	if m.Trace {
		m.log.Debugf("[ip=%d rb=%d] %s", m.ip, m.relBase, m.disasmAt(m.ip, in))
	}

	if in.Op == OpHalt {
		return true, nil
	}
	m.ip++

	switch in.Op {
	case OpAdd:
		a, b, dst, err := m.binaryOperands(in)
		if err != nil {
			return false, err
		}
		m.mem.Write(dst, a+b)

	case OpMul:
		a, b, dst, err := m.binaryOperands(in)
		if err != nil {
			return false, err
		}
		m.mem.Write(dst, a*b)

	case OpInput:
		dst, err := m.readAddr(in.Modes[0])
		if err != nil {
			return false, err
		}
		if len(m.input) == 0 {
			return false, ErrInputExhausted
		}
		value := m.input[0]
		m.input = m.input[1:]
		m.mem.Write(dst, value)

	case OpOutput:
		value, err := m.readValue(in.Modes[0])
		if err != nil {
			return false, err
		}
		m.output = append(m.output, value)

	case OpJumpIfTrue:
		if err := m.jump(in, func(test int64) bool { return test != 0 }); err != nil {
			return false, err
		}

	case OpJumpIfFalse:
		if err := m.jump(in, func(test int64) bool { return test == 0 }); err != nil {
			return false, err
		}

	case OpLessThan:
		a, b, dst, err := m.binaryOperands(in)
		if err != nil {
			return false, err
		}
		m.mem.Write(dst, boolWord(a < b))

	case OpEquals:
		a, b, dst, err := m.binaryOperands(in)
		if err != nil {
			return false, err
		}
		m.mem.Write(dst, boolWord(a == b))

	case OpAdjustRelativeBase:
		offset, err := m.readValue(in.Modes[0])
		if err != nil {
			return false, err
		}
		m.relBase += offset
	}

	return false, nil
}

// readAddr consumes the parameter word at the instruction pointer and
// resolves it to a memory address. Position mode uses the word directly;
// Relative mode offsets it by the relative base. Immediate mode is never
// encoded on write parameters, so it falls through to Position handling.
// A negative result is a fault.
func (m *Machine) readAddr(mode ParamMode) (int64, error) {
	word := m.mem.Read(m.ip)
	m.ip++

	addr := word
	if mode == ModeRelative {
		addr = m.relBase + word
	}
	if addr < 0 {
		return 0, &InvalidAddressError{Addr: addr}
	}
	return addr, nil
}

// readValue consumes the parameter word at the instruction pointer and
// resolves it to a value: the word itself in Immediate mode, otherwise the
// memory content at the resolved address.
func (m *Machine) readValue(mode ParamMode) (int64, error) {
	if mode == ModeImmediate {
		value := m.mem.Read(m.ip)
		m.ip++
		return value, nil
	}
	addr, err := m.readAddr(mode)
	if err != nil {
		return 0, err
	}
	return m.mem.Read(addr), nil
}

// binaryOperands resolves the two source values and the write destination
// shared by ADD, MUL, SLT and SEQ. Resolution is strictly left to right:
// each parameter advances the instruction pointer by one word.
func (m *Machine) binaryOperands(in Instruction) (a, b, dst int64, err error) {
	if a, err = m.readValue(in.Modes[0]); err != nil {
		return
	}
	if b, err = m.readValue(in.Modes[1]); err != nil {
		return
	}
	dst, err = m.readAddr(in.Modes[2])
	return
}

// jump resolves a test value and a target, both as ordinary value
// parameters, and redirects the instruction pointer when cond holds. A
// negative target is an invalid address: jumping there would fetch from
// nonexistent memory.
func (m *Machine) jump(in Instruction, cond func(int64) bool) error {
	test, err := m.readValue(in.Modes[0])
	if err != nil {
		return err
	}
	target, err := m.readValue(in.Modes[1])
	if err != nil {
		return err
	}
	if cond(test) {
		if target < 0 {
			return &InvalidAddressError{Addr: target}
		}
		m.ip = target
	}
	return nil
}

func boolWord(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
