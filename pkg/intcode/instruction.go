package intcode

import (
	"fmt"
	"strings"
)

// ParamMode selects how a parameter word is interpreted.
type ParamMode int

const (
	// ModePosition treats the parameter as an absolute memory address.
	ModePosition ParamMode = 0

	// ModeImmediate treats the parameter as a literal value. It is never
	// encoded on write-destination parameters.
	ModeImmediate ParamMode = 1

	// ModeRelative treats the parameter as an offset from the machine's
	// relative base register.
	ModeRelative ParamMode = 2
)

// String returns a human-readable name for ParamMode.
func (m ParamMode) String() string {
	switch m {
	case ModePosition:
		return "pos"
	case ModeImmediate:
		return "imm"
	case ModeRelative:
		return "rel"
	default:
		return fmt.Sprintf("ParamMode(%d)", int(m))
	}
}

// Instruction is one decoded instruction word: an opcode plus one addressing
// mode per parameter the opcode consumes. Instructions are transient; the
// machine decodes a fresh one every fetch cycle and never stores them.
type Instruction struct {
	Op    OpCode
	Modes []ParamMode
}

// String renders the instruction as mnemonic plus mode names, e.g.
// "ADD pos imm pos".
func (in Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(in.Op.String())
	for _, m := range in.Modes {
		sb.WriteByte(' ')
		sb.WriteString(m.String())
	}
	return sb.String()
}

// InvalidInstructionError reports an instruction word that does not decode:
// either its opcode digits or one of its mode digits is out of range.
type InvalidInstructionError struct {
	Raw    int64  // The offending instruction word
	Detail string // What was wrong with it
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction %d: %s", e.Raw, e.Detail)
}

// Decode turns one raw instruction word into an Instruction.
//
// The low two decimal digits select the opcode; digit i+2 (0-based from the
// least significant end) selects the addressing mode of parameter i. Decode
// is a pure function: it never touches machine state, and decoding the same
// word twice yields structurally identical instructions.
func Decode(raw int64) (Instruction, error) {
	op := OpCode(raw % 100)
	if !op.IsValid() {
		return Instruction{}, &InvalidInstructionError{
			Raw:    raw,
			Detail: fmt.Sprintf("unknown opcode %d", raw%100),
		}
	}
	// HALT takes no parameters, so no mode digits are legal above it: only
	// the word 99 itself decodes to HALT.
	if op == OpHalt && raw != 99 {
		return Instruction{}, &InvalidInstructionError{
			Raw:    raw,
			Detail: "mode digits on HALT",
		}
	}

	count := op.ParamCount()
	modes := make([]ParamMode, 0, count)
	digits := raw / 100
	for i := 0; i < count; i++ {
		mode := ParamMode(digits % 10)
		digits /= 10
		switch mode {
		case ModePosition, ModeImmediate, ModeRelative:
			modes = append(modes, mode)
		default:
			return Instruction{}, &InvalidInstructionError{
				Raw:    raw,
				Detail: fmt.Sprintf("parameter %d has mode digit %d", i, int(mode)),
			}
		}
	}

	return Instruction{Op: op, Modes: modes}, nil
}
