package intcode

import (
	"fmt"
	"strings"
)

// formatOperand renders one parameter word decorated with its addressing
// mode: "[n]" for position, "#n" for immediate, "@n" for relative.
func formatOperand(mode ParamMode, word int64) string {
	switch mode {
	case ModeImmediate:
		return fmt.Sprintf("#%d", word)
	case ModeRelative:
		return fmt.Sprintf("@%d", word)
	default:
		return fmt.Sprintf("[%d]", word)
	}
}

// renderInstruction renders a decoded instruction with its operand words,
// e.g. "ADD [4] #3 [4]".
func renderInstruction(in Instruction, operands []int64) string {
	var sb strings.Builder
	sb.WriteString(in.Op.String())
	for i, mode := range in.Modes {
		sb.WriteByte(' ')
		if i < len(operands) {
			sb.WriteString(formatOperand(mode, operands[i]))
		} else {
			sb.WriteString("<missing>")
		}
	}
	return sb.String()
}

// disasmAt renders the already-decoded instruction at addr using the
// machine's live memory, for trace logging.
func (m *Machine) disasmAt(addr int64, in Instruction) string {
	count := int64(len(in.Modes))
	return renderInstruction(in, m.mem.ReadRange(addr+1, addr+1+count))
}

// DisassembleInstruction disassembles the instruction at addr in mem.
// Returns the formatted string and the instruction length in words. A word
// that does not decode is rendered as data with length 1.
func DisassembleInstruction(mem Memory, addr int64) (string, int64) {
	in, err := Decode(mem.Read(addr))
	if err != nil {
		return fmt.Sprintf(".DATA %d", mem.Read(addr)), 1
	}
	count := int64(len(in.Modes))
	return renderInstruction(in, mem.ReadRange(addr+1, addr+1+count)), 1 + count
}

// Disassemble returns a human-readable listing of a program image.
//
// Intcode freely interleaves code and data, so the listing is a linear
// best-effort decode: words that do not form a valid instruction are shown
// as data. Listings after the first data word or a taken jump may not match
// what actually executes.
func Disassemble(program []int64) string {
	mem := NewMemory()
	mem.WriteRange(0, program)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("; Intcode, %d words\n", len(program)))

	end := int64(len(program))
	for addr := int64(0); addr < end; {
		line, length := DisassembleInstruction(mem, addr)
		sb.WriteString(fmt.Sprintf("%04d  %s\n", addr, line))
		addr += length
	}

	return sb.String()
}
