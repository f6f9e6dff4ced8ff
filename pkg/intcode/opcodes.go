package intcode

import "fmt"

// OpCode identifies an Intcode operation. The opcode is the low two decimal
// digits of an instruction word.
type OpCode int

const (
	OpAdd                OpCode = 1  // dst = a + b
	OpMul                OpCode = 2  // dst = a * b
	OpInput              OpCode = 3  // dst = next input value
	OpOutput             OpCode = 4  // emit a
	OpJumpIfTrue         OpCode = 5  // if a != 0, ip = b
	OpJumpIfFalse        OpCode = 6  // if a == 0, ip = b
	OpLessThan           OpCode = 7  // dst = 1 if a < b else 0
	OpEquals             OpCode = 8  // dst = 1 if a == b else 0
	OpAdjustRelativeBase OpCode = 9  // relative base += a
	OpHalt               OpCode = 99 // stop execution
)

// OpcodeInfo provides metadata about each opcode for decoding, tracing
// and validation.
type OpcodeInfo struct {
	Name       string // Assembler-style mnemonic
	ParamCount int    // Number of parameter words following the opcode
	WritesAddr bool   // Whether the final parameter is a write destination
}

// opcodeInfoTable maps opcodes to their metadata.
var opcodeInfoTable = map[OpCode]OpcodeInfo{
	OpAdd:                {"ADD", 3, true},
	OpMul:                {"MUL", 3, true},
	OpInput:              {"IN", 1, true},
	OpOutput:             {"OUT", 1, false},
	OpJumpIfTrue:         {"JNZ", 2, false},
	OpJumpIfFalse:        {"JZ", 2, false},
	OpLessThan:           {"SLT", 3, true},
	OpEquals:             {"SEQ", 3, true},
	OpAdjustRelativeBase: {"INCB", 1, false},
	OpHalt:               {"HALT", 0, false},
}

// GetOpcodeInfo returns metadata for an opcode.
// Returns a zero OpcodeInfo with name "UNKNOWN" if the opcode is not recognized.
func GetOpcodeInfo(op OpCode) OpcodeInfo {
	if info, ok := opcodeInfoTable[op]; ok {
		return info
	}
	return OpcodeInfo{Name: fmt.Sprintf("UNKNOWN(%d)", int(op))}
}

// String returns the mnemonic of an opcode.
func (op OpCode) String() string {
	return GetOpcodeInfo(op).Name
}

// ParamCount returns the number of parameter words this opcode consumes.
func (op OpCode) ParamCount() int {
	return GetOpcodeInfo(op).ParamCount
}

// IsJump returns true if this opcode can change the instruction pointer.
func (op OpCode) IsJump() bool {
	return op == OpJumpIfTrue || op == OpJumpIfFalse
}

// IsValid returns true if this is a recognized opcode.
func (op OpCode) IsValid() bool {
	_, ok := opcodeInfoTable[op]
	return ok
}

// AllOpcodes returns a slice of all defined opcodes.
// Useful for testing that all opcodes have metadata.
func AllOpcodes() []OpCode {
	opcodes := make([]OpCode, 0, len(opcodeInfoTable))
	for op := range opcodeInfoTable {
		opcodes = append(opcodes, op)
	}
	return opcodes
}

// OpcodeCount returns the number of defined opcodes.
func OpcodeCount() int {
	return len(opcodeInfoTable)
}
