// Package intcode provides a virtual machine for executing Intcode
// programs: sequences of signed integers in which each instruction word
// encodes an opcode in its low two decimal digits and one addressing-mode
// digit per parameter above them.
//
// The package consists of two strictly layered components:
//
//   - Decoder: Decode turns one raw instruction word into an Instruction
//     (opcode plus ordered parameter modes). It is a pure function with no
//     dependency on machine state.
//
//   - Machine: owns the sparse growable Memory, the instruction pointer and
//     the relative base register, and drives the fetch-decode-execute loop.
//     Input is consumed from a FIFO queue supplied at construction (or
//     pushed incrementally); output is an append-only log read back after
//     the run.
//
// Ten opcodes are supported: ADD, MUL, IN, OUT, JNZ, JZ, SLT, SEQ, INCB and
// HALT. Parameters resolve in Position, Immediate or Relative mode;
// Immediate is never used for write destinations.
//
// Execution is single-threaded and synchronous, and a Machine is single-use:
// re-running a program requires a fresh Machine. All faults — an instruction
// word that does not decode, a parameter resolving to a negative address, an
// IN with an empty input queue — are fatal and abort the run; the only
// successful termination is reaching HALT. A program that never halts loops
// forever; divergence detection is out of scope.
package intcode
