// Package compiler lowers raw Brainfuck instructions into the folded IR
// executed by the IR interpreter and the JIT.
//
// # Peephole folding
//
// The compiler makes a single left-to-right pass with a running
// accumulator for the current run of same-class operations: consecutive
// pointer moves fold into one AddPointer and consecutive byte increments
// fold into one AddByte, each carrying the signed net delta. A run whose
// net delta is zero (such as "><" or "+-") is elided entirely, so the IR
// sequence is never longer than the raw sequence.
//
// # Bracket linking
//
// Loop brackets are pushed onto an index stack as they are emitted. When
// a LoopClose is emitted the stack is popped and both brackets' Match
// fields are pointed at each other's position in the IR sequence. The
// Match indices refer to the IR sequence, not the raw one, since folding
// shifts positions.
//
// The input must be well-nested; the parser guarantees this. Feeding an
// unbalanced sequence to Compile is a programming error and panics, which
// is deliberately distinct from the user-facing SyntaxError the parser
// raises for the same underlying source.
package compiler

import (
	"fmt"

	"github.com/cloudcmds/bfkit/op"
)

// runKind tracks which class of foldable instruction is currently
// accumulating.
type runKind uint8

const (
	runNone runKind = iota
	runPointer
	runByte
)

// Compile folds a well-nested raw instruction sequence into IR.
func Compile(program []op.Raw) []op.Instruction {
	ir := make([]op.Instruction, 0, len(program))

	kind := runNone
	var delta int32

	flush := func() {
		if kind == runNone || delta == 0 {
			kind = runNone
			delta = 0
			return
		}
		instr := op.Instruction{Delta: delta}
		if kind == runPointer {
			instr.Op = op.AddPointer
		} else {
			instr.Op = op.AddByte
		}
		ir = append(ir, instr)
		kind = runNone
		delta = 0
	}

	accumulate := func(k runKind, d int32) {
		if kind != k {
			flush()
			kind = k
		}
		delta += d
	}

	var openStack []int
	for _, raw := range program {
		switch raw {
		case op.IncPointer:
			accumulate(runPointer, 1)
		case op.DecPointer:
			accumulate(runPointer, -1)
		case op.IncByte:
			accumulate(runByte, 1)
		case op.DecByte:
			accumulate(runByte, -1)
		case op.RawOutput:
			flush()
			ir = append(ir, op.Instruction{Op: op.Output})
		case op.RawInput:
			flush()
			ir = append(ir, op.Instruction{Op: op.Input})
		case op.RawOpen:
			flush()
			openStack = append(openStack, len(ir))
			ir = append(ir, op.Instruction{Op: op.LoopOpen})
		case op.RawClose:
			flush()
			if len(openStack) == 0 {
				panic("compiler: unbalanced close bracket reached the optimizer")
			}
			openIdx := openStack[len(openStack)-1]
			openStack = openStack[:len(openStack)-1]
			closeIdx := len(ir)
			ir = append(ir, op.Instruction{Op: op.LoopClose, Match: openIdx})
			ir[openIdx].Match = closeIdx
		default:
			panic(fmt.Sprintf("compiler: invalid raw instruction %d", raw))
		}
	}
	flush()

	if len(openStack) != 0 {
		panic("compiler: unbalanced open bracket reached the optimizer")
	}
	return ir
}
