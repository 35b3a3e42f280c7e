package jit

import (
	"fmt"

	"github.com/cloudcmds/bfkit/op"
)

// loopCodeSize is the emitted size of a LoopOpen or LoopClose: a 5-byte
// cell test followed by a 6-byte conditional near jump. Both brackets
// branch to just past their partner's code, which is the partner's start
// offset plus this size.
const loopCodeSize = 11

// assemble compiles an IR sequence into raw machine code. An instruction
// outside the closed IR set is a fatal internal error: the compiler's
// invariants make it unreachable, so this panics rather than returning a
// user-facing error.
func assemble(program []op.Instruction) []byte {
	a := &assembler{}
	a.prologue()

	// Pass 1: emission. Loop branches get fixed-width placeholder
	// displacements so later patches never shift emitted offsets.
	offsets := make([]int, len(program))
	for i, instr := range program {
		offsets[i] = a.len()
		switch instr.Op {
		case op.AddPointer:
			a.addCursor(instr.Delta)
		case op.AddByte:
			a.addCell(byte(instr.Delta))
		case op.Output:
			a.callOutput()
		case op.Input:
			a.callInput()
		case op.LoopOpen:
			a.cmpCellZero()
			a.jumpIfZero()
		case op.LoopClose:
			a.cmpCellZero()
			a.jumpIfNotZero()
		default:
			panic(fmt.Sprintf("jit: invalid ir instruction %d", instr.Op))
		}
	}
	a.epilogue()

	// Pass 2: backpatch. Both partners' start offsets are now known, so
	// each displacement is the target minus the branch's own end.
	for i, instr := range program {
		if instr.Op != op.LoopOpen && instr.Op != op.LoopClose {
			continue
		}
		branchEnd := offsets[i] + loopCodeSize
		target := offsets[instr.Match] + loopCodeSize
		a.patchRel32(branchEnd-4, int32(target-branchEnd))
	}
	return a.code
}
