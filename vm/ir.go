package vm

import (
	"fmt"
	"io"

	"github.com/cloudcmds/bfkit/op"
)

// IRVirtualMachine executes folded IR with a single program counter.
// Loop brackets jump directly to their precomputed partner, so no
// scanning happens at run time.
type IRVirtualMachine struct {
	program []op.Instruction
	pc      int
	tape    Tape
}

// NewIR creates a virtual machine for an IR sequence produced by the
// compiler.
func NewIR(program []op.Instruction) *IRVirtualMachine {
	return &IRVirtualMachine{program: program}
}

// Run executes the program to completion.
func (m *IRVirtualMachine) Run(in io.Reader, out io.Writer) error {
	for m.pc < len(m.program) {
		switch instr := m.program[m.pc]; instr.Op {
		case op.AddPointer:
			if err := m.tape.Move(int(instr.Delta)); err != nil {
				return err
			}
		case op.AddByte:
			m.tape.Add(instr.Delta)
		case op.Output:
			if err := writeByte(out, m.tape.Read()); err != nil {
				return err
			}
		case op.Input:
			b, err := readByte(in)
			if err != nil {
				return err
			}
			m.tape.Write(b)
		case op.LoopOpen:
			if m.tape.Read() == 0 {
				m.pc = instr.Match
			}
		case op.LoopClose:
			if m.tape.Read() != 0 {
				m.pc = instr.Match
			}
		default:
			return fmt.Errorf("vm: invalid ir instruction %d", instr.Op)
		}
		m.pc++
	}
	return nil
}
