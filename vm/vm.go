// Package vm provides the two interpreter backends: a naive virtual
// machine that executes raw instructions directly, and a faster one that
// executes the compiler's folded IR.
//
// Both operate on a bounds-checked Tape and share one I/O policy: Output
// pushes single bytes to an io.Writer, Input pulls single bytes from an
// io.Reader, and end of input stores a zero byte. The JIT backend applies
// the same policy so all three backends produce identical output for a
// given program and input.
package vm

import (
	"fmt"
	"io"

	"github.com/cloudcmds/bfkit/op"
)

// VirtualMachine executes raw instructions with no optimization at all.
// Loop brackets are matched by scanning at run time, so it is as slow as
// Brainfuck execution gets; it exists as the baseline the other backends
// are checked against.
type VirtualMachine struct {
	program []op.Raw
	pc      int
	tape    Tape
}

// New creates a virtual machine for a raw instruction sequence.
func New(program []op.Raw) *VirtualMachine {
	return &VirtualMachine{program: program}
}

// Run executes the program to completion. The program ends when the
// instruction stream ends; non-terminating programs run forever.
func (m *VirtualMachine) Run(in io.Reader, out io.Writer) error {
	for m.pc < len(m.program) {
		if err := m.step(in, out); err != nil {
			return err
		}
	}
	return nil
}

func (m *VirtualMachine) step(in io.Reader, out io.Writer) error {
	switch instr := m.program[m.pc]; instr {
	case op.IncPointer:
		if err := m.tape.Move(1); err != nil {
			return err
		}
	case op.DecPointer:
		if err := m.tape.Move(-1); err != nil {
			return err
		}
	case op.IncByte:
		m.tape.Add(1)
	case op.DecByte:
		m.tape.Add(-1)
	case op.RawOutput:
		if err := writeByte(out, m.tape.Read()); err != nil {
			return err
		}
	case op.RawInput:
		b, err := readByte(in)
		if err != nil {
			return err
		}
		m.tape.Write(b)
	case op.RawOpen:
		if m.tape.Read() == 0 {
			match, err := m.scanForward()
			if err != nil {
				return err
			}
			m.pc = match
		}
	case op.RawClose:
		if m.tape.Read() != 0 {
			match, err := m.scanBackward()
			if err != nil {
				return err
			}
			m.pc = match
		}
	default:
		return fmt.Errorf("vm: invalid raw instruction %d", instr)
	}
	m.pc++
	return nil
}

// scanForward finds the closing bracket matching the open bracket at the
// current pc. Unreachable for parser-validated programs.
func (m *VirtualMachine) scanForward() (int, error) {
	depth := 1
	for i := m.pc + 1; i < len(m.program); i++ {
		switch m.program[i] {
		case op.RawOpen:
			depth++
		case op.RawClose:
			depth--
		}
		if depth == 0 {
			return i, nil
		}
	}
	return 0, fmt.Errorf("vm: no matching close bracket for pc %d", m.pc)
}

// scanBackward finds the open bracket matching the close bracket at the
// current pc.
func (m *VirtualMachine) scanBackward() (int, error) {
	depth := 1
	for i := m.pc - 1; i >= 0; i-- {
		switch m.program[i] {
		case op.RawClose:
			depth++
		case op.RawOpen:
			depth--
		}
		if depth == 0 {
			return i, nil
		}
	}
	return 0, fmt.Errorf("vm: no matching open bracket for pc %d", m.pc)
}

// writeByte pushes one byte to the sink.
func writeByte(out io.Writer, b byte) error {
	if _, err := out.Write([]byte{b}); err != nil {
		return fmt.Errorf("vm: failed to write byte to output: %w", err)
	}
	return nil
}

// readByte pulls one byte from the source. End of input yields 0; this is
// the single end-of-input policy shared by every backend.
func readByte(in io.Reader) (byte, error) {
	var buf [1]byte
	n, err := io.ReadFull(in, buf[:])
	if n == 1 {
		return buf[0], nil
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return 0, nil
	}
	return 0, fmt.Errorf("vm: failed to read byte from input: %w", err)
}
