// Package dis supports disassembling compiled IR into a human readable
// listing.
package dis

import (
	"fmt"
	"io"

	"github.com/cloudcmds/bfkit/op"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Instruction is one row of a disassembly listing.
type Instruction struct {
	// Offset is the index of the instruction in the IR sequence.
	Offset int
	// Name is the opcode mnemonic.
	Name string
	// Operand is the delta or partner index, if the opcode has one.
	Operand string
	// Info is a hint about the operand, such as the jump target.
	Info string
}

// Disassemble converts an IR sequence into listing rows.
func Disassemble(program []op.Instruction) []Instruction {
	rows := make([]Instruction, 0, len(program))
	for i, instr := range program {
		info := op.GetInfo(instr.Op)
		row := Instruction{Offset: i, Name: info.Name}
		switch {
		case info.HasDelta:
			row.Operand = fmt.Sprintf("%d", instr.Delta)
		case info.HasPartner:
			row.Operand = fmt.Sprintf("%d", instr.Match)
			row.Info = fmt.Sprintf("-> %d", instr.Match+1)
		}
		rows = append(rows, row)
	}
	return rows
}

// Print writes the disassembly rows to the given writer as a table.
func Print(instructions []Instruction, w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"OFFSET", "OPCODE", "OPERAND", "INFO"})
	for _, instr := range instructions {
		t.AppendRow(table.Row{instr.Offset, instr.Name, instr.Operand, instr.Info})
	}
	t.Render()
}
