// Package op defines the instruction sets used by the bfkit compiler and
// execution backends.
//
// Two closed sets are defined. Raw instructions correspond one-to-one with
// the eight Brainfuck operator characters and exist only between parsing
// and optimization. IR instructions are the folded form produced by the
// compiler: runs of pointer moves and byte increments collapse into single
// instructions carrying a signed delta, and loop brackets carry the index
// of their partner within the IR sequence.
package op

import "fmt"

// Raw is an unoptimized instruction, one per recognized source byte.
type Raw uint8

const (
	InvalidRaw Raw = 0

	IncPointer Raw = 1 // >
	DecPointer Raw = 2 // <
	IncByte    Raw = 3 // +
	DecByte    Raw = 4 // -
	RawOutput  Raw = 5 // .
	RawInput   Raw = 6 // ,
	RawOpen    Raw = 7 // [
	RawClose   Raw = 8 // ]
)

// String returns the source character for the raw instruction.
func (r Raw) String() string {
	switch r {
	case IncPointer:
		return ">"
	case DecPointer:
		return "<"
	case IncByte:
		return "+"
	case DecByte:
		return "-"
	case RawOutput:
		return "."
	case RawInput:
		return ","
	case RawOpen:
		return "["
	case RawClose:
		return "]"
	default:
		return ""
	}
}

// Code is an IR opcode.
type Code uint8

const (
	Invalid Code = 0

	AddPointer Code = 1 // move the cursor by Delta cells
	AddByte    Code = 2 // add Delta to the cell at the cursor, mod 256
	Output     Code = 3 // write the cell at the cursor to the sink
	Input      Code = 4 // read one byte from the source into the cell
	LoopOpen   Code = 5 // jump past the partner LoopClose if the cell is zero
	LoopClose  Code = 6 // jump past the partner LoopOpen if the cell is non-zero
)

// Instruction is a single IR instruction. Delta is meaningful only for
// AddPointer and AddByte; Match is meaningful only for LoopOpen and
// LoopClose, where it holds the partner bracket's index in the same IR
// sequence.
type Instruction struct {
	Op    Code
	Delta int32
	Match int
}

// String returns a compact, human-readable form of the instruction, as
// shown by the disassembler.
func (i Instruction) String() string {
	info := GetInfo(i.Op)
	switch i.Op {
	case AddPointer, AddByte:
		return fmt.Sprintf("%s %+d", info.Name, i.Delta)
	case LoopOpen, LoopClose:
		return fmt.Sprintf("%s %d", info.Name, i.Match)
	default:
		return info.Name
	}
}

// Info contains information about an IR opcode.
type Info struct {
	Code       Code
	Name       string
	HasDelta   bool
	HasPartner bool
}

var infos = make([]Info, 16)

func init() {
	ops := []Info{
		{AddPointer, "ADD_POINTER", true, false},
		{AddByte, "ADD_BYTE", true, false},
		{Output, "OUTPUT", false, false},
		{Input, "INPUT", false, false},
		{LoopOpen, "LOOP_OPEN", false, true},
		{LoopClose, "LOOP_CLOSE", false, true},
	}
	for _, o := range ops {
		infos[o.Code] = o
	}
}

// GetInfo returns information about the given IR opcode.
func GetInfo(c Code) Info {
	return infos[c]
}
