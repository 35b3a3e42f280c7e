package op

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo(LoopOpen)
	require.Equal(t, "LOOP_OPEN", info.Name)
	require.Equal(t, LoopOpen, info.Code)
	require.True(t, info.HasPartner)
	require.False(t, info.HasDelta)
}

func TestGetInfoAllOpcodes(t *testing.T) {
	tests := []struct {
		code       Code
		name       string
		hasDelta   bool
		hasPartner bool
	}{
		{AddPointer, "ADD_POINTER", true, false},
		{AddByte, "ADD_BYTE", true, false},
		{Output, "OUTPUT", false, false},
		{Input, "INPUT", false, false},
		{LoopOpen, "LOOP_OPEN", false, true},
		{LoopClose, "LOOP_CLOSE", false, true},
	}
	for _, tt := range tests {
		info := GetInfo(tt.code)
		require.Equal(t, tt.name, info.Name)
		require.Equal(t, tt.code, info.Code)
		require.Equal(t, tt.hasDelta, info.HasDelta)
		require.Equal(t, tt.hasPartner, info.HasPartner)
	}
}

func TestRawString(t *testing.T) {
	tests := []struct {
		raw  Raw
		want string
	}{
		{IncPointer, ">"},
		{DecPointer, "<"},
		{IncByte, "+"},
		{DecByte, "-"},
		{RawOutput, "."},
		{RawInput, ","},
		{RawOpen, "["},
		{RawClose, "]"},
		{InvalidRaw, ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.raw.String())
	}
}

func TestInstructionString(t *testing.T) {
	require.Equal(t, "ADD_POINTER +3", Instruction{Op: AddPointer, Delta: 3}.String())
	require.Equal(t, "ADD_BYTE -2", Instruction{Op: AddByte, Delta: -2}.String())
	require.Equal(t, "OUTPUT", Instruction{Op: Output}.String())
	require.Equal(t, "INPUT", Instruction{Op: Input}.String())
	require.Equal(t, "LOOP_OPEN 4", Instruction{Op: LoopOpen, Match: 4}.String())
	require.Equal(t, "LOOP_CLOSE 0", Instruction{Op: LoopClose, Match: 0}.String())
}
