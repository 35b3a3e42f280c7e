package bfkit

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/cloudcmds/bfkit/errors"
	"github.com/cloudcmds/bfkit/jit"
	"github.com/cloudcmds/bfkit/op"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) []Backend {
	t.Helper()
	list := []Backend{BackendRaw, BackendIR}
	if jit.Supported {
		list = append(list, BackendJIT)
	}
	return list
}

func TestRunAllBackends(t *testing.T) {
	tests := []struct {
		name   string
		source string
		input  string
		want   string
	}{
		{"simple add", "+++.", "", "\x03"},
		{"loop multiply", "++++++[>++++++++++<-]>+++++.", "", "A"},
		{"input echo", ",+.", "A", "B"},
		{"loop zeroes cell", "+++[-].", "", "\x00"},
		{"wraparound", strings.Repeat("+", 256) + ".", "", "\x00"},
	}
	for _, backend := range backends(t) {
		for _, tt := range tests {
			t.Run(backend.String()+"/"+tt.name, func(t *testing.T) {
				var out bytes.Buffer
				err := Run([]byte(tt.source),
					WithBackend(backend),
					WithInput(strings.NewReader(tt.input)),
					WithOutput(&out))
				require.Nil(t, err)
				require.Equal(t, tt.want, out.String())
			})
		}
	}
}

func TestRunSyntaxError(t *testing.T) {
	for _, backend := range backends(t) {
		for _, source := range []string{"[", "]"} {
			t.Run(backend.String()+"/"+source, func(t *testing.T) {
				err := Run([]byte(source), WithBackend(backend))
				require.NotNil(t, err)
				var syntaxErr *errors.SyntaxError
				require.True(t, stderrors.As(err, &syntaxErr))
			})
		}
	}
}

func TestRunDefaultsDiscardOutput(t *testing.T) {
	require.Nil(t, Run([]byte("+++."), WithBackend(BackendIR)))
}

func TestCompile(t *testing.T) {
	ir, err := Compile([]byte(">>><<+++++--"))
	require.Nil(t, err)
	require.Equal(t, []op.Instruction{
		{Op: op.AddPointer, Delta: 1},
		{Op: op.AddByte, Delta: 3},
	}, ir)
}

func TestCompileError(t *testing.T) {
	_, err := Compile([]byte("["), WithFilename("program.bf"))
	require.NotNil(t, err)
	var syntaxErr *errors.SyntaxError
	require.True(t, stderrors.As(err, &syntaxErr))
	require.Equal(t, "program.bf", syntaxErr.Filename)
}

func TestParseBackend(t *testing.T) {
	for _, backend := range []Backend{BackendRaw, BackendIR, BackendJIT} {
		parsed, err := ParseBackend(backend.String())
		require.Nil(t, err)
		require.Equal(t, backend, parsed)
	}
	_, err := ParseBackend("llvm")
	require.NotNil(t, err)
}
