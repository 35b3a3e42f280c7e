package vm

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/cloudcmds/bfkit/compiler"
	"github.com/cloudcmds/bfkit/op"
	"github.com/cloudcmds/bfkit/parser"
	"github.com/stretchr/testify/require"
)

// runRaw executes source on the naive backend. Used for testing.
func runRaw(t *testing.T, source, input string) (string, error) {
	t.Helper()
	program, err := parser.Parse([]byte(source))
	require.Nil(t, err)
	var out bytes.Buffer
	err = New(program).Run(strings.NewReader(input), &out)
	return out.String(), err
}

// runIR executes source on the IR backend. Used for testing.
func runIR(t *testing.T, source, input string) (string, error) {
	t.Helper()
	program, err := parser.Parse([]byte(source))
	require.Nil(t, err)
	var out bytes.Buffer
	err = NewIR(compiler.Compile(program)).Run(strings.NewReader(input), &out)
	return out.String(), err
}

type runnerFunc func(t *testing.T, source, input string) (string, error)

var runners = map[string]runnerFunc{
	"raw": runRaw,
	"ir":  runIR,
}

func TestScenarios(t *testing.T) {
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
		{"nested loops", "++[>++[>++<-]<-]>>.", "", "\x08"},
		{"wraparound", strings.Repeat("+", 256) + ".", "", "\x00"},
		{"empty program", "", "", ""},
		{"skip dead loop", "[.]", "", ""},
		{"eof reads zero", ",.", "", "\x00"},
		{"eof after input", ",.,.", "A", "A\x00"},
	}
	for name, run := range runners {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				got, err := run(t, tt.source, tt.input)
				require.Nil(t, err)
				require.Equal(t, tt.want, got)
			})
		}
	}
}

func TestCursorOutOfRange(t *testing.T) {
	for name, run := range runners {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, "<", "")
			require.NotNil(t, err)
			require.Contains(t, err.Error(), "out of range")
		})
	}
}

func TestOutputFailurePropagates(t *testing.T) {
	program, err := parser.Parse([]byte("+."))
	require.Nil(t, err)
	err = New(program).Run(strings.NewReader(""), failWriter{})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "failed to write byte")

	err = NewIR(compiler.Compile(program)).Run(strings.NewReader(""), failWriter{})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "failed to write byte")
}

func TestInvalidInstruction(t *testing.T) {
	err := New([]op.Raw{op.InvalidRaw}).Run(strings.NewReader(""), &bytes.Buffer{})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "invalid raw instruction")

	err = NewIR([]op.Instruction{{Op: op.Invalid}}).Run(strings.NewReader(""), &bytes.Buffer{})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "invalid ir instruction")
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}
