package parser

import (
	stderrors "errors"
	"testing"

	"github.com/cloudcmds/bfkit/errors"
	"github.com/cloudcmds/bfkit/op"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	program, err := Parse([]byte("><+-.,[]"))
	require.Nil(t, err)
	require.Equal(t, []op.Raw{
		op.IncPointer,
		op.DecPointer,
		op.IncByte,
		op.DecByte,
		op.RawOutput,
		op.RawInput,
		op.RawOpen,
		op.RawClose,
	}, program)
}

func TestParseSkipsComments(t *testing.T) {
	program, err := Parse([]byte("add two:\n + then + again! (really)"))
	require.Nil(t, err)
	require.Equal(t, []op.Raw{op.IncByte, op.IncByte}, program)
}

func TestParseEmpty(t *testing.T) {
	program, err := Parse(nil)
	require.Nil(t, err)
	require.Len(t, program, 0)
}

func TestParseNestedLoops(t *testing.T) {
	program, err := Parse([]byte("[[[][]]]"))
	require.Nil(t, err)
	require.Len(t, program, 8)
}

func TestParseUnexpectedClose(t *testing.T) {
	_, err := Parse([]byte("]"))
	require.NotNil(t, err)

	var syntaxErr *errors.SyntaxError
	require.True(t, stderrors.As(err, &syntaxErr))
	require.Equal(t, 0, syntaxErr.Offset)
	require.Contains(t, syntaxErr.Message, "unexpected closing bracket")
}

func TestParseUnterminatedLoop(t *testing.T) {
	_, err := Parse([]byte("+[+"))
	require.NotNil(t, err)

	var syntaxErr *errors.SyntaxError
	require.True(t, stderrors.As(err, &syntaxErr))
	require.Equal(t, 1, syntaxErr.Offset)
	require.Contains(t, syntaxErr.Message, "unterminated loop")
}

func TestParseReportsEveryUnmatchedBracket(t *testing.T) {
	_, err := Parse([]byte("]]["))
	require.NotNil(t, err)

	var merr *multierror.Error
	require.True(t, stderrors.As(err, &merr))
	require.Len(t, merr.Errors, 3)
}

func TestParseCloseDoesNotConsumeLaterOpen(t *testing.T) {
	// The stray close must not pair with the following open: the later
	// bracket pair is fine and only one error is reported.
	_, err := Parse([]byte("][]"))
	require.NotNil(t, err)

	var syntaxErr *errors.SyntaxError
	require.True(t, stderrors.As(err, &syntaxErr))
	require.Equal(t, 0, syntaxErr.Offset)
}

func TestParseWithFilename(t *testing.T) {
	_, err := Parse([]byte("]"), WithFilename("program.bf"))
	require.NotNil(t, err)

	var syntaxErr *errors.SyntaxError
	require.True(t, stderrors.As(err, &syntaxErr))
	require.Equal(t, "program.bf", syntaxErr.Filename)
}
