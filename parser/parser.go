// Package parser turns Brainfuck source bytes into a raw instruction
// sequence.
//
// The eight operator characters map one-to-one onto op.Raw values; every
// other byte is a comment and is skipped. The parser also validates
// bracket nesting, so all later stages may assume the sequence is
// well-nested. Each unmatched bracket produces its own SyntaxError and
// all of them are reported together.
package parser

import (
	"github.com/cloudcmds/bfkit/errors"
	"github.com/cloudcmds/bfkit/op"
	"github.com/hashicorp/go-multierror"
)

// Option is a configuration function for the parser.
type Option func(*parserOpts)

type parserOpts struct {
	filename string
}

// WithFilename sets the filename reported in syntax errors.
func WithFilename(name string) Option {
	return func(o *parserOpts) {
		o.filename = name
	}
}

// Parse converts source bytes into raw instructions. It returns an error
// if brackets are unbalanced: either a closing bracket with no open loop,
// or an unterminated loop at end of input. When multiple brackets are
// unmatched, the returned error wraps one SyntaxError per bracket.
func Parse(source []byte, options ...Option) ([]op.Raw, error) {
	var opts parserOpts
	for _, opt := range options {
		opt(&opts)
	}

	program := make([]op.Raw, 0, len(source))
	var openOffsets []int
	var errs []error

	syntaxError := func(offset int, format string, args ...interface{}) {
		e := errors.NewSyntaxError(source, offset, format, args...)
		e.Filename = opts.filename
		errs = append(errs, e)
	}

	for offset, b := range source {
		var instr op.Raw
		switch b {
		case '>':
			instr = op.IncPointer
		case '<':
			instr = op.DecPointer
		case '+':
			instr = op.IncByte
		case '-':
			instr = op.DecByte
		case '.':
			instr = op.RawOutput
		case ',':
			instr = op.RawInput
		case '[':
			instr = op.RawOpen
			openOffsets = append(openOffsets, offset)
		case ']':
			instr = op.RawClose
			if len(openOffsets) == 0 {
				syntaxError(offset, "unexpected closing bracket")
				continue
			}
			openOffsets = openOffsets[:len(openOffsets)-1]
		default:
			continue
		}
		program = append(program, instr)
	}

	for _, offset := range openOffsets {
		syntaxError(offset, "unterminated loop: missing closing bracket")
	}

	switch len(errs) {
	case 0:
		return program, nil
	case 1:
		return nil, errs[0]
	default:
		return nil, multierror.Append(nil, errs...)
	}
}
