package main

import (
	"fmt"
	"os"

	"github.com/cloudcmds/bfkit/errors"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var red = color.New(color.FgRed).SprintFunc()

func useColor() bool {
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func fatal(err error) {
	switch err := err.(type) {
	case *errors.SyntaxError:
		fmt.Fprint(os.Stderr, errors.NewFormatter(useColor()).Format(err))
	default:
		msg := err.Error()
		if useColor() {
			msg = red(msg)
		}
		fmt.Fprintf(os.Stderr, "%s\n", msg)
	}
	os.Exit(1)
}
