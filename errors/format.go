package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats syntax errors for terminal display.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

var (
	colorError    = color.New(color.FgRed, color.Bold)
	colorLocation = color.New(color.FgCyan)
	colorLineNum  = color.New(color.FgHiBlack)
	colorCaret    = color.New(color.FgHiRed)
)

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.UseColor {
		return s
	}
	return c.Sprint(s)
}

// Format renders the error with its source context:
//
//	error: unexpected closing bracket
//	 --> program.bf:1:4
//	  |
//	1 | +++]
//	  |    ^
func (f *Formatter) Format(e *SyntaxError) string {
	var b strings.Builder
	b.WriteString(f.paint(colorError, "error: "))
	b.WriteString(e.Message)
	b.WriteString("\n")

	location := fmt.Sprintf("%d:%d", e.Line, e.Column)
	if e.Filename != "" {
		location = fmt.Sprintf("%s:%s", e.Filename, location)
	}
	b.WriteString(" --> ")
	b.WriteString(f.paint(colorLocation, location))
	b.WriteString("\n")

	if e.Source == "" {
		return b.String()
	}
	lineNum := fmt.Sprintf("%d", e.Line)
	gutter := strings.Repeat(" ", len(lineNum))
	b.WriteString(f.paint(colorLineNum, gutter+" |"))
	b.WriteString("\n")
	b.WriteString(f.paint(colorLineNum, lineNum+" | "))
	b.WriteString(e.Source)
	b.WriteString("\n")
	b.WriteString(f.paint(colorLineNum, gutter+" | "))
	if e.Column > 1 {
		b.WriteString(strings.Repeat(" ", e.Column-1))
	}
	b.WriteString(f.paint(colorCaret, "^"))
	b.WriteString("\n")
	return b.String()
}
