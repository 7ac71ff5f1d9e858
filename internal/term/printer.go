// Package term provides the line-oriented output sink the provisioning
// operations write to. Operations receive a Printer explicitly instead of
// printing through a process-wide default, so tests can capture output and
// callers can redirect it.
package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Printer accepts one or more lines of text to display to the user.
type Printer interface {
	// Println writes a single line.
	Println(line string)
	// Block writes an ordered sequence of lines as one atomic block.
	Block(lines []string)
	// Warnf writes a warning line. Warnings never fail the operation
	// that emits them.
	Warnf(format string, args ...any)
}

// ConsolePrinter writes to an io.Writer, optionally with ANSI styling.
type ConsolePrinter struct {
	out      io.Writer
	useColor bool
}

// NewPrinter creates a printer for w. Styling is enabled only when w is a
// terminal and NO_COLOR is unset.
func NewPrinter(w io.Writer) *ConsolePrinter {
	return &ConsolePrinter{
		out:      w,
		useColor: isTerminal(w) && os.Getenv("NO_COLOR") == "",
	}
}

// NewPlainPrinter creates a printer for w with styling disabled.
func NewPlainPrinter(w io.Writer) *ConsolePrinter {
	return &ConsolePrinter{out: w}
}

func (p *ConsolePrinter) Println(line string) {
	fmt.Fprintln(p.out, line)
}

func (p *ConsolePrinter) Block(lines []string) {
	if len(lines) == 0 {
		return
	}
	text := strings.Join(lines, "\n") + "\n"
	if p.useColor {
		fmt.Fprint(p.out, color.WhiteString("%s", text))
		return
	}
	fmt.Fprint(p.out, text)
}

func (p *ConsolePrinter) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.useColor {
		fmt.Fprintln(p.out, color.YellowString("warning: %s", msg))
		return
	}
	fmt.Fprintf(p.out, "warning: %s\n", msg)
}

// isTerminal reports whether w is backed by a TTY.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
