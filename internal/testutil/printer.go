// Package testutil provides test utilities and helpers for spring tests.
package testutil

import "fmt"

// RecordingPrinter implements term.Printer and captures everything written
// to it for assertions.
type RecordingPrinter struct {
	Lines    []string
	Blocks   [][]string
	Warnings []string
}

func (p *RecordingPrinter) Println(line string) {
	p.Lines = append(p.Lines, line)
}

func (p *RecordingPrinter) Block(lines []string) {
	p.Blocks = append(p.Blocks, lines)
}

func (p *RecordingPrinter) Warnf(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

// LastBlock returns the most recent block, or nil when none was emitted.
func (p *RecordingPrinter) LastBlock() []string {
	if len(p.Blocks) == 0 {
		return nil
	}
	return p.Blocks[len(p.Blocks)-1]
}
