// Package progress provides the spinner shown while spring resolves a
// source reference. Fetching over git or HTTP can take a while; everything
// else spring does is fast local filesystem work.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Indicator displays an in-progress message, animated on TTYs and printed
// once on pipes. A zero-value Indicator with Enabled=false is a no-op.
type Indicator struct {
	Enabled bool

	capabilities TerminalCapabilities
	spinner      *spinner.Spinner
}

// NewIndicator creates an indicator using detected terminal capabilities.
func NewIndicator(enabled bool) *Indicator {
	return &Indicator{
		Enabled:      enabled,
		capabilities: DetectTerminalCapabilities(),
	}
}

// Start begins displaying msg.
func (p *Indicator) Start(msg string) {
	if !p.Enabled {
		return
	}

	if p.capabilities.IsTTY {
		symbols := SelectSymbols(p.capabilities)
		p.spinner = spinner.New(
			spinner.CharSets[symbols.SpinnerSet],
			100*time.Millisecond,
		)
		p.spinner.Writer = os.Stderr // keep stdout clean for the report
		p.spinner.Suffix = " " + msg
		p.spinner.Start()
		return
	}

	fmt.Fprintln(os.Stderr, msg)
}

// Stop halts the animation without printing a status line.
func (p *Indicator) Stop() {
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}
