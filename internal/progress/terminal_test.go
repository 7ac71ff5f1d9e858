package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols_Unicode(t *testing.T) {
	t.Parallel()

	symbols := SelectSymbols(TerminalCapabilities{SupportsUnicode: true})

	assert.Equal(t, "✓", symbols.Checkmark)
	assert.Equal(t, "✗", symbols.Failure)
}

func TestSelectSymbols_ASCII(t *testing.T) {
	t.Parallel()

	symbols := SelectSymbols(TerminalCapabilities{SupportsUnicode: false})

	assert.Equal(t, "[OK]", symbols.Checkmark)
	assert.Equal(t, "[FAIL]", symbols.Failure)
}

func TestDetectTerminalCapabilities_NonTTY(t *testing.T) {
	// Test binaries run with stdout piped, so detection reports no TTY.
	caps := DetectTerminalCapabilities()

	assert.False(t, caps.IsTTY)
	assert.False(t, caps.SupportsColor)
}

func TestIndicator_DisabledIsNoOp(t *testing.T) {
	t.Parallel()

	p := NewIndicator(false)
	p.Start("fetching")
	p.Stop()
}

func TestIndicator_NonTTYStartStop(t *testing.T) {
	p := NewIndicator(true)
	p.Start("Retrieving bundle from https://example.com")
	p.Stop()
}
