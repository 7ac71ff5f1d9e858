package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintln(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Println("Created user-defined command /tmp/project/.spring/commands/hello/new")

	assert.Equal(t, "Created user-defined command /tmp/project/.spring/commands/hello/new\n", buf.String())
}

func TestBlock_EmitsAllLinesAtOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Block([]string{
		"Command greet added.",
		"Refer to README-greet.md for more information.",
	})

	assert.Equal(t, "Command greet added.\nRefer to README-greet.md for more information.\n", buf.String())
}

func TestBlock_EmptyWritesNothing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Block(nil)

	assert.Zero(t, buf.Len())
}

func TestWarnf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Warnf("could not delete path %s", "/tmp/staging")

	assert.Equal(t, "warning: could not delete path /tmp/staging\n", buf.String())
}

func TestNewPrinter_NonTTYDisablesColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Block([]string{"plain"})

	assert.NotContains(t, buf.String(), "\x1b[")
}
