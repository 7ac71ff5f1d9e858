package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// FormatError renders a CLIError as a styled multi-line message.
// Returns an empty string for a nil error.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	heading := color.New(color.FgRed, color.Bold).SprintFunc()
	section := color.New(color.FgYellow).SprintFunc()

	var sb strings.Builder
	sb.WriteString(heading(err.Category.String()) + ": " + err.Message + "\n")

	if err.Usage != "" {
		sb.WriteString("\n" + section("Usage:") + " " + err.Usage + "\n")
	}

	if len(err.Remediation) > 0 {
		sb.WriteString("\n" + section("To fix this:") + "\n")
		for _, step := range err.Remediation {
			sb.WriteString("  - " + step + "\n")
		}
	}

	return sb.String()
}

// FormatErrorPlain renders a CLIError without ANSI colors, for non-TTY output.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(err.Category.String() + ": " + err.Message + "\n")

	if err.Usage != "" {
		sb.WriteString("\nUsage: " + err.Usage + "\n")
	}

	if len(err.Remediation) > 0 {
		sb.WriteString("\nTo fix this:\n")
		for _, step := range err.Remediation {
			sb.WriteString("  - " + step + "\n")
		}
	}

	return sb.String()
}

// PrintError writes the formatted error to stderr, styled when stderr is a
// terminal and NO_COLOR is unset. Nil errors are ignored.
func PrintError(err *CLIError) {
	if err == nil {
		return
	}
	if styledStderr() {
		fmt.Fprint(os.Stderr, FormatError(err))
		return
	}
	fmt.Fprint(os.Stderr, FormatErrorPlain(err))
}

func styledStderr() bool {
	return term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == ""
}

// FprintError writes the formatted error to w. Nil errors are ignored.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatErrorPlain(err))
}
