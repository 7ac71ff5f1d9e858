// Package errors provides structured CLI errors for spring. Each error carries
// a category, a user-facing message, optional usage text, and remediation
// steps that are rendered together when the error reaches the top of the CLI.
package errors

// ErrorCategory classifies a CLI error for display and exit-code mapping.
type ErrorCategory int

const (
	// Argument indicates invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration indicates a problem loading or validating configuration.
	Configuration
	// Fetch indicates a source reference could not be resolved into a
	// staged bundle (unreachable, invalid, or not found).
	Fetch
	// Provisioning indicates a local filesystem operation failed
	// (scaffold write, tree copy, tree delete).
	Provisioning
)

// String returns the display heading for the category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Fetch:
		return "Fetch Error"
	case Provisioning:
		return "Provisioning Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with remediation guidance.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Err         error // wrapped cause, may be nil
}

func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an Argument error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates an Argument error that includes usage text.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a Configuration error with remediation steps.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewFetchError creates a Fetch error with remediation steps.
func NewFetchError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Fetch,
		Message:     message,
		Remediation: remediation,
	}
}

// NewProvisioningError creates a Provisioning error with remediation steps.
func NewProvisioningError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Provisioning,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap wraps an existing error into a CLIError with the given category.
// Returns nil if err is nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

// WrapWithMessage wraps an existing error with a replacement message.
// Returns nil if err is nil.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     message,
		Remediation: remediation,
		Err:         err,
	}
}
