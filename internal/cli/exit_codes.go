package cli

// Exit codes for the spring CLI. These support scripting and CI use;
// anything non-zero is a failure, the specific code names the cause.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a generic failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitFetchFailed indicates a source reference could not be resolved
	ExitFetchFailed = 3

	// ExitProvisioningFailed indicates a local filesystem operation failed
	ExitProvisioningFailed = 4

	// ExitConfigurationError indicates configuration could not be loaded
	ExitConfigurationError = 5
)
