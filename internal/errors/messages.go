package errors

import "fmt"

// Constructors for the error messages spring surfaces to users. Keeping them
// in one place keeps wording and remediation steps consistent across commands.

// MissingSourceRef is returned when 'command add' is run without --from.
func MissingSourceRef() *CLIError {
	return NewArgumentErrorWithUsage(
		"no source reference provided",
		"spring command add --from <source-ref>",
		"pass --from with a local path, git URL, or archive URL",
	)
}

// InvalidCommandName is returned when a command or sub-command name cannot be
// used as a directory name.
func InvalidCommandName(name string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid command name %q", name),
		"use a name without path separators or a leading dot",
	)
}

// FetchFailed wraps a Source Fetcher failure for a given reference.
func FetchFailed(sourceRef string, err error) *CLIError {
	return WrapWithMessage(err, Fetch,
		fmt.Sprintf("could not retrieve %q: %v", sourceRef, err),
		"check that the source reference is reachable and spelled correctly",
	)
}

// ScaffoldFailed wraps a scaffold write failure. The path names the
// command directory that could not be provisioned.
func ScaffoldFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, Provisioning,
		fmt.Sprintf("could not create user-defined command at %s: %v", path, err),
		"check directory permissions for the project path",
	)
}

// AddFailed wraps a tree-copy failure during 'command add'. Files copied
// before the failure remain in place.
func AddFailed(projectRoot string, err error) *CLIError {
	return WrapWithMessage(err, Provisioning,
		fmt.Sprintf("could not add command to %s: %v", projectRoot, err),
		"check directory permissions for the project path",
		"files copied before the failure were left in place",
	)
}

// RemoveFailed wraps a deletion failure during 'command remove'.
func RemoveFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, Provisioning,
		fmt.Sprintf("could not delete %s: %v", path, err),
		"check that the command and sub-command names are correct",
		"run 'spring command list' to see defined commands",
	)
}

// ConfigParseError wraps a configuration load failure for a given file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("could not parse config file %s: %v", path, err),
		"check the file for JSON syntax errors",
	)
}

// LockFailed is returned when the registry lock cannot be acquired.
func LockFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, Provisioning,
		fmt.Sprintf("could not lock command registry at %s: %v", path, err),
		"another spring process may be modifying this project; retry once it finishes",
	)
}
