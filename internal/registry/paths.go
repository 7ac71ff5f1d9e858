// Package registry implements the command provisioning workflow over a
// project's command registry, the directory tree rooted at
// <project>/.spring/commands. It scaffolds new user-defined commands,
// merges fetched bundles into the registry, removes commands, and lists
// what is defined.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/spring-cli/spring/internal/errors"
)

// Fixed file names every scaffolded sub-command contains.
const (
	// ActionFileName is the action definition file.
	ActionFileName = "hello.yml"
	// MetadataFileName is the command metadata file.
	MetadataFileName = "command.yaml"
)

// ResolveProject resolves path to an absolute project directory. An empty
// path means the current working directory.
func ResolveProject(path string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return cwd, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving project path %q: %w", path, err)
	}
	return abs, nil
}

// Dir returns the command registry root for a project.
func Dir(projectRoot string) string {
	return filepath.Join(projectRoot, ".spring", "commands")
}

// CommandDir returns the directory of a named command.
func CommandDir(projectRoot, commandName string) string {
	return filepath.Join(Dir(projectRoot), commandName)
}

// SubCommandDir returns the directory of a (command, sub-command) pair.
func SubCommandDir(projectRoot, commandName, subCommandName string) string {
	return filepath.Join(Dir(projectRoot), commandName, subCommandName)
}

// ValidateName checks that a command or sub-command name is usable as a
// single directory name.
func ValidateName(name string) error {
	if name == "" ||
		name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) ||
		strings.HasPrefix(name, ".") {
		return apperrors.InvalidCommandName(name)
	}
	return nil
}
