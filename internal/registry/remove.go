package registry

import (
	apperrors "github.com/spring-cli/spring/internal/errors"
	"github.com/spring-cli/spring/internal/fsops"
	"github.com/spring-cli/spring/internal/term"
)

// Remove deletes one (command, sub-command) subtree from the registry.
// A missing pair is a provisioning error. The parent command directory is
// left in place even when the removal empties it.
func Remove(commandName, subCommandName, projectRoot string, out term.Printer) error {
	if err := ValidateName(commandName); err != nil {
		return err
	}
	if err := ValidateName(subCommandName); err != nil {
		return err
	}

	projectRoot, err := ResolveProject(projectRoot)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Provisioning)
	}

	path := SubCommandDir(projectRoot, commandName, subCommandName)
	if err := fsops.DeleteTree(path); err != nil {
		return apperrors.RemoveFailed(path, err)
	}

	out.Println("Deleted " + path)
	return nil
}
