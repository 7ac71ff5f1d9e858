package registry

import (
	"os"
	"path/filepath"

	apperrors "github.com/spring-cli/spring/internal/errors"
	"github.com/spring-cli/spring/internal/term"
)

// CreateScaffold creates the directory for a new (command, sub-command)
// pair and writes the two built-in template files into it. Repeated calls
// converge to the same two files; pre-existing files at those names are
// overwritten without a conflict check. Directories already created are
// left in place on failure.
func CreateScaffold(commandName, subCommandName, basePath string, out term.Printer) error {
	if err := ValidateName(commandName); err != nil {
		return err
	}
	if err := ValidateName(subCommandName); err != nil {
		return err
	}

	projectRoot, err := ResolveProject(basePath)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Provisioning)
	}

	commandPath := SubCommandDir(projectRoot, commandName, subCommandName)
	if err := os.MkdirAll(commandPath, 0755); err != nil {
		return apperrors.ScaffoldFailed(commandPath, err)
	}

	if err := writeTemplate(commandPath, ActionFileName, actionTemplate); err != nil {
		return err
	}
	if err := writeTemplate(commandPath, MetadataFileName, metadataTemplate); err != nil {
		return err
	}

	out.Println("Created user-defined command " + commandPath)
	return nil
}

func writeTemplate(dir, name string, template func() ([]byte, error)) error {
	content, err := template()
	if err != nil {
		return apperrors.ScaffoldFailed(filepath.Join(dir, name), err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), content, 0644); err != nil {
		return apperrors.ScaffoldFailed(filepath.Join(dir, name), err)
	}
	return nil
}
