package registry

import (
	"os"
	"path/filepath"
	"sort"

	apperrors "github.com/spring-cli/spring/internal/errors"
	"gopkg.in/yaml.v3"
)

// Entry describes one defined (command, sub-command) pair.
type Entry struct {
	Command     string
	SubCommand  string
	Description string
}

// commandMetadata is the slice of a command.yaml this package reads. The
// rest of the file is opaque; malformed metadata downgrades to an empty
// description rather than failing the listing.
type commandMetadata struct {
	Command struct {
		Description string `yaml:"description"`
	} `yaml:"command"`
}

// List enumerates every (command, sub-command) pair in the project's
// registry, in lexicographic order, with the description read from each
// pair's metadata file. A missing registry yields an empty list.
func List(projectRoot string) ([]Entry, error) {
	projectRoot, err := ResolveProject(projectRoot)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Provisioning)
	}

	registryDir := Dir(projectRoot)
	commands, err := os.ReadDir(registryDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.WrapWithMessage(err, apperrors.Provisioning,
			"could not read command registry at "+registryDir)
	}

	var entries []Entry
	for _, command := range commands {
		if !command.IsDir() {
			continue
		}

		subCommands, err := os.ReadDir(filepath.Join(registryDir, command.Name()))
		if err != nil {
			continue
		}

		for _, subCommand := range subCommands {
			if !subCommand.IsDir() {
				continue
			}
			entries = append(entries, Entry{
				Command:     command.Name(),
				SubCommand:  subCommand.Name(),
				Description: readDescription(filepath.Join(registryDir, command.Name(), subCommand.Name(), MetadataFileName)),
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Command != entries[j].Command {
			return entries[i].Command < entries[j].Command
		}
		return entries[i].SubCommand < entries[j].SubCommand
	})

	return entries, nil
}

func readDescription(metadataPath string) string {
	content, err := os.ReadFile(metadataPath)
	if err != nil {
		return ""
	}

	var meta commandMetadata
	if err := yaml.Unmarshal(content, &meta); err != nil {
		return ""
	}
	return meta.Command.Description
}
