package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spring-cli/spring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScaffold_CreatesDirectoryAndTemplates(t *testing.T) {
	t.Parallel()

	projectRoot := t.TempDir()
	out := &testutil.RecordingPrinter{}

	err := CreateScaffold("hello", "new", projectRoot, out)
	require.NoError(t, err)

	commandPath := filepath.Join(projectRoot, ".spring", "commands", "hello", "new")
	assert.FileExists(t, filepath.Join(commandPath, "hello.yml"))
	assert.FileExists(t, filepath.Join(commandPath, "command.yaml"))

	entries, err := os.ReadDir(commandPath)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "scaffold writes exactly two files")

	require.Len(t, out.Lines, 1)
	assert.Contains(t, out.Lines[0], commandPath)
}

func TestCreateScaffold_ExistingPathIsNotAnError(t *testing.T) {
	t.Parallel()

	projectRoot := t.TempDir()
	commandPath := filepath.Join(projectRoot, ".spring", "commands", "hello", "new")
	require.NoError(t, os.MkdirAll(commandPath, 0755))

	err := CreateScaffold("hello", "new", projectRoot, &testutil.RecordingPrinter{})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(commandPath, "hello.yml"))
}

func TestCreateScaffold_OverwritesPriorEdits(t *testing.T) {
	t.Parallel()

	projectRoot := t.TempDir()
	out := &testutil.RecordingPrinter{}

	require.NoError(t, CreateScaffold("hello", "new", projectRoot, out))

	actionPath := filepath.Join(projectRoot, ".spring", "commands", "hello", "new", "hello.yml")
	require.NoError(t, os.WriteFile(actionPath, []byte("edited by user"), 0644))

	// Repeated calls converge to the built-in templates.
	require.NoError(t, CreateScaffold("hello", "new", projectRoot, out))

	content, err := os.ReadFile(actionPath)
	require.NoError(t, err)
	assert.NotEqual(t, "edited by user", string(content))
}

func TestCreateScaffold_InvalidNames(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		commandName    string
		subCommandName string
	}{
		"empty command":           {commandName: "", subCommandName: "new"},
		"empty sub-command":       {commandName: "hello", subCommandName: ""},
		"path separator":          {commandName: "a/b", subCommandName: "new"},
		"parent reference":        {commandName: "..", subCommandName: "new"},
		"dot-prefixed":            {commandName: ".hidden", subCommandName: "new"},
		"sub-command traversal":   {commandName: "hello", subCommandName: "../../escape"},
		"backslash in name":       {commandName: `a\b`, subCommandName: "new"},
		"sub-command current dir": {commandName: "hello", subCommandName: "."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := CreateScaffold(tt.commandName, tt.subCommandName, t.TempDir(), &testutil.RecordingPrinter{})
			assert.Error(t, err)
		})
	}
}

func TestCreateScaffold_DefaultsToWorkingDirectory(t *testing.T) {
	projectRoot := t.TempDir()
	t.Chdir(projectRoot)

	err := CreateScaffold("hello", "new", "", &testutil.RecordingPrinter{})
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(projectRoot, ".spring", "commands", "hello", "new"))
}
