package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTree materializes a path -> content map under root, creating parent
// directories as needed. Paths use forward slashes.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for path, content := range files {
		full := filepath.Join(root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

// CreateBundle builds a staged-bundle-shaped tree in a fresh temp directory
// and returns its root.
func CreateBundle(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	WriteTree(t, root, files)
	return root
}
