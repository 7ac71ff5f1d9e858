package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyTree_BasicCopy(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "dst")

	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "file1.txt"), []byte("content1"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "file2.txt"), []byte("content2"), 0644))

	err := CopyTree(srcDir, dstDir)
	require.NoError(t, err)

	content1, err := os.ReadFile(filepath.Join(dstDir, "file1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content1", string(content1))

	content2, err := os.ReadFile(filepath.Join(dstDir, "file2.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content2", string(content2))
}

func TestCopyTree_NestedDirectories(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "dst")

	nested := filepath.Join(srcDir, ".spring", "commands", "greet", "hi")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "hello.yml"), []byte("actions: []"), 0644))

	err := CopyTree(srcDir, dstDir)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dstDir, ".spring", "commands", "greet", "hi", "hello.yml"))
	require.NoError(t, err)
	assert.Equal(t, "actions: []", string(content))
}

func TestCopyTree_MergeRemoteWins(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	dstDir := t.TempDir()

	// Path present in both trees is replaced by the source version.
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "shared.txt"), []byte("remote"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dstDir, "shared.txt"), []byte("local"), 0644))

	// Path present only in the destination is untouched.
	require.NoError(t, os.WriteFile(filepath.Join(dstDir, "local-only.txt"), []byte("keep me"), 0644))

	err := CopyTree(srcDir, dstDir)
	require.NoError(t, err)

	shared, err := os.ReadFile(filepath.Join(dstDir, "shared.txt"))
	require.NoError(t, err)
	assert.Equal(t, "remote", string(shared))

	localOnly, err := os.ReadFile(filepath.Join(dstDir, "local-only.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(localOnly))
}

func TestCopyTree_MissingSource(t *testing.T) {
	t.Parallel()

	srcDir := filepath.Join(t.TempDir(), "nonexistent")
	dstDir := filepath.Join(t.TempDir(), "dst")

	err := CopyTree(srcDir, dstDir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accessing source directory")
}

func TestCopyTree_SourceNotDirectory(t *testing.T) {
	t.Parallel()

	srcFile := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(srcFile, []byte("content"), 0644))
	dstDir := filepath.Join(t.TempDir(), "dst")

	err := CopyTree(srcFile, dstDir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestCopyTree_PreservesPermissions(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "dst")

	srcFile := filepath.Join(srcDir, "script.sh")
	require.NoError(t, os.WriteFile(srcFile, []byte("#!/bin/bash"), 0755))

	err := CopyTree(srcDir, dstDir)
	require.NoError(t, err)

	dstInfo, err := os.Stat(filepath.Join(dstDir, "script.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), dstInfo.Mode().Perm())
}

func TestDeleteTree_RemovesSubtree(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	target := filepath.Join(root, "greet", "hi")
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "hello.yml"), []byte("x"), 0644))

	err := DeleteTree(target)
	require.NoError(t, err)

	assert.False(t, Exists(target))
	assert.True(t, Exists(filepath.Join(root, "greet")), "parent should be untouched")
}

func TestDeleteTree_MissingPath(t *testing.T) {
	t.Parallel()

	err := DeleteTree(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "missing")))
}

func TestIsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))
}
