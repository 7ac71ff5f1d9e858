// Package fsops provides the recursive filesystem operations behind command
// provisioning: merge-copying a staged bundle into a project tree and
// recursively deleting a command subtree.
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyTree recursively merges the tree rooted at src into dst. Paths present
// in both trees are overwritten with the src version; paths present only in
// dst are untouched. Missing ancestor directories are created.
func CopyTree(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("accessing source directory: %w", err)
	}

	if !srcInfo.IsDir() {
		return fmt.Errorf("source %q is not a directory", src)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}

	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking directory: %w", err)
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("computing relative path: %w", err)
		}

		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			return createDir(path, dstPath)
		}

		return copyFile(path, dstPath)
	})
}

// createDir creates a directory at dstPath with the same permissions as srcPath.
func createDir(srcPath, dstPath string) error {
	info, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("getting source directory info: %w", err)
	}

	if err := os.MkdirAll(dstPath, info.Mode()); err != nil {
		return fmt.Errorf("creating directory %q: %w", dstPath, err)
	}

	return nil
}

// copyFile copies a single file from src to dst, replacing dst if it exists.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("getting source file info: %w", err)
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("copying file content: %w", err)
	}

	return nil
}

// DeleteTree recursively deletes the tree rooted at path. Unlike
// os.RemoveAll it fails when the path does not exist; callers that tolerate
// absence should check with Exists first.
func DeleteTree(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("accessing %q: %w", path, err)
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("deleting %q: %w", path, err)
	}

	return nil
}

// Exists reports whether the path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether the path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
