package source

import (
	"context"
	"fmt"
	"os"

	"github.com/spring-cli/spring/internal/fsops"
)

// LocalFetcher stages a bundle from a directory on the local filesystem.
// The directory is copied rather than used in place, so the caller can
// delete the staging tree without touching the original.
type LocalFetcher struct{}

func (f *LocalFetcher) Fetch(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(ref)
	if err != nil {
		return "", fmt.Errorf("source path %q: %w", ref, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("source path %q is not a directory", ref)
	}

	staging, err := newStagingDir()
	if err != nil {
		return "", err
	}

	if err := fsops.CopyTree(ref, staging); err != nil {
		os.RemoveAll(staging)
		return "", fmt.Errorf("staging %q: %w", ref, err)
	}

	return staging, nil
}
