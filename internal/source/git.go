package source

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitFetcher stages a bundle by cloning a git repository. A '#branch'
// fragment on the reference selects a branch or tag; otherwise the remote
// default branch is used. The clone is shallow and the .git directory is
// stripped so the staging tree is plain files.
type GitFetcher struct {
	GitCmd string
}

func (f *GitFetcher) Fetch(ctx context.Context, ref string) (string, error) {
	url, branch := splitFragment(ref)

	staging, err := newStagingDir()
	if err != nil {
		return "", err
	}

	args := []string{"clone", "--depth", "1"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, staging)

	cmd := exec.CommandContext(ctx, f.GitCmd, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		os.RemoveAll(staging)
		return "", fmt.Errorf("git clone %s: %w: %s", url, err, firstLine(output))
	}

	// The bundle is the working tree, not the repository.
	if err := os.RemoveAll(filepath.Join(staging, ".git")); err != nil {
		os.RemoveAll(staging)
		return "", fmt.Errorf("stripping .git from staged clone: %w", err)
	}

	return staging, nil
}

func firstLine(output []byte) string {
	s := strings.TrimSpace(string(output))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
