// Package source resolves a source reference into a staged bundle: a
// temporary local directory tree the caller may freely read, mutate, and
// eventually delete. References can be local paths, git URLs (optionally
// with a '#branch' fragment), or HTTP(S) archive URLs.
package source

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Fetcher resolves a source reference into a staging directory. The
// returned directory is owned by the caller; release is the caller's
// responsibility.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) (string, error)
}

// Options configures fetcher construction.
type Options struct {
	// GitCmd is the git executable to invoke, "git" by default.
	GitCmd string
}

// Resolve picks a fetcher implementation from the shape of the reference:
// archive URLs download and extract, other URLs and scp-style addresses
// clone with git, everything else is treated as a local path.
func Resolve(ref string, opts Options) (Fetcher, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty source reference")
	}

	switch {
	case isArchiveURL(ref):
		return &ArchiveFetcher{}, nil
	case isGitRef(ref):
		gitCmd := opts.GitCmd
		if gitCmd == "" {
			gitCmd = "git"
		}
		return &GitFetcher{GitCmd: gitCmd}, nil
	default:
		return &LocalFetcher{}, nil
	}
}

func isArchiveURL(ref string) bool {
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		return false
	}
	// Strip a '#fragment' before inspecting the extension.
	if i := strings.Index(ref, "#"); i >= 0 {
		ref = ref[:i]
	}
	return strings.HasSuffix(ref, ".zip") ||
		strings.HasSuffix(ref, ".tar.gz") ||
		strings.HasSuffix(ref, ".tgz")
}

func isGitRef(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "git@") ||
		strings.HasPrefix(ref, "ssh://")
}

// newStagingDir creates a fresh staging directory for one fetch.
func newStagingDir() (string, error) {
	dir, err := os.MkdirTemp("", "spring-command-*")
	if err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}
	return dir, nil
}

// splitFragment separates 'url#ref' into its URL and ref parts. The ref is
// empty when no fragment is present.
func splitFragment(ref string) (string, string) {
	if i := strings.Index(ref, "#"); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}
