package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	apperrors "github.com/spring-cli/spring/internal/errors"
	"github.com/spring-cli/spring/internal/fsops"
	"github.com/spring-cli/spring/internal/source"
	"github.com/spring-cli/spring/internal/term"
)

// ClosingHint is the fixed line every add report ends with.
const ClosingHint = "Execute 'spring help' for more information on User-defined commands."

// AddFromSource fetches a bundle for sourceRef, merges the staged tree into
// projectRoot (union of trees, staged version wins on conflict), and emits
// a report describing which commands were introduced.
//
// The staged bundle is released on every exit path; a failed release is a
// warning, never an error. A fetch failure aborts before any filesystem
// mutation. A copy failure aborts without rolling back files already
// copied.
func AddFromSource(ctx context.Context, fetcher source.Fetcher, sourceRef, projectRoot string, out term.Printer) error {
	projectRoot, err := ResolveProject(projectRoot)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Provisioning)
	}

	staging, err := fetcher.Fetch(ctx, sourceRef)
	if err != nil {
		return apperrors.FetchFailed(sourceRef, err)
	}
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			out.Warnf("could not delete staging directory %s: %v", staging, err)
		}
	}()

	if err := fsops.CopyTree(staging, projectRoot); err != nil {
		return apperrors.AddFailed(projectRoot, err)
	}

	report := buildReport(staging, projectRoot)
	out.Block(report)
	return nil
}

// buildReport lists the commands the staged bundle introduced, in
// lexicographic order, plus a pointer to each command's README when the
// bundle shipped one at the project root.
func buildReport(staging, projectRoot string) []string {
	var report []string

	names := stagedCommandNames(staging)
	for _, name := range names {
		report = append(report, fmt.Sprintf("Command %s added.", name))
	}
	for _, name := range names {
		// Bundles name README files after the command they document,
		// already suffixed, copied to the project root with the rest
		// of the tree.
		readme := fmt.Sprintf("README-%s.md", name)
		if fsops.Exists(filepath.Join(projectRoot, readme)) {
			report = append(report, fmt.Sprintf("Refer to %s for more information.", readme))
		}
	}

	return append(report, ClosingHint)
}

// stagedCommandNames enumerates the immediate subdirectories of the staged
// bundle's commands subtree. A bundle without one yields no names.
func stagedCommandNames(staging string) []string {
	entries, err := os.ReadDir(Dir(staging))
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}
