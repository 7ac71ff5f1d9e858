package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	apperrors "github.com/spring-cli/spring/internal/errors"
	"github.com/spring-cli/spring/internal/progress"
	"github.com/spring-cli/spring/internal/registry"
	"github.com/spring-cli/spring/internal/source"
)

var (
	addFrom string
	addPath string
)

var commandAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add user-defined commands from a source reference",
	Long: `Fetch a command bundle from a source reference and merge it into the
project. The reference can be a local path, a git URL (optionally with a
'#branch' suffix), or an HTTP(S) URL of a .zip or .tar.gz archive.

Paths present in both the bundle and the project are overwritten with the
bundle's version; everything else in the project is left untouched.`,
	Example: `  # From a git repository
  spring command add --from https://github.com/acme/job-commands

  # From a branch of that repository
  spring command add --from https://github.com/acme/job-commands#v2

  # From an archive URL
  spring command add --from https://example.com/bundles/jobs.tar.gz

  # From a directory on disk
  spring command add --from ../shared-commands`,
	RunE: runCommandAdd,
}

func init() {
	commandCmd.AddCommand(commandAddCmd)
	commandAddCmd.Flags().StringVar(&addFrom, "from", "", "Source reference to add commands from (required)")
	commandAddCmd.Flags().StringVar(&addPath, "path", "", "Project path (default: current directory)")
}

func runCommandAdd(cmd *cobra.Command, args []string) error {
	if addFrom == "" {
		return apperrors.MissingSourceRef()
	}

	cfg, err := loadConfig(addPath)
	if err != nil {
		return err
	}

	fetcher, err := source.Resolve(addFrom, source.Options{GitCmd: cfg.GitCmd})
	if err != nil {
		return apperrors.FetchFailed(addFrom, err)
	}

	projectRoot, err := registry.ResolveProject(addPath)
	if err != nil {
		return err
	}

	l, err := acquireLock(projectRoot)
	if err != nil {
		return err
	}
	defer l.Release()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.FetchTimeout)*time.Second)
	defer cancel()

	wrapped := &progressFetcher{
		inner:     fetcher,
		indicator: progress.NewIndicator(cfg.ShowProgress),
	}

	return registry.AddFromSource(ctx, wrapped, addFrom, projectRoot, newPrinter(cmd, cfg))
}

// progressFetcher shows a spinner for the duration of the fetch, the only
// potentially slow step of an add.
type progressFetcher struct {
	inner     source.Fetcher
	indicator *progress.Indicator
}

func (f *progressFetcher) Fetch(ctx context.Context, ref string) (string, error) {
	f.indicator.Start("Retrieving " + ref)
	defer f.indicator.Stop()
	return f.inner.Fetch(ctx, ref)
}
