// Package cli provides the Cobra-based command surface for spring. It wires
// the provisioning engines in internal/registry to user-facing commands
// (command new/add/remove/list) plus configuration management and version
// reporting.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spring-cli/spring/internal/build"
	"github.com/spring-cli/spring/internal/config"
	apperrors "github.com/spring-cli/spring/internal/errors"
	"github.com/spring-cli/spring/internal/lock"
	"github.com/spring-cli/spring/internal/term"
)

var rootCmd = &cobra.Command{
	Use:   "spring",
	Short: "spring CLI",
	Long: `spring CLI

Manage user-defined commands for a project. Commands live under
.spring/commands and can be scaffolded locally or added from a shared
source such as a git repository or an archive URL.`,
	Example: `  # Scaffold a new user-defined command
  spring command new greet hi

  # Add commands shared by another project
  spring command add --from https://github.com/acme/job-commands

  # See what is defined
  spring command list

  # Remove a sub-command
  spring command remove greet hi`,
	Version:       build.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors are printed here, formatted with
// their remediation steps when available.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var cliErr *apperrors.CLIError
		if errors.As(err, &cliErr) {
			apperrors.PrintError(cliErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cliErr *apperrors.CLIError
	if errors.As(err, &cliErr) {
		switch cliErr.Category {
		case apperrors.Argument:
			return ExitInvalidArguments
		case apperrors.Configuration:
			return ExitConfigurationError
		case apperrors.Fetch:
			return ExitFetchFailed
		case apperrors.Provisioning:
			return ExitProvisioningFailed
		}
	}
	return ExitFailure
}

// loadConfig loads the effective configuration for a project path. The
// project-local file sits next to the command registry.
func loadConfig(projectPath string) (*config.Configuration, error) {
	localPath := filepath.Join(projectPath, ".spring", "config.json")
	if projectPath == "" {
		localPath = filepath.Join(".spring", "config.json")
	}

	cfg, err := config.Load(localPath)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Configuration,
			"check .spring/config.json and SPRING_* environment variables")
	}
	return cfg, nil
}

// acquireLock takes the registry lock for a project, mapping failure to a
// provisioning error.
func acquireLock(projectRoot string) (*lock.RegistryLock, error) {
	l, err := lock.Acquire(projectRoot)
	if err != nil {
		return nil, apperrors.LockFailed(filepath.Join(projectRoot, ".spring", ".lock"), err)
	}
	return l, nil
}

// newPrinter builds the output sink for a command invocation.
func newPrinter(cmd *cobra.Command, cfg *config.Configuration) term.Printer {
	if cfg != nil && cfg.NoColor {
		return term.NewPlainPrinter(cmd.OutOrStdout())
	}
	return term.NewPrinter(cmd.OutOrStdout())
}
