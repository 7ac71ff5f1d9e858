package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spring-cli/spring/internal/config"
	apperrors "github.com/spring-cli/spring/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage spring configuration",
	Long: `Commands for inspecting and initializing spring configuration.

Configuration is read from SPRING_* environment variables, the project's
.spring/config.json, and the global ~/.spring/config.json, in that order.`,
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the global config file with default values",
	Example: `  spring config init

  # Overwrite an existing config file
  spring config init --force`,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.GlobalConfigPath()
	if path == "" {
		return apperrors.NewConfigError("could not determine the user home directory")
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return apperrors.NewConfigError(
			fmt.Sprintf("config file %s already exists", path),
			"pass --force to overwrite it",
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.Wrap(err, apperrors.Configuration)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0644); err != nil {
		return apperrors.Wrap(err, apperrors.Configuration)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "default_command:     %s\n", cfg.DefaultCommand)
	fmt.Fprintf(out, "default_sub_command: %s\n", cfg.DefaultSubCommand)
	fmt.Fprintf(out, "fetch_timeout:       %d\n", cfg.FetchTimeout)
	fmt.Fprintf(out, "show_progress:       %t\n", cfg.ShowProgress)
	fmt.Fprintf(out, "no_color:            %t\n", cfg.NoColor)
	fmt.Fprintf(out, "git_cmd:             %s\n", cfg.GitCmd)
	return nil
}
