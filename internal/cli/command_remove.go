package cli

import (
	"github.com/spf13/cobra"
	"github.com/spring-cli/spring/internal/registry"
)

var removePath string

var commandRemoveCmd = &cobra.Command{
	Use:   "remove <command-name> <sub-command-name>",
	Short: "Remove a user-defined command",
	Long: `Delete one sub-command of a user-defined command, including its action
and metadata files. The parent command directory is kept even when the
removal leaves it empty.`,
	Example: `  spring command remove greet hi`,
	Args:    cobra.ExactArgs(2),
	RunE:    runCommandRemove,
}

func init() {
	commandCmd.AddCommand(commandRemoveCmd)
	commandRemoveCmd.Flags().StringVar(&removePath, "path", "", "Project path (default: current directory)")
}

func runCommandRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(removePath)
	if err != nil {
		return err
	}

	projectRoot, err := registry.ResolveProject(removePath)
	if err != nil {
		return err
	}

	l, err := acquireLock(projectRoot)
	if err != nil {
		return err
	}
	defer l.Release()

	return registry.Remove(args[0], args[1], projectRoot, newPrinter(cmd, cfg))
}
