package cli

import (
	"github.com/spf13/cobra"
	"github.com/spring-cli/spring/internal/registry"
)

var newPath string

var commandNewCmd = &cobra.Command{
	Use:   "new [command-name] [sub-command-name]",
	Short: "Create a new user-defined command",
	Long: `Create the directory structure, action file, and command metadata file
for a new user-defined command.

Existing files at the two template names are overwritten.`,
	Example: `  # Scaffold the default hello/new command in the current project
  spring command new

  # Scaffold greet/hi in another project
  spring command new greet hi --path ../other-project`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCommandNew,
}

func init() {
	commandCmd.AddCommand(commandNewCmd)
	commandNewCmd.Flags().StringVar(&newPath, "path", "", "Project path (default: current directory)")
}

func runCommandNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(newPath)
	if err != nil {
		return err
	}

	commandName := cfg.DefaultCommand
	subCommandName := cfg.DefaultSubCommand
	if len(args) > 0 {
		commandName = args[0]
	}
	if len(args) > 1 {
		subCommandName = args[1]
	}

	projectRoot, err := registry.ResolveProject(newPath)
	if err != nil {
		return err
	}

	l, err := acquireLock(projectRoot)
	if err != nil {
		return err
	}
	defer l.Release()

	return registry.CreateScaffold(commandName, subCommandName, projectRoot, newPrinter(cmd, cfg))
}
