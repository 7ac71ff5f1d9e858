package cli

import (
	"github.com/spf13/cobra"
)

var commandCmd = &cobra.Command{
	Use:   "command",
	Short: "Manage user-defined commands",
	Long: `Commands for creating, adding, listing, and removing user-defined
commands. User-defined commands live under .spring/commands in a project.`,
}

func init() {
	rootCmd.AddCommand(commandCmd)
}
