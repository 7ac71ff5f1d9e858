package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spring-cli/spring/internal/registry"
)

var listPath string

var commandListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user-defined commands",
	Long: `List every user-defined command and sub-command in the project, with
the description from each sub-command's metadata file.`,
	Example: `  spring command list`,
	Args:    cobra.NoArgs,
	RunE:    runCommandList,
}

func init() {
	commandCmd.AddCommand(commandListCmd)
	commandListCmd.Flags().StringVar(&listPath, "path", "", "Project path (default: current directory)")
}

func runCommandList(cmd *cobra.Command, args []string) error {
	entries, err := registry.List(listPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No user-defined commands found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMMAND\tSUB-COMMAND\tDESCRIPTION")
	for _, entry := range entries {
		desc := entry.Description
		if desc == "" {
			desc = "(no description)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Command, entry.SubCommand, desc)
	}
	return w.Flush()
}
