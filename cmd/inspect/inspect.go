// cmd/inspect/inspect.go

package inspect

import (
	"github.com/spf13/cobra"
)

// InspectCmd groups read-only status subcommands.
var InspectCmd = &cobra.Command{
	Use:     "inspect",
	Short:   "Inspect deployed resources",
	Long:    "Report the state of resources deployed by nifictl.",
	Aliases: []string{"status", "get"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
