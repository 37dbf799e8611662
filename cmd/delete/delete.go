// cmd/delete/delete.go

package delete

import (
	"github.com/spf13/cobra"
)

// DeleteCmd groups resource-removing subcommands.
var DeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove deployed resources",
	Long:    "Remove resources deployed by nifictl.",
	Aliases: []string{"remove", "rm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
