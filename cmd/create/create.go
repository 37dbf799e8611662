// cmd/create/create.go

package create

import (
	"github.com/spf13/cobra"
)

// CreateCmd groups resource-creating subcommands.
var CreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create and deploy resources",
	Long:    "Create and deploy resources managed by nifictl.",
	Aliases: []string{"deploy", "add"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
