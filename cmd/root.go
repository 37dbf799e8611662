/* cmd/root.go */

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Subcommands
	"github.com/CodeMonkeyCybersecurity/nifictl/cmd/create"
	"github.com/CodeMonkeyCybersecurity/nifictl/cmd/delete"
	"github.com/CodeMonkeyCybersecurity/nifictl/cmd/inspect"

	// Internal packages
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_err"
)

// RootCmd is the base command for nifictl.
var RootCmd = &cobra.Command{
	Use:   "nifictl",
	Short: "nifictl deploys and manages Apache NiFi containers on Docker",
	Long: `nifictl is a command-line application for deploying Apache NiFi onto a Docker
daemon: it provisions persistent volumes, reconciles conflicting containers,
and launches NiFi in plaintext HTTP mode or TLS mode with a locally built
image carrying keystore/truststore material.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("⚠️  No subcommand provided. Try `nifictl help`.")
		return cmd.Help()
	},
}

// HelpCmd wraps help so that it can be invoked like a normal command.
var HelpCmd = &cobra.Command{
	Use:   "help",
	Short: "Help about any command",
	Long:  "Displays help for nifictl or a specific subcommand.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return RootCmd.Help()
		}
		c, _, err := RootCmd.Find(args)
		if err != nil || c == nil {
			return fmt.Errorf("command not found: %s", strings.Join(args, " "))
		}
		return c.Help()
	},
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	RootCmd.SetHelpCommand(HelpCmd)

	for _, subCmd := range []*cobra.Command{
		create.CreateCmd,
		delete.DeleteCmd,
		inspect.InspectCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute initializes and runs the root command.
func Execute() {
	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Failed to flush logs: %v\n", err)
		}
	}()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		if nifi_err.IsExpectedUserError(err) {
			logger.L().Warn("CLI completed with user error", zap.Error(err))
		} else {
			logger.L().Error("CLI execution error", zap.Error(err))
		}
		os.Exit(1)
	}
}
