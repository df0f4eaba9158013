// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for mockauth.
// It exposes the in-memory auth store through login, logout, whoami and status
// commands and an interactive shell in which those commands share one store
// for the lifetime of the process.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// rootCmd is the base command. Without a subcommand it starts the shell.
var rootCmd = newRootCmd(newApp(os.Stdout))

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "mockauth",
		Short: "Mock authentication state for UI development",
		Long: `mockauth keeps a fake "current user" in memory. Login installs a placeholder
or the given user, logout clears it. Nothing is verified, stored or sent anywhere.

State lives only as long as the process, so run 'mockauth' (or 'mockauth shell')
to issue several commands against the same store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, a)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	addStoreCommands(root, a)
	root.AddCommand(newShellCmd(a), newConfigCmd())
	return root
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
