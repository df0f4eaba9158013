// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mockauth/cli/internal/config"
	"mockauth/cli/internal/logging"
)

// newConfigCmd reads and writes config.json. Only settings are stored there;
// the current user never is.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change mockauth settings",
		Long: `The config command manages config.json in the mockauth config directory.

Keys: prompt, log.level, log.encoding, verbose.
Environment variables (MOCKAUTH_*) and .env still override the file at startup.`,
		// Settings must stay editable even when the current ones fail to load.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := config.Path()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := config.Load()
				if err != nil {
					return err
				}
				for _, key := range config.Keys {
					v, _ := c.Get(key)
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", key, v)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Store a setting in config.json",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := config.LoadFile()
				if err != nil {
					return err
				}
				if err := c.Set(args[0], args[1]); err != nil {
					return err
				}
				// Reject settings the logger could not start with.
				if _, err := logging.NewWithWriter(logging.Config{Level: c.Log.Level, Encoding: c.Log.Encoding}, io.Discard); err != nil {
					return err
				}
				if err := config.Save(c); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", args[0], args[1])
				return nil
			},
		},
	)
	return cmd
}
