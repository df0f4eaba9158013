// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLogoutCmd clears the current user. Running it while logged out is not an error.
func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.store.IsAuthenticated() {
				a.log.Debug("logout skipped: not logged in")
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in; nothing to clear")
				return nil
			}
			a.store.Logout()
			return nil
		},
	}
}
