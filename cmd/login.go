// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"mockauth/cli/internal/authstore"
)

// newLoginCmd installs a user in the store. Without flags the placeholder
// user is used; with any flag the user is built from the flags alone.
func newLoginCmd(a *app) *cobra.Command {
	var u authstore.User
	cmd := &cobra.Command{
		Use:     "login",
		Aliases: []string{"auth"},
		Short:   "Log in as the placeholder user or the given one",
		Long: `The login command replaces the current user. With no flags it installs the
placeholder user John Doe. With --name, --email or --avatar it installs exactly
the given fields; values are not validated and omitted fields stay empty.

Logging in while already logged in silently replaces the previous user.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("name") || flags.Changed("email") || flags.Changed("avatar") {
				a.store.Login(&u)
			} else {
				a.store.Login(nil)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&u.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&u.Email, "email", "", "Contact e-mail")
	cmd.Flags().StringVar(&u.Avatar, "avatar", "", "Avatar image URL")
	return cmd
}
