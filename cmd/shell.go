// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"mockauth/cli/internal/logging"
	"mockauth/cli/internal/shell"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively against one in-memory store",
		Long: `The shell reads one command per line (login, logout, whoami, status, version)
and runs it against the store of this process. The status line is re-rendered
after every change. Type 'exit' or press Ctrl-D to leave.

Log verbosity is chosen when the shell starts (mockauth --verbose shell);
--verbose on a line inside the shell is accepted and ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, a)
		},
	}
}

func runShell(cmd *cobra.Command, a *app) error {
	ctx := logging.ContextWithSessionID(cmd.Context(), uuid.NewString())

	// Commands and the status observer log through a.log while the shell runs.
	base := a.log
	a.log = logging.WithSessionID(ctx, base)
	defer func() { a.log = base }()
	a.log.Debug("shell started")

	pterm.Fprintln(a.out, pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("mockauth shell"))
	shell.RenderStatus(a.out, a.store.Snapshot())

	sh := &shell.Shell{
		In:         cmd.InOrStdin(),
		Out:        a.out,
		Prompt:     a.cfg.Prompt,
		Dispatcher: shell.DispatcherFunc(a.dispatch),
		Logger:     base,
	}
	return sh.Run(ctx)
}
