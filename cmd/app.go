// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mockauth/cli/internal/authstore"
	"mockauth/cli/internal/config"
	apperrors "mockauth/cli/internal/errors"
	"mockauth/cli/internal/logging"
	"mockauth/cli/internal/shell"
)

// app carries the dependencies shared by all commands of one process.
// The store is injected here once and handed to every command explicitly.
type app struct {
	out   io.Writer
	store *authstore.Store
	log   *zap.Logger
	cfg   config.Config
}

func newApp(out io.Writer) *app {
	return &app{out: out, log: zap.NewNop(), cfg: config.Defaults()}
}

// setup loads configuration and the logger, then attaches the process-wide
// store. It is a no-op once a store is attached.
func (a *app) setup(verbose bool) error {
	if a.store != nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if verbose || cfg.Verbose {
		cfg.Log.Level = "debug"
	}
	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log

	a.attach(authstore.Default())
	return nil
}

// attach wires s into the app and re-renders the status line on every change.
func (a *app) attach(s *authstore.Store) {
	a.store = s
	s.Subscribe(a.renderStatus)
}

// renderStatus resolves a.log on each change so a logger swapped in later
// (the session-scoped one in the shell) is the one that records it.
func (a *app) renderStatus(snap authstore.Snapshot) {
	shell.StatusRenderer(a.out, a.log)(snap)
}

// dispatch runs one shell line against a fresh command tree so flag values
// never carry over from a previous line.
func (a *app) dispatch(ctx context.Context, args []string) error {
	tree := newCommandTree(a)
	if isCommandName(args[0]) {
		if sub, _, err := tree.Find(args); err != nil || sub == tree {
			return apperrors.New(apperrors.UnknownCommand, args[0])
		}
	}
	tree.SetArgs(args)
	tree.SetOut(a.out)
	tree.SetErr(a.out)
	return tree.ExecuteContext(ctx)
}

// newCommandTree builds the commands available inside the shell.
func newCommandTree(a *app) *cobra.Command {
	tree := &cobra.Command{
		Use:           "mockauth",
		Short:         "Mock authentication state",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// Verbosity is fixed when the shell starts; the flag is accepted so lines
	// copied from one-shot invocations still run.
	var ignored bool
	tree.PersistentFlags().BoolVarP(&ignored, "verbose", "v", false, "Ignored inside the shell; pass it when starting mockauth")
	addStoreCommands(tree, a)
	return tree
}

func addStoreCommands(parent *cobra.Command, a *app) {
	parent.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newStatusCmd(a),
		newVersionCmd(),
	)
}

func isCommandName(s string) bool {
	return s != "help" && s != "completion" && len(s) > 0 && s[0] != '-'
}
