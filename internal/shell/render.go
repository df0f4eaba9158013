// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package shell

import (
	"io"

	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"mockauth/cli/internal/authstore"
	"mockauth/cli/internal/logging"
)

// RenderStatus writes a one-line summary of snap.
func RenderStatus(w io.Writer, snap authstore.Snapshot) {
	if !snap.Authenticated {
		pterm.Fprintln(w, pterm.NewStyle(pterm.FgGray).Sprint("○ signed out"))
		return
	}
	pterm.Fprintln(w, pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("● signed in as "+snap.User.Name))
}

// RenderUser writes the fields of u, or a not-logged-in hint when u is nil.
func RenderUser(w io.Writer, u *authstore.User) {
	if u == nil {
		pterm.Fprintln(w, "🔒 You're not logged in yet!")
		pterm.Fprintln(w, "   Run 'login' to get started.")
		return
	}
	pterm.Fprintln(w, pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("👤 "+u.Name))
	pterm.Fprintln(w, "   email:  "+u.Email)
	pterm.Fprintln(w, "   avatar: "+u.Avatar)
}

// RenderError writes a masked error line.
func RenderError(w io.Writer, context string, err error) {
	pterm.Fprintln(w, pterm.NewStyle(pterm.FgRed).Sprint(logging.PresentError(context, err)))
}

// StatusRenderer returns a store observer that re-renders the status line on
// every change and logs the transition at debug level.
func StatusRenderer(w io.Writer, log *zap.Logger) authstore.Observer {
	if log == nil {
		log = zap.NewNop()
	}
	return func(snap authstore.Snapshot) {
		fields := []zap.Field{zap.Bool("authenticated", snap.Authenticated)}
		if snap.User != nil {
			fields = append(fields, zap.String("email", logging.Mask(snap.User.Email)))
		}
		log.Debug("auth state changed", fields...)
		RenderStatus(w, snap)
	}
}
