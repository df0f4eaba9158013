// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the structured logger and helpers for keeping
// personal data and secrets out of log lines and user-facing errors.
package logging

import (
	"regexp"
)

var (
	reEmail    = regexp.MustCompile(`([A-Za-z0-9._%+-])[A-Za-z0-9._%+-]*(@[A-Za-z0-9.-]+)`)
	rePassword = regexp.MustCompile(`(?i)(password=)([^\s;]+)`)
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
)

// Mask hides sensitive values in s. E-mail addresses keep their first character
// and domain ("j***@example.com"); passwords and tokens are replaced with "***".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reEmail.ReplaceAllString(out, "$1***$2")
	return out
}
