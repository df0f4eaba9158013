// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"

	apperrors "mockauth/cli/internal/errors"
)

// hints tells the user what to do next for each error kind the shell can hit.
var hints = map[apperrors.Kind]string{
	apperrors.UnknownCommand:   "Run 'help' to list the available commands.",
	apperrors.InvalidArguments: `Quote values that contain spaces, e.g. login --name "Ana Lee".`,
	apperrors.ConfigLoad:       "Fix or remove config.json in the mockauth config directory (mockauth config path).",
	apperrors.LoggerInit:       "Log levels: debug, info, warn, error. Encodings: console, json.",
}

// PresentError formats err for the terminal: the masked message prefixed with
// context, followed by a hint line when the error kind has one.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %s", context, Mask(err.Error()))
	if hint, ok := hints[apperrors.KindOf(err)]; ok {
		msg += "\n   " + hint
	}
	return msg
}
