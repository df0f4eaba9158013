// Package errors defines typed errors with categories for user-friendly reporting.
// The auth store itself never fails; these errors come from the command surface
// around it (shell input, configuration, logger setup).
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// UnknownCommand indicates shell input that names no command.
	UnknownCommand Kind = "unknown_command"
	// InvalidArguments indicates input that could not be tokenized or parsed.
	InvalidArguments Kind = "invalid_arguments"
	// ConfigLoad indicates the configuration file could not be read or decoded.
	ConfigLoad Kind = "config_load"
	// LoggerInit indicates the logger could not be built from configuration.
	LoggerInit Kind = "logger_init"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

// Is matches any *E with the same kind, so errors.Is(err, New(kind, "")) works.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	return ok && t.Kind == e.Kind
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of the first *E in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
