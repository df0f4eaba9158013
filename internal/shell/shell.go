// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package shell runs the interactive command loop that drives the auth store.
//
// Each input line is tokenized and handed to a Dispatcher. Lines are handled
// one at a time on the calling goroutine, so every command and the observer
// notifications it triggers finish before the next line is read.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"go.uber.org/zap"
	"golang.org/x/term"

	apperrors "mockauth/cli/internal/errors"
	"mockauth/cli/internal/logging"
)

// Dispatcher executes one tokenized command line.
type Dispatcher interface {
	Dispatch(ctx context.Context, args []string) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, args []string) error

func (f DispatcherFunc) Dispatch(ctx context.Context, args []string) error { return f(ctx, args) }

// Shell reads command lines from In and writes prompts and errors to Out.
type Shell struct {
	In         io.Reader
	Out        io.Writer
	Prompt     string
	Dispatcher Dispatcher
	Logger     *zap.Logger

	// Interactive forces the prompt on or off. When nil it is shown only if In is a terminal.
	Interactive *bool
}

// Run processes lines until EOF, an exit command or ctx cancellation.
// Errors from individual commands are printed and do not stop the loop.
func (s *Shell) Run(ctx context.Context) error {
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = logging.WithSessionID(ctx, log)
	interactive := s.isInteractive()

	scanner := bufio.NewScanner(s.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if interactive {
			fmt.Fprint(s.Out, s.Prompt)
		}
		if !scanner.Scan() {
			if interactive {
				fmt.Fprintln(s.Out)
			}
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			log.Debug("shell exit requested")
			return nil
		}

		args, err := Tokenize(line)
		if err != nil {
			RenderError(s.Out, "parse", err)
			continue
		}
		log.Debug("dispatch", zap.String("command", args[0]), zap.Int("args", len(args)-1))
		if err := s.Dispatcher.Dispatch(ctx, args); err != nil {
			log.Debug("command failed", zap.String("command", args[0]), zap.String("error", logging.Mask(err.Error())))
			RenderError(s.Out, args[0], err)
		}
	}
}

func (s *Shell) isInteractive() bool {
	if s.Interactive != nil {
		return *s.Interactive
	}
	f, ok := s.In.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Tokenize splits a line into words with POSIX shell quoting: single and
// double quotes group words and a backslash escapes the next character.
func Tokenize(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.InvalidArguments, "split command line", err)
	}
	if len(args) == 0 {
		return nil, apperrors.New(apperrors.InvalidArguments, "empty command")
	}
	return args, nil
}
