// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockauth/cli/internal/authstore"
	apperrors "mockauth/cli/internal/errors"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "single word", line: "logout", want: []string{"logout"}},
		{name: "extra spaces", line: "  login   --name  Ana ", want: []string{"login", "--name", "Ana"}},
		{name: "double quotes", line: `login --name "John Smith"`, want: []string{"login", "--name", "John Smith"}},
		{name: "single quotes keep backslash", line: `login --name 'a\b'`, want: []string{"login", "--name", `a\b`}},
		{name: "escaped space", line: `login --name Ana\ Lee`, want: []string{"login", "--name", "Ana Lee"}},
		{name: "empty quoted arg", line: `login --name ""`, want: []string{"login", "--name", ""}},
		{name: "tab separated", line: "whoami\t--help", want: []string{"whoami", "--help"}},
		{name: "quoted email", line: `login --email 'a@x.com'`, want: []string{"login", "--email", "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	for _, line := range []string{`login --name "Ana`, `login --name 'Ana`, `login \`, "   ", "# only a comment"} {
		_, err := Tokenize(line)
		require.Error(t, err, line)
		assert.Equal(t, apperrors.InvalidArguments, apperrors.KindOf(err))
	}
}

func runShell(t *testing.T, input string, d Dispatcher) string {
	t.Helper()
	var out bytes.Buffer
	interactive := false
	s := &Shell{
		In:          strings.NewReader(input),
		Out:         &out,
		Prompt:      "> ",
		Dispatcher:  d,
		Interactive: &interactive,
	}
	require.NoError(t, s.Run(context.Background()))
	return out.String()
}

func TestShell_DispatchesLinesInOrder(t *testing.T) {
	var got [][]string
	d := DispatcherFunc(func(_ context.Context, args []string) error {
		got = append(got, args)
		return nil
	})

	runShell(t, "login\n\n# comment\nwhoami --verbose\nlogout\n", d)

	assert.Equal(t, [][]string{{"login"}, {"whoami", "--verbose"}, {"logout"}}, got)
}

func TestShell_StopsAtExit(t *testing.T) {
	calls := 0
	d := DispatcherFunc(func(context.Context, []string) error {
		calls++
		return nil
	})

	runShell(t, "login\nexit\nlogout\n", d)

	assert.Equal(t, 1, calls)
}

func TestShell_ContinuesAfterErrors(t *testing.T) {
	calls := 0
	d := DispatcherFunc(func(_ context.Context, args []string) error {
		calls++
		if args[0] == "bogus" {
			return apperrors.New(apperrors.UnknownCommand, "bogus")
		}
		return nil
	})

	out := runShell(t, "bogus\nlogin \"unterminated\nlogout\n", d)

	assert.Equal(t, 2, calls)
	assert.Contains(t, out, "bogus: unknown_command: bogus")
	assert.Contains(t, out, "parse: invalid_arguments: split command line")
}

func TestShell_PromptWhenInteractive(t *testing.T) {
	var out bytes.Buffer
	interactive := true
	s := &Shell{
		In:          strings.NewReader("logout\n"),
		Out:         &out,
		Prompt:      "auth> ",
		Dispatcher:  DispatcherFunc(func(context.Context, []string) error { return nil }),
		Interactive: &interactive,
	}

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, 2, strings.Count(out.String(), "auth> "))
}

func TestShell_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &Shell{
		In:         strings.NewReader("login\n"),
		Out:        &bytes.Buffer{},
		Dispatcher: DispatcherFunc(func(context.Context, []string) error { return nil }),
	}

	assert.True(t, errors.Is(s.Run(ctx), context.Canceled))
}

func TestStatusRenderer_RendersEveryChange(t *testing.T) {
	var out bytes.Buffer
	store := authstore.New()
	store.Subscribe(StatusRenderer(&out, nil))

	store.Login(nil)
	store.Logout()
	store.Logout()

	text := out.String()
	assert.Contains(t, text, "signed in as John Doe")
	assert.Equal(t, 1, strings.Count(text, "signed out"))
}

func TestRenderUser(t *testing.T) {
	var out bytes.Buffer
	RenderUser(&out, nil)
	assert.Contains(t, out.String(), "not logged in")

	out.Reset()
	u := authstore.DefaultUser()
	RenderUser(&out, &u)
	assert.Contains(t, out.String(), "John Doe")
	assert.Contains(t, out.String(), "john.doe@example.com")
	assert.Contains(t, out.String(), authstore.DefaultUserAvatar)
}
