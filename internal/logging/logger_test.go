// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mockauth/cli/internal/errors"
)

func TestNewWithWriter_JSONIncludesSessionID(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(Config{Level: "debug", Encoding: "json"}, &buf)
	require.NoError(t, err)

	ctx := ContextWithSessionID(context.Background(), "abc-123")
	WithSessionID(ctx, log).Debug("login")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "login", line["msg"])
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "abc-123", line["session_id"])
	assert.Contains(t, line, "timestamp")
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriter_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "bad level", cfg: Config{Level: "loud"}},
		{name: "bad encoding", cfg: Config{Encoding: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithWriter(tt.cfg, &bytes.Buffer{})
			require.Error(t, err)
			assert.Equal(t, apperrors.LoggerInit, apperrors.KindOf(err))
		})
	}
}

func TestWithSessionID_NoIDReturnsBase(t *testing.T) {
	log, err := NewWithWriter(Config{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Same(t, log, WithSessionID(context.Background(), log))
}

func TestPresentError(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			context:  "login",
			expected: "",
		},
		{
			name:     "plain error is masked without hint",
			context:  "login",
			err:      errors.New("bad input from a@x.com"),
			expected: "login: bad input from a***@x.com",
		},
		{
			name:     "unknown command suggests help",
			context:  "signin",
			err:      apperrors.New(apperrors.UnknownCommand, "signin"),
			expected: "signin: unknown_command: signin\n   Run 'help' to list the available commands.",
		},
		{
			name:     "invalid arguments show quoting rule",
			context:  "parse",
			err:      apperrors.New(apperrors.InvalidArguments, "empty command"),
			expected: "parse: invalid_arguments: empty command\n   Quote values that contain spaces, e.g. login --name \"Ana Lee\".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PresentError(tt.context, tt.err))
		})
	}
}
