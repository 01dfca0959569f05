// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlievieth/decasify/internal/test"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, env map[string]string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	getenv := func(key string) string { return env[key] }
	cmd := newRootCommand(strings.NewReader(stdin), &stdout, &stderr, getenv)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestPositionalArgs(t *testing.T) {
	res := run(t, "", nil, "foo")
	require.NoError(t, res.err)
	assert.Equal(t, "Foo\n", res.stdout)

	res = run(t, "", nil, "once", "upon", "a", "time")
	require.NoError(t, res.err)
	assert.Equal(t, "Once Upon a Time\n", res.stdout)
}

func TestStdin(t *testing.T) {
	res := run(t, "foo", nil)
	require.NoError(t, res.err)
	assert.Equal(t, "Foo\n", res.stdout)

	res = run(t, "foo bar\nonce UPON a time\n\n  baz\n", nil, "-c", "sentence")
	require.NoError(t, res.err)
	assert.Equal(t, "Foo bar\nOnce upon a time\n\n  Baz\n", res.stdout)
}

func TestLocaleFlag(t *testing.T) {
	res := run(t, "", nil, "-l", "tr", "ilk")
	require.NoError(t, res.err)
	assert.Equal(t, "İlk\n", res.stdout)

	res = run(t, "", nil, "-l", "en", "ide")
	require.NoError(t, res.err)
	assert.Equal(t, "Ide\n", res.stdout)

	res = run(t, "", nil, "--locale=Türkçe", "--case", "upper", "ilk")
	require.NoError(t, res.err)
	assert.Equal(t, "İLK\n", res.stdout)
}

func TestStyleFlag(t *testing.T) {
	res := run(t, "", nil, "-s", "cmos", "Once UPON A time")
	require.NoError(t, res.err)
	assert.Equal(t, "Once upon a Time\n", res.stdout)
}

func TestOverridesFlag(t *testing.T) {
	res := run(t, "", nil, "-O", "fOO", "foo", "bar")
	require.NoError(t, res.err)
	assert.Equal(t, "fOO Bar\n", res.stdout)

	res = run(t, "", nil, "-O", "iPhone,GitHub", "-O", "npm", "an iphone github npm")
	require.NoError(t, res.err)
	assert.Equal(t, "An iPhone GitHub npm\n", res.stdout)

	res = run(t, "", nil, "-O", "foo bar", "foo")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "invalid overrides")
}

func TestEnvDefaults(t *testing.T) {
	env := map[string]string{
		envLocale:    "tr",
		envCase:      "title",
		envOverrides: "dAKİKA",
	}
	res := run(t, "", env, "ilk dakika")
	require.NoError(t, res.err)
	assert.Equal(t, "İlk dAKİKA\n", res.stdout)

	// flags win
	res = run(t, "", env, "-l", "en", "-O", "none", "ilk dakika")
	require.NoError(t, res.err)
	assert.Equal(t, "Ilk Dakika\n", res.stdout)

	res = run(t, "", map[string]string{envStyle: "mla"}, "foo")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, envStyle)
}

func TestInvalidArguments(t *testing.T) {
	for _, args := range [][]string{
		{"-l", "klingon", "foo"},
		{"-c", "camel", "foo"},
		{"-s", "bogus", "foo"},
		{"-l", "tr", "-s", "cmos", "foo"},
		{"--no-such-flag"},
	} {
		res := run(t, "", nil, args...)
		assert.Error(t, res.err, "args: %q", args)
		assert.Contains(t, res.stderr, "Error:", "args: %q", args)
		assert.Contains(t, res.stdout, "Usage:", "args: %q", args)
	}
}

func TestHelp(t *testing.T) {
	res := run(t, "", nil, "--help")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Usage:")
	assert.Contains(t, res.stdout, "--locale")
	assert.Contains(t, res.stdout, envLocale)
}

func TestVersion(t *testing.T) {
	res := run(t, "", nil, "--version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, version)
}

func TestAssociatedPressWarning(t *testing.T) {
	res := run(t, "", nil, "-s", "ap", "Once UPON A time")
	require.NoError(t, res.err)
	assert.Equal(t, "Once UPON A time\n", res.stdout)
	assert.Contains(t, res.stderr, "AP style guide not implemented")
}

func TestDebug(t *testing.T) {
	res := run(t, "foo\n", nil, "--debug")
	require.NoError(t, res.err)
	assert.Equal(t, "Foo\n", res.stdout)
	assert.Contains(t, res.stderr, "options")
}

// The progress bar is only shown on a terminal.
func TestProgressNotTerminal(t *testing.T) {
	res := run(t, "foo\nbar\n", nil, "--progress")
	require.NoError(t, res.err)
	assert.Equal(t, "Foo\nBar\n", res.stdout)
	assert.Empty(t, res.stderr)
}

// Run the shared conversion tests through the command line interface.
// Inputs spanning multiple lines are skipped since each line of stdin is
// converted on its own.
func TestConversions(t *testing.T) {
	for _, tt := range test.AllTests() {
		if strings.ContainsAny(tt.In, "\r\n") {
			continue
		}
		args := []string{"-c", tt.Case, "-l", tt.Locale}
		if tt.Style != "" {
			args = append(args, "-s", tt.Style)
		}
		for _, o := range tt.Overrides {
			args = append(args, "-O", o)
		}
		res := run(t, tt.In, nil, args...)
		if !assert.NoError(t, res.err, "%s: %q", tt, tt.In) {
			continue
		}
		want := tt.Out + "\n"
		if tt.In == "" {
			want = ""
		}
		assert.Equal(t, want, res.stdout, "%s: %q", tt, tt.In)
	}
}
