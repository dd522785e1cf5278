package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinfer/minire/internal/errors"
)

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func execute(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&app{fs: fs, skipUserConfig: true})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"patterns.txt": "a*b\n(a|b)c\n*x\nab\n",
		"targets.txt":  "aab\nbc\nx\nabc\n",
		"short.txt":    "aab\n",
	})

	t.Run("verdict per line", func(t *testing.T) {
		out, _, err := execute(t, fs, "patterns.txt", "targets.txt", "--format", "text")
		require.NoError(t, err)
		assert.Equal(t, "YES\nYES\nSYNTAX ERROR\nNO\n", out)
	})

	t.Run("auto is plain text off a terminal", func(t *testing.T) {
		out, _, err := execute(t, fs, "patterns.txt", "targets.txt")
		require.NoError(t, err)
		assert.Equal(t, "YES\nYES\nSYNTAX ERROR\nNO\n", out)
	})

	t.Run("stops at shorter file", func(t *testing.T) {
		out, _, err := execute(t, fs, "patterns.txt", "short.txt", "--format", "text")
		require.NoError(t, err)
		assert.Equal(t, "YES\n", out)
	})

	t.Run("json lines", func(t *testing.T) {
		out, _, err := execute(t, fs, "patterns.txt", "targets.txt", "--format", "json")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		var first map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
		assert.Equal(t, "YES", first["verdict"])
		assert.Equal(t, "a*b", first["pattern"])
	})
}

func TestRootCmdArgumentCount(t *testing.T) {
	fs := newTestFs(t, map[string]string{"p": "a\n", "t": "a\n"})

	for _, args := range [][]string{
		{},
		{"p"},
		{"p", "t", "extra"},
	} {
		out, _, err := execute(t, fs, args...)
		require.Error(t, err, "args %v", args)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgs))
		assert.Contains(t, err.Error(), "usage: minire PATTERNS TARGETS")
		assert.Empty(t, out)
	}
}

func TestRootCmdMissingFile(t *testing.T) {
	fs := newTestFs(t, map[string]string{"p": "a\nb\n"})

	out, _, err := execute(t, fs, "p", "missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
	assert.Empty(t, out, "no verdict is printed when a file cannot be read")
}

func TestRootCmdMaxDepth(t *testing.T) {
	fs := newTestFs(t, map[string]string{"p": "(a)\n", "t": "a\n"})

	out, _, err := execute(t, fs, "p", "t", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "YES\n", out)

	out, _, err = execute(t, fs, "p", "t", "--format", "text", "--max-depth", "2")
	require.NoError(t, err)
	assert.Equal(t, "SYNTAX ERROR\n", out)
}

func TestRootCmdInvalidFormat(t *testing.T) {
	fs := newTestFs(t, map[string]string{"p": "a\n", "t": "a\n"})

	_, _, err := execute(t, fs, "p", "t", "--format", "csv")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgs))
}

func TestRootCmdEnvironment(t *testing.T) {
	t.Setenv("MINIRE_FORMAT", "yaml")
	fs := newTestFs(t, map[string]string{"p": "a\n", "t": "a\n"})

	out, _, err := execute(t, fs, "p", "t")
	require.NoError(t, err)
	assert.Contains(t, out, "verdict:")
	assert.Contains(t, out, "YES")

	out, _, err = execute(t, fs, "p", "t", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "YES\n", out, "flags win over the environment")
}

func TestCheckCmd(t *testing.T) {
	fs := newTestFs(t, map[string]string{"p": "a\n*b\n(a\n\n"})

	out, _, err := execute(t, fs, "check", "p")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "OK", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "SYNTAX ERROR: "), lines[1])
	assert.Contains(t, lines[1], "misplaced repetition")
	assert.Contains(t, lines[2], "unbalanced groups")
	assert.Contains(t, lines[3], "malformed pattern")
}

func TestTreeCmd(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, _, err := execute(t, fs, "tree", "a|b", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "(alt (concat (lit 'a')) (concat (lit 'b')))\n", out)

	out, _, err = execute(t, fs, "tree", "a*", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: repetition")
	assert.Contains(t, out, "depth: 3")

	_, _, err = execute(t, fs, "tree", "(a")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestConfigCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"json\"\nmax_depth = 64\n"), 0o644))

	out, _, err := execute(t, afero.NewMemMapFs(), "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "json")
	assert.Contains(t, out, "max_depth = 64")

	out, _, err = execute(t, afero.NewMemMapFs(), "config", "--config", path, "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "max_depth = 1000")
	assert.NotContains(t, out, "max_depth = 64")

	_, _, err = execute(t, afero.NewMemMapFs(), "config", "--config", filepath.Join(dir, "absent.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "minire version dev")
}
