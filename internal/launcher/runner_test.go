package launcher

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installScript drops a shell script as the environment's game binary.
func installScript(t *testing.T, path, body string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

func newTestRunner(env Env) (*Runner, *bytes.Buffer) {
	var stderr bytes.Buffer
	r := NewRunner(env)
	r.Stdout = &bytes.Buffer{}
	r.Stderr = &stderr
	r.Stdin = strings.NewReader("\n")
	return r, &stderr
}

func TestResolve_PrefersEnvironmentBinary(t *testing.T) {
	env := NewEnv(t.TempDir())
	installScript(t, env.BinaryPath(), "exit 0")

	r, _ := newTestRunner(env)
	r.lookPath = func(string) (string, error) {
		t.Fatal("PATH must not be consulted when the environment binary exists")
		return "", nil
	}

	path, isolated, err := r.Resolve()
	require.NoError(t, err)
	assert.True(t, isolated)
	assert.Equal(t, env.BinaryPath(), path)
}

func TestResolve_FallsBackToPath(t *testing.T) {
	env := NewEnv(t.TempDir())
	r, _ := newTestRunner(env)
	r.lookPath = func(name string) (string, error) {
		assert.Equal(t, EntryPointName, name)
		return "/usr/local/bin/warrior", nil
	}

	path, isolated, err := r.Resolve()
	require.NoError(t, err)
	assert.False(t, isolated)
	assert.Equal(t, "/usr/local/bin/warrior", path)
}

func TestResolve_NothingFound(t *testing.T) {
	env := NewEnv(t.TempDir())
	r, _ := newTestRunner(env)
	r.lookPath = func(string) (string, error) { return "", errors.New("not found") }

	_, _, err := r.Resolve()
	require.Error(t, err)
	cliErr, ok := err.(*CLIError)
	require.True(t, ok)
	assert.Equal(t, ExitEntryPointMissing, cliErr.Code)
}

func TestRun_CleanExitNoPrompt(t *testing.T) {
	env := NewEnv(t.TempDir())
	installScript(t, env.BinaryPath(), "exit 0")

	r, stderr := newTestRunner(env)
	code, err := r.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.NotContains(t, stderr.String(), "press Enter",
		"clean exit must not hold the terminal open")
	assert.NotContains(t, stderr.String(), "warning")
}

func TestRun_CrashPrintsCodeAndHoldsOpen(t *testing.T) {
	env := NewEnv(t.TempDir())
	installScript(t, env.BinaryPath(), "exit 3")

	r, stderr := newTestRunner(env)
	code, err := r.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Contains(t, stderr.String(), "exited with code 3")
	assert.Contains(t, stderr.String(), "press Enter")
}

func TestRun_NoPauseSkipsPrompt(t *testing.T) {
	env := NewEnv(t.TempDir())
	installScript(t, env.BinaryPath(), "exit 7")

	r, stderr := newTestRunner(env)
	r.NoPause = true
	code, err := r.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 7, code)
	assert.Contains(t, stderr.String(), "exited with code 7")
	assert.NotContains(t, stderr.String(), "press Enter")
}

func TestRun_FallbackWarns(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}
	// A "system-wide" binary outside the environment.
	systemBin := filepath.Join(t.TempDir(), "warrior")
	installScript(t, systemBin, "exit 0")

	env := NewEnv(t.TempDir())
	r, stderr := newTestRunner(env)
	r.lookPath = func(string) (string, error) { return systemBin, nil }

	code, err := r.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "warning: isolated environment not found")
}

func TestRun_ForwardsArgsAndOutput(t *testing.T) {
	env := NewEnv(t.TempDir())
	installScript(t, env.BinaryPath(), `echo "args: $@"`)

	var stdout bytes.Buffer
	r, _ := newTestRunner(env)
	r.Stdout = &stdout

	code, err := r.Run(context.Background(), []string{"-seed", "7"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "args: -seed 7")
}
