package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/google/uuid"
)

// Runner locates the game binary and spawns it. The isolated environment's
// binary always wins; a system-wide binary on PATH is a fallback that gets a
// warning, matching the behaviour promised to operators: once bootstrapped,
// the environment's binary is the one that runs.
type Runner struct {
	Env Env

	// Stdout and Stderr receive the launcher's own messages and the
	// child's output.
	Stdout io.Writer
	Stderr io.Writer

	// Stdin is read for the hold-open acknowledgment after a crash.
	Stdin io.Reader

	// NoPause skips the hold-open prompt on non-zero exit, for scripted
	// invocations.
	NoPause bool

	// Logf, when set, receives verbose diagnostics.
	Logf func(format string, args ...any)

	lookPath func(file string) (string, error)
}

// NewRunner wires a runner to the process's real stdio.
func NewRunner(env Env) *Runner {
	return &Runner{
		Env:      env,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		lookPath: exec.LookPath,
	}
}

// Resolve picks the binary to launch. isolated is true when the
// environment's own binary was chosen.
func (r *Runner) Resolve() (path string, isolated bool, err error) {
	ok, err := r.Env.HasBinary()
	if err != nil {
		return "", false, err
	}
	if ok {
		return r.Env.BinaryPath(), true, nil
	}

	look := r.lookPath
	if look == nil {
		look = exec.LookPath
	}
	path, lookErr := look(EntryPointName)
	if lookErr != nil {
		return "", false, WrapCLIError(ExitEntryPointMissing,
			fmt.Sprintf("no %q binary in the environment or on PATH (run bootstrap first)", EntryPointName),
			lookErr)
	}
	return path, false, nil
}

// Run launches the game and returns its exit code. On a non-zero exit the
// code is printed and, unless NoPause is set, the runner blocks on Stdin so
// the operator can read the crash output before the window closes.
func (r *Runner) Run(ctx context.Context, args []string) (int, error) {
	path, isolated, err := r.Resolve()
	if err != nil {
		return int(ExitEntryPointMissing), err
	}
	if !isolated {
		fmt.Fprintf(r.Stderr, "warning: isolated environment not found, using %s from PATH\n", path)
	}

	session := uuid.NewString()
	r.logf("session %s: launching %s %v", session, path, args)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = r.Env.Root
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	code := 0
	if runErr := cmd.Run(); runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return int(ExitGeneralError), fmt.Errorf("launch %s: %w", path, runErr)
		}
		code = exitErr.ExitCode()
	}
	r.logf("session %s: game exited with code %d", session, code)

	if code != 0 {
		fmt.Fprintf(r.Stderr, "\ngame exited with code %d\n", code)
		r.holdOpen()
	}
	return code, nil
}

// holdOpen blocks until the operator acknowledges the failure.
func (r *Runner) holdOpen() {
	if r.NoPause || r.Stdin == nil {
		return
	}
	fmt.Fprint(r.Stderr, "press Enter to close... ")
	_, _ = bufio.NewReader(r.Stdin).ReadString('\n')
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logf != nil {
		r.Logf(format, args...)
	}
}
