// Package executor provides subprocess execution for the external release tools.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner is an interface for executing external tools. It allows tests to
// inject fake implementations without running real processes.
type Runner interface {
	// Run executes argv and waits for completion. stdout is streamed to the
	// provided writer; stderr is captured and folded into the returned error
	// on failure. If dir is non-empty, the process runs in that directory.
	Run(ctx context.Context, argv []string, dir string, stdout io.Writer) error
	// Output executes argv and returns its captured stdout.
	Output(ctx context.Context, argv []string, dir string) (string, error)
}

// Executor runs real processes via os/exec.
type Executor struct {
	Verbose bool
	// Stderr, when non-nil, additionally receives the child's stderr as it
	// is captured. Used so packaging output stays visible to the operator.
	Stderr io.Writer
}

// New returns a Runner backed by the real Executor implementation.
func New(verbose bool) Runner {
	return &Executor{Verbose: verbose}
}

// Run executes argv[0] with the remaining arguments. No shell is involved;
// every command this tool issues is program-constructed argv.
func (e *Executor) Run(ctx context.Context, argv []string, dir string, stdout io.Writer) error {
	if err := validateArgv(argv); err != nil {
		return err
	}
	if e.Verbose {
		fmt.Fprintf(stdout, "-> %s\n", strings.Join(argv, " "))
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if dir != "" {
		cmd.Dir = dir
	}
	var berr bytes.Buffer
	cmd.Stdout = stdout
	if e.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&berr, e.Stderr)
	} else {
		cmd.Stderr = &berr
	}
	if err := cmd.Run(); err != nil {
		return wrapExecError(err, argv, &berr)
	}
	return nil
}

// Output executes argv and returns captured stdout as a string. stderr is
// captured and reported only on failure.
func (e *Executor) Output(ctx context.Context, argv []string, dir string) (string, error) {
	if err := validateArgv(argv); err != nil {
		return "", err
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if dir != "" {
		cmd.Dir = dir
	}
	var bout, berr bytes.Buffer
	cmd.Stdout = &bout
	cmd.Stderr = &berr
	if err := cmd.Run(); err != nil {
		return "", wrapExecError(err, argv, &berr)
	}
	return bout.String(), nil
}

func validateArgv(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	for i, a := range argv {
		if strings.IndexFunc(a, func(r rune) bool { return r == 0 }) != -1 {
			return fmt.Errorf("invalid arg[%d]: contains NUL", i)
		}
	}
	return nil
}

func wrapExecError(err error, argv []string, berr *bytes.Buffer) error {
	errStr := strings.TrimSpace(berr.String())
	if errStr != "" {
		return fmt.Errorf("command failed: %w (argv=%q stderr=%q)", err, argv, errStr)
	}
	return fmt.Errorf("command failed: %w (argv=%q)", err, argv)
}
