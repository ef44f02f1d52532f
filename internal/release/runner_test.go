package release

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// fakeRunner records invocations and returns canned output instead of
// shelling out.
type fakeRunner struct {
	calls     [][]string
	dirs      []string
	cwdAt     []string
	renderOut string
	failOn    string // fail any call whose argv contains this token
}

func (f *fakeRunner) record(argv []string, dir string) {
	f.calls = append(f.calls, append([]string{}, argv...))
	f.dirs = append(f.dirs, dir)
	cwd, _ := os.Getwd()
	f.cwdAt = append(f.cwdAt, cwd)
}

func (f *fakeRunner) shouldFail(argv []string) bool {
	if f.failOn == "" {
		return false
	}
	for _, a := range argv {
		if strings.Contains(a, f.failOn) {
			return true
		}
	}
	return false
}

func (f *fakeRunner) Run(_ context.Context, argv []string, dir string, _ io.Writer) error {
	f.record(argv, dir)
	if f.shouldFail(argv) {
		return fmt.Errorf("command failed: exit status 1 (argv=%q)", argv)
	}
	return nil
}

func (f *fakeRunner) Output(_ context.Context, argv []string, dir string) (string, error) {
	f.record(argv, dir)
	if f.shouldFail(argv) {
		return "", fmt.Errorf("command failed: exit status 1 (argv=%q)", argv)
	}
	return f.renderOut, nil
}
