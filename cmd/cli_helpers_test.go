package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// enterTempProject creates a minimal project tree with the given version and
// makes it the working directory for the duration of the test.
func enterTempProject(t *testing.T, version string) string {
	t.Helper()
	dir := t.TempDir()
	content := "from setuptools import setup\n\nsetup(\n    name='chalice',\n    version='" + version + "',\n)\n"
	if err := os.WriteFile(filepath.Join(dir, "setup.py"), []byte(content), 0o644); err != nil {
		t.Fatalf("write setup.py: %v", err)
	}
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

// chdir switches the working directory for the duration of the test and
// returns the previous one.
func chdir(t *testing.T, dir string) string {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	return old
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns what
// was written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldOut := os.Stdout
	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = wOut

	fn()

	_ = wOut.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, rOut)
	os.Stdout = oldOut
	return buf.String()
}
