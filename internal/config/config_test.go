package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadToolsDefaults(t *testing.T) {
	dir := t.TempDir()
	tools, err := LoadTools(dir)
	if err != nil {
		t.Fatalf("LoadTools failed: %v", err)
	}
	if !reflect.DeepEqual(tools.Changelog, []string{"towncrier"}) {
		t.Fatalf("unexpected changelog default: %v", tools.Changelog)
	}
	if !reflect.DeepEqual(tools.Packaging, []string{"python", "setup.py", "sdist", "bdist_wheel"}) {
		t.Fatalf("unexpected packaging default: %v", tools.Packaging)
	}
	if !reflect.DeepEqual(tools.Git, []string{"git"}) {
		t.Fatalf("unexpected git default: %v", tools.Git)
	}
	if tools.Template != "CHANGELOG.tmpl.rst" {
		t.Fatalf("unexpected template default: %q", tools.Template)
	}
}

func TestLoadToolsOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "changelog: python3 -m towncrier\ntemplate: docs/CHANGELOG.tmpl\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	tools, err := LoadTools(dir)
	if err != nil {
		t.Fatalf("LoadTools failed: %v", err)
	}
	if !reflect.DeepEqual(tools.Changelog, []string{"python3", "-m", "towncrier"}) {
		t.Fatalf("changelog override not split: %v", tools.Changelog)
	}
	if tools.Template != "docs/CHANGELOG.tmpl" {
		t.Fatalf("template override ignored: %q", tools.Template)
	}
	// Unset keys keep their defaults.
	if !reflect.DeepEqual(tools.Git, []string{"git"}) {
		t.Fatalf("git default lost: %v", tools.Git)
	}
}

func TestLoadToolsQuotedCommand(t *testing.T) {
	dir := t.TempDir()
	content := "packaging: \"/opt/py thon/bin/python\" setup.py sdist\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	tools, err := LoadTools(dir)
	if err != nil {
		t.Fatalf("LoadTools failed: %v", err)
	}
	want := []string{"/opt/py thon/bin/python", "setup.py", "sdist"}
	if !reflect.DeepEqual(tools.Packaging, want) {
		t.Fatalf("quoted packaging command = %v, want %v", tools.Packaging, want)
	}
}

func TestLoadToolsBadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(":\n\t- bad"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadTools(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "setup.py"), []byte("setup()\n"), 0o644); err != nil {
		t.Fatalf("write setup.py: %v", err)
	}
	nested := filepath.Join(root, "chalice", "deploy")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot failed: %v", err)
	}
	if got != root {
		t.Fatalf("FindProjectRoot = %q, want %q", got, root)
	}
}

func TestFindProjectRootNotFound(t *testing.T) {
	dir := t.TempDir()
	if _, err := FindProjectRoot(dir); !errors.Is(err, ErrNoProjectRoot) {
		t.Fatalf("expected ErrNoProjectRoot, got %v", err)
	}
}
