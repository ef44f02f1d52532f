// Package config resolves project paths and external tool invocations.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project override file, located at the repo root.
const FileName = ".chalice-release.yml"

// Tools holds the argv prefixes for every external tool the orchestrator
// invokes, plus the changelog template path. The file-edit registry is not
// configurable; only tool invocations are.
type Tools struct {
	Changelog []string // changelog tool, e.g. ["towncrier"]
	Packaging []string // packaging tool, e.g. ["python", "setup.py", "sdist", "bdist_wheel"]
	Git       []string // version-control tool, e.g. ["git"]
	Template  string   // changelog render template, relative to the repo root
}

// rawTools is the on-disk YAML shape. Command values are single quote-aware
// strings so users can write `changelog: python3 -m towncrier`.
type rawTools struct {
	Changelog string `yaml:"changelog"`
	Packaging string `yaml:"packaging"`
	Git       string `yaml:"git"`
	Template  string `yaml:"template"`
}

// Defaults returns the built-in tool invocations.
func Defaults() Tools {
	return Tools{
		Changelog: []string{"towncrier"},
		Packaging: []string{"python", "setup.py", "sdist", "bdist_wheel"},
		Git:       []string{"git"},
		Template:  "CHANGELOG.tmpl.rst",
	}
}

// LoadTools reads the override file from root if present and merges it over
// the defaults. A missing file is not an error.
func LoadTools(root string) (Tools, error) {
	t := Defaults()
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("read %s: %w", FileName, err)
	}
	var raw rawTools
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return t, fmt.Errorf("parse %s: %w", FileName, err)
	}
	if raw.Changelog != "" {
		if t.Changelog, err = splitCommand(raw.Changelog); err != nil {
			return t, fmt.Errorf("%s: changelog: %w", FileName, err)
		}
	}
	if raw.Packaging != "" {
		if t.Packaging, err = splitCommand(raw.Packaging); err != nil {
			return t, fmt.Errorf("%s: packaging: %w", FileName, err)
		}
	}
	if raw.Git != "" {
		if t.Git, err = splitCommand(raw.Git); err != nil {
			return t, fmt.Errorf("%s: git: %w", FileName, err)
		}
	}
	if raw.Template != "" {
		t.Template = raw.Template
	}
	return t, nil
}

// splitCommand tokenizes a configured command respecting quotes, so
// `"/opt/py thon/bin/python" -m towncrier` parses as three tokens.
func splitCommand(s string) ([]string, error) {
	toks, err := shellquote.Split(s)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	return toks, nil
}
