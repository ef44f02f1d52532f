// Package release implements the release orchestration core: reading the
// authoritative version, computing bumps, rewriting registered files, tagging,
// and building distribution artifacts.
package release

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// VersionFile is the authoritative source of the current version, relative to
// the project root.
const VersionFile = "setup.py"

// Errors surfaced by the version helpers. Every one of them is fatal to the
// invoking command; nothing in this package retries or recovers.
var (
	ErrVersionNotFound      = errors.New("version declaration not found in " + VersionFile)
	ErrInvalidReleaseType   = errors.New("invalid release type (want patch or minor)")
	ErrInvalidVersionFormat = errors.New("invalid version format (want three dot-separated integers)")
)

// versionDeclRe locates the current version declaration. Note the trailing
// comma: the locate pattern is intentionally stricter than the rewrite
// pattern in the file-edit registry. Known asymmetry, kept on purpose.
var versionDeclRe = regexp.MustCompile(`version='(.*)',`)

// CurrentVersion scans the authoritative version file line by line and
// returns the first quoted version it finds.
func CurrentVersion(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, VersionFile))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", VersionFile, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if m := versionDeclRe.FindStringSubmatch(line); m != nil {
			return m[1], nil
		}
	}
	return "", ErrVersionNotFound
}

// ReleaseType classifies a version bump's magnitude.
type ReleaseType string

const (
	Patch ReleaseType = "patch"
	Minor ReleaseType = "minor"
)

// ParseReleaseType validates a user-supplied release type string.
func ParseReleaseType(s string) (ReleaseType, error) {
	switch ReleaseType(s) {
	case Patch, Minor:
		return ReleaseType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidReleaseType, s)
}

// NextVersion computes the next version from a three-component current
// version. patch increments the last component; minor increments the middle
// component and resets the last to zero. Anything else is rejected rather
// than silently mishandled.
func NextVersion(current string, rt ReleaseType) (string, error) {
	parts := strings.Split(current, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersionFormat, current)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" || strings.IndexFunc(p, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
			return "", fmt.Errorf("%w: %q", ErrInvalidVersionFormat, current)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidVersionFormat, current)
		}
		nums[i] = n
	}
	switch rt {
	case Patch:
		nums[2]++
	case Minor:
		nums[1]++
		nums[2] = 0
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidReleaseType, string(rt))
	}
	return fmt.Sprintf("%d.%d.%d", nums[0], nums[1], nums[2]), nil
}

// ShortVersion truncates a version to its first two components (major.minor).
// Components beyond the second are opaque text and simply dropped.
func ShortVersion(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}
