// Package util provides utility functions for the backend.
//
//revive:disable-next-line:var-naming
package util

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	npm "github.com/aquasecurity/go-npm-version/pkg"
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// Version schemes used for comparison.
const (
	VersionSchemeSemver = "semver"
	VersionSchemeNPM    = "npm"
	VersionSchemePEP440 = "pep440"
)

// VersionScheme picks the comparison scheme for a package manager.
func VersionScheme(packageManager string) string {
	switch strings.ToLower(strings.TrimSpace(packageManager)) {
	case "npm", "yarn", "pnpm", "bun":
		return VersionSchemeNPM
	case "pip", "pipenv", "poetry", "pypi", "uv":
		return VersionSchemePEP440
	default:
		return VersionSchemeSemver
	}
}

// CompareVersions compares two version strings using the scheme of the package manager.
// It returns -1, 0 or 1, or an error when either side cannot be parsed.
func CompareVersions(packageManager, a, b string) (int, error) {
	switch VersionScheme(packageManager) {
	case VersionSchemeNPM:
		return compareNPM(a, b)
	case VersionSchemePEP440:
		return comparePEP440(a, b)
	default:
		return compareSemver(a, b)
	}
}

func compareSemver(a, b string) (int, error) {
	// Masterminds/semver doesn't handle the "go" prefix of Go stdlib versions (e.g. "go1.22.2")
	va, err := semver.NewVersion(strings.TrimPrefix(a, "go"))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", a, err)
	}
	vb, err := semver.NewVersion(strings.TrimPrefix(b, "go"))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

func compareNPM(a, b string) (int, error) {
	va, err := npm.NewVersion(a)
	if err != nil {
		return 0, fmt.Errorf("invalid npm version %q: %w", a, err)
	}
	vb, err := npm.NewVersion(b)
	if err != nil {
		return 0, fmt.Errorf("invalid npm version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

func comparePEP440(a, b string) (int, error) {
	va, err := pep440.Parse(a)
	if err != nil {
		return 0, fmt.Errorf("invalid python version %q: %w", a, err)
	}
	vb, err := pep440.Parse(b)
	if err != nil {
		return 0, fmt.Errorf("invalid python version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// IsOlderVersion reports whether current is strictly older than candidate.
// The second return value is false when the versions are not comparable.
func IsOlderVersion(packageManager, current, candidate string) (bool, bool) {
	cmp, err := CompareVersions(packageManager, current, candidate)
	if err != nil {
		return false, false
	}
	return cmp < 0, true
}
