// Package util provides utility functions for the backend.
//
//revive:disable-next-line:var-naming
package util

import (
	"strings"

	"github.com/package-url/packageurl-go"
)

// PackageManagerToPurlType converts a plugin package manager identifier to a PURL type
func PackageManagerToPurlType(packageManager string) string {
	mapping := map[string]string{
		"npm":      packageurl.TypeNPM,
		"yarn":     packageurl.TypeNPM,
		"pnpm":     packageurl.TypeNPM,
		"bun":      packageurl.TypeNPM,
		"pip":      packageurl.TypePyPi,
		"pipenv":   packageurl.TypePyPi,
		"poetry":   packageurl.TypePyPi,
		"uv":       packageurl.TypePyPi,
		"maven":    packageurl.TypeMaven,
		"gradle":   packageurl.TypeMaven,
		"go":       packageurl.TypeGolang,
		"gomod":    packageurl.TypeGolang,
		"nuget":    packageurl.TypeNuget,
		"bundler":  packageurl.TypeGem,
		"cargo":    packageurl.TypeCargo,
		"composer": packageurl.TypeComposer,
	}

	if purlType, exists := mapping[strings.ToLower(strings.TrimSpace(packageManager))]; exists {
		return purlType
	}

	return strings.ToLower(strings.TrimSpace(packageManager))
}

// BuildPURL constructs the Package URL of a dependency.
// Example: ("npm", "@babel/core", "7.24.0") -> "pkg:npm/%40babel/core@7.24.0"
func BuildPURL(packageManager, name, version string) string {
	purlType := PackageManagerToPurlType(packageManager)
	if purlType == "" || IsEmpty(name) {
		return ""
	}

	components := ParsePackageName(name)
	purl := packageurl.NewPackageURL(purlType, components.Namespace, components.Shortname, version, nil, "")
	return purl.ToString()
}
