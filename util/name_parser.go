// Package util provides utility functions for the backend.
//
//revive:disable-next-line:var-naming
package util

import "strings"

// NameComponents holds the parsed components of a package name
type NameComponents struct {
	Namespace string
	Shortname string
}

// ParsePackageName splits an ecosystem package name into namespace and short name.
// Formats:
//   - "@scope/name" (npm)        -> "@scope", "name"
//   - "group:artifact" (maven)   -> "group", "artifact"
//   - "github.com/org/repo" (go) -> "github.com/org", "repo"
//   - "name"                     -> "", "name"
func ParsePackageName(name string) NameComponents {
	name = strings.TrimSpace(name)
	if name == "" {
		return NameComponents{}
	}

	if idx := strings.LastIndex(name, "/"); idx > 0 && idx < len(name)-1 {
		return NameComponents{
			Namespace: name[:idx],
			Shortname: name[idx+1:],
		}
	}

	if idx := strings.Index(name, ":"); idx > 0 && idx < len(name)-1 {
		return NameComponents{
			Namespace: name[:idx],
			Shortname: name[idx+1:],
		}
	}

	return NameComponents{Shortname: name}
}
