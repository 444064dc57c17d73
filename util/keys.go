// Package util provides utility functions for the backend.
//
//revive:disable-next-line:var-naming
package util

import "strings"

// SanitizeKey ensures the database key is valid for ArangoDB
// ArangoDB keys cannot contain spaces, slashes, or brackets
func SanitizeKey(key string) string {
	key = strings.TrimSpace(key)

	replacer := strings.NewReplacer(
		" ", "-",
		"/", "-",
		"[", "",
		"]", "",
		"(", "",
		")", "",
	)

	return replacer.Replace(key)
}

// NormalizeProjectID lowercases and trims a project identifier.
// Use this function whenever accepting project ids from external sources
func NormalizeProjectID(projectID string) string {
	return strings.ToLower(strings.TrimSpace(projectID))
}
