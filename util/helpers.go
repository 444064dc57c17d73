// Package util provides utility functions for version comparison, Package URLs (PURLs),
// pagination and extracting configuration from the environment.
//
//revive:disable-next-line:var-naming
package util

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

// GetEnvInt returns the env var parsed as an int, or defVal when unset or malformed.
func GetEnvInt(key string, defVal int) int {
	val, ex := os.LookupEnv(key)
	if !ex {
		return defVal
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return defVal
	}
	return parsed
}

// IsEmpty checks if a string is empty or contains only whitespace
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// Contains checks if a string slice contains an item
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// ContainsFold checks if a string slice contains an item, ignoring case
func ContainsFold(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}

// BoolValue dereferences b, treating nil as false.
func BoolValue(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses the date formats plugins are known to emit.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDateOrEpoch parses value and falls back to 1970-01-01 when it is missing or malformed.
func ParseDateOrEpoch(value string) time.Time {
	if t, ok := ParseDate(value); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}
