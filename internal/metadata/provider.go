// Package metadata resolves package facts, such as the newest published version,
// from external package registries.
package metadata

import "context"

// Provider looks up the latest published version of a package.
// ok is false when the package is unknown or the lookup failed.
type Provider interface {
	GetLatestVersion(ctx context.Context, packageManager, name string) (version string, ok bool)
}

// NoopProvider never knows a newer version.
type NoopProvider struct{}

// GetLatestVersion implements Provider.
func (NoopProvider) GetLatestVersion(context.Context, string, string) (string, bool) {
	return "", false
}
