package metadata

// VersionKey identifies a package version on deps.dev.
type VersionKey struct {
	System  string `json:"system"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// PackageKey identifies a package on deps.dev.
type PackageKey struct {
	System string `json:"system"`
	Name   string `json:"name"`
}

// PackageVersion is one entry of the package versions list.
type PackageVersion struct {
	VersionKey  VersionKey `json:"versionKey"`
	PublishedAt string     `json:"publishedAt,omitempty"`
	IsDefault   bool       `json:"isDefault"`
}

// Package is the deps.dev GetPackage response.
type Package struct {
	PackageKey PackageKey       `json:"packageKey"`
	Versions   []PackageVersion `json:"versions"`
}
