// Package model - query-time projections of the canonical SBOM.
package model

// SbomDependencyRow is one listing row per (workspace, name, version).
type SbomDependencyRow struct {
	Workspace         string   `json:"workspace"`
	Name              string   `json:"name"`
	Version           string   `json:"version"`
	PackageManager    string   `json:"package_manager"`
	PURL              string   `json:"purl,omitempty"`
	Direct            bool     `json:"direct"`
	Transitive        bool     `json:"transitive"`
	Dev               bool     `json:"dev"`
	Prod              bool     `json:"prod"`
	Bundled           bool     `json:"bundled"`
	Optional          bool     `json:"optional"`
	IsDirect          bool     `json:"is_direct"`
	IsDirectCount     int      `json:"is_direct_count"`
	IsTransitiveCount int      `json:"is_transitive_count"`
	NewestRelease     string   `json:"newest_release"`
	Licenses          []string `json:"licenses"`
	Deprecated        *bool    `json:"deprecated,omitempty"`
	Unlicensed        *bool    `json:"unlicensed,omitempty"`
	Outdated          *bool    `json:"outdated,omitempty"`
	Release           string   `json:"release,omitempty"`
	LastPublished     string   `json:"last_published,omitempty"`
}

// Key returns the identity of the row.
func (r SbomDependencyRow) Key() DependencyKey {
	return DependencyKey{Name: r.Name, Version: r.Version}
}

// DependencyDetails is the single-dependency view.
type DependencyDetails struct {
	SbomDependencyRow
	Parents  []DependencyKey `json:"parents"`
	Children []DependencyKey `json:"children"`
}

// DependencyGraph is the neighbourhood of one dependency.
type DependencyGraph struct {
	Workspace     string            `json:"workspace"`
	Dependency    DependencyKey     `json:"dependency"`
	Parents       []DependencyKey   `json:"parents"`
	Children      []DependencyKey   `json:"children"`
	Ancestors     []DependencyKey   `json:"ancestors"`
	Descendants   []DependencyKey   `json:"descendants"`
	AncestorPaths [][]DependencyKey `json:"ancestor_paths"`
}

// WorkspacesInfo lists the workspaces of an analysis run.
type WorkspacesInfo struct {
	Workspaces     []string `json:"workspaces"`
	PackageManager string   `json:"package_manager"`
}
