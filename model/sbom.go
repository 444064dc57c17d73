// Package model defines the canonical SBOM structures produced by the merge service
// and consumed by the stats, query and graph components.
package model

import (
	"sort"
	"time"
)

// DependencyKey identifies a dependency inside a workspace.
type DependencyKey struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// String renders the key as name@version.
func (k DependencyKey) String() string {
	return k.Name + "@" + k.Version
}

// DependencyFlags holds the independent classification booleans of a dependency.
type DependencyFlags struct {
	Direct     bool `json:"direct"`
	Transitive bool `json:"transitive"`
	Dev        bool `json:"dev"`
	Prod       bool `json:"prod"`
	Bundled    bool `json:"bundled"`
	Optional   bool `json:"optional"`
}

// Or combines two flag sets. A flag that is true in either input stays true.
func (f DependencyFlags) Or(other DependencyFlags) DependencyFlags {
	return DependencyFlags{
		Direct:     f.Direct || other.Direct,
		Transitive: f.Transitive || other.Transitive,
		Dev:        f.Dev || other.Dev,
		Prod:       f.Prod || other.Prod,
		Bundled:    f.Bundled || other.Bundled,
		Optional:   f.Optional || other.Optional,
	}
}

// IsActive reports whether the entry belongs to the active workspace.
// Entries that are neither dev nor prod are merge scaffolding.
func (f DependencyFlags) IsActive() bool {
	return f.Dev || f.Prod
}

// DependencyEntry is the canonical record of one (name, version) inside a workspace.
type DependencyEntry struct {
	DependencyFlags
	Dependencies  []DependencyKey `json:"dependencies,omitempty"`
	Licenses      []string        `json:"licenses,omitempty"`
	Deprecated    *bool           `json:"deprecated,omitempty"`
	Unlicensed    *bool           `json:"unlicensed,omitempty"`
	Outdated      *bool           `json:"outdated,omitempty"`
	Release       string          `json:"release,omitempty"`
	LastPublished string          `json:"last_published,omitempty"`
}

// Workspace is a named partition of the dependency graph.
type Workspace struct {
	Name                    string                             `json:"name"`
	Dependencies            map[DependencyKey]*DependencyEntry `json:"-"`
	DeclaredDependencies    []DependencyKey                    `json:"declared_dependencies"`
	DeclaredDevDependencies []DependencyKey                    `json:"declared_dev_dependencies"`
}

// Keys returns the dependency identities ordered by name, then version.
func (w *Workspace) Keys() []DependencyKey {
	keys := make([]DependencyKey, 0, len(w.Dependencies))
	for k := range w.Dependencies {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Version < keys[j].Version
	})
	return keys
}

// DeclaredSet returns the union of both declared root sets.
func (w *Workspace) DeclaredSet() map[DependencyKey]bool {
	declared := make(map[DependencyKey]bool, len(w.DeclaredDependencies)+len(w.DeclaredDevDependencies))
	for _, k := range w.DeclaredDependencies {
		declared[k] = true
	}
	for _, k := range w.DeclaredDevDependencies {
		declared[k] = true
	}
	return declared
}

// AnalysisInfo carries the run-level facts of an analysis.
type AnalysisInfo struct {
	PackageManager    string    `json:"package_manager"`
	AnalysisStartTime time.Time `json:"analysis_start_time"`
	AnalysisEndTime   time.Time `json:"analysis_end_time"`
	PublicErrors      []string  `json:"public_errors"`
	PrivateErrors     []string  `json:"private_errors"`
}

// Sbom is the canonical, merged bill of materials of one analysis run.
// It is never mutated after the merge service returns it.
type Sbom struct {
	Workspaces   map[string]*Workspace `json:"workspaces"`
	AnalysisInfo AnalysisInfo          `json:"analysis_info"`
}

// Workspace looks up a workspace by name.
func (s *Sbom) Workspace(name string) (*Workspace, bool) {
	if s == nil {
		return nil, false
	}
	ws, ok := s.Workspaces[name]
	return ws, ok
}

// WorkspaceNames returns the workspace names in lexical order.
func (s *Sbom) WorkspaceNames() []string {
	names := make([]string, 0, len(s.Workspaces))
	for name := range s.Workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
