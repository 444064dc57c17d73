// Package model - raw plugin output as decoded from the upstream scanners.
//
// Plugins populate different subsets of these fields, so everything that is not
// structurally required is a pointer. Defaulting happens once, in the merge service.
package model

// PluginOutput is the decoded output of one plugin for one analysis run.
type PluginOutput struct {
	Plugin       string                  `json:"plugin,omitempty"`
	Workspaces   map[string]RawWorkspace `json:"workspaces"`
	AnalysisInfo RawAnalysisInfo         `json:"analysis_info"`
}

// RawWorkspace is the per-workspace section of a plugin output.
// Dependencies is keyed by package name, then version.
type RawWorkspace struct {
	Dependencies map[string]map[string]RawDependency `json:"dependencies"`
	Start        RawStart                            `json:"start"`
}

// RawStart lists the manifest's declared requirements.
type RawStart struct {
	Dependencies    []DependencyKey `json:"dependencies"`
	DevDependencies []DependencyKey `json:"dev_dependencies"`
}

// RawDependency is a single version entry as reported by a plugin.
// Dependencies is the adjacency of the entry: child name -> resolved version.
type RawDependency struct {
	Direct        *bool             `json:"direct,omitempty"`
	Transitive    *bool             `json:"transitive,omitempty"`
	Dev           *bool             `json:"dev,omitempty"`
	Prod          *bool             `json:"prod,omitempty"`
	Bundled       *bool             `json:"bundled,omitempty"`
	Optional      *bool             `json:"optional,omitempty"`
	Dependencies  map[string]string `json:"dependencies,omitempty"`
	Licenses      []string          `json:"licenses,omitempty"`
	Deprecated    *bool             `json:"deprecated,omitempty"`
	Unlicensed    *bool             `json:"unlicensed,omitempty"`
	Outdated      *bool             `json:"outdated,omitempty"`
	Release       *string           `json:"release,omitempty"`
	LastPublished *string           `json:"last_published,omitempty"`
}

// RawAnalysisInfo is the run metadata reported by a plugin. Timestamps are RFC3339.
type RawAnalysisInfo struct {
	PackageManager    string   `json:"package_manager,omitempty"`
	AnalysisStartTime *string  `json:"analysis_start_time,omitempty"`
	AnalysisEndTime   *string  `json:"analysis_end_time,omitempty"`
	PublicErrors      []string `json:"public_errors,omitempty"`
	PrivateErrors     []string `json:"private_errors,omitempty"`
}
