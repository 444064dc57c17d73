// Package model - AnalysisStats holds the counters of one workspace and their run-over-run deltas.
package model

// AnalysisStats is computed for one workspace of one SBOM. Every counter has a
// paired _diff field holding current minus previous.
type AnalysisStats struct {
	NumberOfDependencies                     int `json:"number_of_dependencies"`
	NumberOfDependenciesDiff                 int `json:"number_of_dependencies_diff"`
	NumberOfDirectDependencies               int `json:"number_of_direct_dependencies"`
	NumberOfDirectDependenciesDiff           int `json:"number_of_direct_dependencies_diff"`
	NumberOfTransitiveDependencies           int `json:"number_of_transitive_dependencies"`
	NumberOfTransitiveDependenciesDiff       int `json:"number_of_transitive_dependencies_diff"`
	NumberOfBothDirectTransitiveDependencies int `json:"number_of_both_direct_transitive_dependencies"`
	NumberOfBothDirectTransitiveDiff         int `json:"number_of_both_direct_transitive_dependencies_diff"`
	NumberOfBundledDependencies              int `json:"number_of_bundled_dependencies"`
	NumberOfBundledDependenciesDiff          int `json:"number_of_bundled_dependencies_diff"`
	NumberOfOptionalDependencies             int `json:"number_of_optional_dependencies"`
	NumberOfOptionalDependenciesDiff         int `json:"number_of_optional_dependencies_diff"`
	NumberOfNonDevDependencies               int `json:"number_of_non_dev_dependencies"`
	NumberOfNonDevDependenciesDiff           int `json:"number_of_non_dev_dependencies_diff"`
	NumberOfDevDependencies                  int `json:"number_of_dev_dependencies"`
	NumberOfDevDependenciesDiff              int `json:"number_of_dev_dependencies_diff"`
}
