// Package model - license facts derived from an SBOM workspace.
package model

// Canonical license categories.
const (
	LicenseCategoryPermissive = "permissive"
	LicenseCategoryCopyLeft   = "copy_left"
	LicenseCategoryUnknown    = "unknown"
)

// LicenseFact describes one license observed in a workspace.
type LicenseFact struct {
	ID                         string          `json:"id"`
	Name                       string          `json:"name"`
	Category                   string          `json:"category"`
	UnableToInfer              bool            `json:"unable_to_infer"`
	LicenseComplianceViolation bool            `json:"license_compliance_violation"`
	DepsUsingLicense           []DependencyKey `json:"deps_using_license"`
}
