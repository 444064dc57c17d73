// Package licenses derives license facts for a workspace from the licenses the
// plugins reported on each dependency, classified by a configurable policy.
package licenses

import (
	"sort"
	"strings"

	"github.com/ortelius/pdvd-sbom/internal/sbom"
	"github.com/ortelius/pdvd-sbom/model"
	"github.com/ortelius/pdvd-sbom/util"
)

// UnknownLicenseID groups dependencies whose license could not be determined.
const UnknownLicenseID = "UNKNOWN"

// Policy classifies license ids. Lookups are case-insensitive.
type Policy struct {
	Permissive []string          `yaml:"permissive"`
	CopyLeft   []string          `yaml:"copy_left"`
	Denied     []string          `yaml:"denied"`
	Names      map[string]string `yaml:"names"`
}

// DefaultPolicy covers the common SPDX identifiers.
func DefaultPolicy() Policy {
	return Policy{
		Permissive: []string{"MIT", "ISC", "Apache-2.0", "BSD-2-Clause", "BSD-3-Clause", "0BSD", "Unlicense", "CC0-1.0", "Zlib", "Python-2.0"},
		CopyLeft:   []string{"GPL-2.0", "GPL-2.0-only", "GPL-2.0-or-later", "GPL-3.0", "GPL-3.0-only", "GPL-3.0-or-later", "AGPL-3.0", "AGPL-3.0-only", "LGPL-2.1", "LGPL-3.0", "MPL-2.0", "EPL-2.0"},
		Denied:     []string{},
		Names: map[string]string{
			"MIT":          "MIT License",
			"ISC":          "ISC License",
			"Apache-2.0":   "Apache License 2.0",
			"BSD-2-Clause": "BSD 2-Clause \"Simplified\" License",
			"BSD-3-Clause": "BSD 3-Clause \"New\" or \"Revised\" License",
			"GPL-2.0":      "GNU General Public License v2.0",
			"GPL-3.0":      "GNU General Public License v3.0",
			"AGPL-3.0":     "GNU Affero General Public License v3.0",
			"LGPL-2.1":     "GNU Lesser General Public License v2.1",
			"LGPL-3.0":     "GNU Lesser General Public License v3.0",
			"MPL-2.0":      "Mozilla Public License 2.0",
		},
	}
}

// Category returns the policy category of a license id.
func (p Policy) Category(id string) string {
	switch {
	case util.ContainsFold(p.Permissive, id):
		return model.LicenseCategoryPermissive
	case util.ContainsFold(p.CopyLeft, id):
		return model.LicenseCategoryCopyLeft
	default:
		return model.LicenseCategoryUnknown
	}
}

func (p Policy) name(id string) string {
	for k, v := range p.Names {
		if strings.EqualFold(k, id) {
			return v
		}
	}
	return id
}

// Build returns one fact per license used by the active dependencies of the
// workspace, ordered by id. Dependencies lists keep name, version order.
func Build(s *model.Sbom, workspace string, policy Policy) ([]model.LicenseFact, error) {
	rows, err := sbom.Rows(s, workspace)
	if err != nil {
		return nil, err
	}

	byID := map[string]*model.LicenseFact{}
	for _, row := range rows {
		ids := row.Licenses
		if len(ids) == 0 {
			ids = []string{UnknownLicenseID}
		}
		for _, raw := range ids {
			id := normalizeID(raw)
			fact, ok := byID[id]
			if !ok {
				fact = newFact(id, policy)
				byID[id] = fact
			}
			fact.DepsUsingLicense = append(fact.DepsUsingLicense, row.Key())
		}
	}

	facts := make([]model.LicenseFact, 0, len(byID))
	for _, fact := range byID {
		facts = append(facts, *fact)
	}
	sort.Slice(facts, func(i, j int) bool { return facts[i].ID < facts[j].ID })
	return facts, nil
}

func newFact(id string, policy Policy) *model.LicenseFact {
	unknown := id == UnknownLicenseID
	category := model.LicenseCategoryUnknown
	if !unknown {
		category = policy.Category(id)
	}

	return &model.LicenseFact{
		ID:                         id,
		Name:                       policy.name(id),
		Category:                   category,
		UnableToInfer:              unknown || category == model.LicenseCategoryUnknown,
		LicenseComplianceViolation: util.ContainsFold(policy.Denied, id),
		DepsUsingLicense:           []model.DependencyKey{},
	}
}

func normalizeID(id string) string {
	id = strings.TrimSpace(id)
	switch strings.ToUpper(id) {
	case "", "UNKNOWN", "NOASSERTION", "NONE":
		return UnknownLicenseID
	}
	return id
}
