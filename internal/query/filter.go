// Package query implements the listing pipeline stages applied to SBOM rows and
// license facts: filtering with per-category counts, and field-aware sorting.
package query

import (
	"strings"

	"github.com/ortelius/pdvd-sbom/model"
	"github.com/ortelius/pdvd-sbom/util"
)

// NamedPredicate is a filter category that can be toggled by name.
type NamedPredicate[T any] struct {
	Name  string
	Match func(T) bool
}

// FilterSpec describes how items of type T are searched and filtered.
type FilterSpec[T any] struct {
	// Search reports whether item matches the lowercased search key.
	Search     func(item T, lowerKey string) bool
	Predicates []NamedPredicate[T]
}

// Filter applies the search key, then the active filters (AND semantics).
//
// The returned counts are computed over the search-filtered set, before any
// active filter, and report for every category how many items match that
// category's predicate alone. They do not depend on activeFilters.
// Unknown filter names are ignored.
func Filter[T any](items []T, searchKey string, activeFilters []string, spec FilterSpec[T]) ([]T, map[string]int) {
	searched := items
	if key := strings.ToLower(strings.TrimSpace(searchKey)); key != "" && spec.Search != nil {
		searched = make([]T, 0, len(items))
		for _, item := range items {
			if spec.Search(item, key) {
				searched = append(searched, item)
			}
		}
	}

	counts := make(map[string]int, len(spec.Predicates))
	for _, p := range spec.Predicates {
		counts[p.Name] = 0
	}
	for _, item := range searched {
		for _, p := range spec.Predicates {
			if p.Match(item) {
				counts[p.Name]++
			}
		}
	}

	active := make([]NamedPredicate[T], 0, len(activeFilters))
	for _, p := range spec.Predicates {
		if util.Contains(activeFilters, p.Name) {
			active = append(active, p)
		}
	}

	filtered := make([]T, 0, len(searched))
	for _, item := range searched {
		keep := true
		for _, p := range active {
			if !p.Match(item) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, item)
		}
	}

	return filtered, counts
}

// License filter names.
const (
	LicenseFilterComplianceViolation = "compliance_violation"
	LicenseFilterUnrecognized        = "unrecognized"
	LicenseFilterPermissive          = "permissive"
	LicenseFilterCopyLeft            = "copy_left"
)

// LicenseFilterSpec matches the search key against id or name, case-insensitively.
// An item matching on both fields is kept once.
var LicenseFilterSpec = FilterSpec[model.LicenseFact]{
	Search: func(l model.LicenseFact, key string) bool {
		return strings.Contains(strings.ToLower(l.ID), key) || strings.Contains(strings.ToLower(l.Name), key)
	},
	Predicates: []NamedPredicate[model.LicenseFact]{
		{Name: LicenseFilterComplianceViolation, Match: func(l model.LicenseFact) bool { return l.LicenseComplianceViolation }},
		{Name: LicenseFilterUnrecognized, Match: func(l model.LicenseFact) bool { return l.UnableToInfer }},
		{Name: LicenseFilterPermissive, Match: func(l model.LicenseFact) bool { return l.Category == model.LicenseCategoryPermissive }},
		{Name: LicenseFilterCopyLeft, Match: func(l model.LicenseFact) bool { return l.Category == model.LicenseCategoryCopyLeft }},
	},
}

// DependencyFilterSpec matches the search key against the package name.
var DependencyFilterSpec = FilterSpec[model.SbomDependencyRow]{
	Search: func(r model.SbomDependencyRow, key string) bool {
		return strings.Contains(strings.ToLower(r.Name), key)
	},
	Predicates: []NamedPredicate[model.SbomDependencyRow]{
		{Name: "direct", Match: func(r model.SbomDependencyRow) bool { return r.IsDirect }},
		{Name: "transitive", Match: func(r model.SbomDependencyRow) bool { return r.Transitive }},
		{Name: "dev", Match: func(r model.SbomDependencyRow) bool { return r.Dev }},
		{Name: "prod", Match: func(r model.SbomDependencyRow) bool { return r.Prod }},
		{Name: "bundled", Match: func(r model.SbomDependencyRow) bool { return r.Bundled }},
		{Name: "optional", Match: func(r model.SbomDependencyRow) bool { return r.Optional }},
		{Name: "deprecated", Match: func(r model.SbomDependencyRow) bool { return util.BoolValue(r.Deprecated) }},
		{Name: "outdated", Match: func(r model.SbomDependencyRow) bool { return util.BoolValue(r.Outdated) }},
		{Name: "unlicensed", Match: func(r model.SbomDependencyRow) bool { return util.BoolValue(r.Unlicensed) }},
	},
}

// FilterLicenses runs Filter with LicenseFilterSpec.
func FilterLicenses(licenses []model.LicenseFact, searchKey string, activeFilters []string) ([]model.LicenseFact, map[string]int) {
	return Filter(licenses, searchKey, activeFilters, LicenseFilterSpec)
}

// FilterDependencies runs Filter with DependencyFilterSpec.
func FilterDependencies(rows []model.SbomDependencyRow, searchKey string, activeFilters []string) ([]model.SbomDependencyRow, map[string]int) {
	return Filter(rows, searchKey, activeFilters, DependencyFilterSpec)
}
