// Package sbom defines the GraphQL types, queries and resolvers for SBOM data.
package sbom

import (
	"github.com/graphql-go/graphql"
)

// DependencyKeyType identifies a dependency by name and version.
var DependencyKeyType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DependencyKey",
	Fields: graphql.Fields{
		"name":    &graphql.Field{Type: graphql.String},
		"version": &graphql.Field{Type: graphql.String},
	},
})

func dependencyRowFields() graphql.Fields {
	return graphql.Fields{
		"workspace":           &graphql.Field{Type: graphql.String},
		"name":                &graphql.Field{Type: graphql.String},
		"version":             &graphql.Field{Type: graphql.String},
		"package_manager":     &graphql.Field{Type: graphql.String},
		"purl":                &graphql.Field{Type: graphql.String},
		"direct":              &graphql.Field{Type: graphql.Boolean},
		"transitive":          &graphql.Field{Type: graphql.Boolean},
		"dev":                 &graphql.Field{Type: graphql.Boolean},
		"prod":                &graphql.Field{Type: graphql.Boolean},
		"bundled":             &graphql.Field{Type: graphql.Boolean},
		"optional":            &graphql.Field{Type: graphql.Boolean},
		"is_direct":           &graphql.Field{Type: graphql.Boolean},
		"is_direct_count":     &graphql.Field{Type: graphql.Int},
		"is_transitive_count": &graphql.Field{Type: graphql.Int},
		"newest_release":      &graphql.Field{Type: graphql.String},
		"licenses":            &graphql.Field{Type: graphql.NewList(graphql.String)},
		"deprecated":          &graphql.Field{Type: graphql.Boolean},
		"unlicensed":          &graphql.Field{Type: graphql.Boolean},
		"outdated":            &graphql.Field{Type: graphql.Boolean},
		"release":             &graphql.Field{Type: graphql.String},
		"last_published":      &graphql.Field{Type: graphql.String},
	}
}

// SbomDependencyType is one listing row.
var SbomDependencyType = graphql.NewObject(graphql.ObjectConfig{
	Name:   "SbomDependency",
	Fields: dependencyRowFields(),
})

// FilterCountType is the match count of one filter category.
var FilterCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FilterCount",
	Fields: graphql.Fields{
		"name":  &graphql.Field{Type: graphql.String},
		"count": &graphql.Field{Type: graphql.Int},
	},
})

func pageFields(itemType graphql.Output) graphql.Fields {
	return graphql.Fields{
		"data":             &graphql.Field{Type: graphql.NewList(itemType)},
		"page":             &graphql.Field{Type: graphql.Int},
		"entries_per_page": &graphql.Field{Type: graphql.Int},
		"total_entries":    &graphql.Field{Type: graphql.Int},
		"total_pages":      &graphql.Field{Type: graphql.Int},
		"entry_count":      &graphql.Field{Type: graphql.Int},
		"filter_count":     &graphql.Field{Type: graphql.NewList(FilterCountType)},
	}
}

// SbomPageType is a page of dependency rows.
var SbomPageType = graphql.NewObject(graphql.ObjectConfig{
	Name:   "SbomPage",
	Fields: pageFields(SbomDependencyType),
})

// LicenseFactType describes one license observed in a workspace.
var LicenseFactType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LicenseFact",
	Fields: graphql.Fields{
		"id":                           &graphql.Field{Type: graphql.String},
		"name":                         &graphql.Field{Type: graphql.String},
		"category":                     &graphql.Field{Type: graphql.String},
		"unable_to_infer":              &graphql.Field{Type: graphql.Boolean},
		"license_compliance_violation": &graphql.Field{Type: graphql.Boolean},
		"deps_using_license":           &graphql.Field{Type: graphql.NewList(DependencyKeyType)},
	},
})

// LicensePageType is a page of license facts.
var LicensePageType = graphql.NewObject(graphql.ObjectConfig{
	Name:   "LicensePage",
	Fields: pageFields(LicenseFactType),
})

// AnalysisStatsType carries the workspace counters and their deltas.
var AnalysisStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AnalysisStats",
	Fields: graphql.Fields{
		"number_of_dependencies":                             &graphql.Field{Type: graphql.Int},
		"number_of_dependencies_diff":                        &graphql.Field{Type: graphql.Int},
		"number_of_direct_dependencies":                      &graphql.Field{Type: graphql.Int},
		"number_of_direct_dependencies_diff":                 &graphql.Field{Type: graphql.Int},
		"number_of_transitive_dependencies":                  &graphql.Field{Type: graphql.Int},
		"number_of_transitive_dependencies_diff":             &graphql.Field{Type: graphql.Int},
		"number_of_both_direct_transitive_dependencies":      &graphql.Field{Type: graphql.Int},
		"number_of_both_direct_transitive_dependencies_diff": &graphql.Field{Type: graphql.Int},
		"number_of_bundled_dependencies":                     &graphql.Field{Type: graphql.Int},
		"number_of_bundled_dependencies_diff":                &graphql.Field{Type: graphql.Int},
		"number_of_optional_dependencies":                    &graphql.Field{Type: graphql.Int},
		"number_of_optional_dependencies_diff":               &graphql.Field{Type: graphql.Int},
		"number_of_non_dev_dependencies":                     &graphql.Field{Type: graphql.Int},
		"number_of_non_dev_dependencies_diff":                &graphql.Field{Type: graphql.Int},
		"number_of_dev_dependencies":                         &graphql.Field{Type: graphql.Int},
		"number_of_dev_dependencies_diff":                    &graphql.Field{Type: graphql.Int},
	},
})

// WorkspacesType lists the workspaces of the latest analysis run.
var WorkspacesType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SbomWorkspaces",
	Fields: graphql.Fields{
		"workspaces":      &graphql.Field{Type: graphql.NewList(graphql.String)},
		"package_manager": &graphql.Field{Type: graphql.String},
	},
})

// DependencyDetailsType is a row plus its direct neighbours.
var DependencyDetailsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DependencyDetails",
	Fields: func() graphql.Fields {
		fields := dependencyRowFields()
		fields["parents"] = &graphql.Field{Type: graphql.NewList(DependencyKeyType)}
		fields["children"] = &graphql.Field{Type: graphql.NewList(DependencyKeyType)}
		return fields
	}(),
})

// DependencyGraphType is the neighbourhood of one dependency.
var DependencyGraphType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DependencyGraph",
	Fields: graphql.Fields{
		"workspace":      &graphql.Field{Type: graphql.String},
		"dependency":     &graphql.Field{Type: DependencyKeyType},
		"parents":        &graphql.Field{Type: graphql.NewList(DependencyKeyType)},
		"children":       &graphql.Field{Type: graphql.NewList(DependencyKeyType)},
		"ancestors":      &graphql.Field{Type: graphql.NewList(DependencyKeyType)},
		"descendants":    &graphql.Field{Type: graphql.NewList(DependencyKeyType)},
		"ancestor_paths": &graphql.Field{Type: graphql.NewList(graphql.NewList(DependencyKeyType))},
	},
})
