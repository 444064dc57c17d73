package sbom

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/pdvd-sbom/internal/services"
	"github.com/ortelius/pdvd-sbom/model"
)

func stringArg(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name].(string); ok {
		return v
	}
	return ""
}

func intArg(p graphql.ResolveParams, name string) int {
	if v, ok := p.Args[name].(int); ok {
		return v
	}
	return 0
}

func stringListArg(p graphql.ResolveParams, name string) []string {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

func pageArgs(p graphql.ResolveParams) model.PageRequest {
	return model.PageRequest{
		Page:           intArg(p, "page"),
		EntriesPerPage: intArg(p, "entries_per_page"),
	}
}

// GetQueryFields returns the SBOM queries to be mounted in the root schema
func GetQueryFields(svc *services.SbomService) graphql.Fields {
	workspaceArgs := graphql.FieldConfigArgument{
		"project":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"workspace": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}
	dependencyArgs := graphql.FieldConfigArgument{
		"project":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"workspace": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"version":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}

	return graphql.Fields{
		"sbom": &graphql.Field{
			Type: SbomPageType,
			Args: graphql.FieldConfigArgument{
				"project":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"workspace":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"search":           &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"filters":          &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				"sort_by":          &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"sort_direction":   &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"page":             &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				"entries_per_page": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveSbom(p.Context, svc, stringArg(p, "project"), model.SbomQuery{
					Workspace:   stringArg(p, "workspace"),
					SearchKey:   stringArg(p, "search"),
					Filters:     stringListArg(p, "filters"),
					SortBy:      stringArg(p, "sort_by"),
					SortDir:     stringArg(p, "sort_direction"),
					PageRequest: pageArgs(p),
				})
			},
		},
		"sbomLicenses": &graphql.Field{
			Type: LicensePageType,
			Args: graphql.FieldConfigArgument{
				"project":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"workspace":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"search":           &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"filters":          &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				"page":             &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				"entries_per_page": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveLicenses(p.Context, svc, stringArg(p, "project"), model.LicenseQuery{
					Workspace:   stringArg(p, "workspace"),
					SearchKey:   stringArg(p, "search"),
					Filters:     stringListArg(p, "filters"),
					PageRequest: pageArgs(p),
				})
			},
		},
		"sbomStats": &graphql.Field{
			Type: AnalysisStatsType,
			Args: workspaceArgs,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveStats(p.Context, svc, stringArg(p, "project"), stringArg(p, "workspace"))
			},
		},
		"sbomWorkspaces": &graphql.Field{
			Type: WorkspacesType,
			Args: graphql.FieldConfigArgument{
				"project": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveWorkspaces(p.Context, svc, stringArg(p, "project"))
			},
		},
		"sbomDependency": &graphql.Field{
			Type: DependencyDetailsType,
			Args: dependencyArgs,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveDependency(p.Context, svc, stringArg(p, "project"), stringArg(p, "workspace"), stringArg(p, "name"), stringArg(p, "version"))
			},
		},
		"sbomDependencyGraph": &graphql.Field{
			Type: DependencyGraphType,
			Args: dependencyArgs,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveDependencyGraph(p.Context, svc, stringArg(p, "project"), stringArg(p, "workspace"), stringArg(p, "name"), stringArg(p, "version"))
			},
		},
	}
}
