// Package graphql assembles the root GraphQL schema from the query modules.
package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/pdvd-sbom/graphql/modules/sbom"
	"github.com/ortelius/pdvd-sbom/internal/services"
)

// CreateSchema builds the root schema with every module's queries mounted.
func CreateSchema(svc *services.SbomService) (graphql.Schema, error) {
	fields := graphql.Fields{}
	for name, field := range sbom.GetQueryFields(svc) {
		fields[name] = field
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: fields,
		}),
	})
}
