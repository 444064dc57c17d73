// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/ortelius/pdvd-sbom/internal/services"
	"github.com/ortelius/pdvd-sbom/restapi/modules/sbom"
	"github.com/ortelius/pdvd-sbom/util"
)

var logger = util.InitLogger()

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
func SetupRoutes(app *fiber.App, svc *services.SbomService, schema graphql.Schema) {
	// API Group /api/v1
	api := app.Group("/api/v1")

	api.Post("/graphql", GraphQLHandler(schema))

	api.Get("/stats", sbom.GetStatsForProjects(svc))

	project := api.Group("/projects/:project")
	project.Get("/sbom", sbom.GetSbom(svc))
	project.Get("/stats", sbom.GetStats(svc))
	project.Get("/workspaces", sbom.GetWorkspaces(svc))
	project.Get("/dependency", sbom.GetDependency(svc))
	project.Get("/graph", sbom.GetDependencyGraph(svc))
	project.Get("/licenses", sbom.GetLicenses(svc))
	project.Post("/analyses", sbom.PostAnalysisRun(svc))

	logger.Sugar().Info("API routes initialized successfully")
}
