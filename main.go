// package main provides the entry point for the pdvd-sbom microservice, which
// serves SBOM listings, stats and dependency graphs over REST and GraphQL.
package main

import (
	"net/http"

	"github.com/ortelius/pdvd-sbom/config"
	"github.com/ortelius/pdvd-sbom/database"
	"github.com/ortelius/pdvd-sbom/internal/api"
	"github.com/ortelius/pdvd-sbom/internal/metadata"
	"github.com/ortelius/pdvd-sbom/internal/services"
	"github.com/ortelius/pdvd-sbom/util"
)

var logger = util.InitLogger()

func newMetadataProvider(cfg config.MetadataConfig) metadata.Provider {
	if !cfg.Enabled {
		logger.Sugar().Info("Package metadata lookups disabled")
		return metadata.NoopProvider{}
	}

	client := &metadata.DepsDevClient{
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	return metadata.NewCachedProvider(client, cfg.CacheSize, cfg.CacheTTL, cfg.Timeout)
}

func main() {
	cfg, err := config.Load(util.GetEnvDefault("SBOM_CONFIG", ""))
	if err != nil {
		logger.Sugar().Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db := database.InitializeDatabase()
	repo := database.NewAnalysisRunRepository(db)

	svc := services.NewSbomService(repo, newMetadataProvider(cfg.Metadata), services.Options{
		Pagination:          cfg.Pagination,
		LegacyStringSort:    cfg.Sort.LegacyStringDirection,
		LicensePolicy:       cfg.Licenses,
		MetadataConcurrency: cfg.Metadata.MaxConcurrent,
		StatsConcurrency:    cfg.Stats.MaxConcurrent,
	})

	app, err := api.NewFiberApp(cfg, svc)
	if err != nil {
		logger.Sugar().Fatalf("Failed to create GraphQL schema: %v", err)
	}

	logger.Sugar().Infof("Starting server on port %s", cfg.Server.Port)
	logger.Sugar().Info("GraphQL endpoint available at /api/v1/graphql")
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		logger.Sugar().Fatalf("Failed to start server: %v", err)
	}
}
