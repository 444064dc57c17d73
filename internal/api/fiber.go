// Package api builds the Fiber application serving the REST and GraphQL endpoints.
package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ortelius/pdvd-sbom/config"
	"github.com/ortelius/pdvd-sbom/graphql"
	"github.com/ortelius/pdvd-sbom/internal/services"
	"github.com/ortelius/pdvd-sbom/restapi"
)

// NewFiberApp creates and configures a Fiber app with REST and GraphQL routes
func NewFiberApp(cfg config.Config, svc *services.SbomService) (*fiber.App, error) {
	schema, err := graphql.CreateSchema(svc)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:     "pdvd-sbom API v1.0",
		BodyLimit:   cfg.Server.BodyLimitMB * 1024 * 1024,
		ReadTimeout: 60 * time.Second,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	origins := strings.Join(cfg.Server.CORSOrigins, ",")
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		// credentials cannot be combined with the wildcard origin
		AllowCredentials: origins != "" && origins != "*",
		AllowMethods:     "GET, POST, HEAD, OPTIONS",
	}))
	app.Use(logger.New())

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	restapi.SetupRoutes(app, svc, schema)

	return app, nil
}
