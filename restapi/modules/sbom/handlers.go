// Package sbom implements the REST API handlers for SBOM queries and analysis run ingestion.
package sbom

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/pdvd-sbom/internal/services"
	"github.com/ortelius/pdvd-sbom/model"
	"github.com/ortelius/pdvd-sbom/util"
)

var logger = util.InitLogger()

// AnalysisRunRequest is the body of POST /projects/:project/analyses.
type AnalysisRunRequest struct {
	Outputs []model.PluginOutput `json:"outputs"`
}

// errorResponse maps engine errors to HTTP statuses.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrNoResultAvailable):
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"success": false,
			"message": "Analysis result not yet available",
		})
	case errors.Is(err, model.ErrUnknownWorkspace), errors.Is(err, model.ErrEntityNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	default:
		logger.Sugar().Errorf("Request %s %s failed: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
}

// splitList parses a comma separated query value.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	values := []string{}
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func pageRequest(c *fiber.Ctx) model.PageRequest {
	return model.PageRequest{
		Page:           c.QueryInt("page", 0),
		EntriesPerPage: c.QueryInt("entries_per_page", 0),
	}
}

// GetSbom lists the dependency rows of a workspace.
func GetSbom(svc *services.SbomService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := model.SbomQuery{
			Workspace:   c.Query("workspace"),
			SearchKey:   c.Query("search"),
			Filters:     splitList(c.Query("filters")),
			SortBy:      c.Query("sort_by"),
			SortDir:     c.Query("sort_direction"),
			PageRequest: pageRequest(c),
		}

		result, err := svc.GetSbom(c.UserContext(), c.Params("project"), q)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(result)
	}
}

// GetLicenses lists the license facts of a workspace.
func GetLicenses(svc *services.SbomService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := model.LicenseQuery{
			Workspace:   c.Query("workspace"),
			SearchKey:   c.Query("search"),
			Filters:     splitList(c.Query("filters")),
			PageRequest: pageRequest(c),
		}

		result, err := svc.GetLicenses(c.UserContext(), c.Params("project"), q)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(result)
	}
}

// GetStats returns the workspace counters of the latest run.
func GetStats(svc *services.SbomService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := svc.GetStats(c.UserContext(), c.Params("project"), c.Query("workspace"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(result)
	}
}

// GetStatsForProjects returns the counters of one workspace across several projects.
func GetStatsForProjects(svc *services.SbomService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projects := splitList(c.Query("projects"))
		if len(projects) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "At least one project is required",
			})
		}

		result, err := svc.GetStatsForProjects(c.UserContext(), projects, c.Query("workspace"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(result)
	}
}

// GetWorkspaces lists the workspaces of the latest run.
func GetWorkspaces(svc *services.SbomService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := svc.GetWorkspaces(c.UserContext(), c.Params("project"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(result)
	}
}

// GetDependency returns one dependency with its parents and children.
func GetDependency(svc *services.SbomService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, version := c.Query("name"), c.Query("version")
		if name == "" || version == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Dependency name and version are required",
			})
		}

		result, err := svc.GetDependency(c.UserContext(), c.Params("project"), c.Query("workspace"), name, version)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(result)
	}
}

// GetDependencyGraph returns the ancestors and descendants of a dependency.
func GetDependencyGraph(svc *services.SbomService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := model.DependencyKey{Name: c.Query("name"), Version: c.Query("version")}
		if key.Name == "" || key.Version == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Dependency name and version are required",
			})
		}

		result, err := svc.GetDependencyGraph(c.UserContext(), c.Params("project"), c.Query("workspace"), key)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(result)
	}
}

// PostAnalysisRun stores the plugin outputs of a new analysis run.
func PostAnalysisRun(svc *services.SbomService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AnalysisRunRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body: " + err.Error(),
			})
		}

		if len(req.Outputs) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "At least one plugin output is required",
			})
		}

		key, err := svc.SaveAnalysisRun(c.UserContext(), c.Params("project"), req.Outputs)
		if err != nil {
			return errorResponse(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Analysis run stored successfully",
			"key":     key,
		})
	}
}
