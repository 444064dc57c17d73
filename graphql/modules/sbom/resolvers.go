package sbom

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/ortelius/pdvd-sbom/internal/services"
	"github.com/ortelius/pdvd-sbom/model"
)

// pageToMap flattens a paginated result, turning the filter count map into a
// list ordered by filter name.
func pageToMap[T any](page model.PaginatedResult[T]) map[string]interface{} {
	names := make([]string, 0, len(page.FilterCount))
	for name := range page.FilterCount {
		names = append(names, name)
	}
	sort.Strings(names)

	counts := make([]map[string]interface{}, 0, len(names))
	for _, name := range names {
		counts = append(counts, map[string]interface{}{
			"name":  name,
			"count": page.FilterCount[name],
		})
	}

	return map[string]interface{}{
		"data":             page.Data,
		"page":             page.Page,
		"entries_per_page": page.EntriesPerPage,
		"total_entries":    page.TotalEntries,
		"total_pages":      page.TotalPages,
		"entry_count":      page.EntryCount,
		"filter_count":     counts,
	}
}

// ResolveSbom fetches one page of dependency rows.
func ResolveSbom(ctx context.Context, svc *services.SbomService, projectID string, q model.SbomQuery) (map[string]interface{}, error) {
	page, err := svc.GetSbom(ctx, projectID, q)
	if err != nil {
		return nil, err
	}
	return pageToMap(page), nil
}

// ResolveLicenses fetches one page of license facts.
func ResolveLicenses(ctx context.Context, svc *services.SbomService, projectID string, q model.LicenseQuery) (map[string]interface{}, error) {
	page, err := svc.GetLicenses(ctx, projectID, q)
	if err != nil {
		return nil, err
	}
	return pageToMap(page), nil
}

// ResolveStats fetches the workspace counters.
func ResolveStats(ctx context.Context, svc *services.SbomService, projectID, workspace string) (model.AnalysisStats, error) {
	return svc.GetStats(ctx, projectID, workspace)
}

// ResolveWorkspaces lists the workspaces of the latest run.
func ResolveWorkspaces(ctx context.Context, svc *services.SbomService, projectID string) (model.WorkspacesInfo, error) {
	return svc.GetWorkspaces(ctx, projectID)
}

// ResolveDependency fetches one dependency with its parents and children.
// The embedded row is flattened because the default resolver does not walk
// embedded structs.
func ResolveDependency(ctx context.Context, svc *services.SbomService, projectID, workspace, name, version string) (map[string]interface{}, error) {
	details, err := svc.GetDependency(ctx, projectID, workspace, name, version)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}
	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ResolveDependencyGraph fetches the ancestors and descendants of a dependency.
func ResolveDependencyGraph(ctx context.Context, svc *services.SbomService, projectID, workspace, name, version string) (model.DependencyGraph, error) {
	return svc.GetDependencyGraph(ctx, projectID, workspace, model.DependencyKey{Name: name, Version: version})
}
