package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ortelius/pdvd-sbom/internal/licenses"
	"github.com/ortelius/pdvd-sbom/internal/metadata"
	"github.com/ortelius/pdvd-sbom/internal/query"
	"github.com/ortelius/pdvd-sbom/internal/sbom"
	"github.com/ortelius/pdvd-sbom/internal/stats"
	"github.com/ortelius/pdvd-sbom/model"
	"github.com/ortelius/pdvd-sbom/util"
	"golang.org/x/sync/errgroup"
)

var logger = util.InitLogger()

// Options configures SbomService.
type Options struct {
	Pagination          model.PaginationConfig
	LegacyStringSort    bool
	LicensePolicy       licenses.Policy
	MetadataConcurrency int
	StatsConcurrency    int
}

// SbomService answers SBOM queries for a project by merging its stored plugin
// outputs and running them through the engine.
type SbomService struct {
	repo     AnalysisRunRepository
	metadata metadata.Provider
	opts     Options
}

// NewSbomService wires the service. A nil provider disables newest-release lookups.
func NewSbomService(repo AnalysisRunRepository, provider metadata.Provider, opts Options) *SbomService {
	if provider == nil {
		provider = metadata.NoopProvider{}
	}
	if opts.MetadataConcurrency <= 0 {
		opts.MetadataConcurrency = 10
	}
	return &SbomService{repo: repo, metadata: provider, opts: opts}
}

// loadSboms merges the current run and, when present, the previous one.
func (s *SbomService) loadSboms(ctx context.Context, projectID string) (*model.Sbom, *model.Sbom, error) {
	projectID = util.NormalizeProjectID(projectID)

	current, previous, err := s.repo.FindLatestRuns(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load analysis runs for %s: %w", projectID, err)
	}
	if current == nil {
		return nil, nil, fmt.Errorf("project %s: %w", projectID, model.ErrNoResultAvailable)
	}

	cur := sbom.Merge(current.Outputs)
	var prev *model.Sbom
	if previous != nil {
		prev = sbom.Merge(previous.Outputs)
	}
	return cur, prev, nil
}

// GetSbom lists the dependency rows of a workspace: filter, then sort, then paginate.
func (s *SbomService) GetSbom(ctx context.Context, projectID string, q model.SbomQuery) (model.PaginatedResult[model.SbomDependencyRow], error) {
	current, _, err := s.loadSboms(ctx, projectID)
	if err != nil {
		return model.PaginatedResult[model.SbomDependencyRow]{}, err
	}

	rows, err := sbom.Rows(current, q.Workspace)
	if err != nil {
		return model.PaginatedResult[model.SbomDependencyRow]{}, err
	}

	// Rows without a reported outdated flag need the newest release before
	// filtering so the derived flag is counted. Sorting by newest_release needs
	// every row. Everything else is looked up for the returned page only.
	field, _ := query.ResolveSort(q.SortBy, q.SortDir)
	allRows := field == "newest_release"
	known := make(map[string]string)
	s.annotateNewestRelease(ctx, rows, known, func(row model.SbomDependencyRow) bool {
		return allRows || row.Outdated == nil
	})

	filtered, counts := query.FilterDependencies(rows, q.SearchKey, q.Filters)
	sorted := query.Sort(filtered, q.SortBy, q.SortDir, query.SortOptions{LegacyStringDirection: s.opts.LegacyStringSort})

	page := util.Paginate(sorted, len(sorted), q.PageRequest, s.opts.Pagination, counts)
	s.annotateNewestRelease(ctx, page.Data, known, nil)
	return page, nil
}

// GetLicenses lists the license facts of a workspace: filter, then paginate.
func (s *SbomService) GetLicenses(ctx context.Context, projectID string, q model.LicenseQuery) (model.PaginatedResult[model.LicenseFact], error) {
	current, _, err := s.loadSboms(ctx, projectID)
	if err != nil {
		return model.PaginatedResult[model.LicenseFact]{}, err
	}

	facts, err := licenses.Build(current, q.Workspace, s.opts.LicensePolicy)
	if err != nil {
		return model.PaginatedResult[model.LicenseFact]{}, err
	}

	filtered, counts := query.FilterLicenses(facts, q.SearchKey, q.Filters)
	return util.Paginate(filtered, len(filtered), q.PageRequest, s.opts.Pagination, counts), nil
}

// GetStats returns the workspace counters with diffs against the previous run.
func (s *SbomService) GetStats(ctx context.Context, projectID, workspace string) (model.AnalysisStats, error) {
	current, previous, err := s.loadSboms(ctx, projectID)
	if err != nil {
		return model.AnalysisStats{}, err
	}
	return stats.Compute(current, previous, workspace)
}

// GetStatsForProjects computes the stats of the same workspace for several projects concurrently.
func (s *SbomService) GetStatsForProjects(ctx context.Context, projectIDs []string, workspace string) (map[string]model.AnalysisStats, error) {
	jobs := make([]stats.Job, len(projectIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, projectID := range projectIDs {
		g.Go(func() error {
			current, previous, err := s.loadSboms(gctx, projectID)
			if err != nil {
				return err
			}
			jobs[i] = stats.Job{Current: current, Previous: previous, Workspace: workspace}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results, err := stats.ComputeAll(ctx, jobs, s.opts.StatsConcurrency)
	if err != nil {
		return nil, err
	}

	byProject := make(map[string]model.AnalysisStats, len(projectIDs))
	for i, projectID := range projectIDs {
		byProject[projectID] = results[i]
	}
	return byProject, nil
}

// GetWorkspaces lists the workspaces of the latest run.
func (s *SbomService) GetWorkspaces(ctx context.Context, projectID string) (model.WorkspacesInfo, error) {
	current, _, err := s.loadSboms(ctx, projectID)
	if err != nil {
		return model.WorkspacesInfo{}, err
	}
	return model.WorkspacesInfo{
		Workspaces:     current.WorkspaceNames(),
		PackageManager: current.AnalysisInfo.PackageManager,
	}, nil
}

// GetDependency returns one dependency with its direct neighbours.
func (s *SbomService) GetDependency(ctx context.Context, projectID, workspace, name, version string) (model.DependencyDetails, error) {
	current, _, err := s.loadSboms(ctx, projectID)
	if err != nil {
		return model.DependencyDetails{}, err
	}

	details, err := sbom.Details(current, workspace, model.DependencyKey{Name: name, Version: version})
	if err != nil {
		return model.DependencyDetails{}, err
	}

	rows := []model.SbomDependencyRow{details.SbomDependencyRow}
	s.annotateNewestRelease(ctx, rows, make(map[string]string), nil)
	details.SbomDependencyRow = rows[0]
	return details, nil
}

// GetDependencyGraph returns the ancestors and descendants of a dependency.
func (s *SbomService) GetDependencyGraph(ctx context.Context, projectID, workspace string, key model.DependencyKey) (model.DependencyGraph, error) {
	current, _, err := s.loadSboms(ctx, projectID)
	if err != nil {
		return model.DependencyGraph{}, err
	}
	return sbom.BuildGraph(current, workspace, key)
}

// SaveAnalysisRun stores the decoded plugin outputs of a new run.
func (s *SbomService) SaveAnalysisRun(ctx context.Context, projectID string, outputs []model.PluginOutput) (string, error) {
	now := time.Now().UTC()
	normalized := util.NormalizeProjectID(projectID)
	run := model.AnalysisRun{
		Key:       util.SanitizeKey(normalized + "-" + now.Format("20060102T150405.000000000")),
		ObjType:   "analysis_run",
		ProjectID: normalized,
		CreatedAt: now,
		Outputs:   outputs,
	}
	key, err := s.repo.SaveAnalysisRun(ctx, run)
	if err != nil {
		return "", fmt.Errorf("failed to save analysis run for %s: %w", run.ProjectID, err)
	}
	logger.Sugar().Infof("Stored analysis run %s for project %s (%d plugin outputs)", key, run.ProjectID, len(outputs))
	return key, nil
}

// annotateNewestRelease fills NewestRelease from the metadata provider for the
// rows selected by want (all rows when nil). known caches lookups across calls,
// with "" recording a miss. Misses keep the row's own version. Outdated is
// derived when the plugin did not report it.
func (s *SbomService) annotateNewestRelease(ctx context.Context, rows []model.SbomDependencyRow, known map[string]string, want func(model.SbomDependencyRow) bool) {
	if len(rows) == 0 {
		return
	}

	var names []string
	pending := make(map[string]bool)
	for _, row := range rows {
		if want != nil && !want(row) {
			continue
		}
		if _, ok := known[row.Name]; ok || pending[row.Name] {
			continue
		}
		pending[row.Name] = true
		names = append(names, row.Name)
	}

	packageManager := rows[0].PackageManager
	found := make([]string, len(names))
	var g errgroup.Group
	g.SetLimit(s.opts.MetadataConcurrency)
	for i, name := range names {
		g.Go(func() error {
			if version, ok := s.metadata.GetLatestVersion(ctx, packageManager, name); ok {
				found[i] = version
			}
			return nil
		})
	}
	_ = g.Wait()

	for i, name := range names {
		known[name] = found[i]
	}

	for i := range rows {
		if want != nil && !want(rows[i]) {
			continue
		}
		newest := known[rows[i].Name]
		if newest == "" {
			continue
		}
		rows[i].NewestRelease = newest
		if rows[i].Outdated == nil {
			if older, ok := util.IsOlderVersion(rows[i].PackageManager, rows[i].Version, newest); ok {
				rows[i].Outdated = util.BoolPtr(older)
			}
		}
	}
}
