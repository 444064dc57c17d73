// Package stats computes per-workspace dependency counters and their deltas
// against the previous analysis run.
package stats

import (
	"context"
	"fmt"

	"github.com/ortelius/pdvd-sbom/internal/sbom"
	"github.com/ortelius/pdvd-sbom/model"
	"golang.org/x/sync/errgroup"
)

type counters struct {
	total, direct, transitive, both, bundled, optional, nonDev, dev int
}

// Compute returns the counters of workspace in current, with diffs against previous.
//
// A nil previous means there is no prior run; the diffs are then zero. A
// workspace missing from previous counts as empty there.
func Compute(current, previous *model.Sbom, workspace string) (model.AnalysisStats, error) {
	if current == nil {
		return model.AnalysisStats{}, model.ErrNoResultAvailable
	}

	ws, err := sbom.LookupWorkspace(current, workspace)
	if err != nil {
		return model.AnalysisStats{}, err
	}

	cur := count(ws)
	prev := cur
	if previous != nil {
		prev = counters{}
		if prevWs, ok := previous.Workspace(workspace); ok {
			prev = count(prevWs)
		}
	}

	return model.AnalysisStats{
		NumberOfDependencies:                     cur.total,
		NumberOfDependenciesDiff:                 cur.total - prev.total,
		NumberOfDirectDependencies:               cur.direct,
		NumberOfDirectDependenciesDiff:           cur.direct - prev.direct,
		NumberOfTransitiveDependencies:           cur.transitive,
		NumberOfTransitiveDependenciesDiff:       cur.transitive - prev.transitive,
		NumberOfBothDirectTransitiveDependencies: cur.both,
		NumberOfBothDirectTransitiveDiff:         cur.both - prev.both,
		NumberOfBundledDependencies:              cur.bundled,
		NumberOfBundledDependenciesDiff:          cur.bundled - prev.bundled,
		NumberOfOptionalDependencies:             cur.optional,
		NumberOfOptionalDependenciesDiff:         cur.optional - prev.optional,
		NumberOfNonDevDependencies:               cur.nonDev,
		NumberOfNonDevDependenciesDiff:           cur.nonDev - prev.nonDev,
		NumberOfDevDependencies:                  cur.dev,
		NumberOfDevDependenciesDiff:              cur.dev - prev.dev,
	}, nil
}

func count(ws *model.Workspace) counters {
	c := counters{
		nonDev: len(ws.DeclaredDependencies),
		dev:    len(ws.DeclaredDevDependencies),
	}

	for _, entry := range ws.Dependencies {
		if entry.Bundled {
			c.bundled++
		}
		if entry.Optional {
			c.optional++
		}

		switch {
		case entry.Transitive && entry.Direct:
			c.both++
		case entry.Transitive:
			c.transitive++
		case entry.Direct:
			c.direct++
		}

		c.total++
	}
	return c
}

// Job is one independent stats computation.
type Job struct {
	Current   *model.Sbom
	Previous  *model.Sbom
	Workspace string
}

// ComputeAll runs the jobs concurrently and returns the results in job order.
// The first failing job cancels the rest and its error is returned.
func ComputeAll(ctx context.Context, jobs []Job, limit int) ([]model.AnalysisStats, error) {
	results := make([]model.AnalysisStats, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Compute(job.Current, job.Previous, job.Workspace)
			if err != nil {
				return fmt.Errorf("stats job %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
