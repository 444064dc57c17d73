// Package services provides internal service implementations for the PDVD SBOM engine.
package services

import (
	"context"

	"github.com/ortelius/pdvd-sbom/model"
)

// AnalysisRunRepository reads and stores decoded analysis runs.
type AnalysisRunRepository interface {
	// FindLatestRuns returns the newest run of the project and the run created
	// immediately before it. current is nil when the project has no run; previous
	// is nil for a first-ever run.
	FindLatestRuns(ctx context.Context, projectID string) (current, previous *model.AnalysisRun, err error)
	SaveAnalysisRun(ctx context.Context, run model.AnalysisRun) (string, error)
}
