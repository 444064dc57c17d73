package database

import (
	"context"
	"fmt"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/ortelius/pdvd-sbom/internal/services"
	"github.com/ortelius/pdvd-sbom/model"
)

// AnalysisRunRepository stores analysis runs in ArangoDB.
type AnalysisRunRepository struct {
	DB DBConnection
}

// NewAnalysisRunRepository returns a repository over an initialized connection.
func NewAnalysisRunRepository(db DBConnection) *AnalysisRunRepository {
	return &AnalysisRunRepository{DB: db}
}

// FindLatestRuns returns the newest run of the project and the one created right before it.
func (r *AnalysisRunRepository) FindLatestRuns(ctx context.Context, projectID string) (*model.AnalysisRun, *model.AnalysisRun, error) {
	query := `
		FOR r IN analysis_run
			FILTER r.project_id == @project
			SORT r.created_at DESC
			LIMIT 2
			RETURN r
	`
	cursor, err := r.DB.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"project": projectID,
		},
	})
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close()

	var runs []*model.AnalysisRun
	for cursor.HasMore() {
		var run model.AnalysisRun
		if _, err := cursor.ReadDocument(ctx, &run); err != nil {
			return nil, nil, fmt.Errorf("failed to read analysis run: %w", err)
		}
		runs = append(runs, &run)
	}

	switch len(runs) {
	case 0:
		return nil, nil, nil
	case 1:
		return runs[0], nil, nil
	default:
		return runs[0], runs[1], nil
	}
}

// SaveAnalysisRun inserts a run and returns its document key.
func (r *AnalysisRunRepository) SaveAnalysisRun(ctx context.Context, run model.AnalysisRun) (string, error) {
	meta, err := r.DB.Collections[AnalysisRunCollection].CreateDocument(ctx, run)
	if err != nil {
		return "", fmt.Errorf("failed to save analysis run: %w", err)
	}
	return meta.Key, nil
}

// Ensure compile-time interface check
var _ services.AnalysisRunRepository = (*AnalysisRunRepository)(nil)
