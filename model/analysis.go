// Package model - AnalysisRun is the stored record of one analysis run.
package model

import "time"

// AnalysisRun holds the decoded plugin outputs of one analysis run of a project.
type AnalysisRun struct {
	Key       string         `json:"_key,omitempty"`
	ObjType   string         `json:"objtype,omitempty"`
	ProjectID string         `json:"project_id"`
	CreatedAt time.Time      `json:"created_at"`
	Outputs   []PluginOutput `json:"outputs"`
}
