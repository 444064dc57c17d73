package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/ortelius/pdvd-sbom/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(name string) model.DependencyKey {
	return model.DependencyKey{Name: name, Version: "1.0.0"}
}

func flags(direct, transitive, dev, prod bool) *model.DependencyEntry {
	return &model.DependencyEntry{DependencyFlags: model.DependencyFlags{
		Direct: direct, Transitive: transitive, Dev: dev, Prod: prod,
	}}
}

// currentSbom has 2 direct/prod and 1 transitive/dev dependency in "default".
func currentSbom() *model.Sbom {
	return &model.Sbom{Workspaces: map[string]*model.Workspace{
		"default": {
			Name: "default",
			Dependencies: map[model.DependencyKey]*model.DependencyEntry{
				key("express"): flags(true, false, false, true),
				key("lodash"):  flags(true, false, false, true),
				key("ms"):      flags(false, true, true, false),
			},
			DeclaredDependencies:    []model.DependencyKey{key("express"), key("lodash")},
			DeclaredDevDependencies: []model.DependencyKey{},
		},
	}}
}

func TestCompute_NoPriorRun(t *testing.T) {
	stats, err := Compute(currentSbom(), nil, "default")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.NumberOfDependencies)
	assert.Equal(t, 2, stats.NumberOfDirectDependencies)
	assert.Equal(t, 1, stats.NumberOfTransitiveDependencies)
	assert.Equal(t, 0, stats.NumberOfBothDirectTransitiveDependencies)
	assert.Equal(t, 2, stats.NumberOfNonDevDependencies)
	assert.Equal(t, 0, stats.NumberOfDevDependencies)

	assert.Zero(t, stats.NumberOfDependenciesDiff)
	assert.Zero(t, stats.NumberOfDirectDependenciesDiff)
	assert.Zero(t, stats.NumberOfTransitiveDependenciesDiff)
	assert.Zero(t, stats.NumberOfBothDirectTransitiveDiff)
	assert.Zero(t, stats.NumberOfBundledDependenciesDiff)
	assert.Zero(t, stats.NumberOfOptionalDependenciesDiff)
	assert.Zero(t, stats.NumberOfNonDevDependenciesDiff)
	assert.Zero(t, stats.NumberOfDevDependenciesDiff)
}

func TestCompute_Diffs(t *testing.T) {
	current := currentSbom()
	ws := current.Workspaces["default"]
	ws.Dependencies[key("debug")] = flags(true, true, false, true)
	ws.Dependencies[key("fsevents")] = &model.DependencyEntry{DependencyFlags: model.DependencyFlags{Transitive: true, Prod: true, Optional: true, Bundled: true}}

	stats, err := Compute(current, currentSbom(), "default")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.NumberOfDependencies)
	assert.Equal(t, 2, stats.NumberOfDependenciesDiff)
	assert.Equal(t, 1, stats.NumberOfBothDirectTransitiveDependencies)
	assert.Equal(t, 1, stats.NumberOfBothDirectTransitiveDiff)
	assert.Equal(t, 2, stats.NumberOfTransitiveDependencies)
	assert.Equal(t, 1, stats.NumberOfTransitiveDependenciesDiff)
	assert.Equal(t, 0, stats.NumberOfDirectDependenciesDiff)
	assert.Equal(t, 1, stats.NumberOfBundledDependencies)
	assert.Equal(t, 1, stats.NumberOfOptionalDependenciesDiff)
}

func TestCompute_WorkspaceMissingFromPrevious(t *testing.T) {
	previous := &model.Sbom{Workspaces: map[string]*model.Workspace{}}

	stats, err := Compute(currentSbom(), previous, "default")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.NumberOfDependenciesDiff)
	assert.Equal(t, 2, stats.NumberOfNonDevDependenciesDiff)
}

func TestCompute_Errors(t *testing.T) {
	_, err := Compute(nil, nil, "default")
	assert.True(t, errors.Is(err, model.ErrNoResultAvailable))

	_, err = Compute(currentSbom(), nil, "other")
	assert.True(t, errors.Is(err, model.ErrUnknownWorkspace))
}

func TestComputeAll(t *testing.T) {
	jobs := []Job{
		{Current: currentSbom(), Workspace: "default"},
		{Current: currentSbom(), Previous: &model.Sbom{}, Workspace: "default"},
	}

	results, err := ComputeAll(context.Background(), jobs, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 0, results[0].NumberOfDependenciesDiff)
	assert.Equal(t, 3, results[1].NumberOfDependenciesDiff)
}

func TestComputeAll_FailingJob(t *testing.T) {
	jobs := []Job{
		{Current: currentSbom(), Workspace: "default"},
		{Current: currentSbom(), Workspace: "missing"},
	}

	_, err := ComputeAll(context.Background(), jobs, 0)
	assert.True(t, errors.Is(err, model.ErrUnknownWorkspace))
}
