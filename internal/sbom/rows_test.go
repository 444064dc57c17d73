package sbom

import (
	"errors"
	"testing"

	"github.com/ortelius/pdvd-sbom/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRows_SkipsInactiveEntries(t *testing.T) {
	s := graphSbom()
	s.Workspaces["default"].Dependencies[key("scaffold", "0.1.0")] = entry(false, false)

	rows, err := Rows(s, "default")
	require.NoError(t, err)

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"app", "lib-b", "lib-c", "lib-d"}, names)
}

func TestRows_Projection(t *testing.T) {
	rows, err := Rows(graphSbom(), "default")
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	app := rows[0]
	assert.Equal(t, "default", app.Workspace)
	assert.Equal(t, "npm", app.PackageManager)
	assert.Equal(t, "pkg:npm/app@1.0.0", app.PURL)
	assert.True(t, app.IsDirect)
	assert.Equal(t, 1, app.IsDirectCount)
	assert.Equal(t, "1.0.0", app.NewestRelease)
	assert.False(t, rows[1].IsDirect)
}

func TestRows_DirectFromBothRootSets(t *testing.T) {
	s := graphSbom()
	ws := s.Workspaces["default"]
	ws.DeclaredDevDependencies = []model.DependencyKey{key("lib-c", "1.0.0"), key("app", "1.0.0")}

	assert.Equal(t, map[model.DependencyKey]bool{
		key("app", "1.0.0"):   true,
		key("lib-c", "1.0.0"): true,
	}, ws.DeclaredSet())

	rows, err := Rows(s, "default")
	require.NoError(t, err)

	direct := map[string]bool{}
	for _, r := range rows {
		direct[r.Name] = r.IsDirect
	}
	assert.Equal(t, map[string]bool{"app": true, "lib-b": false, "lib-c": true, "lib-d": false}, direct)

	details, err := Details(s, "default", key("lib-c", "1.0.0"))
	require.NoError(t, err)
	assert.True(t, details.IsDirect)
}

func TestRows_UnknownWorkspace(t *testing.T) {
	_, err := Rows(graphSbom(), "nope")
	assert.True(t, errors.Is(err, model.ErrUnknownWorkspace))
}

func TestDetails(t *testing.T) {
	s := graphSbom()
	s.Workspaces["default"].Dependencies[key("scaffold", "0.1.0")] = entry(false, false)

	details, err := Details(s, "default", key("lib-b", "1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, []model.DependencyKey{key("app", "1.0.0"), key("lib-d", "1.0.0")}, details.Parents)
	assert.Equal(t, []model.DependencyKey{key("lib-d", "1.0.0")}, details.Children)

	// inactive entries are still addressable directly
	details, err = Details(s, "default", key("scaffold", "0.1.0"))
	require.NoError(t, err)
	assert.Empty(t, details.Parents)

	_, err = Details(s, "default", key("absent", "1.0.0"))
	assert.True(t, errors.Is(err, model.ErrEntityNotFound))
}
