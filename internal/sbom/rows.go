package sbom

import (
	"fmt"

	"github.com/ortelius/pdvd-sbom/model"
	"github.com/ortelius/pdvd-sbom/util"
)

// LookupWorkspace returns the named workspace or ErrUnknownWorkspace.
func LookupWorkspace(s *model.Sbom, workspace string) (*model.Workspace, error) {
	ws, ok := s.Workspace(workspace)
	if !ok {
		return nil, fmt.Errorf("workspace %q: %w", workspace, model.ErrUnknownWorkspace)
	}
	return ws, nil
}

// Rows flattens the active dependencies of a workspace into listing rows,
// ordered by name, then version. Entries that are neither dev nor prod are skipped.
func Rows(s *model.Sbom, workspace string) ([]model.SbomDependencyRow, error) {
	ws, err := LookupWorkspace(s, workspace)
	if err != nil {
		return nil, err
	}

	declared := ws.DeclaredSet()
	rows := make([]model.SbomDependencyRow, 0, len(ws.Dependencies))
	for _, key := range ws.Keys() {
		entry := ws.Dependencies[key]
		if !entry.IsActive() {
			continue
		}
		rows = append(rows, newRow(ws.Name, s.AnalysisInfo.PackageManager, key, entry, declared[key]))
	}
	return rows, nil
}

// Details returns the single-dependency view including direct parents and children.
func Details(s *model.Sbom, workspace string, key model.DependencyKey) (model.DependencyDetails, error) {
	ws, err := LookupWorkspace(s, workspace)
	if err != nil {
		return model.DependencyDetails{}, err
	}

	entry, ok := ws.Dependencies[key]
	if !ok {
		return model.DependencyDetails{}, fmt.Errorf("dependency %s in workspace %q: %w", key, workspace, model.ErrEntityNotFound)
	}

	return model.DependencyDetails{
		SbomDependencyRow: newRow(ws.Name, s.AnalysisInfo.PackageManager, key, entry, ws.DeclaredSet()[key]),
		Parents:           parentsOf(ws, key),
		Children:          childrenOf(ws, key),
	}, nil
}

func newRow(workspace, packageManager string, key model.DependencyKey, entry *model.DependencyEntry, declared bool) model.SbomDependencyRow {
	row := model.SbomDependencyRow{
		Workspace:      workspace,
		Name:           key.Name,
		Version:        key.Version,
		PackageManager: packageManager,
		PURL:           util.BuildPURL(packageManager, key.Name, key.Version),
		Direct:         entry.Direct,
		Transitive:     entry.Transitive,
		Dev:            entry.Dev,
		Prod:           entry.Prod,
		Bundled:        entry.Bundled,
		Optional:       entry.Optional,
		IsDirect:       declared,
		NewestRelease:  key.Version,
		Licenses:       append([]string{}, entry.Licenses...),
		Deprecated:     copyBool(entry.Deprecated),
		Unlicensed:     copyBool(entry.Unlicensed),
		Outdated:       copyBool(entry.Outdated),
		Release:        entry.Release,
		LastPublished:  entry.LastPublished,
	}
	if row.IsDirect {
		row.IsDirectCount = 1
	}
	if entry.Transitive {
		row.IsTransitiveCount = 1
	}
	return row
}
