// Package sbom merges raw plugin outputs into the canonical SBOM and answers
// row and graph lookups over it.
package sbom

import (
	"sort"

	"github.com/ortelius/pdvd-sbom/model"
	"github.com/ortelius/pdvd-sbom/util"
)

var logger = util.InitLogger()

// Merge folds the plugin outputs of one analysis run into a canonical SBOM.
//
// Outputs are processed in declaration order. Classification flags are OR-ed,
// so a true reported by any plugin is never lost. Root sets come from the first
// output defining a non-empty set for the workspace. Merge never fails.
func Merge(outputs []model.PluginOutput) *model.Sbom {
	result := &model.Sbom{
		Workspaces: map[string]*model.Workspace{},
		AnalysisInfo: model.AnalysisInfo{
			PublicErrors:  []string{},
			PrivateErrors: []string{},
		},
	}

	for _, output := range outputs {
		mergeAnalysisInfo(&result.AnalysisInfo, output.AnalysisInfo)

		// workspace order does not affect the result, but keep it stable for logging
		names := make([]string, 0, len(output.Workspaces))
		for name := range output.Workspaces {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			ws, ok := result.Workspaces[name]
			if !ok {
				ws = &model.Workspace{
					Name:                    name,
					Dependencies:            map[model.DependencyKey]*model.DependencyEntry{},
					DeclaredDependencies:    []model.DependencyKey{},
					DeclaredDevDependencies: []model.DependencyKey{},
				}
				result.Workspaces[name] = ws
			}
			mergeWorkspace(ws, output.Workspaces[name])
		}
	}

	logger.Sugar().Debugf("Merged %d plugin outputs into %d workspaces", len(outputs), len(result.Workspaces))
	return result
}

func mergeWorkspace(ws *model.Workspace, raw model.RawWorkspace) {
	if len(ws.DeclaredDependencies) == 0 && len(raw.Start.Dependencies) > 0 {
		ws.DeclaredDependencies = dedupeKeys(raw.Start.Dependencies)
	}
	if len(ws.DeclaredDevDependencies) == 0 && len(raw.Start.DevDependencies) > 0 {
		ws.DeclaredDevDependencies = dedupeKeys(raw.Start.DevDependencies)
	}

	for name, versions := range raw.Dependencies {
		for version, rawDep := range versions {
			key := model.DependencyKey{Name: name, Version: version}
			incoming := normalizeDependency(rawDep)

			existing, ok := ws.Dependencies[key]
			if !ok {
				ws.Dependencies[key] = incoming
				continue
			}
			mergeEntry(existing, incoming)
		}
	}
}

// normalizeDependency applies the defaults of the raw plugin format once.
func normalizeDependency(raw model.RawDependency) *model.DependencyEntry {
	entry := &model.DependencyEntry{
		DependencyFlags: model.DependencyFlags{
			Direct:     util.BoolValue(raw.Direct),
			Transitive: util.BoolValue(raw.Transitive),
			Dev:        util.BoolValue(raw.Dev),
			Prod:       util.BoolValue(raw.Prod),
			Bundled:    util.BoolValue(raw.Bundled),
			Optional:   util.BoolValue(raw.Optional),
		},
		Licenses:   appendUnique(nil, raw.Licenses...),
		Deprecated: copyBool(raw.Deprecated),
		Unlicensed: copyBool(raw.Unlicensed),
		Outdated:   copyBool(raw.Outdated),
	}
	if raw.Release != nil {
		entry.Release = *raw.Release
	}
	if raw.LastPublished != nil {
		entry.LastPublished = *raw.LastPublished
	}

	if len(raw.Dependencies) > 0 {
		children := make([]model.DependencyKey, 0, len(raw.Dependencies))
		for childName, childVersion := range raw.Dependencies {
			children = append(children, model.DependencyKey{Name: childName, Version: childVersion})
		}
		sortKeys(children)
		entry.Dependencies = children
	}

	return entry
}

func mergeEntry(dst, src *model.DependencyEntry) {
	dst.DependencyFlags = dst.DependencyFlags.Or(src.DependencyFlags)
	dst.Deprecated = orBool(dst.Deprecated, src.Deprecated)
	dst.Unlicensed = orBool(dst.Unlicensed, src.Unlicensed)
	dst.Outdated = orBool(dst.Outdated, src.Outdated)
	dst.Licenses = appendUnique(dst.Licenses, src.Licenses...)

	if dst.Release == "" {
		dst.Release = src.Release
	}
	if dst.LastPublished == "" {
		dst.LastPublished = src.LastPublished
	}

	seen := make(map[model.DependencyKey]bool, len(dst.Dependencies))
	for _, k := range dst.Dependencies {
		seen[k] = true
	}
	for _, k := range src.Dependencies {
		if !seen[k] {
			seen[k] = true
			dst.Dependencies = append(dst.Dependencies, k)
		}
	}
}

func mergeAnalysisInfo(dst *model.AnalysisInfo, src model.RawAnalysisInfo) {
	if dst.PackageManager == "" {
		dst.PackageManager = src.PackageManager
	}

	if src.AnalysisStartTime != nil {
		if start, ok := util.ParseDate(*src.AnalysisStartTime); ok {
			if dst.AnalysisStartTime.IsZero() || start.Before(dst.AnalysisStartTime) {
				dst.AnalysisStartTime = start
			}
		} else {
			logger.Sugar().Warnf("Ignoring malformed analysis_start_time %q", *src.AnalysisStartTime)
		}
	}
	if src.AnalysisEndTime != nil {
		if end, ok := util.ParseDate(*src.AnalysisEndTime); ok {
			if dst.AnalysisEndTime.IsZero() || end.After(dst.AnalysisEndTime) {
				dst.AnalysisEndTime = end
			}
		} else {
			logger.Sugar().Warnf("Ignoring malformed analysis_end_time %q", *src.AnalysisEndTime)
		}
	}

	// exact duplicates are dropped so merging an output with itself is a no-op
	dst.PublicErrors = appendUnique(dst.PublicErrors, src.PublicErrors...)
	dst.PrivateErrors = appendUnique(dst.PrivateErrors, src.PrivateErrors...)
}

func appendUnique(dst []string, values ...string) []string {
	seen := make(map[string]bool, len(dst))
	for _, v := range dst {
		seen[v] = true
	}
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		dst = append(dst, v)
	}
	return dst
}

func dedupeKeys(keys []model.DependencyKey) []model.DependencyKey {
	seen := make(map[model.DependencyKey]bool, len(keys))
	result := make([]model.DependencyKey, 0, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, k)
	}
	return result
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func orBool(a, b *bool) *bool {
	switch {
	case a == nil:
		return copyBool(b)
	case b == nil:
		return a
	default:
		v := *a || *b
		return &v
	}
}

func sortKeys(keys []model.DependencyKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Version < keys[j].Version
	})
}
