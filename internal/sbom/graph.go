package sbom

import (
	"fmt"

	"github.com/ortelius/pdvd-sbom/model"
)

// Descendants returns every dependency reachable from key through the adjacency lists.
// The traversal keeps a visited set, so cyclic input terminates.
func Descendants(s *model.Sbom, workspace string, key model.DependencyKey) ([]model.DependencyKey, error) {
	ws, err := lookupNode(s, workspace, key)
	if err != nil {
		return nil, err
	}
	return reachable(key, func(k model.DependencyKey) []model.DependencyKey {
		return childrenOf(ws, k)
	}), nil
}

// Ancestors returns every dependency from which key is reachable.
func Ancestors(s *model.Sbom, workspace string, key model.DependencyKey) ([]model.DependencyKey, error) {
	ws, err := lookupNode(s, workspace, key)
	if err != nil {
		return nil, err
	}
	parents := parentIndex(ws)
	return reachable(key, func(k model.DependencyKey) []model.DependencyKey {
		return parents[k]
	}), nil
}

// BuildGraph assembles the neighbourhood of key: direct edges, transitive closures
// in both directions and one shortest path from each declared root reaching key.
func BuildGraph(s *model.Sbom, workspace string, key model.DependencyKey) (model.DependencyGraph, error) {
	ws, err := lookupNode(s, workspace, key)
	if err != nil {
		return model.DependencyGraph{}, err
	}

	parents := parentIndex(ws)
	children := func(k model.DependencyKey) []model.DependencyKey { return childrenOf(ws, k) }

	return model.DependencyGraph{
		Workspace:     workspace,
		Dependency:    key,
		Parents:       append([]model.DependencyKey{}, parents[key]...),
		Children:      children(key),
		Ancestors:     reachable(key, func(k model.DependencyKey) []model.DependencyKey { return parents[k] }),
		Descendants:   reachable(key, children),
		AncestorPaths: ancestorPaths(ws, key, children),
	}, nil
}

func lookupNode(s *model.Sbom, workspace string, key model.DependencyKey) (*model.Workspace, error) {
	ws, err := LookupWorkspace(s, workspace)
	if err != nil {
		return nil, err
	}
	if _, ok := ws.Dependencies[key]; !ok {
		return nil, fmt.Errorf("dependency %s in workspace %q: %w", key, workspace, model.ErrEntityNotFound)
	}
	return ws, nil
}

// reachable runs a breadth-first search from start. start itself is never part of the result.
func reachable(start model.DependencyKey, next func(model.DependencyKey) []model.DependencyKey) []model.DependencyKey {
	visited := map[model.DependencyKey]bool{start: true}
	queue := []model.DependencyKey{start}
	result := []model.DependencyKey{}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range next(current) {
			if visited[n] {
				continue
			}
			visited[n] = true
			result = append(result, n)
			queue = append(queue, n)
		}
	}

	sortKeys(result)
	return result
}

// ancestorPaths returns, for every declared root that reaches target, the shortest
// root -> target path. Roots are visited in declaration order.
func ancestorPaths(ws *model.Workspace, target model.DependencyKey, children func(model.DependencyKey) []model.DependencyKey) [][]model.DependencyKey {
	roots := make([]model.DependencyKey, 0, len(ws.DeclaredDependencies)+len(ws.DeclaredDevDependencies))
	roots = append(roots, ws.DeclaredDependencies...)
	roots = append(roots, ws.DeclaredDevDependencies...)

	paths := [][]model.DependencyKey{}
	seenRoot := map[model.DependencyKey]bool{}
	for _, root := range roots {
		if seenRoot[root] {
			continue
		}
		seenRoot[root] = true
		if _, ok := ws.Dependencies[root]; !ok {
			continue
		}
		if path := shortestPath(root, target, children); path != nil {
			paths = append(paths, path)
		}
	}
	return paths
}

func shortestPath(from, to model.DependencyKey, children func(model.DependencyKey) []model.DependencyKey) []model.DependencyKey {
	if from == to {
		return []model.DependencyKey{from}
	}

	prev := map[model.DependencyKey]model.DependencyKey{}
	visited := map[model.DependencyKey]bool{from: true}
	queue := []model.DependencyKey{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range children(current) {
			if visited[n] {
				continue
			}
			visited[n] = true
			prev[n] = current
			if n == to {
				path := []model.DependencyKey{to}
				for step := to; step != from; {
					step = prev[step]
					path = append([]model.DependencyKey{step}, path...)
				}
				return path
			}
			queue = append(queue, n)
		}
	}
	return nil
}

// childrenOf returns the adjacency of key, dropping edges to identities the workspace does not contain.
func childrenOf(ws *model.Workspace, key model.DependencyKey) []model.DependencyKey {
	entry, ok := ws.Dependencies[key]
	if !ok {
		return []model.DependencyKey{}
	}
	children := make([]model.DependencyKey, 0, len(entry.Dependencies))
	for _, child := range entry.Dependencies {
		if _, ok := ws.Dependencies[child]; ok {
			children = append(children, child)
		}
	}
	return children
}

func parentsOf(ws *model.Workspace, key model.DependencyKey) []model.DependencyKey {
	parents := parentIndex(ws)[key]
	if parents == nil {
		return []model.DependencyKey{}
	}
	return parents
}

// parentIndex inverts the adjacency lists of a workspace. Parent lists are ordered by name, then version.
func parentIndex(ws *model.Workspace) map[model.DependencyKey][]model.DependencyKey {
	index := map[model.DependencyKey][]model.DependencyKey{}
	for _, parent := range ws.Keys() {
		for _, child := range childrenOf(ws, parent) {
			index[child] = append(index[child], parent)
		}
	}
	return index
}
