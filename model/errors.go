// Package model - error kinds surfaced by the engine.
package model

import "errors"

var (
	// ErrUnknownWorkspace is returned when a workspace is absent from the canonical SBOM.
	ErrUnknownWorkspace = errors.New("unknown workspace")
	// ErrEntityNotFound is returned when a dependency or license lookup by key fails.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrNoResultAvailable is returned when no analysis result exists for the project yet.
	ErrNoResultAvailable = errors.New("no analysis result available")
)
