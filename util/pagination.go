// Package util provides utility functions for the backend.
//
//revive:disable-next-line:var-naming
package util

import "github.com/ortelius/pdvd-sbom/model"

// ResolvePageRequest clamps a requested window to the configured bounds.
// Page sizes outside [1, max] are clamped, non-positive sizes use the default,
// and pages are clamped to >= 0.
func ResolvePageRequest(req model.PageRequest, cfg model.PaginationConfig) model.PageRequest {
	maxSize := cfg.MaxEntriesPerPage
	if maxSize < 1 {
		maxSize = 1
	}

	size := req.EntriesPerPage
	if size <= 0 {
		size = cfg.DefaultEntriesPerPage
	}
	if size < 1 {
		size = 1
	}
	if size > maxSize {
		size = maxSize
	}

	page := req.Page
	if page < 0 {
		page = 0
	}

	return model.PageRequest{Page: page, EntriesPerPage: size}
}

// Paginate windows an already filtered and sorted sequence.
// totalAvailable is reported as is; filterCount is passed through untouched.
func Paginate[T any](items []T, totalAvailable int, req model.PageRequest, cfg model.PaginationConfig, filterCount map[string]int) model.PaginatedResult[T] {
	resolved := ResolvePageRequest(req, cfg)
	if totalAvailable < 0 {
		totalAvailable = 0
	}

	size := resolved.EntriesPerPage

	// compare before multiplying so huge pages cannot overflow start
	start := len(items)
	if resolved.Page <= len(items)/size {
		start = resolved.Page * size
		if start > len(items) {
			start = len(items)
		}
	}
	end := len(items)
	if len(items)-start > size {
		end = start + size
	}

	window := make([]T, end-start)
	copy(window, items[start:end])

	return model.PaginatedResult[T]{
		Data:           window,
		Page:           resolved.Page,
		EntriesPerPage: resolved.EntriesPerPage,
		TotalEntries:   totalAvailable,
		TotalPages:     totalPages(totalAvailable, size),
		EntryCount:     len(window),
		FilterCount:    filterCount,
	}
}

func totalPages(total, size int) int {
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}
