// Package model - request and response envelopes shared by the query operations.
package model

// PageRequest is the caller's requested window. Page is zero-based.
type PageRequest struct {
	Page           int `json:"page"`
	EntriesPerPage int `json:"entries_per_page"`
}

// PaginationConfig bounds the page size.
type PaginationConfig struct {
	MaxEntriesPerPage     int `yaml:"max_entries_per_page" json:"max_entries_per_page"`
	DefaultEntriesPerPage int `yaml:"default_entries_per_page" json:"default_entries_per_page"`
}

// PaginatedResult is one window of an ordered sequence.
type PaginatedResult[T any] struct {
	Data           []T            `json:"data"`
	Page           int            `json:"page"`
	EntriesPerPage int            `json:"entries_per_page"`
	TotalEntries   int            `json:"total_entries"`
	TotalPages     int            `json:"total_pages"`
	EntryCount     int            `json:"entry_count"`
	FilterCount    map[string]int `json:"filter_count,omitempty"`
}

// SbomQuery is the listing criteria for dependency rows.
type SbomQuery struct {
	Workspace string   `json:"workspace"`
	SearchKey string   `json:"search_key,omitempty"`
	Filters   []string `json:"filters,omitempty"`
	SortBy    string   `json:"sort_by,omitempty"`
	SortDir   string   `json:"sort_direction,omitempty"`
	PageRequest
}

// LicenseQuery is the listing criteria for license facts.
type LicenseQuery struct {
	Workspace string   `json:"workspace"`
	SearchKey string   `json:"search_key,omitempty"`
	Filters   []string `json:"filters,omitempty"`
	PageRequest
}
