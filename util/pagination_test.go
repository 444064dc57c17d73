package util

import (
	"math"
	"testing"

	"github.com/ortelius/pdvd-sbom/model"
	"github.com/stretchr/testify/assert"
)

var testPagination = model.PaginationConfig{MaxEntriesPerPage: 100, DefaultEntriesPerPage: 20}

func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate_ClampsPageSize(t *testing.T) {
	for _, total := range []int{0, 5, 250} {
		res := Paginate(makeInts(total), total, model.PageRequest{EntriesPerPage: 200}, testPagination, nil)
		assert.Equal(t, 100, res.EntriesPerPage, "total=%d", total)
		assert.LessOrEqual(t, res.EntryCount, res.EntriesPerPage)
	}
}

func TestPaginate_Windows(t *testing.T) {
	items := makeInts(45)

	tests := []struct {
		name      string
		req       model.PageRequest
		wantPage  int
		wantSize  int
		wantFirst int
		wantCount int
	}{
		{"first page", model.PageRequest{Page: 0, EntriesPerPage: 10}, 0, 10, 0, 10},
		{"last partial page", model.PageRequest{Page: 4, EntriesPerPage: 10}, 4, 10, 40, 5},
		{"default size", model.PageRequest{Page: 1}, 1, 20, 20, 20},
		{"negative page", model.PageRequest{Page: -3, EntriesPerPage: 10}, 0, 10, 0, 10},
		{"negative size", model.PageRequest{EntriesPerPage: -1}, 0, 20, 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Paginate(items, len(items), tt.req, testPagination, nil)
			assert.Equal(t, tt.wantPage, res.Page)
			assert.Equal(t, tt.wantSize, res.EntriesPerPage)
			assert.Equal(t, tt.wantCount, res.EntryCount)
			assert.Len(t, res.Data, tt.wantCount)
			assert.Equal(t, tt.wantFirst, res.Data[0])
			assert.Equal(t, 45, res.TotalEntries)
		})
	}
}

func TestPaginate_PageBeyondEnd(t *testing.T) {
	res := Paginate(makeInts(15), 15, model.PageRequest{Page: 7, EntriesPerPage: 10}, testPagination, nil)

	assert.Empty(t, res.Data)
	assert.Equal(t, 0, res.EntryCount)
	assert.Equal(t, 2, res.TotalPages)
}

func TestPaginate_HugePages(t *testing.T) {
	for _, page := range []int{math.MaxInt / 50, math.MaxInt / 100, math.MaxInt} {
		res := Paginate([]int{1, 2, 3}, 3, model.PageRequest{Page: page, EntriesPerPage: 100}, testPagination, nil)
		assert.Empty(t, res.Data, "page=%d", page)
		assert.Equal(t, page, res.Page)
		assert.Equal(t, 1, res.TotalPages)
	}

	res := Paginate[int](nil, math.MaxInt, model.PageRequest{EntriesPerPage: 100}, testPagination, nil)
	assert.Equal(t, math.MaxInt/100+1, res.TotalPages)
}

func TestPaginate_TotalPages(t *testing.T) {
	assert.Equal(t, 0, Paginate([]int{}, 0, model.PageRequest{EntriesPerPage: 10}, testPagination, nil).TotalPages)
	assert.Equal(t, 1, Paginate(makeInts(10), 10, model.PageRequest{EntriesPerPage: 10}, testPagination, nil).TotalPages)
	assert.Equal(t, 2, Paginate(makeInts(11), 11, model.PageRequest{EntriesPerPage: 10}, testPagination, nil).TotalPages)
}

func TestPaginate_PassesFilterCountThrough(t *testing.T) {
	counts := map[string]int{"dev": 3}
	res := Paginate(makeInts(3), 3, model.PageRequest{}, testPagination, counts)
	assert.Equal(t, counts, res.FilterCount)
}

func TestResolvePageRequest_DegenerateConfig(t *testing.T) {
	req := ResolvePageRequest(model.PageRequest{EntriesPerPage: 50}, model.PaginationConfig{})
	assert.Equal(t, 1, req.EntriesPerPage)
}
