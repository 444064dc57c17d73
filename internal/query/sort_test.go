package query

import (
	"testing"

	"github.com/ortelius/pdvd-sbom/model"
	"github.com/ortelius/pdvd-sbom/util"
	"github.com/stretchr/testify/assert"
)

func versions(rows []model.SbomDependencyRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Version
	}
	return out
}

func names(rows []model.SbomDependencyRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestSort_SemanticVersion(t *testing.T) {
	rows := []model.SbomDependencyRow{
		{Name: "a", Version: "2.1.0", PackageManager: "npm"},
		{Name: "a", Version: "1.0.0", PackageManager: "npm"},
		{Name: "a", Version: "1.10.0", PackageManager: "npm"},
	}

	asc := Sort(rows, "version", SortAsc, SortOptions{})
	assert.Equal(t, []string{"1.0.0", "1.10.0", "2.1.0"}, versions(asc))

	desc := Sort(rows, "version", SortDesc, SortOptions{})
	assert.Equal(t, []string{"2.1.0", "1.10.0", "1.0.0"}, versions(desc))

	// input untouched
	assert.Equal(t, []string{"2.1.0", "1.0.0", "1.10.0"}, versions(rows))
}

func TestSort_StringFields(t *testing.T) {
	rows := []model.SbomDependencyRow{{Name: "b"}, {Name: "c"}, {Name: "a"}}

	assert.Equal(t, []string{"a", "b", "c"}, names(Sort(rows, "name", SortAsc, SortOptions{})))
	assert.Equal(t, []string{"c", "b", "a"}, names(Sort(rows, "name", SortDesc, SortOptions{})))

	legacy := SortOptions{LegacyStringDirection: true}
	assert.Equal(t, []string{"c", "b", "a"}, names(Sort(rows, "name", SortAsc, legacy)))
}

func TestSort_Stable(t *testing.T) {
	rows := []model.SbomDependencyRow{
		{Name: "first", Deprecated: util.BoolPtr(true)},
		{Name: "second"},
		{Name: "third", Deprecated: util.BoolPtr(true)},
		{Name: "fourth", Deprecated: util.BoolPtr(false)},
	}

	got := Sort(rows, "deprecated", SortDesc, SortOptions{})
	assert.Equal(t, []string{"first", "third", "second", "fourth"}, names(got))

	got = Sort(rows, "deprecated", SortAsc, SortOptions{})
	assert.Equal(t, []string{"second", "fourth", "first", "third"}, names(got))
}

func TestSort_DevReversal(t *testing.T) {
	rows := []model.SbomDependencyRow{
		{Name: "prod-a"},
		{Name: "dev-a", Dev: true},
		{Name: "prod-b"},
		{Name: "dev-b", Dev: true},
	}

	desc := Sort(rows, "dev", SortDesc, SortOptions{})
	assert.Equal(t, []string{"dev-a", "dev-b", "prod-a", "prod-b"}, names(desc))

	asc := Sort(rows, "dev", SortAsc, SortOptions{})
	assert.Equal(t, []string{"prod-b", "prod-a", "dev-b", "dev-a"}, names(asc))
}

func TestSort_InvalidInputFallsBackToDefaults(t *testing.T) {
	rows := []model.SbomDependencyRow{{Name: "prod"}, {Name: "dev", Dev: true}}

	got := Sort(rows, "no_such_field", "sideways", SortOptions{})
	assert.Equal(t, []string{"dev", "prod"}, names(got))

	field, dir := ResolveSort("", "asc")
	assert.Equal(t, DefaultSortField, field)
	assert.Equal(t, SortAsc, dir)
}

func TestSort_Dates(t *testing.T) {
	rows := []model.SbomDependencyRow{
		{Name: "new", LastPublished: "2024-06-01T00:00:00Z"},
		{Name: "missing"},
		{Name: "old", LastPublished: "2020-01-01"},
	}

	got := Sort(rows, "last_published", SortAsc, SortOptions{})
	assert.Equal(t, []string{"missing", "old", "new"}, names(got))
}

func TestSort_UserInstalledMapsToIsDirect(t *testing.T) {
	rows := []model.SbomDependencyRow{{Name: "t", IsDirect: false}, {Name: "d", IsDirect: true}}

	got := Sort(rows, "user_installed", SortDesc, SortOptions{})
	assert.Equal(t, []string{"d", "t"}, names(got))
}

func TestSort_UnrankedFieldsKeepOrder(t *testing.T) {
	rows := []model.SbomDependencyRow{{Name: "z", Licenses: []string{"MIT"}}, {Name: "a"}}

	got := Sort(rows, "licenses", SortAsc, SortOptions{})
	assert.Equal(t, []string{"z", "a"}, names(got))
}

func TestSort_UnparseableVersionsKeepOrder(t *testing.T) {
	rows := []model.SbomDependencyRow{
		{Name: "x", Version: "latest", PackageManager: "maven"},
		{Name: "y", Version: "1.0.0", PackageManager: "maven"},
	}

	got := Sort(rows, "version", SortAsc, SortOptions{})
	assert.Equal(t, []string{"x", "y"}, names(got))
}
