package query

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/ortelius/pdvd-sbom/model"
	"github.com/ortelius/pdvd-sbom/util"
)

var logger = util.InitLogger()

// Sort directions.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// Defaults applied when the caller passes an unknown field or direction.
const (
	DefaultSortField     = "dev"
	DefaultSortDirection = SortDesc
)

// SortableFields is the allow-list of public sort field names.
var SortableFields = []string{
	"name",
	"version",
	"package_manager",
	"unlicensed",
	"deprecated",
	"outdated",
	"licenses",
	"newest_release",
	"last_published",
	"user_installed",
	"release",
	"dev",
	"is_direct_count",
	"combined_severity",
}

// fieldMapping translates public names to the internal row field.
var fieldMapping = map[string]string{
	"user_installed": "is_direct",
}

// SortOptions tunes the sort engine.
type SortOptions struct {
	// LegacyStringDirection inverts ASC/DESC on the lexical path, as the
	// previous implementation did.
	LegacyStringDirection bool
}

// ResolveSort validates the field and direction, falling back to the defaults.
func ResolveSort(sortBy, direction string) (string, string) {
	field := strings.TrimSpace(sortBy)
	if !util.Contains(SortableFields, field) {
		field = DefaultSortField
	}

	dir := strings.ToUpper(strings.TrimSpace(direction))
	if dir != SortAsc && dir != SortDesc {
		dir = DefaultSortDirection
	}
	return field, dir
}

// Sort returns a new, stably sorted copy of rows. Invalid input never errors.
func Sort(rows []model.SbomDependencyRow, sortBy, direction string, opts SortOptions) []model.SbomDependencyRow {
	field, dir := ResolveSort(sortBy, direction)
	if mapped, ok := fieldMapping[field]; ok {
		field = mapped
	}

	sorted := make([]model.SbomDependencyRow, len(rows))
	copy(sorted, rows)

	asc := dir == SortAsc

	switch field {
	case "licenses", "combined_severity":
		// not ranked yet; input order is kept

	case "version":
		stableSort(sorted, asc, compareVersionRows)

	case "last_published":
		stableSort(sorted, asc, func(a, b model.SbomDependencyRow) int {
			return util.ParseDateOrEpoch(a.LastPublished).Compare(util.ParseDateOrEpoch(b.LastPublished))
		})

	case "release":
		stableSort(sorted, asc, func(a, b model.SbomDependencyRow) int {
			return util.ParseDateOrEpoch(a.Release).Compare(util.ParseDateOrEpoch(b.Release))
		})

	case "unlicensed", "deprecated", "outdated":
		stableSort(sorted, asc, func(a, b model.SbomDependencyRow) int {
			return compareBool(boolField(a, field), boolField(b, field))
		})

	case "dev", "is_direct_count":
		// higher first, ASC is applied by reversing the result
		stableSort(sorted, false, func(a, b model.SbomDependencyRow) int {
			return compareInt(numericField(a, field), numericField(b, field))
		})
		if asc {
			slices.Reverse(sorted)
		}

	default:
		lexicalAsc := asc
		if opts.LegacyStringDirection {
			lexicalAsc = !asc
		}
		stableSort(sorted, lexicalAsc, func(a, b model.SbomDependencyRow) int {
			return strings.Compare(stringField(a, field), stringField(b, field))
		})
	}

	return sorted
}

func stableSort(rows []model.SbomDependencyRow, asc bool, cmp func(a, b model.SbomDependencyRow) int) {
	sort.SliceStable(rows, func(i, j int) bool {
		if asc {
			return cmp(rows[i], rows[j]) < 0
		}
		return cmp(rows[i], rows[j]) > 0
	})
}

// compareVersionRows compares semantically. Unparseable versions compare as equal.
func compareVersionRows(a, b model.SbomDependencyRow) int {
	packageManager := a.PackageManager
	if packageManager == "" {
		packageManager = b.PackageManager
	}
	cmp, err := util.CompareVersions(packageManager, a.Version, b.Version)
	if err != nil {
		logger.Sugar().Debugf("Unable to compare versions %q and %q: %v", a.Version, b.Version, err)
		return 0
	}
	return cmp
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolField(r model.SbomDependencyRow, field string) bool {
	switch field {
	case "unlicensed":
		return util.BoolValue(r.Unlicensed)
	case "deprecated":
		return util.BoolValue(r.Deprecated)
	case "outdated":
		return util.BoolValue(r.Outdated)
	}
	return false
}

func numericField(r model.SbomDependencyRow, field string) int {
	switch field {
	case "dev":
		if r.Dev {
			return 1
		}
		return 0
	case "is_direct_count":
		return r.IsDirectCount
	}
	return 0
}

func stringField(r model.SbomDependencyRow, field string) string {
	switch field {
	case "name":
		return r.Name
	case "package_manager":
		return r.PackageManager
	case "newest_release":
		return r.NewestRelease
	case "is_direct":
		return strconv.FormatBool(r.IsDirect)
	}
	return ""
}
