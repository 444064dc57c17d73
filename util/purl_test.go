package util

import (
	"testing"

	"github.com/package-url/packageurl-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageManagerToPurlType(t *testing.T) {
	assert.Equal(t, "npm", PackageManagerToPurlType("yarn"))
	assert.Equal(t, "pypi", PackageManagerToPurlType("poetry"))
	assert.Equal(t, "golang", PackageManagerToPurlType("go"))
	assert.Equal(t, "gem", PackageManagerToPurlType("bundler"))
	assert.Equal(t, "custom", PackageManagerToPurlType(" Custom "))
}

func TestBuildPURL(t *testing.T) {
	assert.Equal(t, "pkg:npm/lodash@4.17.21", BuildPURL("npm", "lodash", "4.17.21"))
	assert.Empty(t, BuildPURL("npm", " ", "1.0.0"))
	assert.Empty(t, BuildPURL("", "lodash", "1.0.0"))
}

func TestBuildPURL_Namespaced(t *testing.T) {
	tests := []struct {
		packageManager, name, version string
		wantType, wantNamespace       string
		wantName                      string
	}{
		{"npm", "@babel/core", "7.24.0", "npm", "@babel", "core"},
		{"maven", "org.apache.commons:commons-lang3", "3.14.0", "maven", "org.apache.commons", "commons-lang3"},
		{"go", "github.com/stretchr/testify", "v1.11.1", "golang", "github.com/stretchr", "testify"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purl := BuildPURL(tt.packageManager, tt.name, tt.version)
			require.NotEmpty(t, purl)

			parsed, err := packageurl.FromString(purl)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, parsed.Type)
			assert.Equal(t, tt.wantNamespace, parsed.Namespace)
			assert.Equal(t, tt.wantName, parsed.Name)
			assert.Equal(t, tt.version, parsed.Version)
		})
	}
}

func TestParsePackageName(t *testing.T) {
	assert.Equal(t, NameComponents{Namespace: "@scope", Shortname: "name"}, ParsePackageName("@scope/name"))
	assert.Equal(t, NameComponents{Namespace: "group", Shortname: "artifact"}, ParsePackageName("group:artifact"))
	assert.Equal(t, NameComponents{Namespace: "github.com/org", Shortname: "repo"}, ParsePackageName("github.com/org/repo"))
	assert.Equal(t, NameComponents{Shortname: "left-pad"}, ParsePackageName(" left-pad "))
	assert.Equal(t, NameComponents{}, ParsePackageName(""))
}
