package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDepsDevServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/systems/NPM/packages/lodash", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"packageKey": {"system": "NPM", "name": "lodash"},
			"versions": [
				{"versionKey": {"system": "NPM", "name": "lodash", "version": "4.17.20"}, "isDefault": false},
				{"versionKey": {"system": "NPM", "name": "lodash", "version": "4.17.21"}, "isDefault": true},
				{"versionKey": {"system": "NPM", "name": "lodash", "version": "5.0.0-beta.1"}, "isDefault": false}
			]
		}`))
	})
	mux.HandleFunc("/systems/PYPI/packages/requests", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"versions": [
			{"versionKey": {"version": "2.31.0"}},
			{"versionKey": {"version": "2.32.3"}}
		]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestDepsDevClient_LatestVersion(t *testing.T) {
	server := newDepsDevServer(t)
	client := &DepsDevClient{BaseURL: server.URL, HTTPClient: server.Client()}

	version, err := client.LatestVersion(context.Background(), "npm", "lodash")
	require.NoError(t, err)
	assert.Equal(t, "4.17.21", version)

	// no default version flagged, the last one wins
	version, err = client.LatestVersion(context.Background(), "poetry", "requests")
	require.NoError(t, err)
	assert.Equal(t, "2.32.3", version)
}

func TestDepsDevClient_Misses(t *testing.T) {
	server := newDepsDevServer(t)
	client := &DepsDevClient{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.LatestVersion(context.Background(), "cocoapods", "Alamofire")
	assert.True(t, errors.Is(err, ErrUnsupportedSystem))

	_, err = client.LatestVersion(context.Background(), "npm", "does-not-exist")
	assert.Error(t, err)

	_, ok := client.GetLatestVersion(context.Background(), "npm", "does-not-exist")
	assert.False(t, ok)
}

func TestSystem(t *testing.T) {
	for pm, want := range map[string]string{
		"yarn":   "NPM",
		"pipenv": "PYPI",
		"gradle": "MAVEN",
		"gomod":  "GO",
		"cargo":  "CARGO",
	} {
		got, ok := System(pm)
		assert.True(t, ok, pm)
		assert.Equal(t, want, got, pm)
	}
}
