package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ortelius/pdvd-sbom/util"
)

var logger = util.InitLogger()

// ErrUnsupportedSystem is returned for package managers deps.dev does not index.
var ErrUnsupportedSystem = errors.New("package manager not supported by deps.dev")

// DepsDevClient queries the deps.dev v3 API.
type DepsDevClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// System maps a package manager to its deps.dev system name.
func System(packageManager string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(packageManager)) {
	case "npm", "yarn", "pnpm", "bun":
		return "NPM", true
	case "pip", "pipenv", "poetry", "pypi", "uv":
		return "PYPI", true
	case "maven", "gradle":
		return "MAVEN", true
	case "go", "gomod":
		return "GO", true
	case "cargo":
		return "CARGO", true
	case "nuget":
		return "NUGET", true
	case "bundler", "rubygems":
		return "RUBYGEMS", true
	}
	return "", false
}

// GetPackage fetches the version list of a package.
func (c *DepsDevClient) GetPackage(ctx context.Context, system, name string) (*Package, error) {
	u := fmt.Sprintf("%s/systems/%s/packages/%s", c.BaseURL, system, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("package request failed for %s: %s", name, resp.Status)
	}

	var pkg Package
	if err := json.NewDecoder(resp.Body).Decode(&pkg); err != nil {
		return nil, fmt.Errorf("failed to decode package: %w", err)
	}
	return &pkg, nil
}

// LatestVersion fetches the default (latest stable) version of a package.
func (c *DepsDevClient) LatestVersion(ctx context.Context, packageManager, name string) (string, error) {
	system, ok := System(packageManager)
	if !ok {
		return "", fmt.Errorf("%s: %w", packageManager, ErrUnsupportedSystem)
	}

	pkg, err := c.GetPackage(ctx, system, name)
	if err != nil {
		return "", err
	}

	for _, v := range pkg.Versions {
		if v.IsDefault {
			return v.VersionKey.Version, nil
		}
	}
	if n := len(pkg.Versions); n > 0 {
		return pkg.Versions[n-1].VersionKey.Version, nil
	}
	return "", fmt.Errorf("package %s has no versions", name)
}

// GetLatestVersion implements Provider. Failures are logged and reported as a miss.
func (c *DepsDevClient) GetLatestVersion(ctx context.Context, packageManager, name string) (string, bool) {
	version, err := c.LatestVersion(ctx, packageManager, name)
	if err != nil {
		logger.Sugar().Debugf("No latest version for %s (%s): %v", name, packageManager, err)
		return "", false
	}
	return version, true
}
