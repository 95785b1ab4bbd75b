// Package catalog answers active-SKU checks against the catalog service,
// optionally behind a Redis cache.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
)

const dependencyName = "catalog"

type activeSKUsResponse struct {
	Active []string `json:"active"`
}

// HTTPClient calls GET {baseURL}/skus/active?sku=A&sku=B, which returns the
// subset of the requested SKUs that are active.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ActiveSKUs returns an entry for every requested SKU. Any transport or
// status failure is a *errs.DependencyUnavailableError.
func (c *HTTPClient) ActiveSKUs(ctx context.Context, skus []string) (map[string]bool, error) {
	result := make(map[string]bool, len(skus))
	if len(skus) == 0 {
		return result, nil
	}

	query := url.Values{}
	for _, sku := range skus {
		query.Add("sku", sku)
		result[sku] = false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/skus/active?"+query.Encode(), nil)
	if err != nil {
		return nil, errs.NewDependencyUnavailableError(dependencyName, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.NewDependencyUnavailableError(dependencyName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewDependencyUnavailableError(dependencyName, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body activeSKUsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.NewDependencyUnavailableError(dependencyName, err)
	}
	for _, sku := range body.Active {
		if _, requested := result[sku]; requested {
			result[sku] = true
		}
	}
	return result, nil
}
