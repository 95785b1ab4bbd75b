// Package directory resolves driver identities against the user directory.
package directory

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const dependencyName = "driver directory"

// HTTPDriverDirectory asks HEAD {baseURL}/drivers/{id}: 2xx means the
// driver exists, 404 means it does not.
type HTTPDriverDirectory struct {
	baseURL string
	http    *http.Client
}

func NewHTTPDriverDirectory(baseURL string, timeout time.Duration) *HTTPDriverDirectory {
	return &HTTPDriverDirectory{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (d *HTTPDriverDirectory) DriverExists(ctx context.Context, driverID kernel.UUID) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, d.baseURL+"/drivers/"+driverID.String(), nil)
	if err != nil {
		return false, errs.NewDependencyUnavailableError(dependencyName, err)
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return false, errs.NewDependencyUnavailableError(dependencyName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	}
	return false, errs.NewDependencyUnavailableError(dependencyName, fmt.Errorf("unexpected status %d", resp.StatusCode))
}
