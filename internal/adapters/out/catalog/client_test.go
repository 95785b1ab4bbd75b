package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dispatch/internal/adapters/out/catalog"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_ActiveSKUs(t *testing.T) {
	var gotQuery []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/skus/active", r.URL.Path)
		gotQuery = r.URL.Query()["sku"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"active":["SKU-A","SKU-X"]}`))
	}))
	defer server.Close()

	client := catalog.NewHTTPClient(server.URL+"/", time.Second)
	got, err := client.ActiveSKUs(context.Background(), []string{"SKU-A", "SKU-B"})

	require.NoError(t, err)
	assert.Equal(t, []string{"SKU-A", "SKU-B"}, gotQuery)
	assert.Equal(t, map[string]bool{"SKU-A": true, "SKU-B": false}, got)
}

func TestHTTPClient_EmptyRequestSkipsCall(t *testing.T) {
	client := catalog.NewHTTPClient("http://127.0.0.1:1", time.Second)
	got, err := client.ActiveSKUs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHTTPClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"active":`))
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(200 * time.Millisecond)
				_, _ = w.Write([]byte(`{"active":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := catalog.NewHTTPClient(server.URL, 50*time.Millisecond)
			_, err := client.ActiveSKUs(context.Background(), []string{"SKU-A"})

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrDependencyUnavailable)
		})
	}
}
