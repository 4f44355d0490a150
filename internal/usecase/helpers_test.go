//go:build unit

package usecase_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/internal/pkg/kv"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBackend serves the routes a test registers on mux.
func fakeBackend(t *testing.T, mux *http.ServeMux) (*apiclient.Client, *kv.Memory) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	store := kv.NewMemory()
	return apiclient.New(srv.URL, srv.Client(), store, discardLogger()), store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
