//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertClientCookie checks that the response refreshed the client cookie and
// returns it.
func AssertClientCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	c := ExtractCookie(w, name)
	require.NotNil(t, c, "client cookie %q not set", name)
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly, "client cookie must be HttpOnly")
	assert.Equal(t, "/", c.Path)
	return c
}
