package wattpad

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// capturedRequest is a snapshot of the last request a capture server
// received.
type capturedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
}

// captureServer starts a test server that snapshots every request and
// replies with the given status and body. The returned counter reports how
// many requests arrived, so tests can assert a call never reached the wire.
func captureServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest, *atomic.Int64) {
	t.Helper()
	captured := &capturedRequest{}
	count := &atomic.Int64{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.RawQuery = r.URL.RawQuery
		captured.Header = r.Header.Clone()
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, captured, count
}

// testClient returns a client pointed at the test server.
func testClient(server *httptest.Server) *Client {
	return NewClient().WithBaseURL(server.URL)
}

// authenticatedClient returns a client pointed at the test server with an
// established session, without going through a login round trip.
func authenticatedClient(server *httptest.Server) *Client {
	c := testClient(server)
	c.authenticated.Store(true)
	return c
}

func ptr[T any](v T) *T {
	return &v
}
