package wattpad

import (
	"log/slog"
	"net/http"
	"time"
)

// LoggingTransport is an http.RoundTripper that logs every request through
// slog, including duration and error status. Wrap a transport with it
// directly, or install it with Client.WithLogger.
type LoggingTransport struct {
	// Base performs the actual round trip. http.DefaultTransport is used
	// when nil.
	Base http.RoundTripper
	// Logger receives the request logs. slog.Default() is used when nil.
	Logger *slog.Logger
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	logger.DebugContext(req.Context(), "request started",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
	)

	resp, err := base.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		logger.ErrorContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)
		return nil, err
	}

	logger.DebugContext(req.Context(), "request completed",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)
	return resp, err
}
