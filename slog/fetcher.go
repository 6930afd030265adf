// Package slog provides logging decorators for staylens interfaces.
// Diagnostic output goes wherever the supplied logger writes; the process
// wires it to stderr so the protocol stream on stdout stays clean.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jbialy/staylens"
)

// Ensure LoggingFetcher implements staylens.Fetcher at compile time.
var _ staylens.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-fetch logging. Against a
// versionless upstream the fetch log (url, size, duration) is often the only
// evidence of what changed when extraction starts failing.
type LoggingFetcher struct {
	next   staylens.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next staylens.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return "", err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
