// Package tools implements the externally visible tool operations (search,
// listing details, price analysis, trip budget, smart filter, compare). Each
// tool builds a request URL, runs the extraction pipeline, applies its own
// arithmetic, and serializes the result to a JSON string.
//
// Every tool returns a single JSON string. On any internal failure the
// output degrades to {"error": <message>, ...echoed request context} — a raw
// fault never crosses the tool boundary.
package tools

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"

	"github.com/jbialy/staylens"
)

// DefaultBaseURL is the listings site all request URLs are built against.
const DefaultBaseURL = "https://www.airbnb.com"

// Default payload key paths for the current upstream deployment. Alternate
// deployments nest the data under "props.pageProps" instead; both are plain
// field configuration on Service.
var (
	DefaultSearchResultsPath = []string{
		"niobeClientData", "0", "1", "data", "presentation", "staysSearch", "results",
	}
	DefaultDetailSectionsPath = []string{
		"niobeClientData", "0", "1", "data", "presentation", "stayProductDetailPage", "sections", "sections",
	}
)

// Service orchestrates the extraction pipeline for the tool operations.
// All fields are read-only after construction; a Service is safe for
// concurrent use.
type Service struct {
	// Fetcher retrieves listing pages. Required.
	Fetcher staylens.Fetcher

	// Locator finds the embedded payload in a page. Required.
	Locator staylens.PayloadLocator

	// Converter renders description HTML as readable text.
	// Optional; when nil descriptions pass through as raw HTML.
	Converter staylens.Converter

	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// BaseURL of the listings site. Defaults to DefaultBaseURL.
	BaseURL string

	// SearchResultsPath is the payload key path to the search results.
	// Defaults to DefaultSearchResultsPath.
	SearchResultsPath []string

	// DetailSectionsPath is the payload key path to the detail sections.
	// Defaults to DefaultDetailSectionsPath.
	DetailSectionsPath []string
}

func (s *Service) baseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return DefaultBaseURL
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Service) searchResultsPath() []string {
	if s.SearchResultsPath != nil {
		return s.SearchResultsPath
	}
	return DefaultSearchResultsPath
}

func (s *Service) detailSectionsPath() []string {
	if s.DetailSectionsPath != nil {
		return s.DetailSectionsPath
	}
	return DefaultDetailSectionsPath
}

// encode serializes a result object with two-space indentation.
func encode(o *staylens.Object) string {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		// Object trees built here never fail to marshal; guard anyway so a
		// tool always returns valid JSON.
		return `{"error": "failed to encode result"}`
	}
	return string(b)
}

// errorText returns the human-readable part of an error for inclusion in a
// degraded result.
func errorText(err error) string {
	var e *staylens.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
