package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/jbialy/staylens/tools"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service *tools.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Serve the tools over stdio (Model Context Protocol)"`
	Search  SearchCmd  `cmd:"" help:"Search for listings in a location"`
	Details DetailsCmd `cmd:"" help:"Show detail sections for a listing"`

	BaseURL string  `help:"Listings site base URL" default:"https://www.airbnb.com"`
	Timeout int     `help:"HTTP request timeout in seconds" default:"30"`
	Rate    float64 `help:"Max requests per second per domain (0 disables limiting)" default:"1"`
	Browser bool    `help:"Fetch pages with a headless browser instead of plain HTTP"`
	Verbose bool    `short:"v" help:"Enable debug logging"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Location string `arg:"" help:"Location to search (e.g., 'Lisbon, Portugal')"`
	Checkin  string `help:"Check-in date (YYYY-MM-DD)"`
	Checkout string `help:"Check-out date (YYYY-MM-DD)"`
	Adults   int    `default:"1" help:"Number of adults"`
	Children int    `help:"Number of children"`
	Limit    int    `default:"10" help:"Number of results"`
}

// DetailsCmd is the "details" subcommand.
type DetailsCmd struct {
	ID       string `arg:"" help:"Listing ID"`
	Checkin  string `help:"Check-in date (YYYY-MM-DD)"`
	Checkout string `help:"Check-out date (YYYY-MM-DD)"`
	Adults   int    `default:"1" help:"Number of adults"`
	Children int    `help:"Number of children"`
}
