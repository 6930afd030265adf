// Package mcp exposes the tool operations over the Model Context Protocol's
// stdio transport: newline-delimited JSON-RPC 2.0 requests on stdin,
// responses on stdout. Diagnostics go to the logger, never to stdout, so the
// protocol stream stays clean.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jbialy/staylens/tools"
)

// ProtocolVersion is the MCP revision this server speaks.
const ProtocolVersion = "2024-11-05"

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// maxLineBytes bounds a single request line. Tool arguments are small; a
// larger line means a confused client.
const maxLineBytes = 1 << 20

// Server serves the tool operations over one stdio session.
type Server struct {
	service *tools.Service
	logger  *slog.Logger

	// Name and Version identify the server in the initialize handshake.
	Name    string
	Version string
}

// NewServer returns a Server exposing svc.
func NewServer(svc *tools.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		service: svc,
		logger:  logger,
		Name:    "staylens",
		Version: "1.0.0",
	}
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Run reads requests from r and writes responses to w until r is exhausted
// or ctx is canceled. Notifications (requests without an id) produce no
// response.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	s.logger.Info("server started", "name", s.Name, "version", s.Version, "tools", len(declarations))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	enc := json.NewEncoder(w)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("unparseable request", "err", err.Error())
			if err := enc.Encode(response{
				JSONRPC: "2.0",
				Error:   &rpcError{Code: codeParseError, Message: "parse error"},
			}); err != nil {
				return err
			}
			continue
		}

		resp := s.handle(ctx, &req)
		if resp == nil {
			continue
		}
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading requests: %w", err)
	}
	s.logger.Info("input closed, shutting down")
	return nil
}

// handle dispatches one request. A nil return means no response is due.
func (s *Server) handle(ctx context.Context, req *request) *response {
	// Per JSON-RPC, a missing id marks a notification.
	notification := len(req.ID) == 0 || string(req.ID) == "null"

	switch req.Method {
	case "initialize":
		return &response{JSONRPC: "2.0", ID: req.ID, Result: s.initializeResult()}
	case "notifications/initialized":
		s.logger.Info("client initialized")
		return nil
	case "ping":
		if notification {
			return nil
		}
		return &response{JSONRPC: "2.0", ID: req.ID, Result: struct{}{}}
	case "tools/list":
		return &response{JSONRPC: "2.0", ID: req.ID, Result: map[string]any{"tools": declarations}}
	case "tools/call":
		return s.callTool(ctx, req)
	default:
		s.logger.Warn("unknown method", "method", req.Method)
		if notification {
			return nil
		}
		return &response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("method not found: %s", req.Method)},
		}
	}
}

func (s *Server) initializeResult() map[string]any {
	return map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities":    map[string]any{"tools": map[string]any{}},
		"serverInfo":      map[string]any{"name": s.Name, "version": s.Version},
	}
}

type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// callTool runs one tool invocation. Tool failures are already degraded to
// {"error": ...} JSON by the tools package; only malformed requests become
// JSON-RPC errors.
func (s *Server) callTool(ctx context.Context, req *request) *response {
	var params callParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return &response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: codeInvalidParams, Message: "invalid tool call params"},
		}
	}

	callID := uuid.New().String()
	s.logger.Info("tool call", "call_id", callID, "tool", params.Name)

	result, err := s.dispatch(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Error("tool call failed", "call_id", callID, "tool", params.Name, "err", err.Error())
		result = fmt.Sprintf(`{"error": %q}`, err.Error())
	}

	s.logger.Info("tool call complete", "call_id", callID, "tool", params.Name, "bytes", len(result))
	return &response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]any{
			"content": []map[string]any{{"type": "text", "text": result}},
		},
	}
}

func (s *Server) dispatch(ctx context.Context, name string, args json.RawMessage) (string, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	switch name {
	case "search_listings":
		var a searchArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", fmt.Errorf("invalid arguments for %s: %w", name, err)
		}
		return s.service.Search(ctx, tools.SearchParams{
			Location: a.Location,
			Checkin:  a.Checkin,
			Checkout: a.Checkout,
			Adults:   a.Adults,
			Children: a.Children,
			Limit:    a.Limit,
		}), nil
	case "listing_details":
		var a detailsArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", fmt.Errorf("invalid arguments for %s: %w", name, err)
		}
		return s.service.ListingDetails(ctx, tools.DetailsParams{
			ID:       a.ID,
			Checkin:  a.Checkin,
			Checkout: a.Checkout,
			Adults:   a.Adults,
			Children: a.Children,
		}), nil
	case "price_analyzer":
		var a priceAnalyzerArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", fmt.Errorf("invalid arguments for %s: %w", name, err)
		}
		ranges := make([]tools.DateRange, len(a.DateRanges))
		for i, dr := range a.DateRanges {
			ranges[i] = tools.DateRange{Checkin: dr.Checkin, Checkout: dr.Checkout}
		}
		return s.service.PriceAnalyzer(ctx, tools.PriceAnalyzerParams{
			Location:   a.Location,
			Adults:     a.Adults,
			Children:   a.Children,
			DateRanges: ranges,
		}), nil
	case "trip_budget":
		var a tripBudgetArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", fmt.Errorf("invalid arguments for %s: %w", name, err)
		}
		return s.service.TripBudget(ctx, tools.TripBudgetParams{
			ListingID: a.ListingID,
			Location:  a.Location,
			Checkin:   a.Checkin,
			Checkout:  a.Checkout,
			Adults:    a.Adults,
			Children:  a.Children,
			Currency:  a.Currency,
		}), nil
	case "smart_filter":
		var a smartFilterArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", fmt.Errorf("invalid arguments for %s: %w", name, err)
		}
		return s.service.SmartFilter(ctx, tools.SmartFilterParams{
			Location:  a.Location,
			Checkin:   a.Checkin,
			Checkout:  a.Checkout,
			Adults:    a.Adults,
			Children:  a.Children,
			MinPrice:  a.MinPrice,
			MaxPrice:  a.MaxPrice,
			MinRating: a.MinRating,
			SortBy:    a.SortBy,
		}), nil
	case "compare_listings":
		var a compareArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return "", fmt.Errorf("invalid arguments for %s: %w", name, err)
		}
		return s.service.CompareListings(ctx, tools.CompareParams{
			ListingIDs: a.ListingIDs,
			Location:   a.Location,
			Checkin:    a.Checkin,
			Checkout:   a.Checkout,
			Adults:     a.Adults,
			Children:   a.Children,
		}), nil
	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}
