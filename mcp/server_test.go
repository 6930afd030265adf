package mcp_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbialy/staylens"
	"github.com/jbialy/staylens/mcp"
	"github.com/jbialy/staylens/mock"
	"github.com/jbialy/staylens/tools"
)

func testServer() *mcp.Server {
	compositeID := base64.StdEncoding.EncodeToString([]byte("StayListing:sf001"))
	payload := fmt.Sprintf(
		`{"niobeClientData":[[{},{"data":{"presentation":{"staysSearch":{"results":{"searchResults":[{"demandStayListing":{"id":%q},"title":"Sunny loft"}],"paginationInfo":{}}}}}}]]}`,
		compositeID)

	svc := &tools.Service{
		Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return payload, nil
		}},
		Locator: &mock.PayloadLocator{LocateFn: func(html string) (staylens.Node, error) {
			return staylens.ParseNode([]byte(html))
		}},
		Logger: slog.New(slog.DiscardHandler),
	}
	return mcp.NewServer(svc, slog.New(slog.DiscardHandler))
}

// serve runs one session over the given request lines and returns the
// decoded responses in order.
func serve(t *testing.T, lines ...string) []map[string]any {
	t.Helper()
	srv := testServer()

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, srv.Run(context.Background(), in, &out))

	var responses []map[string]any
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &m))
		responses = append(responses, m)
	}
	return responses
}

func TestServer_Run(t *testing.T) {
	t.Parallel()

	t.Run("initialize handshake", func(t *testing.T) {
		t.Parallel()
		responses := serve(t, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`)

		require.Len(t, responses, 1)
		result := responses[0]["result"].(map[string]any)
		assert.Equal(t, mcp.ProtocolVersion, result["protocolVersion"])
		info := result["serverInfo"].(map[string]any)
		assert.Equal(t, "staylens", info["name"])
	})

	t.Run("initialized notification gets no response", func(t *testing.T) {
		t.Parallel()
		responses := serve(t,
			`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
			`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
		)

		require.Len(t, responses, 1)
		assert.Equal(t, float64(2), responses[0]["id"])
	})

	t.Run("lists six tools with schemas", func(t *testing.T) {
		t.Parallel()
		responses := serve(t, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

		require.Len(t, responses, 1)
		toolList := responses[0]["result"].(map[string]any)["tools"].([]any)
		require.Len(t, toolList, 6)

		names := make([]string, len(toolList))
		for i, raw := range toolList {
			decl := raw.(map[string]any)
			names[i] = decl["name"].(string)
			schema := decl["inputSchema"].(map[string]any)
			assert.Equal(t, "object", schema["type"])
			assert.NotEmpty(t, schema["required"])
		}
		assert.Equal(t, []string{
			"search_listings", "listing_details", "price_analyzer",
			"trip_budget", "smart_filter", "compare_listings",
		}, names)
	})

	t.Run("tool call returns text content", func(t *testing.T) {
		t.Parallel()
		responses := serve(t,
			`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"search_listings","arguments":{"location":"San Francisco"}}}`,
		)

		require.Len(t, responses, 1)
		content := responses[0]["result"].(map[string]any)["content"].([]any)
		require.Len(t, content, 1)
		text := content[0].(map[string]any)
		assert.Equal(t, "text", text["type"])

		var body map[string]any
		require.NoError(t, json.Unmarshal([]byte(text["text"].(string)), &body))
		results := body["searchResults"].([]any)
		require.Len(t, results, 1)
		assert.Equal(t, "sf001", results[0].(map[string]any)["id"])
	})

	t.Run("unknown tool degrades to an error payload", func(t *testing.T) {
		t.Parallel()
		responses := serve(t,
			`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"no_such_tool","arguments":{}}}`,
		)

		require.Len(t, responses, 1)
		content := responses[0]["result"].(map[string]any)["content"].([]any)
		text := content[0].(map[string]any)["text"].(string)
		assert.Contains(t, text, "unknown tool: no_such_tool")
		assert.Nil(t, responses[0]["error"])
	})

	t.Run("unknown method is a json-rpc error", func(t *testing.T) {
		t.Parallel()
		responses := serve(t, `{"jsonrpc":"2.0","id":5,"method":"resources/list"}`)

		require.Len(t, responses, 1)
		rpcErr := responses[0]["error"].(map[string]any)
		assert.Equal(t, float64(-32601), rpcErr["code"])
	})

	t.Run("unparseable line is a parse error", func(t *testing.T) {
		t.Parallel()
		responses := serve(t, `{"jsonrpc":`)

		require.Len(t, responses, 1)
		rpcErr := responses[0]["error"].(map[string]any)
		assert.Equal(t, float64(-32700), rpcErr["code"])
	})

	t.Run("blank lines are ignored", func(t *testing.T) {
		t.Parallel()
		responses := serve(t, "", `{"jsonrpc":"2.0","id":6,"method":"ping"}`, "")

		require.Len(t, responses, 1)
		assert.Equal(t, float64(6), responses[0]["id"])
	})
}
