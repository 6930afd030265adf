package tools_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbialy/staylens/tools"
)

func float64Ptr(f float64) *float64 { return &f }

func TestService_SmartFilter(t *testing.T) {
	t.Parallel()

	payload := searchPayload(
		searchResult("f1", "Cheap, low rated", "$80 night", "", "3.5 (10)"),
		searchResult("f2", "Mid, well rated", "$150 night", "", "4.8 (52)"),
		searchResult("f3", "Dear, top rated", "$400 night", "", "4.95 (200)"),
		searchResult("f4", "No rating shown", "$120 night", "", ""),
	)

	t.Run("filters by minimum rating", func(t *testing.T) {
		t.Parallel()
		svc := newService(staticFetcher(payload))

		out := decode(t, svc.SmartFilter(context.Background(), tools.SmartFilterParams{
			Location:  "Porto",
			MinRating: float64Ptr(4.0),
		}))

		listings := out["listings"].([]any)
		require.Len(t, listings, 2)
		for _, raw := range listings {
			assert.GreaterOrEqual(t, raw.(map[string]any)["rating"].(float64), 4.0)
		}
		assert.Equal(t, float64(2), out["total_matched"])
	})

	t.Run("filters by price band", func(t *testing.T) {
		t.Parallel()
		svc := newService(staticFetcher(payload))

		out := decode(t, svc.SmartFilter(context.Background(), tools.SmartFilterParams{
			Location: "Porto",
			MinPrice: float64Ptr(100),
			MaxPrice: float64Ptr(200),
			SortBy:   tools.SortByPrice,
		}))

		listings := out["listings"].([]any)
		require.Len(t, listings, 2)
		assert.Equal(t, "f4", listings[0].(map[string]any)["id"])
		assert.Equal(t, "f2", listings[1].(map[string]any)["id"])
	})

	t.Run("sorts by price ascending", func(t *testing.T) {
		t.Parallel()
		svc := newService(staticFetcher(payload))

		out := decode(t, svc.SmartFilter(context.Background(), tools.SmartFilterParams{
			Location: "Porto",
			SortBy:   tools.SortByPrice,
		}))

		listings := out["listings"].([]any)
		require.Len(t, listings, 4)
		assert.Equal(t, "f1", listings[0].(map[string]any)["id"])
		assert.Equal(t, "f3", listings[3].(map[string]any)["id"])
	})

	t.Run("sorts by rating descending", func(t *testing.T) {
		t.Parallel()
		svc := newService(staticFetcher(payload))

		out := decode(t, svc.SmartFilter(context.Background(), tools.SmartFilterParams{
			Location: "Porto",
			SortBy:   tools.SortByRating,
		}))

		listings := out["listings"].([]any)
		require.Len(t, listings, 4)
		assert.Equal(t, "f3", listings[0].(map[string]any)["id"])
		assert.Equal(t, "f2", listings[1].(map[string]any)["id"])
	})

	t.Run("default value ordering favors rating per price", func(t *testing.T) {
		t.Parallel()
		svc := newService(staticFetcher(payload))

		out := decode(t, svc.SmartFilter(context.Background(), tools.SmartFilterParams{
			Location: "Porto",
		}))

		listings := out["listings"].([]any)
		require.Len(t, listings, 4)
		// f1: 3.5/(80/1000) = 43.75, f2: 4.8/0.15 = 32, f3: 4.95/0.4 = 12.375.
		first := listings[0].(map[string]any)
		assert.Equal(t, "f1", first["id"])
		assert.Equal(t, 43.75, first["value_score"])
		assert.Equal(t, "f2", listings[1].(map[string]any)["id"])

		filters := out["filters_applied"].(map[string]any)
		assert.Equal(t, tools.SortByValue, filters["sort_by"])
		assert.Nil(t, filters["min_price"])
	})

	t.Run("fetch failure degrades to an error result", func(t *testing.T) {
		t.Parallel()
		svc := newService(staticFetcher("not json"))

		out := decode(t, svc.SmartFilter(context.Background(), tools.SmartFilterParams{Location: "Porto"}))

		assert.Contains(t, out, "error")
		assert.Equal(t, "Porto", out["location"])
	})
}
