package mcp

// toolDecl is one entry of the tools/list response.
type toolDecl struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Argument structs mirror the declared input schemas. Optional numeric
// filters are pointers so "absent" and "zero" stay distinct.
type searchArgs struct {
	Location string `json:"location"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	Limit    int    `json:"limit"`
}

type detailsArgs struct {
	ID       string `json:"id"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

type dateRangeArg struct {
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
}

type priceAnalyzerArgs struct {
	Location   string         `json:"location"`
	Adults     int            `json:"adults"`
	Children   int            `json:"children"`
	DateRanges []dateRangeArg `json:"date_ranges"`
}

type tripBudgetArgs struct {
	ListingID string `json:"listing_id"`
	Location  string `json:"location"`
	Checkin   string `json:"checkin"`
	Checkout  string `json:"checkout"`
	Adults    int    `json:"adults"`
	Children  int    `json:"children"`
	Currency  string `json:"currency"`
}

type smartFilterArgs struct {
	Location  string   `json:"location"`
	Checkin   string   `json:"checkin"`
	Checkout  string   `json:"checkout"`
	Adults    int      `json:"adults"`
	Children  int      `json:"children"`
	MinPrice  *float64 `json:"min_price"`
	MaxPrice  *float64 `json:"max_price"`
	MinRating *float64 `json:"min_rating"`
	SortBy    string   `json:"sort_by"`
}

type compareArgs struct {
	ListingIDs []string `json:"listing_ids"`
	Location   string   `json:"location"`
	Checkin    string   `json:"checkin"`
	Checkout   string   `json:"checkout"`
	Adults     int      `json:"adults"`
	Children   int      `json:"children"`
}

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func numberProp(desc string) map[string]any {
	return map[string]any{"type": "number", "description": desc}
}

var declarations = []toolDecl{
	{
		Name:        "search_listings",
		Description: "Search for listings in a location, with optional dates and guest counts",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": stringProp("Location to search (e.g., 'Lisbon, Portugal')"),
				"checkin":  stringProp("Check-in date (YYYY-MM-DD)"),
				"checkout": stringProp("Check-out date (YYYY-MM-DD)"),
				"adults":   numberProp("Number of adults (default: 1)"),
				"children": numberProp("Number of children (default: 0)"),
				"limit":    numberProp("Number of results (default: 10)"),
			},
			"required": []string{"location"},
		},
	},
	{
		Name:        "listing_details",
		Description: "Get detailed information about a specific listing including amenities, policies, location, and description",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":       stringProp("The listing ID"),
				"checkin":  stringProp("Check-in date (YYYY-MM-DD)"),
				"checkout": stringProp("Check-out date (YYYY-MM-DD)"),
				"adults":   numberProp("Number of adults (default: 1)"),
				"children": numberProp("Number of children (default: 0)"),
			},
			"required": []string{"id"},
		},
	},
	{
		Name:        "price_analyzer",
		Description: "Analyze and compare prices across different dates to find the cheapest and best value dates",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": stringProp("Location to search (e.g., 'Lisbon, Portugal')"),
				"adults":   numberProp("Number of adults (default: 1)"),
				"children": numberProp("Number of children (default: 0)"),
				"date_ranges": map[string]any{
					"type":        "array",
					"description": "List of date ranges to compare",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"checkin":  stringProp("Check-in date (YYYY-MM-DD)"),
							"checkout": stringProp("Check-out date (YYYY-MM-DD)"),
						},
						"required": []string{"checkin", "checkout"},
					},
				},
			},
			"required": []string{"location", "date_ranges"},
		},
	},
	{
		Name:        "trip_budget",
		Description: "Calculate a comprehensive trip budget including accommodation, service fees, taxes, and per-person breakdown",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"listing_id": stringProp("The listing ID"),
				"location":   stringProp("Location the listing was found in, used for pricing context"),
				"checkin":    stringProp("Check-in date (YYYY-MM-DD)"),
				"checkout":   stringProp("Check-out date (YYYY-MM-DD)"),
				"adults":     numberProp("Number of adults (default: 1)"),
				"children":   numberProp("Number of children (default: 0)"),
				"currency":   stringProp("Currency code (default: USD)"),
			},
			"required": []string{"listing_id", "location", "checkin", "checkout"},
		},
	},
	{
		Name:        "smart_filter",
		Description: "Advanced search with price/rating filters and smart sorting (by price, rating, or value)",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location":   stringProp("Location to search (e.g., 'Lisbon, Portugal')"),
				"checkin":    stringProp("Check-in date (YYYY-MM-DD)"),
				"checkout":   stringProp("Check-out date (YYYY-MM-DD)"),
				"adults":     numberProp("Number of adults (default: 1)"),
				"children":   numberProp("Number of children (default: 0)"),
				"min_price":  numberProp("Minimum price filter"),
				"max_price":  numberProp("Maximum price filter"),
				"min_rating": numberProp("Minimum rating filter (e.g., 4.5)"),
				"sort_by":    stringProp("Sort by: 'price', 'rating', or 'value' (default: value)"),
			},
			"required": []string{"location"},
		},
	},
	{
		Name:        "compare_listings",
		Description: "Compare 2-5 listings side-by-side with prices, ratings, amenities, and policies",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"listing_ids": map[string]any{
					"type":        "array",
					"description": "List of listing IDs to compare (2-5 listings)",
					"items":       map[string]any{"type": "string"},
				},
				"location": stringProp("Location the listings were found in, used for pricing context"),
				"checkin":  stringProp("Check-in date (YYYY-MM-DD)"),
				"checkout": stringProp("Check-out date (YYYY-MM-DD)"),
				"adults":   numberProp("Number of adults (default: 1)"),
				"children": numberProp("Number of children (default: 0)"),
			},
			"required": []string{"listing_ids", "location"},
		},
	},
}
