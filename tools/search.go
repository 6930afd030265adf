package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jbialy/staylens"
)

// DefaultSearchLimit caps search results when the caller doesn't specify.
const DefaultSearchLimit = 10

// SearchParams are the arguments to the Search tool.
type SearchParams struct {
	Location string
	Checkin  string
	Checkout string
	Adults   int
	Children int
	Limit    int
}

// searchData is the structured form of a search outcome, shared with the
// post-processing tools so they don't re-parse the serialized output.
type searchData struct {
	url        string
	listings   []*staylens.Object
	pagination staylens.Node
}

// Search looks up listings for a location and returns them as a JSON string.
// Raw results missing their composite id are skipped with a warning, not
// treated as failures.
func (s *Service) Search(ctx context.Context, p SearchParams) string {
	data, err := s.runSearch(ctx, p)
	if err != nil {
		s.logger().Error("search failed", "location", p.Location, "err", err.Error())
		out := staylens.NewObject()
		out.Set("error", staylens.String(errorText(err)))
		out.Set("searchUrl", staylens.String(s.searchURL(p)))
		return encode(out)
	}

	out := staylens.NewObject()
	out.Set("searchUrl", staylens.String(data.url))
	listings := make(staylens.Array, len(data.listings))
	for i, l := range data.listings {
		listings[i] = l
	}
	out.Set("searchResults", listings)
	out.Set("paginationInfo", data.pagination)
	return encode(out)
}

// searchURL builds the search request URL for the given parameters.
func (s *Service) searchURL(p SearchParams) string {
	params := url.Values{}
	if p.Checkin != "" {
		params.Set("checkin", p.Checkin)
	}
	if p.Checkout != "" {
		params.Set("checkout", p.Checkout)
	}
	if p.Adults > 0 {
		params.Set("adults", strconv.Itoa(p.Adults))
	}
	if p.Children > 0 {
		params.Set("children", strconv.Itoa(p.Children))
	}
	return s.baseURL() + "/s/" + url.PathEscape(p.Location) + "/homes?" + params.Encode()
}

func (s *Service) runSearch(ctx context.Context, p SearchParams) (*searchData, error) {
	if p.Location == "" {
		return nil, staylens.Errorf(staylens.EINVALID, "location is required")
	}
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	searchURL := s.searchURL(p)
	results, err := s.fetchPayload(ctx, searchURL, s.searchResultsPath())
	if err != nil {
		return nil, err
	}

	resultsObj, ok := results.(*staylens.Object)
	if !ok {
		return nil, staylens.Errorf(staylens.ESCHEMAMISMATCH, "search results are not an object")
	}

	rawResults, _ := resultsObj.GetArray("searchResults")
	s.logger().Info("raw search results", "count", len(rawResults))

	// The limit truncates raw results before per-result filtering; a skipped
	// result is not backfilled from beyond the window.
	if len(rawResults) > limit {
		rawResults = rawResults[:limit]
	}

	data := &searchData{url: searchURL}
	for idx, raw := range rawResults {
		result, ok := raw.(*staylens.Object)
		if !ok {
			s.logger().Warn("skipping non-object search result", "index", idx)
			continue
		}

		demand, ok := result.GetObject("demandStayListing")
		if !ok {
			s.logger().Warn("search result missing demandStayListing", "index", idx)
			continue
		}
		encodedID, ok := demand.GetString("id")
		if !ok || encodedID == "" {
			s.logger().Warn("search result missing composite id", "index", idx)
			continue
		}
		id := staylens.DecodeListingID(encodedID)

		projected := staylens.Project(result, searchResultSchema)
		flattened, ok := staylens.Flatten(projected).(*staylens.Object)
		if !ok {
			s.logger().Warn("projected search result is not an object", "index", idx)
			continue
		}

		listing := staylens.NewObject()
		listing.Set("id", staylens.String(id))
		listing.Set("url", staylens.String(s.baseURL()+"/rooms/"+id))
		for _, k := range flattened.Keys() {
			v, _ := flattened.Get(k)
			listing.Set(k, v)
		}
		data.listings = append(data.listings, listing)
	}

	s.logger().Info("extracted listings", "count", len(data.listings), "raw", len(rawResults))

	if pagination, ok := resultsObj.Get("paginationInfo"); ok {
		data.pagination = pagination
	} else {
		data.pagination = staylens.NewObject()
	}

	return data, nil
}
