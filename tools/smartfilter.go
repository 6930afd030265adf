package tools

import (
	"context"
	"sort"

	"github.com/jbialy/staylens"
)

// Sort keys accepted by the SmartFilter tool.
const (
	SortByPrice  = "price"
	SortByRating = "rating"
	SortByValue  = "value"
)

// SmartFilterParams are the arguments to the SmartFilter tool. Nil filter
// pointers mean "no constraint".
type SmartFilterParams struct {
	Location  string
	Checkin   string
	Checkout  string
	Adults    int
	Children  int
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	SortBy    string
}

// scoredListing pairs a listing with the numeric fields the filters and sort
// keys operate on.
type scoredListing struct {
	listing *staylens.Object
	price   float64
	rating  float64
	value   float64
}

// SmartFilter searches with a wide internal limit, keeps only listings whose
// numeric price and rating pass the requested constraints, scores each by
// value (rating per thousand price units), and returns the top 20 under the
// requested ordering.
func (s *Service) SmartFilter(ctx context.Context, p SmartFilterParams) string {
	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = SortByValue
	}

	s.logger().Info("smart filtering", "location", p.Location, "sort", sortBy)

	data, err := s.runSearch(ctx, SearchParams{
		Location: p.Location,
		Checkin:  p.Checkin,
		Checkout: p.Checkout,
		Adults:   p.Adults,
		Children: p.Children,
		Limit:    50,
	})
	if err != nil {
		s.logger().Error("smart filter failed", "location", p.Location, "err", err.Error())
		out := staylens.NewObject()
		out.Set("error", staylens.String(errorText(err)))
		out.Set("location", staylens.String(p.Location))
		return encode(out)
	}

	var scored []scoredListing
	for _, listing := range data.listings {
		price, hasPrice := listingPrice(listing)
		rating, hasRating := listingRating(listing)

		if p.MinPrice != nil && (!hasPrice || price < *p.MinPrice) {
			continue
		}
		if p.MaxPrice != nil && (!hasPrice || price > *p.MaxPrice) {
			continue
		}
		if p.MinRating != nil && (!hasRating || rating < *p.MinRating) {
			continue
		}

		var value float64
		if price > 0 {
			value = rating / (price / 1000)
		}
		scored = append(scored, scoredListing{
			listing: listing,
			price:   price,
			rating:  rating,
			value:   value,
		})
	}

	switch sortBy {
	case SortByPrice:
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].price < scored[j].price })
	case SortByRating:
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].rating > scored[j].rating })
	default:
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].value > scored[j].value })
	}

	totalMatched := len(scored)
	if len(scored) > 20 {
		scored = scored[:20]
	}

	s.logger().Info("smart filter complete", "matched", totalMatched, "returned", len(scored))

	out := staylens.NewObject()
	out.Set("location", staylens.String(p.Location))
	out.Set("checkin", staylens.String(p.Checkin))
	out.Set("checkout", staylens.String(p.Checkout))

	filters := staylens.NewObject()
	if p.MinPrice != nil {
		filters.Set("min_price", staylens.NumberFromFloat(*p.MinPrice))
	} else {
		filters.Set("min_price", staylens.Null{})
	}
	if p.MaxPrice != nil {
		filters.Set("max_price", staylens.NumberFromFloat(*p.MaxPrice))
	} else {
		filters.Set("max_price", staylens.Null{})
	}
	if p.MinRating != nil {
		filters.Set("min_rating", staylens.NumberFromFloat(*p.MinRating))
	} else {
		filters.Set("min_rating", staylens.Null{})
	}
	filters.Set("sort_by", staylens.String(sortBy))
	out.Set("filters_applied", filters)

	out.Set("total_matched", staylens.NumberFromInt(totalMatched))
	out.Set("returned", staylens.NumberFromInt(len(scored)))

	listings := make(staylens.Array, len(scored))
	for i, sc := range scored {
		entry := staylens.NewObject()
		id, _ := sc.listing.GetString("id")
		entry.Set("id", staylens.String(id))
		listingURL, _ := sc.listing.GetString("url")
		entry.Set("url", staylens.String(listingURL))
		name, ok := sc.listing.GetString("title")
		if !ok {
			name = "Unknown"
		}
		entry.Set("name", staylens.String(name))
		entry.Set("price", staylens.NumberFromFloat(sc.price))
		entry.Set("rating", staylens.NumberFromFloat(sc.rating))
		entry.Set("value_score", staylens.NumberFromFloat(round2(sc.value)))
		listings[i] = entry
	}
	out.Set("listings", listings)
	return encode(out)
}
