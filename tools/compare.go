package tools

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jbialy/staylens"
)

// Bounds on how many listings one comparison may cover.
const (
	MinCompareListings = 2
	MaxCompareListings = 5
)

// CompareParams are the arguments to the CompareListings tool. Location is
// the market the shared pricing search runs against.
type CompareParams struct {
	ListingIDs []string
	Location   string
	Checkin    string
	Checkout   string
	Adults     int
	Children   int
}

// CompareListings fetches details for 2-5 listings side by side. Detail
// fetches run concurrently; a failed id becomes a partial-error entry rather
// than aborting the comparison, as long as at least two listings survive.
func (s *Service) CompareListings(ctx context.Context, p CompareParams) string {
	if len(p.ListingIDs) < MinCompareListings {
		out := staylens.NewObject()
		out.Set("error", staylens.String("Please provide at least 2 listing IDs to compare"))
		out.Set("format", staylens.String(`listing_ids: ["id1", "id2", "id3"]`))
		return encode(out)
	}
	if len(p.ListingIDs) > MaxCompareListings {
		out := staylens.NewObject()
		out.Set("error", staylens.String("Maximum 5 listings can be compared at once"))
		out.Set("provided", staylens.NumberFromInt(len(p.ListingIDs)))
		return encode(out)
	}
	if p.Location == "" {
		out := staylens.NewObject()
		out.Set("error", staylens.String("location is required to establish pricing context"))
		return encode(out)
	}

	s.logger().Info("comparing listings", "count", len(p.ListingIDs), "location", p.Location)

	// One shared search provides the pricing context for every id.
	pricing := map[string]*staylens.Object{}
	priced, err := s.runSearch(ctx, SearchParams{
		Location: p.Location,
		Checkin:  p.Checkin,
		Checkout: p.Checkout,
		Adults:   p.Adults,
		Children: p.Children,
		Limit:    50,
	})
	if err != nil {
		s.logger().Warn("pricing search failed, comparing without prices", "err", err.Error())
	} else {
		for _, l := range priced.listings {
			if id, ok := l.GetString("id"); ok {
				pricing[id] = l
			}
		}
	}

	type outcome struct {
		id      string
		details *detailsData
		err     error
	}
	outcomes := make([]outcome, len(p.ListingIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range p.ListingIDs {
		g.Go(func() error {
			details, err := s.runListingDetails(gctx, DetailsParams{
				ID:       id,
				Checkin:  p.Checkin,
				Checkout: p.Checkout,
				Adults:   p.Adults,
				Children: p.Children,
			})
			outcomes[i] = outcome{id: id, details: details, err: err}
			return nil
		})
	}
	_ = g.Wait()

	comparisons := make(staylens.Array, 0, len(outcomes))
	succeeded := 0
	for _, o := range outcomes {
		if o.err != nil {
			s.logger().Warn("could not fetch details", "id", o.id, "err", o.err.Error())
			entry := staylens.NewObject()
			entry.Set("listing_id", staylens.String(o.id))
			entry.Set("error", staylens.String(errorText(o.err)))
			comparisons = append(comparisons, entry)
			continue
		}
		comparisons = append(comparisons, s.comparison(o.details, pricing[o.id]))
		succeeded++
	}

	if succeeded < MinCompareListings {
		out := staylens.NewObject()
		out.Set("error", staylens.String("Could not fetch enough listings to compare"))
		out.Set("fetched", staylens.NumberFromInt(succeeded))
		out.Set("requested", staylens.NumberFromInt(len(p.ListingIDs)))
		return encode(out)
	}

	s.logger().Info("comparison complete", "compared", succeeded)

	out := staylens.NewObject()
	if p.Checkin != "" {
		out.Set("comparison_date", staylens.String(p.Checkin))
	} else {
		out.Set("comparison_date", staylens.String("Not specified"))
	}
	guests := staylens.NewObject()
	guests.Set("adults", staylens.NumberFromInt(p.Adults))
	guests.Set("children", staylens.NumberFromInt(p.Children))
	out.Set("guests", guests)
	out.Set("listings_compared", staylens.NumberFromInt(succeeded))
	out.Set("comparisons", comparisons)
	out.Set("insights", insights(comparisons))
	return encode(out)
}

// comparison assembles one side-by-side entry from the listing's detail
// sections plus its search-result pricing row, when one was found.
func (s *Service) comparison(details *detailsData, priced *staylens.Object) *staylens.Object {
	entry := staylens.NewObject()
	entry.Set("listing_id", staylens.String(details.id))
	entry.Set("url", staylens.String(details.url))

	name := "Unknown"
	var price, rating staylens.Node = staylens.Null{}, staylens.Null{}
	if priced != nil {
		if t, ok := priced.GetString("title"); ok {
			name = t
		}
		if r, ok := priced.Get("avgRatingLocalized"); ok {
			rating = r
		}
		if line, ok := priceLine(priced); ok {
			if d, ok := line.Get("discountedPrice"); ok {
				price = d
			}
		}
	}
	entry.Set("name", staylens.String(name))
	entry.Set("price", price)
	entry.Set("rating", rating)

	var location staylens.Node = staylens.Null{}
	amenities := staylens.Array{}
	highlights := staylens.Array{}
	var policies staylens.Node = staylens.NewObject()
	for _, section := range details.sections {
		tag, _ := section.GetString("id")
		switch tag {
		case sectionLocation:
			loc := staylens.NewObject()
			if lat, ok := section.Get("lat"); ok {
				loc.Set("lat", lat)
			}
			if lng, ok := section.Get("lng"); ok {
				loc.Set("lng", lng)
			}
			if title, ok := section.Get("title"); ok {
				loc.Set("description", title)
			}
			location = loc
		case sectionAmenities:
			if groups, ok := section.Get("seeAllAmenitiesGroups"); ok {
				if arr, ok := groups.(staylens.Array); ok {
					amenities = arr
				} else {
					amenities = staylens.Array{groups}
				}
			}
		case sectionHighlights:
			if h, ok := section.Get("highlights"); ok {
				if arr, ok := h.(staylens.Array); ok {
					highlights = arr
				} else {
					highlights = staylens.Array{h}
				}
			}
		case sectionPolicies:
			if rules, ok := section.Get("houseRulesSections"); ok {
				policies = rules
			}
		}
	}
	entry.Set("location", location)
	entry.Set("amenities", amenities)
	entry.Set("highlights", highlights)
	entry.Set("policies", policies)
	return entry
}

// insights derives the cheapest/most-expensive spread across the entries
// that carry a parseable price. Empty when none do.
func insights(comparisons staylens.Array) *staylens.Object {
	type pricedEntry struct {
		id    string
		value float64
	}
	var prices []pricedEntry
	for _, raw := range comparisons {
		entry, ok := raw.(*staylens.Object)
		if !ok {
			continue
		}
		display, ok := entry.GetString("price")
		if !ok {
			continue
		}
		value, ok := staylens.ExtractAmount(display)
		if !ok {
			continue
		}
		id, _ := entry.GetString("listing_id")
		prices = append(prices, pricedEntry{id: id, value: value})
	}

	out := staylens.NewObject()
	if len(prices) == 0 {
		return out
	}
	cheapest := prices[0]
	priciest := prices[0]
	for _, p := range prices[1:] {
		if p.value < cheapest.value {
			cheapest = p
		}
		if p.value > priciest.value {
			priciest = p
		}
	}
	out.Set("cheapest_listing_id", staylens.String(cheapest.id))
	out.Set("most_expensive_listing_id", staylens.String(priciest.id))
	out.Set("price_difference", staylens.NumberFromFloat(round2(priciest.value-cheapest.value)))
	return out
}
