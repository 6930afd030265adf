package tools

import (
	"context"
	"time"

	"github.com/jbialy/staylens"
)

// DateRange is one checkin/checkout pair for price analysis.
type DateRange struct {
	Checkin  string
	Checkout string
}

// PriceAnalyzerParams are the arguments to the PriceAnalyzer tool.
type PriceAnalyzerParams struct {
	Location   string
	Adults     int
	Children   int
	DateRanges []DateRange
}

// rangeStats aggregates the priced listings of one date range.
type rangeStats struct {
	checkin     string
	checkout    string
	nights      int
	prices      []pricedListing
	avgTotal    float64
	avgPerNight float64
	avgDiscount float64
	cheapest    pricedListing
	priciest    pricedListing
}

type pricedListing struct {
	total       float64
	perNight    float64
	discountPct float64
	listingID   string
	name        string
}

// PriceAnalyzer compares prices for the same location across several date
// ranges and recommends the best dates. A range with zero priced listings is
// excluded from all aggregates, not treated as zero.
func (s *Service) PriceAnalyzer(ctx context.Context, p PriceAnalyzerParams) string {
	if len(p.DateRanges) == 0 {
		out := staylens.NewObject()
		out.Set("error", staylens.String("Please provide at least one date range to analyze"))
		out.Set("format", staylens.String(`date_ranges: [{"checkin": "2025-10-05", "checkout": "2025-10-07"}]`))
		return encode(out)
	}

	s.logger().Info("analyzing prices", "location", p.Location, "ranges", len(p.DateRanges))

	var results []rangeStats
	for idx, dr := range p.DateRanges {
		if dr.Checkin == "" || dr.Checkout == "" {
			s.logger().Warn("skipping date range missing checkin or checkout", "index", idx)
			continue
		}
		nights, err := nightsBetween(dr.Checkin, dr.Checkout)
		if err != nil {
			s.logger().Error("price analysis failed", "err", err.Error())
			out := staylens.NewObject()
			out.Set("error", staylens.String(errorText(err)))
			out.Set("location", staylens.String(p.Location))
			return encode(out)
		}

		data, err := s.runSearch(ctx, SearchParams{
			Location: p.Location,
			Checkin:  dr.Checkin,
			Checkout: dr.Checkout,
			Adults:   p.Adults,
			Children: p.Children,
			Limit:    20,
		})
		if err != nil {
			s.logger().Warn("search failed for date range",
				"checkin", dr.Checkin, "checkout", dr.Checkout, "err", err.Error())
			continue
		}

		stats := rangeStats{checkin: dr.Checkin, checkout: dr.Checkout, nights: nights}
		for _, listing := range data.listings {
			total, ok := listingPrice(listing)
			if !ok {
				continue
			}
			perNight := total
			if nights > 0 {
				perNight = total / float64(nights)
			}

			var discountPct float64
			if orig, ok := listingOriginalPrice(listing); ok && orig > 0 {
				discountPct = (orig - total) / orig * 100
			}

			id, _ := listing.GetString("id")
			name, ok := listing.GetString("title")
			if !ok {
				name = "Unknown"
			}
			stats.prices = append(stats.prices, pricedListing{
				total:       total,
				perNight:    perNight,
				discountPct: round1(discountPct),
				listingID:   id,
				name:        name,
			})
		}

		if len(stats.prices) == 0 {
			continue
		}
		stats.aggregate()
		results = append(results, stats)
	}

	if len(results) == 0 {
		out := staylens.NewObject()
		out.Set("error", staylens.String("No price data found for any date ranges"))
		out.Set("location", staylens.String(p.Location))
		return encode(out)
	}

	s.logger().Info("price analysis complete", "ranges", len(results))

	out := staylens.NewObject()
	out.Set("location", staylens.String(p.Location))
	out.Set("adults", staylens.NumberFromInt(p.Adults))
	out.Set("children", staylens.NumberFromInt(p.Children))
	out.Set("date_ranges_analyzed", staylens.NumberFromInt(len(results)))

	resultArr := make(staylens.Array, len(results))
	for i, r := range results {
		resultArr[i] = r.result()
	}
	out.Set("results", resultArr)
	out.Set("recommendations", recommendations(results))
	return encode(out)
}

// aggregate fills the derived fields from the collected prices.
func (r *rangeStats) aggregate() {
	var sumTotal, sumPerNight, sumDiscount float64
	r.cheapest = r.prices[0]
	r.priciest = r.prices[0]
	for _, p := range r.prices {
		sumTotal += p.total
		sumPerNight += p.perNight
		sumDiscount += p.discountPct
		if p.total < r.cheapest.total {
			r.cheapest = p
		}
		if p.total > r.priciest.total {
			r.priciest = p
		}
	}
	n := float64(len(r.prices))
	r.avgTotal = sumTotal / n
	r.avgPerNight = sumPerNight / n
	r.avgDiscount = sumDiscount / n
}

func (r *rangeStats) result() *staylens.Object {
	out := staylens.NewObject()
	out.Set("checkin", staylens.String(r.checkin))
	out.Set("checkout", staylens.String(r.checkout))
	out.Set("nights", staylens.NumberFromInt(r.nights))
	out.Set("listings_found", staylens.NumberFromInt(len(r.prices)))
	out.Set("average_total_price", staylens.NumberFromFloat(round2(r.avgTotal)))
	out.Set("average_per_night", staylens.NumberFromFloat(round2(r.avgPerNight)))
	out.Set("cheapest", r.cheapest.summary())
	out.Set("most_expensive", r.priciest.summary())
	out.Set("average_discount_percent", staylens.NumberFromFloat(round1(r.avgDiscount)))

	priceRange := staylens.NewObject()
	priceRange.Set("min", staylens.NumberFromFloat(r.cheapest.total))
	priceRange.Set("max", staylens.NumberFromFloat(r.priciest.total))
	out.Set("price_range", priceRange)
	return out
}

func (p pricedListing) summary() *staylens.Object {
	out := staylens.NewObject()
	out.Set("total", staylens.NumberFromFloat(p.total))
	out.Set("per_night", staylens.NumberFromFloat(round2(p.perNight)))
	out.Set("listing_id", staylens.String(p.listingID))
	out.Set("name", staylens.String(p.name))
	return out
}

// recommendations selects the best date ranges. Ties keep the first range in
// input order.
func recommendations(results []rangeStats) *staylens.Object {
	bestValue := &results[0]
	cheapest := &results[0]
	bestDiscount := &results[0]
	for i := range results[1:] {
		r := &results[i+1]
		if r.avgPerNight < bestValue.avgPerNight {
			bestValue = r
		}
		if r.cheapest.total < cheapest.cheapest.total {
			cheapest = r
		}
		if r.avgDiscount > bestDiscount.avgDiscount {
			bestDiscount = r
		}
	}

	value := staylens.NewObject()
	value.Set("checkin", staylens.String(bestValue.checkin))
	value.Set("checkout", staylens.String(bestValue.checkout))
	value.Set("avg_per_night", staylens.NumberFromFloat(round2(bestValue.avgPerNight)))
	value.Set("reason", staylens.String("Lowest average price per night"))

	overall := staylens.NewObject()
	overall.Set("checkin", staylens.String(cheapest.checkin))
	overall.Set("checkout", staylens.String(cheapest.checkout))
	overall.Set("cheapest_listing", cheapest.cheapest.summary())
	overall.Set("reason", staylens.String("Absolute cheapest listing found"))

	discounts := staylens.NewObject()
	discounts.Set("checkin", staylens.String(bestDiscount.checkin))
	discounts.Set("checkout", staylens.String(bestDiscount.checkout))
	discounts.Set("avg_discount", staylens.NumberFromFloat(round1(bestDiscount.avgDiscount)))
	discounts.Set("reason", staylens.String("Highest average discount percentage"))

	out := staylens.NewObject()
	out.Set("best_value_dates", value)
	out.Set("cheapest_overall", overall)
	out.Set("best_discounts", discounts)
	return out
}

// nightsBetween returns the calendar-day difference between two YYYY-MM-DD
// dates.
func nightsBetween(checkin, checkout string) (int, error) {
	in, err := time.Parse("2006-01-02", checkin)
	if err != nil {
		return 0, staylens.Errorf(staylens.EINVALID, "invalid checkin date %q: expected YYYY-MM-DD", checkin)
	}
	out, err := time.Parse("2006-01-02", checkout)
	if err != nil {
		return 0, staylens.Errorf(staylens.EINVALID, "invalid checkout date %q: expected YYYY-MM-DD", checkout)
	}
	return int(out.Sub(in).Hours() / 24), nil
}
