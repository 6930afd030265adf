package tools

import (
	"context"
	"sort"

	"github.com/jbialy/staylens"
)

// DefaultCurrency labels budget amounts when the caller doesn't specify one.
// The amounts themselves come straight from the display prices, no conversion
// happens.
const DefaultCurrency = "USD"

// TripBudgetParams are the arguments to the TripBudget tool. Location is the
// market the pricing context comes from and must match where the listing was
// found.
type TripBudgetParams struct {
	ListingID string
	Location  string
	Checkin   string
	Checkout  string
	Adults    int
	Children  int
	Currency  string
}

// TripBudget estimates the full cost of a stay: accommodation, estimated
// service fee, tax, and cleaning fee, plus per-person breakdown, discount
// savings, and up to three cheaper alternatives from the same search.
func (s *Service) TripBudget(ctx context.Context, p TripBudgetParams) string {
	if p.Location == "" {
		out := staylens.NewObject()
		out.Set("error", staylens.String("location is required to establish pricing context"))
		out.Set("listing_id", staylens.String(p.ListingID))
		return encode(out)
	}
	currency := p.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	s.logger().Info("calculating trip budget", "id", p.ListingID, "location", p.Location)

	nights, err := nightsBetween(p.Checkin, p.Checkout)
	if err != nil {
		out := staylens.NewObject()
		out.Set("error", staylens.String(errorText(err)))
		out.Set("listing_id", staylens.String(p.ListingID))
		return encode(out)
	}
	if nights <= 0 {
		out := staylens.NewObject()
		out.Set("error", staylens.String("Checkout date must be after checkin date"))
		out.Set("checkin", staylens.String(p.Checkin))
		out.Set("checkout", staylens.String(p.Checkout))
		return encode(out)
	}

	data, err := s.runSearch(ctx, SearchParams{
		Location: p.Location,
		Checkin:  p.Checkin,
		Checkout: p.Checkout,
		Adults:   p.Adults,
		Children: p.Children,
		Limit:    50,
	})
	if err != nil {
		s.logger().Error("trip budget failed", "id", p.ListingID, "err", err.Error())
		out := staylens.NewObject()
		out.Set("error", staylens.String(errorText(err)))
		out.Set("listing_id", staylens.String(p.ListingID))
		return encode(out)
	}

	var listing *staylens.Object
	for _, l := range data.listings {
		if id, _ := l.GetString("id"); id == p.ListingID {
			listing = l
			break
		}
	}
	if listing == nil {
		out := staylens.NewObject()
		out.Set("error", staylens.String("Could not find pricing information for this listing"))
		out.Set("suggestion", staylens.String("Try searching for the location first, then use the listing ID from results"))
		out.Set("listing_id", staylens.String(p.ListingID))
		out.Set("listing_url", staylens.String(s.baseURL()+"/rooms/"+p.ListingID))
		return encode(out)
	}

	accommodation, ok := listingPrice(listing)
	if !ok || accommodation == 0 {
		out := staylens.NewObject()
		out.Set("error", staylens.String("Could not extract pricing information"))
		out.Set("listing_id", staylens.String(p.ListingID))
		return encode(out)
	}

	perNight := accommodation / float64(nights)
	serviceFee := accommodation * 0.14
	tax := accommodation * 0.12
	cleaningFee := perNight * 0.3
	totalWithFees := accommodation + serviceFee + tax + cleaningFee

	totalGuests := p.Adults + p.Children
	perPerson := totalWithFees
	if totalGuests > 0 {
		perPerson = totalWithFees / float64(totalGuests)
	}
	perPersonPerNight := perPerson / float64(nights)

	var savings, discountPct float64
	if orig, ok := listingOriginalPrice(listing); ok && orig > 0 {
		savings = orig - accommodation
		discountPct = savings / orig * 100
	}

	name, ok := listing.GetString("title")
	if !ok {
		name = "Unknown"
	}
	listingURL, _ := listing.GetString("url")

	out := staylens.NewObject()
	out.Set("listing_id", staylens.String(p.ListingID))
	out.Set("listing_name", staylens.String(name))
	out.Set("listing_url", staylens.String(listingURL))

	dates := staylens.NewObject()
	dates.Set("checkin", staylens.String(p.Checkin))
	dates.Set("checkout", staylens.String(p.Checkout))
	dates.Set("nights", staylens.NumberFromInt(nights))
	out.Set("dates", dates)

	guests := staylens.NewObject()
	guests.Set("adults", staylens.NumberFromInt(p.Adults))
	guests.Set("children", staylens.NumberFromInt(p.Children))
	guests.Set("total", staylens.NumberFromInt(totalGuests))
	out.Set("guests", guests)

	breakdown := staylens.NewObject()
	breakdown.Set("accommodation_total", staylens.NumberFromFloat(round2(accommodation)))
	breakdown.Set("per_night_rate", staylens.NumberFromFloat(round2(perNight)))
	breakdown.Set("service_fee_14pct", staylens.NumberFromFloat(round2(serviceFee)))
	breakdown.Set("tax_12pct", staylens.NumberFromFloat(round2(tax)))
	breakdown.Set("cleaning_fee_estimate", staylens.NumberFromFloat(round2(cleaningFee)))
	breakdown.Set("currency", staylens.String(currency))
	out.Set("cost_breakdown", breakdown)

	total := staylens.NewObject()
	total.Set("before_fees", staylens.NumberFromFloat(round2(accommodation)))
	total.Set("with_all_fees", staylens.NumberFromFloat(round2(totalWithFees)))
	total.Set("currency", staylens.String(currency))
	out.Set("total_cost", total)

	perPersonObj := staylens.NewObject()
	perPersonObj.Set("total", staylens.NumberFromFloat(round2(perPerson)))
	perPersonObj.Set("per_night", staylens.NumberFromFloat(round2(perPersonPerNight)))
	perPersonObj.Set("currency", staylens.String(currency))
	out.Set("per_person", perPersonObj)

	savingsObj := staylens.NewObject()
	if savings > 0 {
		savingsObj.Set("discount_amount", staylens.NumberFromFloat(round2(savings)))
		savingsObj.Set("discount_percent", staylens.NumberFromFloat(round1(discountPct)))
	} else {
		savingsObj.Set("discount_amount", staylens.NumberFromInt(0))
		savingsObj.Set("discount_percent", staylens.NumberFromInt(0))
	}
	out.Set("savings", savingsObj)

	out.Set("cheaper_alternatives", cheaperAlternatives(data.listings, p.ListingID, accommodation))
	out.Set("note", staylens.String("Service fee, tax, and cleaning fee are estimates. Actual amounts may vary at checkout."))

	s.logger().Info("budget calculation complete", "id", p.ListingID, "total", round2(totalWithFees))
	return encode(out)
}

// cheaperAlternatives picks, from the first ten search results, up to three
// listings priced below the target, ordered by savings descending. Equal
// savings keep search order.
func cheaperAlternatives(listings []*staylens.Object, targetID string, targetPrice float64) staylens.Array {
	if len(listings) > 10 {
		listings = listings[:10]
	}

	type alternative struct {
		entry   *staylens.Object
		savings float64
	}
	var alts []alternative
	for _, alt := range listings {
		id, _ := alt.GetString("id")
		if id == targetID {
			continue
		}
		price, ok := listingPrice(alt)
		if !ok || price >= targetPrice {
			continue
		}
		savings := targetPrice - price

		name, ok := alt.GetString("title")
		if !ok {
			name = "Unknown"
		}
		altURL, _ := alt.GetString("url")
		rating, ok := alt.GetString("avgRatingLocalized")
		if !ok {
			rating = "N/A"
		}

		entry := staylens.NewObject()
		entry.Set("id", staylens.String(id))
		entry.Set("name", staylens.String(name))
		entry.Set("url", staylens.String(altURL))
		entry.Set("price", staylens.NumberFromFloat(price))
		entry.Set("savings", staylens.NumberFromFloat(round2(savings)))
		entry.Set("rating", staylens.String(rating))
		alts = append(alts, alternative{entry: entry, savings: savings})
	}

	sort.SliceStable(alts, func(i, j int) bool { return alts[i].savings > alts[j].savings })
	if len(alts) > 3 {
		alts = alts[:3]
	}

	result := make(staylens.Array, len(alts))
	for i, a := range alts {
		result[i] = a.entry
	}
	return result
}
