package tools

import (
	"context"

	"github.com/jbialy/staylens"
)

// fetchPayload runs the shared pipeline front half: fetch the page, locate
// and parse the embedded payload, unwrap the deployment-specific key path,
// and normalize the result. Errors propagate to the tool boundary where they
// become degraded {error, ...} results.
func (s *Service) fetchPayload(ctx context.Context, url string, path []string) (staylens.Node, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	s.logger().Info("fetched page", "url", url, "bytes", len(html))

	payload, err := s.Locator.Locate(html)
	if err != nil {
		return nil, err
	}

	n, err := staylens.Unwrap(payload, path...)
	if err != nil {
		return nil, err
	}

	return staylens.Normalize(n), nil
}

// priceLine returns the primary display-price line of a listing, the object
// holding discountedPrice/originalPrice/qualifier.
func priceLine(listing *staylens.Object) (*staylens.Object, bool) {
	sdp, ok := listing.GetObject("structuredDisplayPrice")
	if !ok {
		return nil, false
	}
	return sdp.GetObject("primaryLine")
}

// listingPrice extracts the numeric discounted price of a listing.
// Best-effort: false when the listing carries no parseable display price.
func listingPrice(listing *staylens.Object) (float64, bool) {
	line, ok := priceLine(listing)
	if !ok {
		return 0, false
	}
	display, ok := line.GetString("discountedPrice")
	if !ok {
		return 0, false
	}
	return staylens.ExtractAmount(display)
}

// listingOriginalPrice extracts the pre-discount numeric price, when shown.
func listingOriginalPrice(listing *staylens.Object) (float64, bool) {
	line, ok := priceLine(listing)
	if !ok {
		return 0, false
	}
	display, ok := line.GetString("originalPrice")
	if !ok {
		return 0, false
	}
	return staylens.ExtractAmount(display)
}

// listingRating extracts the numeric rating from the localized rating label.
func listingRating(listing *staylens.Object) (float64, bool) {
	display, ok := listing.GetString("avgRatingLocalized")
	if !ok {
		return 0, false
	}
	return staylens.ExtractRating(display)
}
