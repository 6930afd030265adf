package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jbialy/staylens"
)

// DetailsParams are the arguments to the ListingDetails tool.
type DetailsParams struct {
	ID       string
	Checkin  string
	Checkout string
	Adults   int
	Children int
}

// detailsData is the structured form of a details outcome, shared with the
// compare tool.
type detailsData struct {
	url      string
	id       string
	sections []*staylens.Object
}

// ListingDetails fetches a listing's detail page and returns its known
// sections (location, policies, highlights, description, amenities) as a
// JSON string. Sections with unrecognized tags are dropped silently.
func (s *Service) ListingDetails(ctx context.Context, p DetailsParams) string {
	data, err := s.runListingDetails(ctx, p)
	if err != nil {
		s.logger().Error("listing details failed", "id", p.ID, "err", err.Error())
		out := staylens.NewObject()
		out.Set("error", staylens.String(errorText(err)))
		out.Set("listingUrl", staylens.String(s.listingURL(p)))
		out.Set("listingId", staylens.String(p.ID))
		return encode(out)
	}

	out := staylens.NewObject()
	out.Set("listingUrl", staylens.String(data.url))
	out.Set("listingId", staylens.String(data.id))
	details := make(staylens.Array, len(data.sections))
	for i, sec := range data.sections {
		details[i] = sec
	}
	out.Set("details", details)
	return encode(out)
}

// listingURL builds the detail-page request URL. The detail page uses
// check_in/check_out parameter names, unlike search.
func (s *Service) listingURL(p DetailsParams) string {
	params := url.Values{}
	if p.Checkin != "" {
		params.Set("check_in", p.Checkin)
	}
	if p.Checkout != "" {
		params.Set("check_out", p.Checkout)
	}
	if p.Adults > 0 {
		params.Set("adults", strconv.Itoa(p.Adults))
	}
	if p.Children > 0 {
		params.Set("children", strconv.Itoa(p.Children))
	}
	return s.baseURL() + "/rooms/" + url.PathEscape(p.ID) + "?" + params.Encode()
}

func (s *Service) runListingDetails(ctx context.Context, p DetailsParams) (*detailsData, error) {
	if p.ID == "" {
		return nil, staylens.Errorf(staylens.EINVALID, "listing id is required")
	}

	listingURL := s.listingURL(p)
	sections, err := s.fetchPayload(ctx, listingURL, s.detailSectionsPath())
	if err != nil {
		return nil, err
	}

	sectionsArr, ok := sections.(staylens.Array)
	if !ok {
		return nil, staylens.Errorf(staylens.ESCHEMAMISMATCH, "detail sections are not an array")
	}

	data := &detailsData{url: listingURL, id: p.ID}
	for _, raw := range sectionsArr {
		section, ok := raw.(*staylens.Object)
		if !ok {
			continue
		}
		tag, ok := section.GetString("sectionId")
		if !ok {
			continue
		}
		schema, ok := detailSectionSchemas[tag]
		if !ok {
			// Unknown section tags are dropped, that is how output stays
			// stable while the upstream adds sections.
			continue
		}
		content, ok := section.GetObject("section")
		if !ok {
			continue
		}

		projected := staylens.Project(content, schema)
		flattened, ok := staylens.Flatten(projected).(*staylens.Object)
		if !ok {
			continue
		}
		if tag == sectionDescription {
			s.renderDescription(flattened)
		}

		entry := staylens.NewObject()
		entry.Set("id", staylens.String(tag))
		for _, k := range flattened.Keys() {
			v, _ := flattened.Get(k)
			entry.Set(k, v)
		}
		data.sections = append(data.sections, entry)
	}

	s.logger().Info("extracted detail sections", "id", p.ID, "count", len(data.sections))
	return data, nil
}

// renderDescription converts the description section's embedded HTML to
// readable text in place. Best-effort: without a converter, or on a
// conversion error, the raw HTML stays.
func (s *Service) renderDescription(flattened *staylens.Object) {
	if s.Converter == nil {
		return
	}
	desc, ok := flattened.GetObject("htmlDescription")
	if !ok {
		return
	}
	html, ok := desc.GetString("htmlText")
	if !ok {
		return
	}
	text, err := s.Converter.Convert(html)
	if err != nil {
		s.logger().Warn("description conversion failed", "err", err.Error())
		return
	}
	desc.Set("htmlText", staylens.String(text))
}
