package tools

import "github.com/jbialy/staylens"

// Detail section tags recognized by the listing-details tool. Sections with
// any other tag are dropped.
const (
	sectionLocation    = "LOCATION_DEFAULT"
	sectionPolicies    = "POLICIES_DEFAULT"
	sectionHighlights  = "HIGHLIGHTS_DEFAULT"
	sectionDescription = "DESCRIPTION_DEFAULT"
	sectionAmenities   = "AMENITIES_DEFAULT"
)

// searchResultSchema whitelists the fields of one search result that survive
// projection. Declaration order is output order.
var searchResultSchema = staylens.Schema{
	staylens.Nested("demandStayListing",
		staylens.Include("id"),
		staylens.Include("location"),
		staylens.Include("description"),
		staylens.Include("nameLocale"),
	),
	staylens.Include("propertyId"),
	staylens.Include("title"),
	staylens.Include("nameLocalized"),
	staylens.Nested("structuredContent",
		staylens.Nested("primaryLine",
			staylens.Include("body"),
		),
		staylens.Nested("secondaryLine",
			staylens.Include("body"),
		),
	),
	staylens.Include("avgRatingA11yLabel"),
	staylens.Include("avgRatingLocalized"),
	staylens.Nested("badges",
		staylens.Include("text"),
	),
	staylens.Nested("contextualPictures",
		staylens.Include("picture"),
	),
	staylens.Nested("structuredDisplayPrice",
		staylens.Nested("primaryLine",
			staylens.Include("accessibilityLabel"),
			staylens.Include("discountedPrice"),
			staylens.Include("originalPrice"),
			staylens.Include("qualifier"),
		),
		staylens.Nested("secondaryLine",
			staylens.Include("accessibilityLabel"),
		),
	),
}

// detailSectionSchemas maps a section tag to the whitelist for that
// section's content.
var detailSectionSchemas = map[string]staylens.Schema{
	sectionLocation: {
		staylens.Include("lat"),
		staylens.Include("lng"),
		staylens.Include("subtitle"),
		staylens.Include("title"),
	},
	sectionPolicies: {
		staylens.Include("title"),
		staylens.Nested("houseRulesSections",
			staylens.Include("title"),
			staylens.Nested("items",
				staylens.Include("title"),
			),
		),
	},
	sectionHighlights: {
		staylens.Nested("highlights",
			staylens.Include("title"),
		),
	},
	sectionDescription: {
		staylens.Nested("htmlDescription",
			staylens.Include("htmlText"),
		),
	},
	sectionAmenities: {
		staylens.Include("title"),
		staylens.Nested("seeAllAmenitiesGroups",
			staylens.Include("title"),
			staylens.Nested("amenities",
				staylens.Include("title"),
			),
		),
	},
}
