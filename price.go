package staylens

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	amountRe = regexp.MustCompile(`\d+`)
	ratingRe = regexp.MustCompile(`[\d.]+`)
)

// ExtractAmount pulls a numeric amount out of a display price string such as
// "₹4,500 total" or "$1,203 for 2 nights". Thousands separators are stripped
// and the first run of digits wins. Display strings are the only price the
// upstream exposes, so this is best-effort: the second return is false when
// no digits are present, never an error.
func ExtractAmount(display string) (float64, bool) {
	stripped := strings.ReplaceAll(display, ",", "")
	m := amountRe.FindString(stripped)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ExtractRating pulls a numeric rating out of a localized rating string such
// as "4.92 (128 reviews)". Returns false when the string holds no parseable
// number.
func ExtractRating(display string) (float64, bool) {
	m := ratingRe.FindString(display)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
