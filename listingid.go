package staylens

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// DecodeListingID decodes a composite listing identifier. Upstream encodes
// ids as base64("StayListing:12345"); the bare id is the part after the
// first colon. A decoded value without a colon is returned whole.
//
// DecodeListingID never fails: on invalid base64 or non-text content it
// returns the encoded input unchanged. A malformed id degrades one listing's
// URL, it must not abort the listing.
func DecodeListingID(encoded string) string {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return encoded
	}
	if !utf8.Valid(raw) {
		return encoded
	}
	decoded := string(raw)
	if _, id, ok := strings.Cut(decoded, ":"); ok {
		return id
	}
	return decoded
}
