package staylens_test

import (
	"encoding/base64"
	"testing"

	"github.com/jbialy/staylens"
	"github.com/stretchr/testify/assert"
)

func TestDecodeListingID(t *testing.T) {
	t.Parallel()

	t.Run("decodes composite id", func(t *testing.T) {
		t.Parallel()

		encoded := base64.StdEncoding.EncodeToString([]byte("StayListing:sf001"))

		assert.Equal(t, "sf001", staylens.DecodeListingID(encoded))
	})

	t.Run("splits on the first colon only", func(t *testing.T) {
		t.Parallel()

		encoded := base64.StdEncoding.EncodeToString([]byte("StayListing:ab:cd"))

		assert.Equal(t, "ab:cd", staylens.DecodeListingID(encoded))
	})

	t.Run("returns full text when no colon present", func(t *testing.T) {
		t.Parallel()

		encoded := base64.StdEncoding.EncodeToString([]byte("12345"))

		assert.Equal(t, "12345", staylens.DecodeListingID(encoded))
	})

	t.Run("invalid base64 falls back to input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "%%not-base64%%", staylens.DecodeListingID("%%not-base64%%"))
	})

	t.Run("non-text bytes fall back to input", func(t *testing.T) {
		t.Parallel()

		encoded := base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd})

		assert.Equal(t, encoded, staylens.DecodeListingID(encoded))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", staylens.DecodeListingID(""))
	})
}
