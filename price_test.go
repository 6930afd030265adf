package staylens_test

import (
	"testing"

	"github.com/jbialy/staylens"
	"github.com/stretchr/testify/assert"
)

func TestExtractAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		display string
		want    float64
		ok      bool
	}{
		{"plain amount", "$120", 120, true},
		{"thousands separator", "₹4,500 total", 4500, true},
		{"amount with qualifier", "$1,203 for 2 nights", 1203, true},
		{"no digits", "price unavailable", 0, false},
		{"empty string", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := staylens.ExtractAmount(tt.display)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		display string
		want    float64
		ok      bool
	}{
		{"rating with review count", "4.92 (128 reviews)", 4.92, true},
		{"bare rating", "4.5", 4.5, true},
		{"integer rating", "5", 5, true},
		{"no digits", "New listing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := staylens.ExtractRating(tt.display)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
