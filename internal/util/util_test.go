package util

import "testing"

func TestNormalizePaging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset int
		wantPage   int
		wantLimit  int
	}{
		{name: "first page defaults", page: 0, limit: 0, wantOffset: 0, wantPage: 1, wantLimit: 20},
		{name: "negative inputs fall back to defaults", page: -3, limit: -1, wantOffset: 0, wantPage: 1, wantLimit: 20},
		{name: "explicit page and limit", page: 3, limit: 10, wantOffset: 20, wantPage: 3, wantLimit: 10},
		{name: "limit clamped to maximum", page: 2, limit: 500, wantOffset: 100, wantPage: 2, wantLimit: 100},
		{name: "limit at the maximum is kept", page: 1, limit: 100, wantOffset: 0, wantPage: 1, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offset, page, limit := NormalizePaging(tt.page, tt.limit)
			if offset != tt.wantOffset || page != tt.wantPage || limit != tt.wantLimit {
				t.Fatalf("NormalizePaging(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.page, tt.limit, offset, page, limit, tt.wantOffset, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestRoundRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rating   float64
		expected float64
	}{
		{name: "zero", rating: 0, expected: 0},
		{name: "rounds to nearest tenth", rating: 4.26, expected: 4.3},
		{name: "rounds down", rating: 4.24, expected: 4.2},
		{name: "rounds half up", rating: 4.25, expected: 4.3},
		{name: "already one decimal", rating: 3.5, expected: 3.5},
		{name: "repeating fraction", rating: 11.0 / 3.0, expected: 3.7},
		{name: "top of the scale", rating: 5.0, expected: 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RoundRating(tt.rating); got != tt.expected {
				t.Fatalf("RoundRating(%v) = %v, want %v", tt.rating, got, tt.expected)
			}
		})
	}
}
