package util

import "math"

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// NormalizePaging clamps user-supplied paging parameters and returns the
// resulting offset alongside the normalized page and limit.
func NormalizePaging(page, limit int) (offset, normPage, normLimit int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return (page - 1) * limit, page, limit
}

// RoundRating rounds an aggregate rating to one decimal for display.
// Persisted aggregates keep full precision; only API representations use this.
func RoundRating(rating float64) float64 {
	return math.Round(rating*10) / 10
}
