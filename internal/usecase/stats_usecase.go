package usecase

import (
	"context"

	"directory/internal/domain/policy"
)

// OwnerStatsOutput summarizes an owner's dashboard figures.
type OwnerStatsOutput struct {
	Businesses       map[string]int64 `json:"businesses"` // Count per moderation status.
	TotalReviews     int64            `json:"totalReviews"`
	AverageRating    float64          `json:"averageRating"`
	AwaitingResponse int64            `json:"awaitingResponse"`
}

// AdminStatsOutput summarizes platform-wide figures for the admin dashboard.
type AdminStatsOutput struct {
	Businesses map[string]int64 `json:"businesses"` // Count per moderation status.
	Users      int64            `json:"users"`
	Reviews    int64            `json:"reviews"`
	Categories int64            `json:"categories"`
}

// StatsUsecase defines dashboard statistics use cases.
type StatsUsecase interface {
	// OwnerStats aggregates figures across the caller's own businesses.
	OwnerStats(ctx context.Context, caller policy.Caller) (*OwnerStatsOutput, error)

	// AdminStats aggregates platform-wide figures.
	AdminStats(ctx context.Context, caller policy.Caller) (*AdminStatsOutput, error)
}
