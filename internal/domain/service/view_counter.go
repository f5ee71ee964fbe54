package service

import (
	"context"

	"github.com/google/uuid"
)

// ViewCounter batches business page view hits so that hot listings do not
// turn every read into a row update. Implementations flush accumulated
// counts back to the businesses table periodically; the column remains
// monotonically non-decreasing.
type ViewCounter interface {
	// Hit records one page view for a business.
	Hit(ctx context.Context, businessID uuid.UUID) error

	// Flush drains all accumulated counts into persistent storage.
	Flush(ctx context.Context) error
}
