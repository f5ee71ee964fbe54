package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups businesses for browsing. A category cannot be deleted
// while at least one business references it.
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string // Unique URL-safe key derived from the name.
	Description string
	Icon        string
	Color       string
	Order       int // Display sort key, no uniqueness implied.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
