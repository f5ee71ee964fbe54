package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business represents an establishment listed in the directory.
// It is created by an owner in PENDING status and becomes publicly visible
// only after an administrator approves it.
type Business struct {
	ID          uuid.UUID
	Slug        string // Unique URL-safe key derived from the name at creation time.
	Name        string
	Description string
	CategoryID  uuid.UUID
	OwnerID     uuid.UUID // The single owning user. A user may own many businesses.

	Address   string
	City      string
	State     string
	Latitude  float64
	Longitude float64

	Phone   string
	Email   string
	Website string

	OpeningHours OpeningHours
	Logo         string
	Images       []string

	Status          BusinessStatus
	RejectionReason string // Set only while Status is REJECTED.
	IsVerified      bool
	IsFeatured      bool

	// Derived aggregates, recomputed transactionally with every review mutation.
	AverageRating float64 // Arithmetic mean of current review ratings, 0 when there are none.
	ReviewCount   int64
	ViewCount     int64 // Monotonically non-decreasing page view counter.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPubliclyVisible reports whether the business appears in public listings.
func (b *Business) IsPubliclyVisible() bool {
	return b.Status == BusinessStatusApproved
}

// DayHours describes the opening window for a single weekday.
type DayHours struct {
	Open   string `json:"open"`   // "09:00"
	Close  string `json:"close"`  // "18:00"
	Closed bool   `json:"closed"` // True when the business does not open that day.
}

// OpeningHours maps a lowercase weekday name ("monday".."sunday") to its hours.
type OpeningHours map[string]DayHours
