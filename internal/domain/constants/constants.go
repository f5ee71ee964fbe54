// Package constants defines shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Moderation event types published when a business changes state.
const (
	EventBusinessApproved = "business.approved"
	EventBusinessRejected = "business.rejected"
	EventReviewCreated    = "review.created"
)
