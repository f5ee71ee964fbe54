package service

import (
	"context"
)

// ModerationEvent is published whenever a moderation decision or a new
// review changes what the public directory shows.
type ModerationEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventType  string `json:"event_type"`           // One of constants.EventBusiness*/EventReviewCreated
	BusinessID string `json:"business_id"`
	OwnerID    string `json:"owner_id"`
	ReviewID   string `json:"review_id,omitempty"` // Set for review events only
	Reason     string `json:"reason,omitempty"`    // Rejection reason, when applicable
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishModerationEvent publishes a moderation event for async processing
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
