package service

import "context"

// OwnerNotification is a push message addressed to a business owner.
type OwnerNotification struct {
	Title string
	Body  string
	Data  map[string]string
}

// NotificationService sends push notifications. Implementations may be nil
// when push delivery is not configured; callers must tolerate that.
type NotificationService interface {
	// SendToTopic delivers the notification to every device subscribed to
	// the topic. Owners subscribe to their per-account topic from the
	// dashboard client.
	SendToTopic(ctx context.Context, topic string, notification *OwnerNotification) error
}
