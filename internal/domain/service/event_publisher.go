package service

import (
	"context"
	"time"
)

// LifecycleEvent describes a user-lifecycle transition performed by an
// admin. It is handed to the notification service (an external collaborator)
// so affected users can be informed; delivery is best-effort and never
// blocks the admin operation itself.
type LifecycleEvent struct {
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`           // reject, suspend, reinstate, ban
	Role       string    `json:"role,omitempty"`   // Empty for account-wide transitions.
	Reason     string    `json:"reason,omitempty"` // Audit note supplied by the admin.
	AdminID    string    `json:"admin_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing lifecycle events to a
// message queue.
type EventPublisher interface {
	// PublishLifecycleEvent publishes a lifecycle event for async processing.
	PublishLifecycleEvent(ctx context.Context, event *LifecycleEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
