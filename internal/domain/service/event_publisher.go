package service

import (
	"context"
)

const (
	// EventMediaFlagged is published whenever an item receives a new flag.
	EventMediaFlagged = "media.flagged"
	// EventPasswordReset is published when an agent requests a password reset.
	EventPasswordReset = "agent.password_reset"
)

// Event is a message handed to external consumers (moderation queue, mailer).
type Event struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Subject    string            `json:"subject"`              // Media path or agent email
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish hands the event to the configured transport
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
