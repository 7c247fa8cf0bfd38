package ports

import (
	"context"
	"time"
)

// EventPublisher publishes audit events to notify other instances
type EventPublisher interface {
	PublishLogin(ctx context.Context, address string, at time.Time) error
	PublishDocumentEvent(ctx context.Context, action, documentID, owner string) error
}
