package events

import (
	"context"
	"time"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/ports"
)

// NoopPublisher discards all events. Used when no message broker is
// configured, for example in the in-memory setup.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops everything
func NewNoopPublisher() ports.EventPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) PublishLogin(ctx context.Context, address string, at time.Time) error {
	return nil
}

func (NoopPublisher) PublishDocumentEvent(ctx context.Context, action, documentID, owner string) error {
	return nil
}
