package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/ports"
)

const (
	// LoginTopic carries events for successful wallet logins
	LoginTopic = "auth.login"
	// DocumentTopic carries document lifecycle events for audit consumers
	DocumentTopic = "documents.audit"
)

// LoginEvent represents a successful login
type LoginEvent struct {
	Address         string    `json:"address"`
	AuthenticatedAt time.Time `json:"authenticated_at"`
}

// DocumentEvent represents a document lifecycle change
type DocumentEvent struct {
	Action     string `json:"action"` // created, updated, deleted
	DocumentID string `json:"document_id"`
	Owner      string `json:"owner"`
}

// WatermillPublisher implements the EventPublisher interface using Watermill
type WatermillPublisher struct {
	publisher message.Publisher
}

// NewWatermillPublisher creates a new Watermill publisher
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{publisher: publisher}
}

// PublishLogin publishes a login event
func (p *WatermillPublisher) PublishLogin(ctx context.Context, address string, at time.Time) error {
	return p.publish(LoginTopic, LoginEvent{
		Address:         address,
		AuthenticatedAt: at,
	})
}

// PublishDocumentEvent publishes a document lifecycle event
func (p *WatermillPublisher) PublishDocumentEvent(ctx context.Context, action, documentID, owner string) error {
	return p.publish(DocumentTopic, DocumentEvent{
		Action:     action,
		DocumentID: documentID,
		Owner:      owner,
	})
}

func (p *WatermillPublisher) publish(topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(uuid.New().String(), payload)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
