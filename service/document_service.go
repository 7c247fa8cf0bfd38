package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/core"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/ports"
)

// DocumentService manages document metadata on behalf of authenticated
// wallets. File content lives in IPFS; only the CID is recorded here.
type DocumentService struct {
	store    ports.DocumentStore
	eventPub ports.EventPublisher
}

// NewDocumentService creates a new document service
func NewDocumentService(store ports.DocumentStore, eventPub ports.EventPublisher) *DocumentService {
	return &DocumentService{
		store:    store,
		eventPub: eventPub,
	}
}

// Create records a new document owned by the caller.
func (s *DocumentService) Create(ctx context.Context, owner, name, description, cid string) (*core.Document, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("document name is required")
	}
	if strings.TrimSpace(cid) == "" {
		return nil, fmt.Errorf("document cid is required")
	}

	now := time.Now().UTC()
	doc := &core.Document{
		ID:          uuid.New().String(),
		Owner:       owner,
		Name:        name,
		Description: description,
		CID:         cid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	s.publish(ctx, "created", doc)

	return doc, nil
}

// Get returns a document if the caller owns it.
func (s *DocumentService) Get(ctx context.Context, caller, id string) (*core.Document, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Owner != caller {
		return nil, core.ErrNotDocumentOwner
	}
	return doc, nil
}

// List returns all documents owned by the caller.
func (s *DocumentService) List(ctx context.Context, caller string) ([]*core.Document, error) {
	return s.store.ListByOwner(ctx, caller)
}

// Update changes the mutable metadata of a document the caller owns. The
// CID is immutable: new content means a new document.
func (s *DocumentService) Update(ctx context.Context, caller, id, name, description string) (*core.Document, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Owner != caller {
		return nil, core.ErrNotDocumentOwner
	}

	if strings.TrimSpace(name) != "" {
		doc.Name = name
	}
	doc.Description = description
	doc.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	s.publish(ctx, "updated", doc)

	return doc, nil
}

// Delete removes a document the caller owns.
func (s *DocumentService) Delete(ctx context.Context, caller, id string) error {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if doc.Owner != caller {
		return core.ErrNotDocumentOwner
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.publish(ctx, "deleted", doc)

	return nil
}

func (s *DocumentService) publish(ctx context.Context, action string, doc *core.Document) {
	if s.eventPub == nil {
		return
	}
	if err := s.eventPub.PublishDocumentEvent(ctx, action, doc.ID, doc.Owner); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"action":   action,
			"document": doc.ID,
		}).Warn("failed to publish document event")
	}
}
