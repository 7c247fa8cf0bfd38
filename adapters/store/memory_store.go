package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/core"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/ports"
)

// MemoryIdentityStore is an in-memory implementation of the identity
// store. It is primarily intended for testing and single-node setups.
type MemoryIdentityStore struct {
	identities map[string]core.Identity // keyed by lowercase address
	mu         sync.RWMutex
}

// NewMemoryIdentityStore creates a new in-memory identity store
func NewMemoryIdentityStore() *MemoryIdentityStore {
	return &MemoryIdentityStore{
		identities: make(map[string]core.Identity),
	}
}

var _ ports.IdentityStore = (*MemoryIdentityStore)(nil)

// Get returns the Identity for an address
func (s *MemoryIdentityStore) Get(ctx context.Context, address string) (*core.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identity, ok := s.identities[identityKey(address)]
	if !ok {
		return nil, core.ErrNotRegistered
	}
	return &identity, nil
}

// Ensure returns the existing Identity or creates one with the given nonce
func (s *MemoryIdentityStore) Ensure(ctx context.Context, address, nonce string) (*core.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := identityKey(address)
	if identity, ok := s.identities[key]; ok {
		return &identity, nil
	}

	identity := core.Identity{
		Address:   address,
		Nonce:     nonce,
		CreatedAt: time.Now().UTC(),
	}
	s.identities[key] = identity

	return &identity, nil
}

// Rotate installs a fresh nonce and session signature
func (s *MemoryIdentityStore) Rotate(ctx context.Context, address, nonce, signature string) (*core.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := identityKey(address)
	identity, ok := s.identities[key]
	if !ok {
		return nil, core.ErrNotRegistered
	}

	identity.Nonce = nonce
	identity.SessionSignature = signature
	identity.LastAuthenticatedAt = time.Now().UTC()
	s.identities[key] = identity

	return &identity, nil
}

// MemoryDocumentStore is an in-memory implementation of the document store
type MemoryDocumentStore struct {
	documents map[string]core.Document
	mu        sync.RWMutex
}

// NewMemoryDocumentStore creates a new in-memory document store
func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{
		documents: make(map[string]core.Document),
	}
}

var _ ports.DocumentStore = (*MemoryDocumentStore)(nil)

// Save stores a document
func (s *MemoryDocumentStore) Save(ctx context.Context, doc *core.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents[doc.ID] = *doc
	return nil
}

// Get returns a document by ID
func (s *MemoryDocumentStore) Get(ctx context.Context, id string) (*core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, core.ErrDocumentNotFound
	}
	return &doc, nil
}

// ListByOwner returns all documents owned by an address
func (s *MemoryDocumentStore) ListByOwner(ctx context.Context, owner string) ([]*core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []*core.Document
	for _, doc := range s.documents {
		if doc.Owner == owner {
			d := doc
			docs = append(docs, &d)
		}
	}
	return docs, nil
}

// Delete removes a document by ID
func (s *MemoryDocumentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return core.ErrDocumentNotFound
	}
	delete(s.documents, id)
	return nil
}

func identityKey(address string) string {
	return strings.ToLower(address)
}
