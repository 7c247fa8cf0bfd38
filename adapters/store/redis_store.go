package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/core"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/ports"
)

const (
	identityPrefix = "securedocs:identity:"
	documentPrefix = "securedocs:document:"
	ownerPrefix    = "securedocs:owner:"
)

// RedisIdentityStore is a Redis implementation of the identity store.
// Each identity is a hash under securedocs:identity:<lowercase address>;
// a single HSET gives the per-record write atomicity rotation relies on.
type RedisIdentityStore struct {
	client *redis.Client
}

// NewRedisIdentityStore creates a new Redis identity store
func NewRedisIdentityStore(client *redis.Client) *RedisIdentityStore {
	return &RedisIdentityStore{client: client}
}

var _ ports.IdentityStore = (*RedisIdentityStore)(nil)

// Get returns the Identity for an address
func (s *RedisIdentityStore) Get(ctx context.Context, address string) (*core.Identity, error) {
	fields, err := s.client.HGetAll(ctx, identityPrefix+identityKey(address)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreFailure, err)
	}
	if len(fields) == 0 {
		return nil, core.ErrNotRegistered
	}
	return identityFromFields(fields)
}

// Ensure returns the existing Identity or creates one with the given nonce
func (s *RedisIdentityStore) Ensure(ctx context.Context, address, nonce string) (*core.Identity, error) {
	key := identityPrefix + identityKey(address)

	createdAt := time.Now().UTC()
	// HSETNX on the nonce field decides creation; losing the race to a
	// concurrent Ensure means the other caller's record wins and we read
	// it back below.
	created, err := s.client.HSetNX(ctx, key, "nonce", nonce).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreFailure, err)
	}
	if created {
		if err := s.client.HSet(ctx, key,
			"address", address,
			"created_at", createdAt.Format(time.RFC3339Nano),
		).Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrStoreFailure, err)
		}
	}

	return s.Get(ctx, address)
}

// Rotate installs a fresh nonce and session signature
func (s *RedisIdentityStore) Rotate(ctx context.Context, address, nonce, signature string) (*core.Identity, error) {
	key := identityPrefix + identityKey(address)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreFailure, err)
	}
	if exists == 0 {
		return nil, core.ErrNotRegistered
	}

	if err := s.client.HSet(ctx, key,
		"nonce", nonce,
		"session_signature", signature,
		"last_authenticated_at", time.Now().UTC().Format(time.RFC3339Nano),
	).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreFailure, err)
	}

	return s.Get(ctx, address)
}

func identityFromFields(fields map[string]string) (*core.Identity, error) {
	identity := &core.Identity{
		Address:          fields["address"],
		Nonce:            fields["nonce"],
		SessionSignature: fields["session_signature"],
	}
	if v := fields["created_at"]; v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("%w: bad created_at: %v", core.ErrStoreFailure, err)
		}
		identity.CreatedAt = t
	}
	if v := fields["last_authenticated_at"]; v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("%w: bad last_authenticated_at: %v", core.ErrStoreFailure, err)
		}
		identity.LastAuthenticatedAt = t
	}
	return identity, nil
}

// RedisDocumentStore is a Redis implementation of the document store.
// Documents are JSON values under securedocs:document:<id> with a per-owner
// set of IDs under securedocs:owner:<lowercase address>.
type RedisDocumentStore struct {
	client *redis.Client
}

// NewRedisDocumentStore creates a new Redis document store
func NewRedisDocumentStore(client *redis.Client) *RedisDocumentStore {
	return &RedisDocumentStore{client: client}
}

var _ ports.DocumentStore = (*RedisDocumentStore)(nil)

// Save stores a document
func (s *RedisDocumentStore) Save(ctx context.Context, doc *core.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrStoreFailure, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, documentPrefix+doc.ID, payload, 0)
	pipe.SAdd(ctx, ownerPrefix+identityKey(doc.Owner), doc.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", core.ErrStoreFailure, err)
	}
	return nil
}

// Get returns a document by ID
func (s *RedisDocumentStore) Get(ctx context.Context, id string) (*core.Document, error) {
	payload, err := s.client.Get(ctx, documentPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, core.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("%w: %v", core.ErrStoreFailure, err)
	}

	var doc core.Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreFailure, err)
	}
	return &doc, nil
}

// ListByOwner returns all documents owned by an address
func (s *RedisDocumentStore) ListByOwner(ctx context.Context, owner string) ([]*core.Document, error) {
	ids, err := s.client.SMembers(ctx, ownerPrefix+identityKey(owner)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreFailure, err)
	}

	var docs []*core.Document
	for _, id := range ids {
		doc, err := s.Get(ctx, id)
		if err != nil {
			if errors.Is(err, core.ErrDocumentNotFound) {
				continue
			}
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Delete removes a document by ID
func (s *RedisDocumentStore) Delete(ctx context.Context, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, documentPrefix+id)
	pipe.SRem(ctx, ownerPrefix+identityKey(doc.Owner), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", core.ErrStoreFailure, err)
	}
	return nil
}
