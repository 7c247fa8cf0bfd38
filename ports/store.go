package ports

import (
	"context"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/core"
)

// IdentityStore persists per-wallet authentication state. Addresses passed
// to it must already be in checksummed form; implementations key records
// case-insensitively so that lowercase and checksummed lookups resolve to
// the same Identity.
type IdentityStore interface {
	// Get returns the Identity for an address, or core.ErrNotRegistered
	// if no challenge was ever issued for it.
	Get(ctx context.Context, address string) (*core.Identity, error)

	// Ensure returns the existing Identity for an address, creating one
	// with the given nonce if none exists yet. The existing nonce is never
	// replaced here; rotation happens only through Rotate.
	Ensure(ctx context.Context, address, nonce string) (*core.Identity, error)

	// Rotate installs a fresh nonce and the signature accepted at login,
	// and stamps LastAuthenticatedAt. Concurrent rotations for the same
	// address are last-write-wins.
	Rotate(ctx context.Context, address, nonce, signature string) (*core.Identity, error)
}

// DocumentStore persists document metadata.
type DocumentStore interface {
	Save(ctx context.Context, doc *core.Document) error
	Get(ctx context.Context, id string) (*core.Document, error)
	ListByOwner(ctx context.Context, owner string) ([]*core.Document, error)
	Delete(ctx context.Context, id string) error
}
