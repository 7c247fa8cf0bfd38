package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/core"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/internal/eth"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/ports"
)

const nonceBytes = 32

// Challenge is what a client needs to complete a login: the current nonce
// and the exact message its wallet must sign.
type Challenge struct {
	Address string
	Nonce   string
	Message string
}

// AuthService handles the challenge/sign/verify login flow and authorizes
// requests against the stored session state.
type AuthService struct {
	store    ports.IdentityStore
	eventPub ports.EventPublisher
}

// NewAuthService creates a new authentication service
func NewAuthService(store ports.IdentityStore, eventPub ports.EventPublisher) *AuthService {
	return &AuthService{
		store:    store,
		eventPub: eventPub,
	}
}

// IssueChallenge returns the challenge for an address, registering the
// address with a fresh nonce on first contact. Repeated calls without an
// intervening login return the same nonce: rotation happens only at
// successful verification, so request retries see a stable challenge.
func (s *AuthService) IssueChallenge(ctx context.Context, address string) (*Challenge, error) {
	checksummed, err := eth.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	nonce, err := newNonce()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	identity, err := s.store.Ensure(ctx, checksummed, nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert identity: %w", err)
	}

	return &Challenge{
		Address: identity.Address,
		Nonce:   identity.Nonce,
		Message: core.ChallengeMessage(identity.Address, identity.Nonce),
	}, nil
}

// Login verifies a signature over the current challenge for an address.
// On success the nonce is rotated and the signature becomes the session
// signature that Authorize matches on subsequent requests.
func (s *AuthService) Login(ctx context.Context, address, signature string) (*core.Identity, error) {
	checksummed, err := eth.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	identity, err := s.store.Get(ctx, checksummed)
	if err != nil {
		return nil, err
	}

	message := core.ChallengeMessage(identity.Address, identity.Nonce)
	recovered, err := eth.RecoverAddress(message, signature)
	if err != nil {
		return nil, err
	}
	if !eth.SameAddress(recovered.Hex(), checksummed) {
		return nil, fmt.Errorf("%w: recovered %s", core.ErrUnauthorized, recovered.Hex())
	}

	nonce, err := newNonce()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	rotated, err := s.store.Rotate(ctx, checksummed, nonce, signature)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}

	log.WithField("address", rotated.Address).Info("wallet authenticated")

	if s.eventPub != nil {
		if err := s.eventPub.PublishLogin(ctx, rotated.Address, rotated.LastAuthenticatedAt); err != nil {
			// The session is already established; a missed audit event
			// must not fail the login.
			log.WithError(err).Warn("failed to publish login event")
		}
	}

	return rotated, nil
}

// Authorize checks the address/signature pair carried on a request and
// returns the checksummed address on success.
//
// The primary check is an exact match against the session signature stored
// at the last login. The fallback re-verifies the signature against the
// challenge rebuilt from the current nonce; it exists for the window where
// a client's first authenticated request overtakes its login response, and
// it stops matching as soon as the next login rotates the nonce. The
// fallback does not rotate or record anything, so a signature over the
// current nonce keeps authorizing until that rotation happens.
func (s *AuthService) Authorize(ctx context.Context, address, signature string) (string, error) {
	checksummed, err := eth.NormalizeAddress(address)
	if err != nil {
		return "", err
	}

	identity, err := s.store.Get(ctx, checksummed)
	if err != nil {
		return "", err
	}

	if identity.Authenticated() && identity.SessionSignature == signature {
		return identity.Address, nil
	}

	message := core.ChallengeMessage(identity.Address, identity.Nonce)
	recovered, err := eth.RecoverAddress(message, signature)
	if err != nil {
		return "", err
	}
	if !eth.SameAddress(recovered.Hex(), checksummed) {
		return "", fmt.Errorf("%w: recovered %s", core.ErrUnauthorized, recovered.Hex())
	}

	return identity.Address, nil
}

func newNonce() (string, error) {
	buf := make([]byte, nonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
