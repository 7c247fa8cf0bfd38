package core

import "time"

// Identity is the per-wallet authentication record. There is exactly one
// Identity per address; it is created on the first challenge request and
// mutated only by nonce rotation at successful login.
type Identity struct {
	Address             string    // EIP-55 checksummed address
	Nonce               string    // current single-use random token, hex
	SessionSignature    string    // signature accepted at the last login, empty until then
	LastAuthenticatedAt time.Time // zero until the first successful login
	CreatedAt           time.Time // when the first challenge was issued
}

// Authenticated reports whether the identity has completed a login since
// creation (or since its session signature was last cleared).
func (i *Identity) Authenticated() bool {
	return i.SessionSignature != ""
}
