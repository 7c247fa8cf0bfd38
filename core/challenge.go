package core

import "fmt"

// challengeTemplate is the exact text a wallet signs during login. It must
// stay byte-for-byte stable: the gate rebuilds it from the stored nonce to
// re-verify signatures, so any change invalidates in-flight challenges.
const challengeTemplate = `Welcome to Blockchain Secure Docs!

Sign this message to prove you control the wallet %s.

This request will not trigger a blockchain transaction or cost any gas fees.

Nonce: %s`

// ChallengeMessage builds the human-readable message for an address and
// nonce. The address should already be in its checksummed form.
func ChallengeMessage(address, nonce string) string {
	return fmt.Sprintf(challengeTemplate, address, nonce)
}
