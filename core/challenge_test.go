package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChallengeMessage(t *testing.T) {
	address := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	nonce := "deadbeef"

	msg := ChallengeMessage(address, nonce)

	require.Contains(t, msg, address)
	require.Contains(t, msg, "Nonce: "+nonce)
	require.Contains(t, msg, "will not trigger a blockchain transaction")

	// The gate rebuilds the message to re-verify signatures, so building
	// it twice from the same inputs must give identical bytes.
	require.Equal(t, msg, ChallengeMessage(address, nonce))
}

func TestChallengeMessageDiffersPerNonce(t *testing.T) {
	address := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	a := ChallengeMessage(address, "nonce-a")
	b := ChallengeMessage(address, "nonce-b")
	require.NotEqual(t, a, b)
	require.False(t, strings.Contains(a, "nonce-b"))
}
