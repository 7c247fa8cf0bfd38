package eth

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/core"
)

const signatureLength = 65

// NormalizeAddress validates an address string and returns its EIP-55
// checksummed form. Returns core.ErrInvalidAddress for anything that is
// not a 20-byte hex address.
func NormalizeAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidAddress, address)
	}
	return common.HexToAddress(address).Hex(), nil
}

// RecoverAddress recovers the signing address from a personal_sign
// signature over message. The signature is the usual 0x-prefixed 65-byte
// hex blob produced by wallets; its recovery id may be 0/1 or 27/28.
// Returns core.ErrMalformedSignature when the blob cannot be decoded or
// no public key can be recovered from it.
func RecoverAddress(message, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", core.ErrMalformedSignature, err)
	}
	if len(sig) != signatureLength {
		return common.Address{}, fmt.Errorf("%w: expected %d bytes, got %d", core.ErrMalformedSignature, signatureLength, len(sig))
	}

	// Wallets emit V as 27/28, crypto.SigToPub expects 0/1.
	if sig[signatureLength-1] >= 27 {
		sig = append([]byte(nil), sig...)
		sig[signatureLength-1] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", core.ErrMalformedSignature, err)
	}

	return crypto.PubkeyToAddress(*pub), nil
}

// SameAddress compares two address strings for equality, ignoring
// checksum case differences.
func SameAddress(a, b string) bool {
	return common.HexToAddress(a) == common.HexToAddress(b)
}
