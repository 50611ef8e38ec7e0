package solana

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// PublicKeyFromBase58 decodes a base58-encoded public key and validates
// its length.
func PublicKeyFromBase58(value string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base58 value")
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid public key size (got %d bytes)", len(decoded))
	}
	return ed25519.PublicKey(decoded), nil
}

// MustPublicKeyFromBase58 is a PublicKeyFromBase58 that panics on failure.
// It's intended for protocol constants known to be well-formed.
func MustPublicKeyFromBase58(value string) ed25519.PublicKey {
	decoded, err := PublicKeyFromBase58(value)
	if err != nil {
		panic(err)
	}
	return decoded
}

// Base58 encodes a public key for display.
func Base58(pub ed25519.PublicKey) string {
	return base58.Encode(pub)
}
