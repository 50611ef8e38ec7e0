package compression

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

const addressSeedSize = 32

// DeriveAddressSeed combines a program's seeds into the single 32-byte
// address seed used by DeriveAddress. The program ID is hashed first so two
// programs can never collide on the same seeds.
func DeriveAddressSeed(seeds [][]byte, programID ed25519.PublicKey) [32]byte {
	chunks := make([][]byte, 0, len(seeds)+1)
	chunks = append(chunks, programID)
	chunks = append(chunks, seeds...)
	return HashToFieldDirect(chunks...)
}

// DeriveAddress derives the compressed account address bound to an address
// seed within a v1 address tree. The seed must be exactly 32 bytes.
func DeriveAddress(seed []byte, addressTree ed25519.PublicKey) ([32]byte, error) {
	if len(seed) != addressSeedSize {
		return [32]byte{}, errors.Wrapf(ErrInvalidLength, "address seed must be %d bytes, got %d", addressSeedSize, len(seed))
	}

	address, _, err := HashToFieldSearch(append(append([]byte{}, addressTree...), seed...))
	if err != nil {
		return [32]byte{}, err
	}
	return address, nil
}

// DeriveAddressSeedV2 is the batched-tree form of DeriveAddressSeed. The
// hashed component order is load-bearing; it is verified against fixed
// cross-implementation vectors.
func DeriveAddressSeedV2(seeds [][]byte) [32]byte {
	return HashToFieldDirectWithBump(seeds...)
}

// DeriveAddressV2 derives a compressed account address within a v2 (batched)
// address tree. The address seed must be exactly 32 bytes.
func DeriveAddressV2(addressSeed []byte, addressTree, programID ed25519.PublicKey) ([32]byte, error) {
	if len(addressSeed) != addressSeedSize {
		return [32]byte{}, errors.Wrapf(ErrInvalidLength, "address seed must be %d bytes, got %d", addressSeedSize, len(addressSeed))
	}

	return HashToFieldDirectWithBump(addressSeed, addressTree, programID), nil
}
