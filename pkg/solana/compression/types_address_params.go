package compression

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana/binary"
)

// NewAddressParams requests creation of an address bound to a seed within an
// address tree. RootIndex locates the address-tree root the validity proof
// was generated against.
type NewAddressParams struct {
	Seed         [32]byte
	AddressQueue ed25519.PublicKey
	AddressTree  ed25519.PublicKey
	RootIndex    uint16
}

// NewAddressParamsPacked is NewAddressParams with the queue and tree keys
// replaced by remaining-accounts indices.
type NewAddressParamsPacked struct {
	Seed                          [32]byte
	AddressQueueAccountIndex      uint8
	AddressMerkleTreeAccountIndex uint8
	AddressMerkleTreeRootIndex    uint16
}

func (p *NewAddressParamsPacked) Serialize(w *binary.Writer) {
	w.WriteBytes(p.Seed[:])
	w.WriteUint8(p.AddressQueueAccountIndex)
	w.WriteUint8(p.AddressMerkleTreeAccountIndex)
	w.WriteUint16(p.AddressMerkleTreeRootIndex)
}
