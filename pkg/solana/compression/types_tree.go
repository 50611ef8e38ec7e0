package compression

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana/binary"
)

// TreeType distinguishes the two state/address tree generations. V1 trees
// require full merkle path proofs; v2 ("batched") trees additionally allow
// proving an account by its queue position.
type TreeType uint8

const (
	TreeTypeStateV1 TreeType = iota + 1
	TreeTypeAddressV1
	TreeTypeStateV2
	TreeTypeAddressV2
)

// TreeInfo describes one merkle/queue tree pair as reported by the indexer.
//
// NextTreeInfo is set while the tree is rolling over to its successor; new
// output state must target the next tree in that case.
type TreeInfo struct {
	Tree         ed25519.PublicKey
	Queue        ed25519.PublicKey
	CpiContext   ed25519.PublicKey // optional
	TreeType     TreeType
	NextTreeInfo *TreeInfo
}

// MerkleContext locates one compressed account inside its tree.
type MerkleContext struct {
	TreeInfo     TreeInfo
	LeafIndex    uint32
	ProveByIndex bool
}

// PackedMerkleContext is the index-based counterpart of MerkleContext,
// referencing the instruction's remaining-accounts table. It is produced
// only by the account packer.
type PackedMerkleContext struct {
	MerkleTreePubkeyIndex uint8
	QueuePubkeyIndex      uint8
	LeafIndex             uint32
	ProveByIndex          bool
}

func (c *PackedMerkleContext) Serialize(w *binary.Writer) {
	w.WriteUint8(c.MerkleTreePubkeyIndex)
	w.WriteUint8(c.QueuePubkeyIndex)
	w.WriteUint32(c.LeafIndex)
	w.WriteBool(c.ProveByIndex)
}
