package compression

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana/binary"
)

const (
	DiscriminatorSize = 8
	HashSize          = 32
)

// CompressedAccountData is the program-owned payload of a compressed
// account. DataHash commits to Data inside the proof system.
type CompressedAccountData struct {
	Discriminator [DiscriminatorSize]byte
	Data          []byte
	DataHash      [HashSize]byte
}

func (d *CompressedAccountData) Serialize(w *binary.Writer) {
	w.WriteBytes(d.Discriminator[:])
	w.WriteVecBytes(d.Data)
	w.WriteBytes(d.DataHash[:])
}

// CompressedAccount is the protocol's unit of state. It is an immutable
// value: an account is never mutated in place, only superseded by a new
// output account in a later instruction.
type CompressedAccount struct {
	Owner    ed25519.PublicKey
	Lamports uint64
	Address  *FieldElement
	Data     *CompressedAccountData
}

func (a *CompressedAccount) Serialize(w *binary.Writer) {
	w.WriteFixedBytes(a.Owner, ed25519.PublicKeySize)
	w.WriteUint64(a.Lamports)
	w.WriteOption(a.Address != nil)
	if a.Address != nil {
		w.WriteBytes(a.Address[:])
	}
	w.WriteOption(a.Data != nil)
	if a.Data != nil {
		a.Data.Serialize(w)
	}
}

// CompressedAccountWithMerkleContext is an input account as returned by the
// indexer: the account plus its location in a state tree.
type CompressedAccountWithMerkleContext struct {
	Account       CompressedAccount
	MerkleContext MerkleContext
}

// PackedCompressedAccountWithMerkleContext is an input account after
// packing: tree and queue keys replaced by remaining-accounts indices, plus
// the root index the validity proof was generated against.
type PackedCompressedAccountWithMerkleContext struct {
	Account       CompressedAccount
	MerkleContext PackedMerkleContext
	RootIndex     uint16
	ReadOnly      bool
}

func (a *PackedCompressedAccountWithMerkleContext) Serialize(w *binary.Writer) {
	a.Account.Serialize(w)
	a.MerkleContext.Serialize(w)
	w.WriteUint16(a.RootIndex)
	w.WriteBool(a.ReadOnly)
}

// OutputCompressedAccount is an output account plus the remaining-accounts
// index of the tree (or queue, for v2 trees) it will be appended to.
type OutputCompressedAccount struct {
	Account         CompressedAccount
	MerkleTreeIndex uint8
}

func (a *OutputCompressedAccount) Serialize(w *binary.Writer) {
	a.Account.Serialize(w)
	w.WriteUint8(a.MerkleTreeIndex)
}
