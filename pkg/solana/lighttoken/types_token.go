package lighttoken

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana/binary"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

// AccountState mirrors the SPL token account state enum.
type AccountState uint8

const (
	AccountStateInitialized AccountState = iota
	AccountStateFrozen
)

// TokenData is the parsed payload of a compressed token account, as reported
// by the indexer. A nil Delegate means no delegation.
type TokenData struct {
	Mint     ed25519.PublicKey
	Owner    ed25519.PublicKey
	Amount   uint64
	Delegate ed25519.PublicKey
	State    AccountState
	Tlv      []byte
}

// TokenAccount pairs a compressed account with its parsed token data; this
// is the input unit every token builder consumes.
type TokenAccount struct {
	Account compression.CompressedAccountWithMerkleContext
	Token   TokenData
}

// InputTokenDataWithContext is a packed token input: the amount plus
// index-based references into the remaining-accounts table.
type InputTokenDataWithContext struct {
	Amount        uint64
	DelegateIndex *uint8
	MerkleContext compression.PackedMerkleContext
	RootIndex     uint16
	Lamports      *uint64
	Tlv           []byte
}

func (d *InputTokenDataWithContext) Serialize(w *binary.Writer) {
	w.WriteUint64(d.Amount)
	w.WriteOptionUint8(d.DelegateIndex)
	d.MerkleContext.Serialize(w)
	w.WriteUint16(d.RootIndex)
	w.WriteOptionUint64(d.Lamports)
	w.WriteOption(d.Tlv != nil)
	if d.Tlv != nil {
		w.WriteVecBytes(d.Tlv)
	}
}

// TokenTransferOutputData is a packed token output; MerkleTreeIndex
// references the shared output-tree slot in the remaining-accounts table.
type TokenTransferOutputData struct {
	Owner           ed25519.PublicKey
	Amount          uint64
	Lamports        *uint64
	MerkleTreeIndex uint8
	Tlv             []byte
}

func (d *TokenTransferOutputData) Serialize(w *binary.Writer) {
	w.WriteFixedBytes(d.Owner, ed25519.PublicKeySize)
	w.WriteUint64(d.Amount)
	w.WriteOptionUint64(d.Lamports)
	w.WriteUint8(d.MerkleTreeIndex)
	w.WriteOption(d.Tlv != nil)
	if d.Tlv != nil {
		w.WriteVecBytes(d.Tlv)
	}
}
