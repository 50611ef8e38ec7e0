package lighttoken

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/lightscale/light-sdk/pkg/solana/binary"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

// DelegatedTransfer marks a transfer signed by a delegate instead of the
// owner. DelegateChangeAccountIndex points at the output that stays
// delegated, when any.
type DelegatedTransfer struct {
	Owner                      ed25519.PublicKey
	DelegateChangeAccountIndex *uint8
}

func (d *DelegatedTransfer) Serialize(w *binary.Writer) {
	w.WriteFixedBytes(d.Owner, ed25519.PublicKeySize)
	w.WriteOptionUint8(d.DelegateChangeAccountIndex)
}

// InstructionDataTransfer is the payload of the token program's transfer
// instruction. The same struct and encoding underlie transfer, compress and
// decompress; they differ only in which optional fields are populated.
type InstructionDataTransfer struct {
	Proof                                *compression.ValidityProof
	Mint                                 ed25519.PublicKey
	DelegatedTransfer                    *DelegatedTransfer
	InputTokenData                       []InputTokenDataWithContext
	OutputCompressedAccounts             []TokenTransferOutputData
	IsCompress                           bool
	CompressOrDecompressAmount           *uint64
	CpiContext                           *compression.CompressedCpiContext
	LamportsChangeAccountMerkleTreeIndex *uint8
}

func (d *InstructionDataTransfer) Serialize(w *binary.Writer) {
	w.WriteOption(d.Proof != nil)
	if d.Proof != nil {
		d.Proof.Serialize(w)
	}

	w.WriteFixedBytes(d.Mint, ed25519.PublicKeySize)

	w.WriteOption(d.DelegatedTransfer != nil)
	if d.DelegatedTransfer != nil {
		d.DelegatedTransfer.Serialize(w)
	}

	w.WriteVecLen(len(d.InputTokenData))
	for i := range d.InputTokenData {
		d.InputTokenData[i].Serialize(w)
	}

	w.WriteVecLen(len(d.OutputCompressedAccounts))
	for i := range d.OutputCompressedAccounts {
		d.OutputCompressedAccounts[i].Serialize(w)
	}

	w.WriteBool(d.IsCompress)
	w.WriteOptionUint64(d.CompressOrDecompressAmount)

	w.WriteOption(d.CpiContext != nil)
	if d.CpiContext != nil {
		d.CpiContext.Serialize(w)
	}

	w.WriteOptionUint8(d.LamportsChangeAccountMerkleTreeIndex)
}

// Marshal frames the serialized payload behind the transfer discriminator.
func (d *InstructionDataTransfer) Marshal() ([]byte, error) {
	return compression.EncodeInstructionData(TransferDiscriminator, d.Serialize)
}

// MarshalIdempotentDecompress frames the same payload behind the compact
// single-byte discriminator of the idempotent decompress variant.
func (d *InstructionDataTransfer) MarshalIdempotentDecompress() ([]byte, error) {
	return compression.EncodeInstructionData(DecompressIdempotentDiscriminator, d.Serialize)
}

// InstructionDataApprove is the payload of the approve (delegation)
// instruction. The proof is required, not optional: approve always nullifies
// inputs.
type InstructionDataApprove struct {
	Proof                        compression.ValidityProof
	Mint                         ed25519.PublicKey
	InputTokenData               []InputTokenDataWithContext
	CpiContext                   *compression.CompressedCpiContext
	Delegate                     ed25519.PublicKey
	DelegatedAmount              uint64
	DelegateMerkleTreeIndex      uint8
	ChangeAccountMerkleTreeIndex uint8
	DelegateLamports             *uint64
}

func (d *InstructionDataApprove) Serialize(w *binary.Writer) {
	d.Proof.Serialize(w)
	w.WriteFixedBytes(d.Mint, ed25519.PublicKeySize)

	w.WriteVecLen(len(d.InputTokenData))
	for i := range d.InputTokenData {
		d.InputTokenData[i].Serialize(w)
	}

	w.WriteOption(d.CpiContext != nil)
	if d.CpiContext != nil {
		d.CpiContext.Serialize(w)
	}

	w.WriteFixedBytes(d.Delegate, ed25519.PublicKeySize)
	w.WriteUint64(d.DelegatedAmount)
	w.WriteUint8(d.DelegateMerkleTreeIndex)
	w.WriteUint8(d.ChangeAccountMerkleTreeIndex)
	w.WriteOptionUint64(d.DelegateLamports)
}

// Marshal frames the serialized payload behind the approve discriminator.
func (d *InstructionDataApprove) Marshal() ([]byte, error) {
	return compression.EncodeInstructionData(ApproveDiscriminator, d.Serialize)
}

// InstructionDataRevoke is the payload of the revoke instruction. It
// nullifies the delegated inputs and emits a single delegate-cleared
// replacement account; the proof is required.
type InstructionDataRevoke struct {
	Proof                        compression.ValidityProof
	Mint                         ed25519.PublicKey
	InputTokenData               []InputTokenDataWithContext
	CpiContext                   *compression.CompressedCpiContext
	OutputAccountMerkleTreeIndex uint8
}

func (d *InstructionDataRevoke) Serialize(w *binary.Writer) {
	d.Proof.Serialize(w)
	w.WriteFixedBytes(d.Mint, ed25519.PublicKeySize)

	w.WriteVecLen(len(d.InputTokenData))
	for i := range d.InputTokenData {
		d.InputTokenData[i].Serialize(w)
	}

	w.WriteOption(d.CpiContext != nil)
	if d.CpiContext != nil {
		d.CpiContext.Serialize(w)
	}

	w.WriteUint8(d.OutputAccountMerkleTreeIndex)
}

// Marshal frames the serialized payload behind the revoke discriminator.
func (d *InstructionDataRevoke) Marshal() ([]byte, error) {
	return compression.EncodeInstructionData(RevokeDiscriminator, d.Serialize)
}

// InstructionDataMintTo is the payload of the mint instruction: parallel
// recipient and amount vectors, no proof and no inputs.
type InstructionDataMintTo struct {
	Recipients []ed25519.PublicKey
	Amounts    []uint64
	// Lamports optionally funds each new account with native SOL.
	Lamports *uint64
}

func (d *InstructionDataMintTo) Serialize(w *binary.Writer) {
	w.WriteVecLen(len(d.Recipients))
	for _, recipient := range d.Recipients {
		w.WriteFixedBytes(recipient, ed25519.PublicKeySize)
	}

	w.WriteVecLen(len(d.Amounts))
	for _, amount := range d.Amounts {
		w.WriteUint64(amount)
	}

	w.WriteOptionUint64(d.Lamports)
}

// Marshal validates the parallel vectors and frames the payload behind the
// mint_to discriminator.
func (d *InstructionDataMintTo) Marshal() ([]byte, error) {
	if len(d.Recipients) != len(d.Amounts) {
		return nil, errors.Wrapf(ErrRecipientCountMismatch, "%d recipients, %d amounts", len(d.Recipients), len(d.Amounts))
	}
	return compression.EncodeInstructionData(MintToDiscriminator, d.Serialize)
}
