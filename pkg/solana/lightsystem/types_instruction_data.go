package lightsystem

import (
	"github.com/lightscale/light-sdk/pkg/solana/binary"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

// InstructionDataInvoke is the payload of the system program's invoke
// instruction. Field order is the binding compatibility contract with the
// on-chain deserializer.
type InstructionDataInvoke struct {
	Proof                        *compression.ValidityProof
	InputCompressedAccounts      []compression.PackedCompressedAccountWithMerkleContext
	OutputCompressedAccounts     []compression.OutputCompressedAccount
	RelayFee                     *uint64
	NewAddressParams             []compression.NewAddressParamsPacked
	CompressOrDecompressLamports *uint64
	IsCompress                   bool
}

func (d *InstructionDataInvoke) Serialize(w *binary.Writer) {
	w.WriteOption(d.Proof != nil)
	if d.Proof != nil {
		d.Proof.Serialize(w)
	}

	w.WriteVecLen(len(d.InputCompressedAccounts))
	for i := range d.InputCompressedAccounts {
		d.InputCompressedAccounts[i].Serialize(w)
	}

	w.WriteVecLen(len(d.OutputCompressedAccounts))
	for i := range d.OutputCompressedAccounts {
		d.OutputCompressedAccounts[i].Serialize(w)
	}

	w.WriteOptionUint64(d.RelayFee)

	w.WriteVecLen(len(d.NewAddressParams))
	for i := range d.NewAddressParams {
		d.NewAddressParams[i].Serialize(w)
	}

	w.WriteOptionUint64(d.CompressOrDecompressLamports)
	w.WriteBool(d.IsCompress)
}

// Marshal frames the serialized payload behind the invoke discriminator.
func (d *InstructionDataInvoke) Marshal() ([]byte, error) {
	return compression.EncodeInstructionData(InvokeDiscriminator, d.Serialize)
}

// InstructionDataInvokeCpi extends InstructionDataInvoke with an optional
// cpi context, letting a second cross-program call reuse one verified proof.
type InstructionDataInvokeCpi struct {
	Proof                        *compression.ValidityProof
	InputCompressedAccounts      []compression.PackedCompressedAccountWithMerkleContext
	OutputCompressedAccounts     []compression.OutputCompressedAccount
	RelayFee                     *uint64
	NewAddressParams             []compression.NewAddressParamsPacked
	CompressOrDecompressLamports *uint64
	IsCompress                   bool
	CpiContext                   *compression.CompressedCpiContext
}

func (d *InstructionDataInvokeCpi) Serialize(w *binary.Writer) {
	inner := InstructionDataInvoke{
		Proof:                        d.Proof,
		InputCompressedAccounts:      d.InputCompressedAccounts,
		OutputCompressedAccounts:     d.OutputCompressedAccounts,
		RelayFee:                     d.RelayFee,
		NewAddressParams:             d.NewAddressParams,
		CompressOrDecompressLamports: d.CompressOrDecompressLamports,
		IsCompress:                   d.IsCompress,
	}
	inner.Serialize(w)

	w.WriteOption(d.CpiContext != nil)
	if d.CpiContext != nil {
		d.CpiContext.Serialize(w)
	}
}

// Marshal frames the serialized payload behind the invoke_cpi discriminator.
func (d *InstructionDataInvokeCpi) Marshal() ([]byte, error) {
	return compression.EncodeInstructionData(InvokeCpiDiscriminator, d.Serialize)
}
