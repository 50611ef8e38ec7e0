package lightsystem

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/pointer"
	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

type DecompressInstructionAccounts struct {
	FeePayer ed25519.PublicKey
	// Authority is the owner of the input accounts.
	Authority ed25519.PublicKey
}

type DecompressInstructionArgs struct {
	InputAccounts []compression.CompressedAccountWithMerkleContext
	Lamports      uint64
	// Recipient is the native account receiving the decompressed lamports.
	Recipient ed25519.PublicKey
	Proof     compression.ValidityProofWithContext
}

// NewDecompressInstruction moves lamports out of compressed state into a
// native account, leaving a compressed change account when the inputs are
// not fully spent.
func NewDecompressInstruction(
	config compression.Config,
	accounts *DecompressInstructionAccounts,
	args *DecompressInstructionArgs,
) (solana.Instruction, error) {
	outputs, err := DecompressOutputs(args.InputAccounts, args.Lamports)
	if err != nil {
		return solana.Instruction{}, err
	}

	remainingAccounts := compression.NewRemainingAccounts()
	packedInputs, packedOutputs, err := compression.PackAccounts(
		args.InputAccounts, args.Proof.RootIndices, outputs, nil, remainingAccounts)
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := (&InstructionDataInvoke{
		Proof:                        args.Proof.Proof,
		InputCompressedAccounts:      packedInputs,
		OutputCompressedAccounts:     packedOutputs,
		CompressOrDecompressLamports: pointer.Uint64(args.Lamports),
		IsCompress:                   false,
	}).Marshal()
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.Instruction{
		Program: config.LightSystemProgram,
		Data:    data,
		Accounts: invokeAccountMetas(
			config,
			accounts.FeePayer,
			accounts.Authority,
			config.SolPoolPda,
			args.Recipient,
			remainingAccounts,
		),
	}, nil
}
