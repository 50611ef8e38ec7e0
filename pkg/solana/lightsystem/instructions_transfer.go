package lightsystem

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

type TransferInstructionAccounts struct {
	FeePayer ed25519.PublicKey
	// Authority is the owner of the input accounts.
	Authority ed25519.PublicKey
}

type TransferInstructionArgs struct {
	InputAccounts []compression.CompressedAccountWithMerkleContext
	Recipient     ed25519.PublicKey
	Lamports      uint64
	Proof         compression.ValidityProofWithContext
}

// NewTransferInstruction moves lamports between compressed accounts,
// nullifying the inputs and emitting a recipient account plus change back to
// the owner when the inputs are not fully spent.
func NewTransferInstruction(
	config compression.Config,
	accounts *TransferInstructionAccounts,
	args *TransferInstructionArgs,
) (solana.Instruction, error) {
	outputs, err := TransferOutputs(args.InputAccounts, args.Recipient, args.Lamports)
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
		Proof:                    args.Proof.Proof,
		InputCompressedAccounts:  packedInputs,
		OutputCompressedAccounts: packedOutputs,
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
			nil,
			nil,
			remainingAccounts,
		),
	}, nil
}
