package lighttoken

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

type TransferInstructionAccounts struct {
	FeePayer ed25519.PublicKey
	// Authority is the owner of the input token accounts.
	Authority ed25519.PublicKey
}

type TransferInstructionArgs struct {
	Mint          ed25519.PublicKey
	InputAccounts []TokenAccount
	Recipient     ed25519.PublicKey
	Amount        uint64
	Proof         compression.ValidityProofWithContext
}

// NewTransferInstruction moves tokens between compressed token accounts,
// nullifying the inputs and emitting a recipient account plus change back to
// the owner when the inputs are not fully spent.
func NewTransferInstruction(
	config compression.Config,
	accounts *TransferInstructionAccounts,
	args *TransferInstructionArgs,
) (solana.Instruction, error) {
	outputs, err := TransferOutputs(args.InputAccounts, args.Recipient, args.Amount)
	if err != nil {
		return solana.Instruction{}, err
	}

	remainingAccounts := compression.NewRemainingAccounts()
	packedInputs, err := packTokenInputs(args.InputAccounts, args.Proof.RootIndices, remainingAccounts)
	if err != nil {
		return solana.Instruction{}, err
	}

	outputTreeIndex, err := compression.PackOutputTreeIndex(merkleInputs(args.InputAccounts), nil, remainingAccounts)
	if err != nil {
		return solana.Instruction{}, err
	}
	for i := range outputs {
		outputs[i].MerkleTreeIndex = outputTreeIndex
	}

	data, err := (&InstructionDataTransfer{
		Proof:                    args.Proof.Proof,
		Mint:                     args.Mint,
		InputTokenData:           packedInputs,
		OutputCompressedAccounts: outputs,
	}).Marshal()
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.Instruction{
		Program: config.CompressedTokenProgram,
		Data:    data,
		Accounts: transferAccountMetas(
			config,
			accounts.FeePayer,
			accounts.Authority,
			nil,
			nil,
			remainingAccounts,
		),
	}, nil
}
