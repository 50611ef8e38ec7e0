package lighttoken

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

type RevokeInstructionAccounts struct {
	FeePayer ed25519.PublicKey
	// Authority is the owner of the input token accounts.
	Authority ed25519.PublicKey
}

type RevokeInstructionArgs struct {
	Mint ed25519.PublicKey
	// InputAccounts are the delegated accounts to revoke.
	InputAccounts []TokenAccount
	Proof         compression.ValidityProofWithContext
}

// NewRevokeInstruction clears delegation: the delegated inputs are nullified
// and replaced by a single delegate-cleared account constructed on-chain.
// There is no output-state arithmetic client-side.
func NewRevokeInstruction(
	config compression.Config,
	accounts *RevokeInstructionAccounts,
	args *RevokeInstructionArgs,
) (solana.Instruction, error) {
	if args.Proof.Proof == nil {
		return solana.Instruction{}, errMissingProof
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

	data, err := (&InstructionDataRevoke{
		Proof:                        *args.Proof.Proof,
		Mint:                         args.Mint,
		InputTokenData:               packedInputs,
		OutputAccountMerkleTreeIndex: outputTreeIndex,
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
