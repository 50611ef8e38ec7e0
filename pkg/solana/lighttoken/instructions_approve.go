package lighttoken

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

var errMissingProof = errors.New("a validity proof is required")

type ApproveInstructionAccounts struct {
	FeePayer ed25519.PublicKey
	// Authority is the owner of the input token accounts.
	Authority ed25519.PublicKey
}

type ApproveInstructionArgs struct {
	Mint          ed25519.PublicKey
	InputAccounts []TokenAccount
	Delegate      ed25519.PublicKey
	// DelegatedAmount moves into the delegated output; the rest stays with
	// the owner as change.
	DelegatedAmount uint64
	// DelegateLamports optionally attaches native SOL to the delegated
	// output.
	DelegateLamports *uint64
	Proof            compression.ValidityProofWithContext
}

// NewApproveInstruction delegates a token amount: the inputs are nullified
// and replaced by a delegated output (plus an owner change output when the
// inputs exceed the delegated amount, constructed on-chain).
func NewApproveInstruction(
	config compression.Config,
	accounts *ApproveInstructionAccounts,
	args *ApproveInstructionArgs,
) (solana.Instruction, error) {
	if args.Proof.Proof == nil {
		return solana.Instruction{}, errMissingProof
	}

	if _, err := ApproveChange(args.InputAccounts, args.DelegatedAmount); err != nil {
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

	data, err := (&InstructionDataApprove{
		Proof:                        *args.Proof.Proof,
		Mint:                         args.Mint,
		InputTokenData:               packedInputs,
		Delegate:                     args.Delegate,
		DelegatedAmount:              args.DelegatedAmount,
		DelegateMerkleTreeIndex:      outputTreeIndex,
		ChangeAccountMerkleTreeIndex: outputTreeIndex,
		DelegateLamports:             args.DelegateLamports,
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
