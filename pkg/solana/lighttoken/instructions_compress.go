package lighttoken

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/pointer"
	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

type CompressInstructionAccounts struct {
	FeePayer ed25519.PublicKey
	// Authority owns SourceTokenAccount.
	Authority ed25519.PublicKey
}

type CompressInstructionArgs struct {
	Mint ed25519.PublicKey
	// SourceTokenAccount is the SPL token account the tokens leave.
	SourceTokenAccount ed25519.PublicKey
	// ToAddress owns the resulting compressed token account.
	ToAddress           ed25519.PublicKey
	Amount              uint64
	OutputStateTreeInfo compression.TreeInfo
}

// NewCompressInstruction moves SPL tokens into a compressed token account
// via the mint's token pool. Pure output creation, so there is no validity
// proof.
func NewCompressInstruction(
	config compression.Config,
	accounts *CompressInstructionAccounts,
	args *CompressInstructionArgs,
) (solana.Instruction, error) {
	tokenPool, err := config.TokenPoolPda(args.Mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	remainingAccounts := compression.NewRemainingAccounts()
	outputTreeIndex, err := compression.PackOutputTreeIndex(nil, &args.OutputStateTreeInfo, remainingAccounts)
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := (&InstructionDataTransfer{
		Mint: args.Mint,
		OutputCompressedAccounts: []TokenTransferOutputData{
			{
				Owner:           args.ToAddress,
				Amount:          args.Amount,
				MerkleTreeIndex: outputTreeIndex,
			},
		},
		IsCompress:                 true,
		CompressOrDecompressAmount: pointer.Uint64(args.Amount),
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
			tokenPool,
			args.SourceTokenAccount,
			remainingAccounts,
		),
	}, nil
}
