package lighttoken

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/binary"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

type CreateTokenPoolInstructionAccounts struct {
	FeePayer ed25519.PublicKey
}

type CreateTokenPoolInstructionArgs struct {
	Mint ed25519.PublicKey
}

// NewCreateTokenPoolInstruction initializes the SPL token pool for a mint.
// The pool must exist before the mint's tokens can be compressed or minted
// into compressed accounts.
func NewCreateTokenPoolInstruction(
	config compression.Config,
	accounts *CreateTokenPoolInstructionAccounts,
	args *CreateTokenPoolInstructionArgs,
) (solana.Instruction, error) {
	tokenPool, err := config.TokenPoolPda(args.Mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	// No payload beyond the discriminator.
	data, err := compression.EncodeInstructionData(CreateTokenPoolDiscriminator, func(*binary.Writer) {})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.Instruction{
		Program: config.CompressedTokenProgram,
		Data:    data,
		Accounts: []solana.AccountMeta{
			solana.NewAccountMeta(accounts.FeePayer, true),
			solana.NewAccountMeta(tokenPool, false),
			solana.NewReadonlyAccountMeta(config.SystemProgram, false),
			solana.NewAccountMeta(args.Mint, false),
			solana.NewReadonlyAccountMeta(config.SplTokenProgram, false),
			solana.NewReadonlyAccountMeta(config.TokenCpiAuthorityPda, false),
		},
	}, nil
}
