package lighttoken

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

type MintToInstructionAccounts struct {
	FeePayer ed25519.PublicKey
	// MintAuthority of the SPL mint.
	MintAuthority ed25519.PublicKey
}

type MintToInstructionArgs struct {
	Mint       ed25519.PublicKey
	Recipients []ed25519.PublicKey
	Amounts    []uint64
	// Lamports optionally funds each new account with native SOL.
	Lamports            *uint64
	OutputStateTreeInfo compression.TreeInfo
}

// NewMintToInstruction mints tokens directly into compressed token accounts,
// one per recipient. Mints create only output state, so there is no proof
// and no input.
//
// Fixed account order:
//
//	 0. fee payer        [signer, writable]
//	 1. mint authority   [signer]
//	 2. cpi authority pda
//	 3. mint             [writable]
//	 4. token pool pda   [writable]
//	 5. spl token program
//	 6. light system program
//	 7. registered program pda
//	 8. noop program
//	 9. account compression authority
//	10. account compression program
//	11. output tree or queue [writable]
//	12. self program
//	13. sol pool pda     [writable when lamports are attached]
//	14. system program
func NewMintToInstruction(
	config compression.Config,
	accounts *MintToInstructionAccounts,
	args *MintToInstructionArgs,
) (solana.Instruction, error) {
	data, err := (&InstructionDataMintTo{
		Recipients: args.Recipients,
		Amounts:    args.Amounts,
		Lamports:   args.Lamports,
	}).Marshal()
	if err != nil {
		return solana.Instruction{}, err
	}

	tokenPool, err := config.TokenPoolPda(args.Mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	outputTree, err := compression.ResolveOutputTree(nil, &args.OutputStateTreeInfo)
	if err != nil {
		return solana.Instruction{}, err
	}

	solPoolMeta := solana.NewReadonlyAccountMeta(config.CompressedTokenProgram, false)
	if args.Lamports != nil {
		solPoolMeta = solana.NewAccountMeta(config.SolPoolPda, false)
	}

	return solana.Instruction{
		Program: config.CompressedTokenProgram,
		Data:    data,
		Accounts: []solana.AccountMeta{
			solana.NewAccountMeta(accounts.FeePayer, true),
			solana.NewReadonlyAccountMeta(accounts.MintAuthority, true),
			solana.NewReadonlyAccountMeta(config.TokenCpiAuthorityPda, false),
			solana.NewAccountMeta(args.Mint, false),
			solana.NewAccountMeta(tokenPool, false),
			solana.NewReadonlyAccountMeta(config.SplTokenProgram, false),
			solana.NewReadonlyAccountMeta(config.LightSystemProgram, false),
			solana.NewReadonlyAccountMeta(config.RegisteredProgramPda, false),
			solana.NewReadonlyAccountMeta(config.NoopProgram, false),
			solana.NewReadonlyAccountMeta(config.AccountCompressionAuthority, false),
			solana.NewReadonlyAccountMeta(config.AccountCompressionProgram, false),
			solana.NewAccountMeta(compression.OutputReferenceKey(outputTree), false),
			solana.NewReadonlyAccountMeta(config.CompressedTokenProgram, false),
			solPoolMeta,
			solana.NewReadonlyAccountMeta(config.SystemProgram, false),
		},
	}, nil
}
