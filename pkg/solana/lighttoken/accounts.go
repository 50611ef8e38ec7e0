package lighttoken

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

// transferAccountMetas renders the fixed account list shared by transfer,
// compress, decompress, approve and revoke, followed by the packed remaining
// accounts. Unused optional slots carry the token program's own ID as a
// placeholder so later positional indices stay stable.
//
// Fixed order:
//
//	 0. fee payer            [signer, writable]
//	 1. authority            [signer] (owner, or delegate for delegated transfers)
//	 2. cpi authority pda
//	 3. light system program
//	 4. registered program pda
//	 5. noop program
//	 6. account compression authority
//	 7. account compression program
//	 8. self program
//	 9. token pool pda       [writable when used]
//	10. compress/decompress token account [writable when used]
//	11. spl token program    [when used]
//	12. system program
//	13... remaining accounts [writable]
func transferAccountMetas(
	config compression.Config,
	feePayer ed25519.PublicKey,
	authority ed25519.PublicKey,
	tokenPool ed25519.PublicKey,
	tokenAccount ed25519.PublicKey,
	remainingAccounts *compression.RemainingAccounts,
) []solana.AccountMeta {
	placeholder := config.CompressedTokenProgram

	tokenPoolMeta := solana.NewReadonlyAccountMeta(placeholder, false)
	tokenAccountMeta := solana.NewReadonlyAccountMeta(placeholder, false)
	tokenProgramMeta := solana.NewReadonlyAccountMeta(placeholder, false)
	if tokenPool != nil {
		tokenPoolMeta = solana.NewAccountMeta(tokenPool, false)
		tokenProgramMeta = solana.NewReadonlyAccountMeta(config.SplTokenProgram, false)
	}
	if tokenAccount != nil {
		tokenAccountMeta = solana.NewAccountMeta(tokenAccount, false)
	}

	metas := []solana.AccountMeta{
		solana.NewAccountMeta(feePayer, true),
		solana.NewReadonlyAccountMeta(authority, true),
		solana.NewReadonlyAccountMeta(config.TokenCpiAuthorityPda, false),
		solana.NewReadonlyAccountMeta(config.LightSystemProgram, false),
		solana.NewReadonlyAccountMeta(config.RegisteredProgramPda, false),
		solana.NewReadonlyAccountMeta(config.NoopProgram, false),
		solana.NewReadonlyAccountMeta(config.AccountCompressionAuthority, false),
		solana.NewReadonlyAccountMeta(config.AccountCompressionProgram, false),
		solana.NewReadonlyAccountMeta(config.CompressedTokenProgram, false),
		tokenPoolMeta,
		tokenAccountMeta,
		tokenProgramMeta,
		solana.NewReadonlyAccountMeta(config.SystemProgram, false),
	}
	return append(metas, remainingAccounts.ToAccountMetas()...)
}

// merkleInputs projects token inputs onto their compressed accounts for the
// shared packer.
func merkleInputs(inputs []TokenAccount) []compression.CompressedAccountWithMerkleContext {
	accounts := make([]compression.CompressedAccountWithMerkleContext, len(inputs))
	for i := range inputs {
		accounts[i] = inputs[i].Account
	}
	return accounts
}
