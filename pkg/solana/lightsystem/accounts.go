package lightsystem

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

// invokeAccountMetas renders the fixed account list of the invoke
// instruction, followed by the packed remaining accounts. Unused optional
// slots carry the system program's own ID as a placeholder so later
// positional indices stay stable; they are never omitted.
//
// Fixed order:
//
//	0. fee payer          [signer, writable]
//	1. authority          [signer]
//	2. registered program pda
//	3. noop program
//	4. account compression authority
//	5. account compression program
//	6. sol pool pda       [writable when used]
//	7. decompression recipient [writable when used]
//	8. system program
//	9... remaining accounts [writable]
func invokeAccountMetas(
	config compression.Config,
	feePayer ed25519.PublicKey,
	authority ed25519.PublicKey,
	solPool ed25519.PublicKey,
	decompressionRecipient ed25519.PublicKey,
	remainingAccounts *compression.RemainingAccounts,
) []solana.AccountMeta {
	placeholder := config.LightSystemProgram

	solPoolMeta := solana.NewReadonlyAccountMeta(placeholder, false)
	if solPool != nil {
		solPoolMeta = solana.NewAccountMeta(solPool, false)
	}
	recipientMeta := solana.NewReadonlyAccountMeta(placeholder, false)
	if decompressionRecipient != nil {
		recipientMeta = solana.NewAccountMeta(decompressionRecipient, false)
	}

	metas := []solana.AccountMeta{
		solana.NewAccountMeta(feePayer, true),
		solana.NewReadonlyAccountMeta(authority, true),
		solana.NewReadonlyAccountMeta(config.RegisteredProgramPda, false),
		solana.NewReadonlyAccountMeta(config.NoopProgram, false),
		solana.NewReadonlyAccountMeta(config.AccountCompressionAuthority, false),
		solana.NewReadonlyAccountMeta(config.AccountCompressionProgram, false),
		solPoolMeta,
		recipientMeta,
		solana.NewReadonlyAccountMeta(config.SystemProgram, false),
	}
	return append(metas, remainingAccounts.ToAccountMetas()...)
}
