package compression

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana"
)

// Program IDs of the deployed protocol. Tests and alternate clusters can
// build a Config around different IDs; nothing in this library reads these
// through hidden global state.
const (
	LightSystemProgramID        = "SySTEM1eSU2p4BGQfQpimFEWWSC1XDFeun3Nqzz3rT7"
	CompressedTokenProgramID    = "cTokenmWW8bLPjZEBAUgYy3zKxQZW6VKi7bqNFEVv3m"
	AccountCompressionProgramID = "comprCUsB5m2jS4Y3831HhTNNMFMDuVM1mxfb9ZCM8P"
	NoopProgramID               = "noopb9bkMVfRPU8AsbpTUg8AQkHtKwMYZiFUjNRtMmV"
	SplTokenProgramID           = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	SystemProgramID             = "11111111111111111111111111111111"
)

// PDA seeds defined by the on-chain programs.
var (
	cpiAuthoritySeed = []byte("cpi_authority")
	solPoolSeed      = []byte("sol_pool_pda")
	tokenPoolSeed    = []byte("pool")
)

// Config carries every protocol constant the instruction builders need. It
// is passed explicitly so tests can substitute alternate program IDs without
// mutating globals.
type Config struct {
	LightSystemProgram        ed25519.PublicKey
	CompressedTokenProgram    ed25519.PublicKey
	AccountCompressionProgram ed25519.PublicKey
	NoopProgram               ed25519.PublicKey
	SplTokenProgram           ed25519.PublicKey
	SystemProgram             ed25519.PublicKey

	// Derived once at construction.
	RegisteredProgramPda        ed25519.PublicKey
	AccountCompressionAuthority ed25519.PublicKey
	SolPoolPda                  ed25519.PublicKey
	TokenCpiAuthorityPda        ed25519.PublicKey
}

// NewConfig derives the protocol PDAs for the provided program IDs.
func NewConfig(lightSystem, compressedToken, accountCompression, noop, splToken, system ed25519.PublicKey) (Config, error) {
	registeredProgramPda, err := solana.FindProgramAddress(accountCompression, lightSystem)
	if err != nil {
		return Config{}, err
	}
	accountCompressionAuthority, err := solana.FindProgramAddress(lightSystem, cpiAuthoritySeed)
	if err != nil {
		return Config{}, err
	}
	solPoolPda, err := solana.FindProgramAddress(lightSystem, solPoolSeed)
	if err != nil {
		return Config{}, err
	}
	tokenCpiAuthorityPda, err := solana.FindProgramAddress(compressedToken, cpiAuthoritySeed)
	if err != nil {
		return Config{}, err
	}

	return Config{
		LightSystemProgram:          lightSystem,
		CompressedTokenProgram:      compressedToken,
		AccountCompressionProgram:   accountCompression,
		NoopProgram:                 noop,
		SplTokenProgram:             splToken,
		SystemProgram:               system,
		RegisteredProgramPda:        registeredProgramPda,
		AccountCompressionAuthority: accountCompressionAuthority,
		SolPoolPda:                  solPoolPda,
		TokenCpiAuthorityPda:        tokenCpiAuthorityPda,
	}, nil
}

// MainnetConfig returns the Config for the deployed program IDs.
func MainnetConfig() Config {
	config, err := NewConfig(
		solana.MustPublicKeyFromBase58(LightSystemProgramID),
		solana.MustPublicKeyFromBase58(CompressedTokenProgramID),
		solana.MustPublicKeyFromBase58(AccountCompressionProgramID),
		solana.MustPublicKeyFromBase58(NoopProgramID),
		solana.MustPublicKeyFromBase58(SplTokenProgramID),
		solana.MustPublicKeyFromBase58(SystemProgramID),
	)
	if err != nil {
		panic(err)
	}
	return config
}

// TokenPoolPda derives the compressed token program's pool account for a
// mint. Compression and decompression move SPL tokens through this pool.
func (c Config) TokenPoolPda(mint ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.FindProgramAddress(c.CompressedTokenProgram, tokenPoolSeed, mint)
}
