package lightsystem

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/pointer"
	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

type CompressInstructionAccounts struct {
	FeePayer  ed25519.PublicKey
	Authority ed25519.PublicKey
}

type CompressInstructionArgs struct {
	// ToAddress owns the resulting compressed account.
	ToAddress ed25519.PublicKey
	Lamports  uint64
	// OutputStateTreeInfo is the state tree receiving the new account.
	OutputStateTreeInfo compression.TreeInfo
}

// NewCompressInstruction moves lamports from the fee payer into a compressed
// account. Pure output creation, so there is no validity proof.
func NewCompressInstruction(
	config compression.Config,
	accounts *CompressInstructionAccounts,
	args *CompressInstructionArgs,
) (solana.Instruction, error) {
	outputs := []compression.CompressedAccount{
		{
			Owner:    args.ToAddress,
			Lamports: args.Lamports,
		},
	}

	remainingAccounts := compression.NewRemainingAccounts()
	_, packedOutputs, err := compression.PackAccounts(nil, nil, outputs, &args.OutputStateTreeInfo, remainingAccounts)
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := (&InstructionDataInvoke{
		OutputCompressedAccounts:     packedOutputs,
		CompressOrDecompressLamports: pointer.Uint64(args.Lamports),
		IsCompress:                   true,
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
			config.SolPoolPda,
			nil,
			remainingAccounts,
		),
	}, nil
}
