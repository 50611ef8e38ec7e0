package lighttoken

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/pointer"
	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

type DecompressInstructionAccounts struct {
	FeePayer ed25519.PublicKey
	// Authority is the owner of the input token accounts.
	Authority ed25519.PublicKey
}

type DecompressInstructionArgs struct {
	Mint          ed25519.PublicKey
	InputAccounts []TokenAccount
	// DestinationTokenAccount is the SPL token account receiving the tokens.
	DestinationTokenAccount ed25519.PublicKey
	Amount                  uint64
	Proof                   compression.ValidityProofWithContext
	// Idempotent selects the decompress variant that succeeds even when the
	// destination already received the tokens.
	Idempotent bool
}

// NewDecompressInstruction moves tokens out of compressed state into an SPL
// token account via the mint's token pool, leaving a compressed change
// account when the inputs are not fully spent.
func NewDecompressInstruction(
	config compression.Config,
	accounts *DecompressInstructionAccounts,
	args *DecompressInstructionArgs,
) (solana.Instruction, error) {
	tokenPool, err := config.TokenPoolPda(args.Mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	outputs, err := DecompressOutputs(args.InputAccounts, args.Amount)
	if err != nil {
		return solana.Instruction{}, err
	}

	remainingAccounts := compression.NewRemainingAccounts()
	packedInputs, err := packTokenInputs(args.InputAccounts, args.Proof.RootIndices, remainingAccounts)
	if err != nil {
		return solana.Instruction{}, err
	}

	if len(outputs) > 0 {
		outputTreeIndex, err := compression.PackOutputTreeIndex(merkleInputs(args.InputAccounts), nil, remainingAccounts)
		if err != nil {
			return solana.Instruction{}, err
		}
		for i := range outputs {
			outputs[i].MerkleTreeIndex = outputTreeIndex
		}
	}

	instructionData := &InstructionDataTransfer{
		Proof:                      args.Proof.Proof,
		Mint:                       args.Mint,
		InputTokenData:             packedInputs,
		OutputCompressedAccounts:   outputs,
		IsCompress:                 false,
		CompressOrDecompressAmount: pointer.Uint64(args.Amount),
	}

	var data []byte
	if args.Idempotent {
		data, err = instructionData.MarshalIdempotentDecompress()
	} else {
		data, err = instructionData.Marshal()
	}
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
			args.DestinationTokenAccount,
			remainingAccounts,
		),
	}, nil
}
