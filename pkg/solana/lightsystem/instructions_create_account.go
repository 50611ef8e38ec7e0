package lightsystem

import (
	"crypto/ed25519"

	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

type CreateAccountInstructionAccounts struct {
	FeePayer  ed25519.PublicKey
	Authority ed25519.PublicKey
}

type CreateAccountInstructionArgs struct {
	// AddressSeed is the 32-byte seed the new address is bound to, as
	// produced by compression.DeriveAddressSeed.
	AddressSeed [32]byte
	// AddressTreeInfo is the address tree the new address is inserted into.
	AddressTreeInfo compression.TreeInfo
	// AddressRootIndex locates the address tree root of the validity proof.
	AddressRootIndex uint16

	// Owner of the new compressed account.
	Owner    ed25519.PublicKey
	Lamports uint64

	// InputAccounts optionally fund the new account. When empty,
	// OutputStateTreeInfo must name the state tree for the outputs.
	InputAccounts       []compression.CompressedAccountWithMerkleContext
	OutputStateTreeInfo *compression.TreeInfo

	Proof compression.ValidityProofWithContext
}

// NewCreateAccountInstruction creates a compressed account bound to a
// derived address. Account packing and address packing share one
// remaining-accounts table so all indices live in a single space.
func NewCreateAccountInstruction(
	config compression.Config,
	accounts *CreateAccountInstructionAccounts,
	args *CreateAccountInstructionArgs,
) (solana.Instruction, error) {
	address, err := compression.DeriveAddress(args.AddressSeed[:], args.AddressTreeInfo.Tree)
	if err != nil {
		return solana.Instruction{}, err
	}

	outputs, err := NewAddressOutputs(args.InputAccounts, args.Owner, compression.FieldElement(address), args.Lamports)
	if err != nil {
		return solana.Instruction{}, err
	}

	remainingAccounts := compression.NewRemainingAccounts()
	packedInputs, packedOutputs, err := compression.PackAccounts(
		args.InputAccounts, args.Proof.RootIndices, outputs, args.OutputStateTreeInfo, remainingAccounts)
	if err != nil {
		return solana.Instruction{}, err
	}

	packedAddressParams, err := compression.PackNewAddressParams(
		[]compression.NewAddressParams{
			{
				Seed:         args.AddressSeed,
				AddressQueue: args.AddressTreeInfo.Queue,
				AddressTree:  args.AddressTreeInfo.Tree,
				RootIndex:    args.AddressRootIndex,
			},
		},
		remainingAccounts,
	)
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := (&InstructionDataInvoke{
		Proof:                    args.Proof.Proof,
		InputCompressedAccounts:  packedInputs,
		OutputCompressedAccounts: packedOutputs,
		NewAddressParams:         packedAddressParams,
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
			nil,
			nil,
			remainingAccounts,
		),
	}, nil
}
