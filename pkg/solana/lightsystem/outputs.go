package lightsystem

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

// Output-state calculators: pure balance arithmetic shared by the builders.
// Outputs always conserve the summed input lamports exactly.

// SumLamports folds the lamport balances of the provided input accounts.
func SumLamports(inputs []compression.CompressedAccountWithMerkleContext) uint64 {
	var sum uint64
	for i := range inputs {
		sum += inputs[i].Account.Lamports
	}
	return sum
}

func inputsOwner(inputs []compression.CompressedAccountWithMerkleContext) (ed25519.PublicKey, error) {
	if len(inputs) == 0 {
		return nil, compression.ErrNoInputs
	}

	owner := inputs[0].Account.Owner
	for i := range inputs[1:] {
		if !bytes.Equal(inputs[i+1].Account.Owner, owner) {
			return nil, errors.Wrapf(compression.ErrOwnerMismatch, "input %d has a different owner", i+1)
		}
	}
	return owner, nil
}

// TransferOutputs computes the output accounts for a compressed-to-compressed
// lamport transfer: the recipient account plus a change account back to the
// owner when the inputs are not fully spent.
func TransferOutputs(
	inputs []compression.CompressedAccountWithMerkleContext,
	recipient ed25519.PublicKey,
	lamports uint64,
) ([]compression.CompressedAccount, error) {
	sum := SumLamports(inputs)
	if sum < lamports {
		return nil, errors.Wrapf(compression.ErrInsufficientBalance, "inputs hold %d lamports, transfer needs %d", sum, lamports)
	}

	recipientAccount := compression.CompressedAccount{
		Owner:    recipient,
		Lamports: lamports,
	}

	change := sum - lamports
	if change == 0 {
		return []compression.CompressedAccount{recipientAccount}, nil
	}

	owner, err := inputsOwner(inputs)
	if err != nil {
		return nil, err
	}

	return []compression.CompressedAccount{
		{
			Owner:    owner,
			Lamports: change,
		},
		recipientAccount,
	}, nil
}

// DecompressOutputs computes the change account left behind after moving
// lamports out of compressed state. Fully spent inputs leave no output.
func DecompressOutputs(
	inputs []compression.CompressedAccountWithMerkleContext,
	lamports uint64,
) ([]compression.CompressedAccount, error) {
	sum := SumLamports(inputs)
	if sum < lamports {
		return nil, errors.Wrapf(compression.ErrInsufficientBalance, "inputs hold %d lamports, decompress needs %d", sum, lamports)
	}

	change := sum - lamports
	if change == 0 {
		return nil, nil
	}

	owner, err := inputsOwner(inputs)
	if err != nil {
		return nil, err
	}

	return []compression.CompressedAccount{
		{
			Owner:    owner,
			Lamports: change,
		},
	}, nil
}

// NewAddressOutputs computes the outputs for creating an address-bound
// account, optionally funded by spending input accounts.
func NewAddressOutputs(
	inputs []compression.CompressedAccountWithMerkleContext,
	owner ed25519.PublicKey,
	address compression.FieldElement,
	lamports uint64,
) ([]compression.CompressedAccount, error) {
	newAccount := compression.CompressedAccount{
		Owner:    owner,
		Lamports: lamports,
		Address:  &address,
	}

	if len(inputs) == 0 {
		return []compression.CompressedAccount{newAccount}, nil
	}

	sum := SumLamports(inputs)
	if sum < lamports {
		return nil, errors.Wrapf(compression.ErrInsufficientBalance, "inputs hold %d lamports, account needs %d", sum, lamports)
	}

	change := sum - lamports
	if change == 0 {
		return []compression.CompressedAccount{newAccount}, nil
	}

	inputOwner, err := inputsOwner(inputs)
	if err != nil {
		return nil, err
	}

	return []compression.CompressedAccount{
		{
			Owner:    inputOwner,
			Lamports: change,
		},
		newAccount,
	}, nil
}
