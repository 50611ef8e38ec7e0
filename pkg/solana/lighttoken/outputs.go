package lighttoken

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

// SumTokenAmounts folds the token balances of the provided inputs.
func SumTokenAmounts(inputs []TokenAccount) uint64 {
	var sum uint64
	for i := range inputs {
		sum += inputs[i].Token.Amount
	}
	return sum
}

func tokenInputsOwner(inputs []TokenAccount) (ed25519.PublicKey, error) {
	if len(inputs) == 0 {
		return nil, compression.ErrNoInputs
	}

	owner := inputs[0].Token.Owner
	for i := range inputs[1:] {
		if !bytes.Equal(inputs[i+1].Token.Owner, owner) {
			return nil, errors.Wrapf(compression.ErrOwnerMismatch, "input %d has a different owner", i+1)
		}
	}
	return owner, nil
}

// TransferOutputs computes the packed token outputs for a transfer: the
// recipient account plus a change account back to the owner when the inputs
// are not fully spent. MerkleTreeIndex is assigned by the caller after
// packing.
func TransferOutputs(inputs []TokenAccount, recipient ed25519.PublicKey, amount uint64) ([]TokenTransferOutputData, error) {
	sum := SumTokenAmounts(inputs)
	if sum < amount {
		return nil, errors.Wrapf(compression.ErrInsufficientBalance, "inputs hold %d tokens, transfer needs %d", sum, amount)
	}

	recipientOutput := TokenTransferOutputData{
		Owner:  recipient,
		Amount: amount,
	}

	change := sum - amount
	if change == 0 {
		return []TokenTransferOutputData{recipientOutput}, nil
	}

	owner, err := tokenInputsOwner(inputs)
	if err != nil {
		return nil, err
	}

	return []TokenTransferOutputData{
		{
			Owner:  owner,
			Amount: change,
		},
		recipientOutput,
	}, nil
}

// DecompressOutputs computes the change output left behind after moving
// tokens out of compressed state. Fully spent inputs leave no output.
func DecompressOutputs(inputs []TokenAccount, amount uint64) ([]TokenTransferOutputData, error) {
	sum := SumTokenAmounts(inputs)
	if sum < amount {
		return nil, errors.Wrapf(compression.ErrInsufficientBalance, "inputs hold %d tokens, decompress needs %d", sum, amount)
	}

	change := sum - amount
	if change == 0 {
		return nil, nil
	}

	owner, err := tokenInputsOwner(inputs)
	if err != nil {
		return nil, err
	}

	return []TokenTransferOutputData{
		{
			Owner:  owner,
			Amount: change,
		},
	}, nil
}

// ApproveChange validates the delegated amount against the inputs and
// returns the change kept by the owner. The on-chain program constructs the
// delegated output and the optional change output itself; the client only
// supplies the amounts and tree indices.
func ApproveChange(inputs []TokenAccount, delegatedAmount uint64) (uint64, error) {
	if _, err := tokenInputsOwner(inputs); err != nil {
		return 0, err
	}

	sum := SumTokenAmounts(inputs)
	if sum < delegatedAmount {
		return 0, errors.Wrapf(compression.ErrInsufficientBalance, "inputs hold %d tokens, delegation needs %d", sum, delegatedAmount)
	}
	return sum - delegatedAmount, nil
}
