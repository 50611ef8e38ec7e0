package lighttoken

import (
	"github.com/pkg/errors"

	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

// packTokenInputs deduplicates the tree, queue and delegate keys of every
// token input into the remaining-accounts table and emits the index-based
// inputs. rootIndices carries the per-input root index from the validity
// proof and must match the input count.
func packTokenInputs(
	inputs []TokenAccount,
	rootIndices []uint16,
	remainingAccounts *compression.RemainingAccounts,
) ([]InputTokenDataWithContext, error) {
	if len(rootIndices) != len(inputs) {
		return nil, errors.Wrapf(compression.ErrRootIndexCountMismatch, "%d root indices for %d inputs", len(rootIndices), len(inputs))
	}

	packed := make([]InputTokenDataWithContext, len(inputs))
	for i, input := range inputs {
		packedContext, err := compression.PackMerkleContext(input.Account.MerkleContext, remainingAccounts)
		if err != nil {
			return nil, err
		}

		var delegateIndex *uint8
		if input.Token.Delegate != nil {
			index, err := remainingAccounts.InsertOrGet(input.Token.Delegate)
			if err != nil {
				return nil, err
			}
			delegateIndex = &index
		}

		var lamports *uint64
		if input.Account.Account.Lamports > 0 {
			value := input.Account.Account.Lamports
			lamports = &value
		}

		packed[i] = InputTokenDataWithContext{
			Amount:        input.Token.Amount,
			DelegateIndex: delegateIndex,
			MerkleContext: packedContext,
			RootIndex:     rootIndices[i],
			Lamports:      lamports,
			Tlv:           input.Token.Tlv,
		}
	}
	return packed, nil
}
