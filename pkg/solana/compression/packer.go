package compression

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

// PackMerkleContext replaces the tree and queue keys of a merkle context
// with remaining-accounts indices.
func PackMerkleContext(ctx MerkleContext, ra *RemainingAccounts) (PackedMerkleContext, error) {
	treeIndex, err := ra.InsertOrGet(ctx.TreeInfo.Tree)
	if err != nil {
		return PackedMerkleContext{}, err
	}
	queueIndex, err := ra.InsertOrGet(ctx.TreeInfo.Queue)
	if err != nil {
		return PackedMerkleContext{}, err
	}

	return PackedMerkleContext{
		MerkleTreePubkeyIndex: treeIndex,
		QueuePubkeyIndex:      queueIndex,
		LeafIndex:             ctx.LeafIndex,
		ProveByIndex:          ctx.ProveByIndex,
	}, nil
}

// OutputReferenceKey returns the account outputs reference for a state tree:
// the queue for v2 (batched) trees and the tree itself for v1 trees. The two
// tree generations expose different canonical account roles.
func OutputReferenceKey(info TreeInfo) ed25519.PublicKey {
	if info.TreeType == TreeTypeStateV2 {
		return info.Queue
	}
	return info.Tree
}

// ResolveOutputTree determines the tree that receives output state. Exactly
// one source must be available: the first input's tree info, or an
// explicitly supplied tree. A tree mid-rollover defers to its successor.
func ResolveOutputTree(inputs []CompressedAccountWithMerkleContext, outputTree *TreeInfo) (TreeInfo, error) {
	if len(inputs) > 0 && outputTree != nil {
		return TreeInfo{}, ErrAmbiguousOutputTree
	}

	var resolved TreeInfo
	switch {
	case len(inputs) > 0:
		resolved = inputs[0].MerkleContext.TreeInfo
	case outputTree != nil:
		resolved = *outputTree
	default:
		return TreeInfo{}, ErrUnderspecifiedOutputTree
	}

	if resolved.NextTreeInfo != nil {
		resolved = *resolved.NextTreeInfo
	}
	return resolved, nil
}

// PackOutputTreeIndex resolves the output tree and inserts its reference key
// into the table once. Every output in the call shares the returned index.
func PackOutputTreeIndex(inputs []CompressedAccountWithMerkleContext, outputTree *TreeInfo, ra *RemainingAccounts) (uint8, error) {
	resolved, err := ResolveOutputTree(inputs, outputTree)
	if err != nil {
		return 0, err
	}
	return ra.InsertOrGet(OutputReferenceKey(resolved))
}

// PackAccounts deduplicates every public key referenced by the inputs and
// outputs into the remaining-accounts table and emits the index-based
// counterparts. rootIndices carries the per-input root index from the
// validity proof and must match the input count.
func PackAccounts(
	inputs []CompressedAccountWithMerkleContext,
	rootIndices []uint16,
	outputs []CompressedAccount,
	outputTree *TreeInfo,
	ra *RemainingAccounts,
) ([]PackedCompressedAccountWithMerkleContext, []OutputCompressedAccount, error) {
	if len(rootIndices) != len(inputs) {
		return nil, nil, errors.Wrapf(ErrRootIndexCountMismatch, "%d root indices for %d inputs", len(rootIndices), len(inputs))
	}
	if len(inputs) > 0 && outputTree != nil {
		return nil, nil, ErrAmbiguousOutputTree
	}

	packedInputs := make([]PackedCompressedAccountWithMerkleContext, len(inputs))
	for i, input := range inputs {
		packedContext, err := PackMerkleContext(input.MerkleContext, ra)
		if err != nil {
			return nil, nil, err
		}

		packedInputs[i] = PackedCompressedAccountWithMerkleContext{
			Account:       input.Account,
			MerkleContext: packedContext,
			RootIndex:     rootIndices[i],
		}
	}

	packedOutputs := make([]OutputCompressedAccount, len(outputs))
	if len(outputs) > 0 {
		outputTreeIndex, err := PackOutputTreeIndex(inputs, outputTree, ra)
		if err != nil {
			return nil, nil, err
		}

		for i, output := range outputs {
			packedOutputs[i] = OutputCompressedAccount{
				Account:         output,
				MerkleTreeIndex: outputTreeIndex,
			}
		}
	}

	return packedInputs, packedOutputs, nil
}

// PackNewAddressParams packs address-creation parameters against the same
// remaining-accounts table as PackAccounts so one instruction's packed
// inputs, outputs and new addresses share a single index space.
func PackNewAddressParams(params []NewAddressParams, ra *RemainingAccounts) ([]NewAddressParamsPacked, error) {
	packed := make([]NewAddressParamsPacked, len(params))
	for i, param := range params {
		queueIndex, err := ra.InsertOrGet(param.AddressQueue)
		if err != nil {
			return nil, err
		}
		treeIndex, err := ra.InsertOrGet(param.AddressTree)
		if err != nil {
			return nil, err
		}

		packed[i] = NewAddressParamsPacked{
			Seed:                          param.Seed,
			AddressQueueAccountIndex:      queueIndex,
			AddressMerkleTreeAccountIndex: treeIndex,
			AddressMerkleTreeRootIndex:    param.RootIndex,
		}
	}
	return packed, nil
}
