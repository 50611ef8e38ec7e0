package compression

import (
	"crypto/ed25519"
	"math"

	"github.com/pkg/errors"

	"github.com/lightscale/light-sdk/pkg/solana"
)

// RemainingAccounts is the per-instruction table of public keys referenced
// by index from packed inputs, outputs and new-address parameters. Keys are
// deduplicated by value and the first-seen index is retained, so packing the
// same key twice always yields the same index.
//
// The table is scoped to one instruction build. When account packing and
// new-address packing happen in the same instruction, both must run against
// the same table so they share one index space.
type RemainingAccounts struct {
	keys    []ed25519.PublicKey
	indices map[string]uint8
}

func NewRemainingAccounts() *RemainingAccounts {
	return &RemainingAccounts{
		indices: make(map[string]uint8),
	}
}

// Len returns the number of distinct keys inserted so far.
func (r *RemainingAccounts) Len() int {
	return len(r.keys)
}

// InsertOrGet appends the key if unseen and returns its table index.
func (r *RemainingAccounts) InsertOrGet(key ed25519.PublicKey) (uint8, error) {
	if index, ok := r.indices[string(key)]; ok {
		return index, nil
	}

	if len(r.keys) > math.MaxUint8 {
		return 0, errors.Wrapf(ErrTooManyAccounts, "cannot insert account %s", solana.Base58(key))
	}

	index := uint8(len(r.keys))
	r.keys = append(r.keys, key)
	r.indices[string(key)] = index
	return index, nil
}

// Keys returns the table in insertion order.
func (r *RemainingAccounts) Keys() []ed25519.PublicKey {
	return r.keys
}

// ToAccountMetas renders the table as the trailing account metas of an
// instruction. Trees, queues and cpi-context accounts are all written to by
// the programs, never signers.
func (r *RemainingAccounts) ToAccountMetas() []solana.AccountMeta {
	metas := make([]solana.AccountMeta, len(r.keys))
	for i, key := range r.keys {
		metas[i] = solana.NewAccountMeta(key, false)
	}
	return metas
}
