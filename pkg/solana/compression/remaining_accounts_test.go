package compression

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingAccounts_InsertOrGet(t *testing.T) {
	keys := generateKeys(t, 3)
	ra := NewRemainingAccounts()

	for i, key := range keys {
		index, err := ra.InsertOrGet(key)
		require.NoError(t, err)
		assert.EqualValues(t, i, index)
	}
	assert.Equal(t, 3, ra.Len())

	// Re-inserting yields the first-seen index and does not grow the table.
	for i, key := range keys {
		index, err := ra.InsertOrGet(key)
		require.NoError(t, err)
		assert.EqualValues(t, i, index)
	}
	assert.Equal(t, 3, ra.Len())

	// Value equality, not reference equality.
	duplicate := make(ed25519.PublicKey, len(keys[1]))
	copy(duplicate, keys[1])
	index, err := ra.InsertOrGet(duplicate)
	require.NoError(t, err)
	assert.EqualValues(t, 1, index)
}

func TestRemainingAccounts_SequentialFromPriorLength(t *testing.T) {
	keys := generateKeys(t, 4)
	ra := NewRemainingAccounts()

	for _, key := range keys[:2] {
		_, err := ra.InsertOrGet(key)
		require.NoError(t, err)
	}

	// New keys continue from the table's prior length.
	index, err := ra.InsertOrGet(keys[2])
	require.NoError(t, err)
	assert.EqualValues(t, 2, index)
	index, err = ra.InsertOrGet(keys[3])
	require.NoError(t, err)
	assert.EqualValues(t, 3, index)
}

func TestRemainingAccounts_ToAccountMetas(t *testing.T) {
	keys := generateKeys(t, 2)
	ra := NewRemainingAccounts()
	for _, key := range keys {
		_, err := ra.InsertOrGet(key)
		require.NoError(t, err)
	}

	metas := ra.ToAccountMetas()
	require.Len(t, metas, 2)
	for i, meta := range metas {
		assert.Equal(t, keys[i], meta.PublicKey)
		assert.True(t, meta.IsWritable)
		assert.False(t, meta.IsSigner)
	}
}

func generateKeys(t *testing.T, amount int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, amount)

	for i := 0; i < amount; i++ {
		pub, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = pub
	}

	return keys
}
