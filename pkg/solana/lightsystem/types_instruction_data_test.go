package lightsystem

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightscale/light-sdk/pkg/pointer"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

func generateKeys(t *testing.T, amount int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, amount)

	for i := 0; i < amount; i++ {
		pub, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = pub
	}

	return keys
}

func TestInstructionDataInvoke_EmptyPayload(t *testing.T) {
	data, err := (&InstructionDataInvoke{}).Marshal()
	require.NoError(t, err)

	// none proof, three empty vecs, two none options, false bool.
	payload := []byte{
		0,          // proof: none
		0, 0, 0, 0, // inputs: empty
		0, 0, 0, 0, // outputs: empty
		0,          // relay fee: none
		0, 0, 0, 0, // new address params: empty
		0, // compress/decompress lamports: none
		0, // is compress: false
	}

	require.Len(t, data, 8+4+len(payload))
	assert.Equal(t, InvokeDiscriminator, data[:8])
	assert.Equal(t, []byte{16, 0, 0, 0}, data[8:12])
	assert.Equal(t, payload, data[12:])
}

func TestInstructionDataInvoke_FieldOrder(t *testing.T) {
	keys := generateKeys(t, 1)

	data, err := (&InstructionDataInvoke{
		Proof: &compression.ValidityProof{
			A: [32]byte{1},
			B: [64]byte{2},
			C: [32]byte{3},
		},
		OutputCompressedAccounts: []compression.OutputCompressedAccount{
			{
				Account: compression.CompressedAccount{
					Owner:    keys[0],
					Lamports: 500,
				},
				MerkleTreeIndex: 7,
			},
		},
		CompressOrDecompressLamports: pointer.Uint64(500),
		IsCompress:                   true,
	}).Marshal()
	require.NoError(t, err)

	payload := data[12:]

	// Proof: 1-byte some, then 128 raw proof bytes.
	assert.EqualValues(t, 1, payload[0])
	assert.EqualValues(t, 1, payload[1])   // A[0]
	assert.EqualValues(t, 2, payload[33])  // B[0]
	assert.EqualValues(t, 3, payload[97])  // C[0]

	rest := payload[129:]
	assert.Equal(t, []byte{0, 0, 0, 0}, rest[:4]) // no inputs
	assert.Equal(t, []byte{1, 0, 0, 0}, rest[4:8])

	// Output account: owner, lamports, none address, none data, tree index.
	output := rest[8:]
	assert.Equal(t, []byte(keys[0]), output[:32])
	assert.Equal(t, []byte{0xf4, 0x01, 0, 0, 0, 0, 0, 0}, output[32:40])
	assert.Equal(t, []byte{0, 0, 7}, output[40:43])

	tail := output[43:]
	assert.Equal(t, []byte{0}, tail[:1])          // relay fee: none
	assert.Equal(t, []byte{0, 0, 0, 0}, tail[1:5]) // no address params
	assert.Equal(t, []byte{1, 0xf4, 0x01, 0, 0, 0, 0, 0, 0}, tail[5:14])
	assert.Equal(t, []byte{1}, tail[14:15]) // is compress
	assert.Len(t, tail, 15)
}

func TestInstructionDataInvokeCpi_TrailingCpiContext(t *testing.T) {
	invoke, err := (&InstructionDataInvoke{}).Marshal()
	require.NoError(t, err)

	withoutContext, err := (&InstructionDataInvokeCpi{}).Marshal()
	require.NoError(t, err)

	// Same payload as the plain invoke plus one none byte, behind the
	// invoke_cpi discriminator.
	assert.Equal(t, InvokeCpiDiscriminator, withoutContext[:8])
	assert.Equal(t, []byte{17, 0, 0, 0}, withoutContext[8:12])
	assert.Equal(t, invoke[12:], withoutContext[12:len(withoutContext)-1])
	assert.EqualValues(t, 0, withoutContext[len(withoutContext)-1])

	withContext, err := (&InstructionDataInvokeCpi{
		CpiContext: &compression.CompressedCpiContext{
			SetContext:             true,
			FirstSetContext:        false,
			CpiContextAccountIndex: 4,
		},
	}).Marshal()
	require.NoError(t, err)

	assert.Equal(t, []byte{20, 0, 0, 0}, withContext[8:12])
	assert.Equal(t, []byte{1, 1, 0, 4}, withContext[len(withContext)-4:])
}

func TestInstructionDataInvoke_Deterministic(t *testing.T) {
	keys := generateKeys(t, 2)

	data := &InstructionDataInvoke{
		InputCompressedAccounts: []compression.PackedCompressedAccountWithMerkleContext{
			{
				Account: compression.CompressedAccount{
					Owner:    keys[0],
					Lamports: 42,
				},
				MerkleContext: compression.PackedMerkleContext{
					MerkleTreePubkeyIndex: 0,
					QueuePubkeyIndex:      1,
					LeafIndex:             9,
				},
				RootIndex: 3,
			},
		},
		OutputCompressedAccounts: []compression.OutputCompressedAccount{
			{
				Account: compression.CompressedAccount{
					Owner:    keys[1],
					Lamports: 42,
				},
				MerkleTreeIndex: 2,
			},
		},
	}

	first, err := data.Marshal()
	require.NoError(t, err)
	second, err := data.Marshal()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
