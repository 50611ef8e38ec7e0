package lighttoken

import (
	"crypto/ed25519"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightscale/light-sdk/pkg/pointer"
	"github.com/lightscale/light-sdk/pkg/solana"
	"github.com/lightscale/light-sdk/pkg/solana/compression"
)

func testTreeInfo(t *testing.T, treeType compression.TreeType) compression.TreeInfo {
	keys := generateKeys(t, 2)
	return compression.TreeInfo{
		Tree:     keys[0],
		Queue:    keys[1],
		TreeType: treeType,
	}
}

func testProof(rootIndices ...uint16) compression.ValidityProofWithContext {
	return compression.ValidityProofWithContext{
		Proof:       &compression.ValidityProof{A: [32]byte{1}},
		RootIndices: rootIndices,
	}
}

func testTokenInput(mint, owner ed25519.PublicKey, amount uint64, tree compression.TreeInfo, leafIndex uint32) TokenAccount {
	return TokenAccount{
		Account: compression.CompressedAccountWithMerkleContext{
			Account: compression.CompressedAccount{Owner: mint},
			MerkleContext: compression.MerkleContext{
				TreeInfo:  tree,
				LeafIndex: leafIndex,
			},
		},
		Token: TokenData{
			Mint:   mint,
			Owner:  owner,
			Amount: amount,
		},
	}
}

func TestNewTransferInstruction(t *testing.T) {
	config := compression.MainnetConfig()
	keys := generateKeys(t, 4)
	tree := testTreeInfo(t, compression.TreeTypeStateV1)

	inputs := []TokenAccount{
		testTokenInput(keys[0], keys[2], 1_000_000, tree, 5),
	}

	instruction, err := NewTransferInstruction(
		config,
		&TransferInstructionAccounts{
			FeePayer:  keys[1],
			Authority: keys[2],
		},
		&TransferInstructionArgs{
			Mint:          keys[0],
			InputAccounts: inputs,
			Recipient:     keys[3],
			Amount:        600_000,
			Proof:         testProof(7),
		},
	)
	require.NoError(t, err)

	assert.Equal(t, config.CompressedTokenProgram, instruction.Program)
	assert.Equal(t, TransferDiscriminator, instruction.Data[:8])

	// Fixed slots plus the input's tree and queue.
	require.Len(t, instruction.Accounts, 15)
	assert.Equal(t, keys[1], instruction.Accounts[0].PublicKey)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.Equal(t, keys[2], instruction.Accounts[1].PublicKey)
	assert.True(t, instruction.Accounts[1].IsSigner)
	assert.Equal(t, config.TokenCpiAuthorityPda, instruction.Accounts[2].PublicKey)
	assert.Equal(t, config.LightSystemProgram, instruction.Accounts[3].PublicKey)
	assert.Equal(t, config.RegisteredProgramPda, instruction.Accounts[4].PublicKey)
	assert.Equal(t, config.NoopProgram, instruction.Accounts[5].PublicKey)
	assert.Equal(t, config.AccountCompressionAuthority, instruction.Accounts[6].PublicKey)
	assert.Equal(t, config.AccountCompressionProgram, instruction.Accounts[7].PublicKey)
	assert.Equal(t, config.CompressedTokenProgram, instruction.Accounts[8].PublicKey)

	// No pool movement on a pure transfer: placeholder slots.
	assert.Equal(t, config.CompressedTokenProgram, instruction.Accounts[9].PublicKey)
	assert.Equal(t, config.CompressedTokenProgram, instruction.Accounts[10].PublicKey)
	assert.Equal(t, config.CompressedTokenProgram, instruction.Accounts[11].PublicKey)

	assert.Equal(t, config.SystemProgram, instruction.Accounts[12].PublicKey)
	assert.Equal(t, tree.Tree, instruction.Accounts[13].PublicKey)
	assert.Equal(t, tree.Queue, instruction.Accounts[14].PublicKey)
}

func TestNewTransferInstruction_PropagatesErrors(t *testing.T) {
	config := compression.MainnetConfig()
	keys := generateKeys(t, 4)
	tree := testTreeInfo(t, compression.TreeTypeStateV1)

	inputs := []TokenAccount{
		testTokenInput(keys[0], keys[2], 100, tree, 0),
	}

	instruction, err := NewTransferInstruction(
		config,
		&TransferInstructionAccounts{FeePayer: keys[1], Authority: keys[2]},
		&TransferInstructionArgs{
			Mint:          keys[0],
			InputAccounts: inputs,
			Recipient:     keys[3],
			Amount:        200,
			Proof:         testProof(7),
		},
	)
	assert.Equal(t, compression.ErrInsufficientBalance, errors.Cause(err))
	assert.Equal(t, solana.Instruction{}, instruction)

	_, err = NewTransferInstruction(
		config,
		&TransferInstructionAccounts{FeePayer: keys[1], Authority: keys[2]},
		&TransferInstructionArgs{
			Mint:          keys[0],
			InputAccounts: inputs,
			Recipient:     keys[3],
			Amount:        50,
			Proof:         testProof(7, 8),
		},
	)
	assert.Equal(t, compression.ErrRootIndexCountMismatch, errors.Cause(err))
}

func TestNewCompressInstruction(t *testing.T) {
	config := compression.MainnetConfig()
	keys := generateKeys(t, 4)
	tree := testTreeInfo(t, compression.TreeTypeStateV1)

	instruction, err := NewCompressInstruction(
		config,
		&CompressInstructionAccounts{
			FeePayer:  keys[1],
			Authority: keys[2],
		},
		&CompressInstructionArgs{
			Mint:                keys[0],
			SourceTokenAccount:  keys[3],
			ToAddress:           keys[2],
			Amount:              500,
			OutputStateTreeInfo: tree,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, TransferDiscriminator, instruction.Data[:8])

	tokenPool, err := config.TokenPoolPda(keys[0])
	require.NoError(t, err)

	// Pool, source account and token program slots are live.
	require.Len(t, instruction.Accounts, 14)
	assert.Equal(t, tokenPool, instruction.Accounts[9].PublicKey)
	assert.True(t, instruction.Accounts[9].IsWritable)
	assert.Equal(t, keys[3], instruction.Accounts[10].PublicKey)
	assert.True(t, instruction.Accounts[10].IsWritable)
	assert.Equal(t, config.SplTokenProgram, instruction.Accounts[11].PublicKey)

	// The output tree is the sole remaining account.
	assert.Equal(t, tree.Tree, instruction.Accounts[13].PublicKey)
}

func TestNewCompressInstruction_BatchedTreeUsesQueue(t *testing.T) {
	config := compression.MainnetConfig()
	keys := generateKeys(t, 4)
	tree := testTreeInfo(t, compression.TreeTypeStateV2)

	instruction, err := NewCompressInstruction(
		config,
		&CompressInstructionAccounts{FeePayer: keys[1], Authority: keys[2]},
		&CompressInstructionArgs{
			Mint:                keys[0],
			SourceTokenAccount:  keys[3],
			ToAddress:           keys[2],
			Amount:              500,
			OutputStateTreeInfo: tree,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, tree.Queue, instruction.Accounts[13].PublicKey)
}

func TestNewDecompressInstruction(t *testing.T) {
	config := compression.MainnetConfig()
	keys := generateKeys(t, 4)
	tree := testTreeInfo(t, compression.TreeTypeStateV1)

	inputs := []TokenAccount{
		testTokenInput(keys[0], keys[2], 1000, tree, 3),
	}

	instruction, err := NewDecompressInstruction(
		config,
		&DecompressInstructionAccounts{
			FeePayer:  keys[1],
			Authority: keys[2],
		},
		&DecompressInstructionArgs{
			Mint:                    keys[0],
			InputAccounts:           inputs,
			DestinationTokenAccount: keys[3],
			Amount:                  400,
			Proof:                   testProof(7),
		},
	)
	require.NoError(t, err)

	assert.Equal(t, TransferDiscriminator, instruction.Data[:8])

	tokenPool, err := config.TokenPoolPda(keys[0])
	require.NoError(t, err)
	assert.Equal(t, tokenPool, instruction.Accounts[9].PublicKey)
	assert.Equal(t, keys[3], instruction.Accounts[10].PublicKey)
	assert.Equal(t, config.SplTokenProgram, instruction.Accounts[11].PublicKey)
}

func TestNewDecompressInstruction_Idempotent(t *testing.T) {
	config := compression.MainnetConfig()
	keys := generateKeys(t, 4)
	tree := testTreeInfo(t, compression.TreeTypeStateV1)

	inputs := []TokenAccount{
		testTokenInput(keys[0], keys[2], 1000, tree, 3),
	}

	instruction, err := NewDecompressInstruction(
		config,
		&DecompressInstructionAccounts{FeePayer: keys[1], Authority: keys[2]},
		&DecompressInstructionArgs{
			Mint:                    keys[0],
			InputAccounts:           inputs,
			DestinationTokenAccount: keys[3],
			Amount:                  1000,
			Proof:                   testProof(7),
			Idempotent:              true,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, DecompressIdempotentDiscriminator, instruction.Data[:1])
}

func TestNewMintToInstruction(t *testing.T) {
	config := compression.MainnetConfig()
	keys := generateKeys(t, 4)
	tree := testTreeInfo(t, compression.TreeTypeStateV1)

	instruction, err := NewMintToInstruction(
		config,
		&MintToInstructionAccounts{
			FeePayer:      keys[1],
			MintAuthority: keys[2],
		},
		&MintToInstructionArgs{
			Mint:                keys[0],
			Recipients:          []ed25519.PublicKey{keys[3]},
			Amounts:             []uint64{100},
			OutputStateTreeInfo: tree,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, MintToDiscriminator, instruction.Data[:8])

	tokenPool, err := config.TokenPoolPda(keys[0])
	require.NoError(t, err)

	require.Len(t, instruction.Accounts, 15)
	assert.Equal(t, keys[1], instruction.Accounts[0].PublicKey)
	assert.Equal(t, keys[2], instruction.Accounts[1].PublicKey)
	assert.True(t, instruction.Accounts[1].IsSigner)
	assert.Equal(t, keys[0], instruction.Accounts[3].PublicKey)
	assert.True(t, instruction.Accounts[3].IsWritable)
	assert.Equal(t, tokenPool, instruction.Accounts[4].PublicKey)
	assert.Equal(t, tree.Tree, instruction.Accounts[11].PublicKey)
	assert.True(t, instruction.Accounts[11].IsWritable)

	// No lamports attached: placeholder in the sol pool slot.
	assert.Equal(t, config.CompressedTokenProgram, instruction.Accounts[13].PublicKey)

	// Attaching lamports swaps in the writable sol pool.
	instruction, err = NewMintToInstruction(
		config,
		&MintToInstructionAccounts{FeePayer: keys[1], MintAuthority: keys[2]},
		&MintToInstructionArgs{
			Mint:                keys[0],
			Recipients:          []ed25519.PublicKey{keys[3]},
			Amounts:             []uint64{100},
			Lamports:            pointer.Uint64(2000),
			OutputStateTreeInfo: tree,
		},
	)
	require.NoError(t, err)
	assert.Equal(t, config.SolPoolPda, instruction.Accounts[13].PublicKey)
	assert.True(t, instruction.Accounts[13].IsWritable)
}

func TestNewMintToInstruction_RecipientCountMismatch(t *testing.T) {
	config := compression.MainnetConfig()
	keys := generateKeys(t, 4)
	tree := testTreeInfo(t, compression.TreeTypeStateV1)

	_, err := NewMintToInstruction(
		config,
		&MintToInstructionAccounts{FeePayer: keys[1], MintAuthority: keys[2]},
		&MintToInstructionArgs{
			Mint:                keys[0],
			Recipients:          []ed25519.PublicKey{keys[3]},
			Amounts:             []uint64{100, 200},
			OutputStateTreeInfo: tree,
		},
	)
	assert.Equal(t, ErrRecipientCountMismatch, errors.Cause(err))
}

func TestNewApproveInstruction(t *testing.T) {
	config := compression.MainnetConfig()
	keys := generateKeys(t, 4)
	tree := testTreeInfo(t, compression.TreeTypeStateV1)

	inputs := []TokenAccount{
		testTokenInput(keys[0], keys[2], 1000, tree, 3),
	}

	instruction, err := NewApproveInstruction(
		config,
		&ApproveInstructionAccounts{
			FeePayer:  keys[1],
			Authority: keys[2],
		},
		&ApproveInstructionArgs{
			Mint:            keys[0],
			InputAccounts:   inputs,
			Delegate:        keys[3],
			DelegatedAmount: 250,
			Proof:           testProof(7),
		},
	)
	require.NoError(t, err)

	assert.Equal(t, ApproveDiscriminator, instruction.Data[:8])
	assert.Equal(t, config.CompressedTokenProgram, instruction.Program)

	// Missing proof is rejected before any packing.
	_, err = NewApproveInstruction(
		config,
		&ApproveInstructionAccounts{FeePayer: keys[1], Authority: keys[2]},
		&ApproveInstructionArgs{
			Mint:            keys[0],
			InputAccounts:   inputs,
			Delegate:        keys[3],
			DelegatedAmount: 250,
			Proof:           compression.ValidityProofWithContext{RootIndices: []uint16{7}},
		},
	)
	assert.Error(t, err)

	// Zero inputs are rejected with an error, never a panic.
	_, err = NewApproveInstruction(
		config,
		&ApproveInstructionAccounts{FeePayer: keys[1], Authority: keys[2]},
		&ApproveInstructionArgs{
			Mint:            keys[0],
			Delegate:        keys[3],
			DelegatedAmount: 250,
			Proof:           testProof(),
		},
	)
	assert.Equal(t, compression.ErrNoInputs, errors.Cause(err))

	// Overdelegation is rejected.
	_, err = NewApproveInstruction(
		config,
		&ApproveInstructionAccounts{FeePayer: keys[1], Authority: keys[2]},
		&ApproveInstructionArgs{
			Mint:            keys[0],
			InputAccounts:   inputs,
			Delegate:        keys[3],
			DelegatedAmount: 1001,
			Proof:           testProof(7),
		},
	)
	assert.Equal(t, compression.ErrInsufficientBalance, errors.Cause(err))
}

func TestNewRevokeInstruction(t *testing.T) {
	config := compression.MainnetConfig()
	keys := generateKeys(t, 4)
	tree := testTreeInfo(t, compression.TreeTypeStateV1)

	input := testTokenInput(keys[0], keys[2], 1000, tree, 3)
	input.Token.Delegate = keys[3]

	instruction, err := NewRevokeInstruction(
		config,
		&RevokeInstructionAccounts{
			FeePayer:  keys[1],
			Authority: keys[2],
		},
		&RevokeInstructionArgs{
			Mint:          keys[0],
			InputAccounts: []TokenAccount{input},
			Proof:         testProof(7),
		},
	)
	require.NoError(t, err)

	assert.Equal(t, RevokeDiscriminator, instruction.Data[:8])

	// Tree, queue, then the packed delegate.
	require.Len(t, instruction.Accounts, 16)
	assert.Equal(t, tree.Tree, instruction.Accounts[13].PublicKey)
	assert.Equal(t, tree.Queue, instruction.Accounts[14].PublicKey)
	assert.Equal(t, keys[3], instruction.Accounts[15].PublicKey)

	_, err = NewRevokeInstruction(
		config,
		&RevokeInstructionAccounts{FeePayer: keys[1], Authority: keys[2]},
		&RevokeInstructionArgs{
			Mint:          keys[0],
			InputAccounts: []TokenAccount{input},
			Proof:         compression.ValidityProofWithContext{RootIndices: []uint16{7}},
		},
	)
	assert.Error(t, err)
}

func TestNewCreateTokenPoolInstruction(t *testing.T) {
	config := compression.MainnetConfig()
	keys := generateKeys(t, 2)

	instruction, err := NewCreateTokenPoolInstruction(
		config,
		&CreateTokenPoolInstructionAccounts{FeePayer: keys[0]},
		&CreateTokenPoolInstructionArgs{Mint: keys[1]},
	)
	require.NoError(t, err)

	tokenPool, err := config.TokenPoolPda(keys[1])
	require.NoError(t, err)

	assert.Equal(t, config.CompressedTokenProgram, instruction.Program)

	// Discriminator plus an empty length-prefixed payload.
	assert.Equal(t, append(CreateTokenPoolDiscriminator, 0, 0, 0, 0), instruction.Data)

	require.Len(t, instruction.Accounts, 6)
	assert.Equal(t, keys[0], instruction.Accounts[0].PublicKey)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.Equal(t, tokenPool, instruction.Accounts[1].PublicKey)
	assert.True(t, instruction.Accounts[1].IsWritable)
	assert.Equal(t, keys[1], instruction.Accounts[3].PublicKey)
}
