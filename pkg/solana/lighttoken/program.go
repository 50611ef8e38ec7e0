// Package lighttoken builds instructions for the compressed token program:
// transfers between compressed token accounts, compression and decompression
// against SPL token accounts, minting, and delegation.
package lighttoken

import "github.com/pkg/errors"

// Anchor-style instruction discriminators: sha256("global:<name>")[..8].
var (
	TransferDiscriminator        = []byte{163, 52, 200, 231, 140, 3, 69, 186}
	MintToDiscriminator          = []byte{241, 34, 48, 186, 37, 179, 123, 192}
	ApproveDiscriminator         = []byte{69, 74, 217, 36, 115, 117, 97, 76}
	RevokeDiscriminator          = []byte{170, 23, 31, 34, 133, 173, 93, 242}
	BurnDiscriminator            = []byte{116, 110, 29, 56, 107, 219, 42, 93}
	CreateTokenPoolDiscriminator = []byte{23, 169, 27, 122, 147, 169, 209, 152}

	// The idempotent decompress variant of transfer uses a compact
	// single-byte discriminator.
	DecompressIdempotentDiscriminator = []byte{1}
)

var (
	ErrRecipientCountMismatch = errors.New("recipient and amount counts differ")
)
