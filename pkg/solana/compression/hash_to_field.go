package compression

import (
	"golang.org/x/crypto/sha3"
)

// Two hash-to-field strategies coexist and both must stay bit-reproducible
// against the on-chain programs and the other client implementations:
//
//   - The search variant hashes input ∥ bumpSeed for bump seeds 255 down to
//     0, zeroes the most significant output byte, and returns the first
//     result strictly below the field modulus.
//   - The direct variant hashes its inputs once (optionally appending a
//     fixed 0xFF bump byte), zeroes the most significant byte and returns
//     the result without checking the field bound. Zeroing one byte does not
//     strictly guarantee the bound since the modulus is not a power of two;
//     existing on-chain state depends on this exact behavior, so it is
//     preserved rather than corrected. Tests assert the bound on every
//     fixed vector so a violating input would surface loudly.

// hashBumpSeed is the implicit bump appended by the direct-with-bump variant.
const hashBumpSeed = 255

func keccak256(chunks ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, chunk := range chunks {
		h.Write(chunk)
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HashToFieldSearch returns the first keccak256(input ∥ bump) below the field
// modulus, searching bump seeds from 255 down to 0. ErrBumpSeedExhausted is
// practically unreachable: each attempt succeeds with overwhelming
// probability once the top byte is zeroed.
func HashToFieldSearch(input []byte) ([32]byte, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		hash := keccak256(input, []byte{uint8(bump)})
		hash[0] = 0
		if isInField(hash[:]) {
			return hash, uint8(bump), nil
		}
	}
	return [32]byte{}, 0, ErrBumpSeedExhausted
}

// HashToFieldDirect hashes the concatenation of the provided chunks and
// zeroes the most significant byte, with no field-bound verification.
func HashToFieldDirect(chunks ...[]byte) [32]byte {
	hash := keccak256(chunks...)
	hash[0] = 0
	return hash
}

// HashToFieldDirectWithBump is HashToFieldDirect with the fixed 0xFF bump
// byte appended to the hashed input.
func HashToFieldDirectWithBump(chunks ...[]byte) [32]byte {
	withBump := make([][]byte, 0, len(chunks)+1)
	withBump = append(withBump, chunks...)
	withBump = append(withBump, []byte{hashBumpSeed})
	return HashToFieldDirect(withBump...)
}
