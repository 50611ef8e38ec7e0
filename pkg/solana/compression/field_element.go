package compression

import (
	"math/big"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// fieldModulus is the bn254 scalar field modulus. Values passed into the
// proof system must be strictly below it.
var fieldModulus, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// FieldElement is a 32-byte big-endian value strictly below the bn254 field
// modulus. Compressed account addresses, address seeds and data hashes are
// all field elements. Equality is byte-wise.
type FieldElement [32]byte

// FieldElementFromBytes validates the byte count and the field bound.
func FieldElementFromBytes(b []byte) (FieldElement, error) {
	var fe FieldElement
	if len(b) != len(fe) {
		return fe, errors.Wrapf(ErrInvalidLength, "expected %d bytes, got %d", len(fe), len(b))
	}
	if !isInField(b) {
		return fe, ErrNotInField
	}
	copy(fe[:], b)
	return fe, nil
}

// FieldElementFromUint64 embeds an unsigned integer into the low-order bytes
// of a field element. Always in-field.
func FieldElementFromUint64(v uint64) FieldElement {
	var fe FieldElement
	for i := 0; i < 8; i++ {
		fe[31-i] = byte(v >> (8 * i))
	}
	return fe
}

// FieldElementFromBase58 decodes a base58 value into a field element.
func FieldElementFromBase58(value string) (FieldElement, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return FieldElement{}, errors.Wrap(err, "invalid base58 value")
	}
	return FieldElementFromBytes(decoded)
}

// Bytes returns the big-endian representation.
func (fe FieldElement) Bytes() []byte {
	return fe[:]
}

// String encodes the element as base58 for display.
func (fe FieldElement) String() string {
	return base58.Encode(fe[:])
}

func isInField(b []byte) bool {
	return new(big.Int).SetBytes(b).Cmp(fieldModulus) < 0
}
