package compression

import (
	"github.com/lightscale/light-sdk/pkg/solana/binary"
)

// Instruction data on the wire is framed as
//
//	[discriminator][u32 LE payload length][payload]
//
// matching the on-chain deserializers, which receive the payload as a
// length-prefixed byte vector.

// EncodeInstructionData serializes a payload and frames it behind the
// instruction's discriminator. Any validation failure inside serialize
// aborts the encode; no partial instruction data is ever returned.
func EncodeInstructionData(discriminator []byte, serialize func(w *binary.Writer)) ([]byte, error) {
	w := binary.NewWriter(256)
	serialize(w)
	payload, err := w.Bytes()
	if err != nil {
		return nil, err
	}

	framed := binary.NewWriter(len(discriminator) + 4 + len(payload))
	framed.WriteBytes(discriminator)
	framed.WriteVecBytes(payload)
	return framed.Bytes()
}
