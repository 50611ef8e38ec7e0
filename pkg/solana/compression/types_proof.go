package compression

import (
	"github.com/lightscale/light-sdk/pkg/solana/binary"
)

// ValidityProof attests that a set of input accounts exists under the
// on-chain tree roots (and that new addresses do not). Absent only when an
// operation creates output state without nullifying any input.
type ValidityProof struct {
	A [32]byte
	B [64]byte
	C [32]byte
}

func (p *ValidityProof) Serialize(w *binary.Writer) {
	w.WriteBytes(p.A[:])
	w.WriteBytes(p.B[:])
	w.WriteBytes(p.C[:])
}

// ValidityProofWithContext is the proof as returned by the RPC prover,
// together with the per-account context the proof was generated against.
type ValidityProofWithContext struct {
	Proof        *ValidityProof
	RootIndices  []uint16
	LeafIndices  []uint32
	ProveByIndex []bool
}

// CompressedCpiContext lets a second cross-program call in one transaction
// reuse an already-verified proof. FirstSetContext clears stale shared state
// on the first participating call; SetContext marks a later one.
type CompressedCpiContext struct {
	SetContext             bool
	FirstSetContext        bool
	CpiContextAccountIndex uint8
}

func (c *CompressedCpiContext) Serialize(w *binary.Writer) {
	w.WriteBool(c.SetContext)
	w.WriteBool(c.FirstSetContext)
	w.WriteUint8(c.CpiContextAccountIndex)
}
