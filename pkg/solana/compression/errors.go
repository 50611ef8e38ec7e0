package compression

import "github.com/pkg/errors"

var (
	ErrInsufficientBalance      = errors.New("insufficient balance")
	ErrNoInputs                 = errors.New("no input accounts")
	ErrOwnerMismatch            = errors.New("input accounts have differing owners")
	ErrInvalidLength            = errors.New("unexpected byte length")
	ErrNotInField               = errors.New("value is not below the bn254 field modulus")
	ErrBumpSeedExhausted        = errors.New("no bump seed produced an in-field hash")
	ErrAmbiguousOutputTree      = errors.New("output state tree specified by both inputs and an explicit tree")
	ErrUnderspecifiedOutputTree = errors.New("output state tree is unspecified")
	ErrRootIndexCountMismatch   = errors.New("root index count does not match input count")
	ErrTooManyAccounts          = errors.New("remaining accounts table exceeds u8 index space")
)
