package ordertree

import (
	"errors"
	"fmt"
)

// ErrNullKey is returned by Insert, Remove, Next, and Prev when called
// with the sentinel (all-zero) Address. The reference implementation
// called this AmountZero, which misnamed what is actually a null-key
// precondition violation rather than a balance of zero; this
// implementation uses the corrected name directed by spec.md.
var ErrNullKey = errors.New("ordertree: null key")

// ErrNotFound is returned by Remove and Node when the given Address is
// not tree-resident. Wrap/unwrap with errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("ordertree: not found")

// ErrExists is returned by Insert when the given Address is already
// tree-resident. Wrap/unwrap with errors.Is(err, ErrExists).
var ErrExists = errors.New("ordertree: already exists")

func errNotFound(id Address) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

func errExists(id Address) error {
	return fmt.Errorf("%w: %s", ErrExists, id)
}
