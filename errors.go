package units

import (
	"errors"
	"fmt"
)

// ErrUnitMismatch is returned when a kind-erased operation combines two
// quantities of different kinds, for example a Distance and a Velocity.
var ErrUnitMismatch = errors.New("units: mismatched quantity kinds")

func mismatch(op string, want, got Kind) error {
	return fmt.Errorf("%w: cannot %s %s and %s", ErrUnitMismatch, op, want, got)
}
