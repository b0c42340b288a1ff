package avltree

import (
	"errors"
	"fmt"

	"github.com/hupe1980/avltree/internal/arena"
)

var (
	// ErrRotation is returned when a rotation is requested at a node that
	// lacks the child it would rotate around.
	ErrRotation = errors.New("avltree: rotation pivot has no child on the required side")

	// ErrInvariant is the common cause of every InvariantError.
	ErrInvariant = errors.New("avltree: invariant violated")
)

// InvalidSlotError is the panic value for access to an unoccupied slot.
type InvalidSlotError = arena.InvalidSlotError

// InvariantError describes a broken structural invariant at a given slot.
//
// Validate returns it; Insert panics with it when balancing fails.
// errors.Is(err, ErrInvariant) reports true for every InvariantError.
type InvariantError struct {
	Slot   Slot
	Reason string
	cause  error
}

func (e *InvariantError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("avltree: invariant violated at slot %s: %s: %v", e.Slot, e.Reason, e.cause)
	}
	return fmt.Sprintf("avltree: invariant violated at slot %s: %s", e.Slot, e.Reason)
}

// Is reports whether target is ErrInvariant.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

func (e *InvariantError) Unwrap() error { return e.cause }

func invariantf(slot Slot, format string, args ...any) *InvariantError {
	return &InvariantError{Slot: slot, Reason: fmt.Sprintf(format, args...)}
}
