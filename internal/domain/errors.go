package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrValidation          = errors.New("validation failed")
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrCurrencyMismatch    = errors.New("currency mismatch")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrItemNotFound        = errors.New("item not found in cart")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrSlotConflict        = errors.New("appointment slot conflicts with an existing booking")
	ErrOutsideAvailability = errors.New("appointment slot is outside doctor availability")

	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// StateTransitionError reports an illegal state-machine move, naming the
// aggregate, its current state and the attempted operation.
type StateTransitionError struct {
	Aggregate string
	From      string
	Attempted string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from state %q", e.Aggregate, e.Attempted, e.From)
}

func (e *StateTransitionError) Unwrap() error { return ErrInvalidStateTransition }

func newTransitionError(aggregate, from, attempted string) error {
	return &StateTransitionError{Aggregate: aggregate, From: from, Attempted: attempted}
}
