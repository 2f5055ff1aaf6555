package order

import (
	"errors"
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status represents the fulfillment stage of an order.
// It implements a state machine in which only terminality is enforced:
//
//	Pending ──> Confirmed ──> InProgress ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Movement among the non-terminal states is unrestricted in both directions
// so that administrators can correct mistakes (an in-progress order may be
// reverted to confirmed). Completed and Cancelled are terminal: no further
// transitions are allowed out of them.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Confirmed indicates the bakery has accepted the order.
	Confirmed

	// InProgress indicates the order is being baked and decorated.
	InProgress

	// Completed indicates the order has been fulfilled.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was abandoned before completion.
	// Reachable from any non-terminal state; terminal once entered.
	Cancelled
)

// ErrInvalidTransition is the unwrap target of every InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError indicates a status change was attempted on an order
// whose current status forbids it (the order is in a terminal state).
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the rejected move.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is terminal, cannot move to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for anything outside the five valid lifecycle values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, InProgress, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status ("pending", "confirmed",
// "in_progress", "completed", "cancelled"), or "unknown" for invalid values.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo validates a move to the next status and returns it.
//
// Rules:
//   - next must be a valid status value
//   - a terminal status (Completed, Cancelled) rejects any move to a
//     different status with InvalidTransitionError
//   - moving to the current status is a no-op and always succeeds
//   - every other move is allowed, including backwards among the
//     non-terminal states
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error) if the transition is not allowed
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if s == next {
		return s, nil
	}

	if s.IsTerminal() {
		return 0, NewInvalidTransitionError(s, next)
	}

	return next, nil
}
