package order

import (
	"errors"
	"fmt"

	"setralog/internal/pkg/errs"
)

// ErrIllegalTransition is returned when a status change is not allowed from the current status.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of an order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Received is the nominal intake state. Creation never produces it; only an
	// administrator can assign it.
	Received

	// Pending is the initial status of every new order, awaiting review.
	Pending

	// InProgress means the shipment is being handled. While a user owns an order in
	// this status their account cannot be deleted.
	InProgress

	// Completed means the shipment was delivered.
	Completed

	// Rejected means the order was cancelled by its owner or rejected by an administrator.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Received:   "RECEIVED",
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Rejected:   "REJECTED",
	}
}

// Statuses lists every valid status in workflow order.
func Statuses() []Status {
	return []Status{Received, Pending, InProgress, Completed, Rejected}
}

// ParseStatus converts a wire name such as "IN_PROGRESS".
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the five workflow statuses.
func (s Status) Validate() error {
	if s < Received || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Cancel is the owner-initiated transition. Only PENDING orders can be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, fmt.Errorf("%w: %s orders cannot be cancelled", ErrIllegalTransition, s)
	}
	return Rejected, nil
}

// TransitionMode selects how administrative status changes are checked.
type TransitionMode int

const (
	// Permissive lets administrators write any valid status regardless of the current one.
	Permissive TransitionMode = iota
	// Strict only allows the arrows of the status workflow.
	Strict
)

// ParseTransitionMode accepts "permissive" or "strict"; empty means Permissive.
func ParseTransitionMode(s string) (TransitionMode, error) {
	switch s {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	default:
		return Permissive, errs.NewValueIsInvalidErrorWithCause(
			"transition mode", fmt.Errorf("%q is neither permissive nor strict", s))
	}
}

func (m TransitionMode) String() string {
	if m == Strict {
		return "strict"
	}
	return "permissive"
}

func strictTransitions() map[Status][]Status {
	return map[Status][]Status{
		Received:   {Pending},
		Pending:    {InProgress, Rejected},
		InProgress: {Completed, Rejected},
	}
}

// Allows checks an administrative transition from -> to under the mode.
func (m TransitionMode) Allows(from, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if m == Permissive {
		return nil
	}
	for _, next := range strictTransitions()[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}
