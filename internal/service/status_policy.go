package service

import (
	"fmt"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
)

// StatusPolicy decides whether a booking may move from one status to another.
type StatusPolicy interface {
	Allow(from, to entities.BookingStatus) error
}

// FreeTransitions lets guards set any status from any status, which is how the
// gate desk corrects mistakes today.
type FreeTransitions struct{}

func (FreeTransitions) Allow(_, _ entities.BookingStatus) error {
	return nil
}

// AdjacentTransitions only permits the forward lifecycle
// pending -> approved|rejected, approved -> checked_in -> checked_out.
// Setting a booking to the status it already has is accepted.
type AdjacentTransitions struct{}

var adjacent = map[entities.BookingStatus][]entities.BookingStatus{
	entities.StatusPending:   {entities.StatusApproved, entities.StatusRejected},
	entities.StatusApproved:  {entities.StatusCheckedIn},
	entities.StatusCheckedIn: {entities.StatusCheckedOut},
}

func (AdjacentTransitions) Allow(from, to entities.BookingStatus) error {
	if from == to {
		return nil
	}
	for _, next := range adjacent[from] {
		if next == to {
			return nil
		}
	}
	return apperrors.NewValidationError("new_status", fmt.Sprintf("cannot move booking from %s to %s", from, to))
}

// PolicyByName maps the STATUS_POLICY setting onto a policy.
func PolicyByName(name string) (StatusPolicy, error) {
	switch name {
	case "", "free":
		return FreeTransitions{}, nil
	case "adjacent", "strict":
		return AdjacentTransitions{}, nil
	}
	return nil, fmt.Errorf("unknown status policy %q", name)
}
