package entities

import (
	"time"

	apperrors "condopark/internal/errors"
)

// Interval is the time range from Start to End.
type Interval struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

func NewInterval(start, end time.Time) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// Validate fails unless End is strictly after Start.
func (iv Interval) Validate() error {
	if iv.Start.IsZero() || iv.End.IsZero() {
		return apperrors.NewValidationError("interval", "start and end time are required")
	}
	if !iv.End.After(iv.Start) {
		return apperrors.NewValidationError("interval", "end time must be after start time")
	}
	return nil
}

// Contains reports whether other lies entirely inside iv (inclusive bounds).
func (iv Interval) Contains(other Interval) bool {
	return !iv.Start.After(other.Start) && !iv.End.Before(other.End)
}
