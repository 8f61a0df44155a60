package service

import (
	"context"
	"time"

	"condopark/internal/entities"
	"condopark/internal/repository"
)

// ValidationService answers the gate question "may this booking still enter?".
type ValidationService struct {
	Bookings repository.BookingRepository
	Slots    repository.SlotRepository
}

func NewValidationService(bookings repository.BookingRepository, slots repository.SlotRepository) *ValidationService {
	return &ValidationService{Bookings: bookings, Slots: slots}
}

// Validate is valid only while the booking is approved and now has not passed
// its end time. A checked_in booking is not valid: it already entered.
func (s *ValidationService) Validate(ctx context.Context, bookingID string, now time.Time) (*entities.ValidationResult, error) {
	booking, err := s.Bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	slot, err := s.Slots.Get(ctx, booking.SlotID)
	if err != nil {
		return nil, err
	}
	return &entities.ValidationResult{
		Booking:          *booking,
		Slot:             *slot,
		IsCurrentlyValid: !now.After(booking.EndTime) && booking.Status == entities.StatusApproved,
	}, nil
}
