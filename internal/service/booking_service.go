package service

import (
	"context"
	"fmt"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
	"condopark/internal/repository"
	"condopark/internal/utils"

	"github.com/sirupsen/logrus"
)

// BookingService is the booking ledger. It references slots by identifier and
// owns the booking status state machine.
type BookingService struct {
	Repo     repository.BookingRepository
	Slots    repository.SlotRepository
	policy   StatusPolicy
	notifier Notifier
	clock    Clock
}

func NewBookingService(repo repository.BookingRepository, slots repository.SlotRepository, policy StatusPolicy, notifier Notifier, clock Clock) *BookingService {
	if policy == nil {
		policy = FreeTransitions{}
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &BookingService{
		Repo:     repo,
		Slots:    slots,
		policy:   policy,
		notifier: notifier,
		clock:    clock,
	}
}

// CreateBooking records a pending booking for parker against req.SlotID.
// It does not check that the interval fits the slot window; callers run the
// Matcher first.
func (s *BookingService) CreateBooking(ctx context.Context, parker entities.Identity, req entities.BookingRequest) (*entities.Booking, error) {
	if parker.UserID == "" {
		return nil, apperrors.NewValidationError("parker_id", "is required")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := (entities.Interval{Start: req.StartTime, End: req.EndTime}).Validate(); err != nil {
		return nil, err
	}

	slot, err := s.Slots.Get(ctx, req.SlotID)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	booking := &entities.Booking{
		ParkerID:      parker.UserID,
		TenantID:      slot.TenantID,
		SlotID:        slot.ID,
		ParkerName:    req.ParkerName,
		PlateNumber:   req.PlateNumber,
		StartTime:     req.StartTime.UTC(),
		EndTime:       req.EndTime.UTC(),
		CutoffLabel:   req.CutoffLabel,
		Status:        entities.StatusPending,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Add(ctx, booking); err != nil {
		return nil, fmt.Errorf("could not create booking: %w", err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"slot_id":    booking.SlotID,
		"parker_id":  booking.ParkerID,
	}).Info("Booking created")

	s.notifier.BookingCreated(ctx, *booking, *slot)
	return booking, nil
}

// SetStatus assigns newStatus to the booking. Moving into approved sets the
// QR token to the booking id; no transition ever clears it. Setting the status
// the booking already has changes nothing and notifies nobody.
func (s *BookingService) SetStatus(ctx context.Context, bookingID string, newStatus string) (*entities.Booking, error) {
	status, ok := entities.ParseBookingStatus(newStatus)
	if !ok {
		return nil, apperrors.NewValidationError("new_status", fmt.Sprintf("invalid status '%s'", newStatus))
	}

	var previous entities.BookingStatus
	updated, err := s.Repo.Update(ctx, bookingID, func(b *entities.Booking) error {
		if err := s.policy.Allow(b.Status, status); err != nil {
			return err
		}
		previous = b.Status
		if previous == status {
			return nil
		}
		b.Status = status
		if status == entities.StatusApproved {
			qr := b.ID
			b.QRCodeData = &qr
		}
		b.UpdatedAt = s.clock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous == status {
		return updated, nil
	}

	utils.Logger.WithFields(logrus.Fields{
		"booking_id": updated.ID,
		"from":       previous,
		"to":         updated.Status,
	}).Info("Booking status updated")

	s.notifier.BookingStatusChanged(ctx, *updated)
	return updated, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (*entities.Booking, error) {
	return s.Repo.Get(ctx, id)
}

// ListAllBookings is the unfiltered audit view.
func (s *BookingService) ListAllBookings(ctx context.Context) ([]entities.Booking, error) {
	return s.Repo.List(ctx)
}

func (s *BookingService) ListParkerBookings(ctx context.Context, parkerID string) ([]entities.Booking, error) {
	return s.Repo.ListByParker(ctx, parkerID)
}
