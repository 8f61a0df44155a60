package repository

import (
	"context"
	"sync"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
)

type memoryBookingRepository struct {
	mu       sync.RWMutex
	ids      IDGenerator
	order    []string
	bookings map[string]entities.Booking
}

func NewMemoryBookingRepository(ids IDGenerator) BookingRepository {
	return &memoryBookingRepository{
		ids:      ids,
		bookings: make(map[string]entities.Booking),
	}
}

func (r *memoryBookingRepository) Add(_ context.Context, booking *entities.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == "" {
		booking.ID = r.ids.NewID(PrefixBooking)
	}
	if _, exists := r.bookings[booking.ID]; exists {
		return apperrors.NewConflictError("booking '" + booking.ID + "' already exists")
	}
	r.bookings[booking.ID] = cloneBooking(*booking)
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *memoryBookingRepository) Get(_ context.Context, id string) (*entities.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("booking", id)
	}
	b = cloneBooking(b)
	return &b, nil
}

func (r *memoryBookingRepository) List(_ context.Context) ([]entities.Booking, error) {
	return r.filter(func(entities.Booking) bool { return true }), nil
}

func (r *memoryBookingRepository) ListByParker(_ context.Context, parkerID string) ([]entities.Booking, error) {
	return r.filter(func(b entities.Booking) bool { return b.ParkerID == parkerID }), nil
}

func (r *memoryBookingRepository) ListByStatus(_ context.Context, status entities.BookingStatus) ([]entities.Booking, error) {
	return r.filter(func(b entities.Booking) bool { return b.Status == status }), nil
}

func (r *memoryBookingRepository) Update(_ context.Context, id string, mutate BookingMutation) (*entities.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.bookings[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("booking", id)
	}
	working := cloneBooking(current)
	if err := mutate(&working); err != nil {
		return nil, err
	}
	r.bookings[id] = working
	out := cloneBooking(working)
	return &out, nil
}

func (r *memoryBookingRepository) filter(keep func(entities.Booking) bool) []entities.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Booking, 0, len(r.order))
	for _, id := range r.order {
		b := r.bookings[id]
		if keep(b) {
			result = append(result, cloneBooking(b))
		}
	}
	return result
}

// cloneBooking copies the QR token pointer so callers never alias stored state.
func cloneBooking(b entities.Booking) entities.Booking {
	if b.QRCodeData != nil {
		qr := *b.QRCodeData
		b.QRCodeData = &qr
	}
	return b
}
