package repository

import (
	"context"

	"condopark/internal/entities"
)

// SlotRepository stores slot records. List preserves insertion order.
type SlotRepository interface {
	Add(ctx context.Context, slot *entities.Slot) error
	Get(ctx context.Context, id string) (*entities.Slot, error)
	List(ctx context.Context, filter entities.SlotFilter) ([]entities.Slot, error)
}

// BookingMutation edits a booking in place. Returning an error aborts the
// update and leaves the stored record untouched.
type BookingMutation func(b *entities.Booking) error

// BookingRepository stores booking records. Update runs mutate while holding
// the record exclusively, so concurrent status changes on one booking are serialized.
type BookingRepository interface {
	Add(ctx context.Context, booking *entities.Booking) error
	Get(ctx context.Context, id string) (*entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
	ListByParker(ctx context.Context, parkerID string) ([]entities.Booking, error)
	ListByStatus(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error)
	Update(ctx context.Context, id string, mutate BookingMutation) (*entities.Booking, error)
}

// UserRepository is the identity provider's users collection keyed by e-mail.
// GetByEmail returns nil, nil when no user has that address.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) error
}
