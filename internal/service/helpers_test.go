package service_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"condopark/internal/entities"
	"condopark/internal/repository"
	"condopark/internal/service"
)

var t0 = time.Date(2026, time.March, 1, 18, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) service.Clock {
	return func() time.Time { return t }
}

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s_%03d", prefix, g.n)
}

type recordingNotifier struct {
	created []string
	changed []entities.BookingStatus
}

func (n *recordingNotifier) BookingCreated(_ context.Context, b entities.Booking, _ entities.Slot) {
	n.created = append(n.created, b.ID)
}

func (n *recordingNotifier) BookingStatusChanged(_ context.Context, b entities.Booking) {
	n.changed = append(n.changed, b.Status)
}

type fixture struct {
	slotRepo    repository.SlotRepository
	bookingRepo repository.BookingRepository
	slots       *service.SlotService
	bookings    *service.BookingService
	matcher     *service.Matcher
	validation  *service.ValidationService
	notifier    *recordingNotifier
}

func newFixture() *fixture {
	ids := &seqIDs{}
	clock := fixedClock(t0)
	f := &fixture{
		slotRepo:    repository.NewMemorySlotRepository(ids),
		bookingRepo: repository.NewMemoryBookingRepository(ids),
		notifier:    &recordingNotifier{},
	}
	f.slots = service.NewSlotService(f.slotRepo, clock)
	f.bookings = service.NewBookingService(f.bookingRepo, f.slotRepo, service.FreeTransitions{}, f.notifier, clock)
	f.matcher = service.NewMatcher(f.slots)
	f.validation = service.NewValidationService(f.bookingRepo, f.slotRepo)
	return f
}

var (
	ownerID  = entities.Identity{UserID: "user_owner_001", Role: entities.RoleOwner}
	parkerID = entities.Identity{UserID: "user_parker_001", Role: entities.RoleParker}
)

func descriptor(from, to time.Time) entities.SlotDescriptor {
	rate := int64(300)
	return entities.SlotDescriptor{
		TenantName:    "Prisma Residences",
		Tower:         "Tower B",
		Floor:         "B2",
		SlotNumber:    "P37",
		RateType:      entities.RateOvernightFlat,
		Rate:          &rate,
		AvailableFrom: from,
		AvailableTo:   to,
		CutoffLabel:   "Good until tomorrow 7:00 AM (morning)",
		OwnerContact:  "0917-000-0000",
	}
}

func bookingRequest(slotID string, start, end time.Time) entities.BookingRequest {
	return entities.BookingRequest{
		SlotID:        slotID,
		StartTime:     start,
		EndTime:       end,
		ParkerName:    "Liezl Maigue",
		PlateNumber:   "AAA 1111",
		PaymentMethod: "GCash on arrival",
	}
}
