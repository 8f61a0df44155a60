package repository

import (
	"context"
	"fmt"
	"time"

	"condopark/internal/entities"
)

const DemoTenant = "prisma_residences"

// SeedDemo loads the demo condominium: one owner, one guard, one parker, a
// single overnight slot and two bookings against it (one approved, one pending).
// Every demo user shares passwordHash.
func SeedDemo(ctx context.Context, users UserRepository, slots SlotRepository, bookings BookingRepository, passwordHash string, now time.Time) error {
	tenant := DemoTenant
	demoUsers := []entities.User{
		{ID: "user_owner_001", Name: "Maria Santos", Email: "owner@example.com", Role: entities.RoleOwner, TenantID: &tenant},
		{ID: "user_guard_001", Name: "Juan Dela Cruz", Email: "guard@example.com", Role: entities.RoleGuard, TenantID: &tenant},
		{ID: "user_parker_001", Name: "Liezl Maigue", Email: "parker@example.com", Role: entities.RoleParker},
	}
	for i := range demoUsers {
		demoUsers[i].PasswordHash = passwordHash
		demoUsers[i].CreatedAt = now
		if err := users.Create(ctx, &demoUsers[i]); err != nil {
			return fmt.Errorf("seeding user %s: %w", demoUsers[i].Email, err)
		}
	}

	slot := entities.Slot{
		ID:            "slot_001",
		OwnerID:       "user_owner_001",
		TenantID:      tenant,
		TenantName:    "Prisma Residences",
		Tower:         "Tower B",
		Floor:         "B2",
		SlotNumber:    "P37",
		RateType:      entities.RateOvernightFlat,
		Rate:          300,
		AvailableFrom: now.Add(2 * time.Hour),
		AvailableTo:   now.Add(14 * time.Hour),
		CutoffLabel:   "Good until tomorrow 7:00 AM (morning)",
		OwnerContact:  "0917-000-0000",
		CreatedAt:     now,
	}
	if err := slots.Add(ctx, &slot); err != nil {
		return fmt.Errorf("seeding slot: %w", err)
	}

	approvedID := "book_sample_approved"
	demoBookings := []entities.Booking{
		{
			ID:            approvedID,
			ParkerID:      "user_parker_001",
			TenantID:      tenant,
			SlotID:        slot.ID,
			ParkerName:    "Juan dela Cruz",
			PlateNumber:   "AAA 1111",
			StartTime:     now.Add(3 * time.Hour),
			EndTime:       now.Add(12 * time.Hour),
			CutoffLabel:   "Ends tomorrow 7:00 AM (morning)",
			Status:        entities.StatusApproved,
			PaymentMethod: "GCash on arrival",
			QRCodeData:    &approvedID,
		},
		{
			ID:            "book_sample_pending",
			ParkerID:      "user_parker_001",
			TenantID:      tenant,
			SlotID:        slot.ID,
			ParkerName:    "Maria Santos",
			PlateNumber:   "BBB 2222",
			StartTime:     now.Add(24 * time.Hour),
			EndTime:       now.Add(32 * time.Hour),
			CutoffLabel:   "Ends day after tomorrow 7:00 AM (morning)",
			Status:        entities.StatusPending,
			PaymentMethod: "Cash on arrival",
		},
	}
	for i := range demoBookings {
		demoBookings[i].CreatedAt = now
		demoBookings[i].UpdatedAt = now
		if err := bookings.Add(ctx, &demoBookings[i]); err != nil {
			return fmt.Errorf("seeding booking %s: %w", demoBookings[i].ID, err)
		}
	}
	return nil
}
