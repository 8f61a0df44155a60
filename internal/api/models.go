package api

import "condopark/internal/entities"

// Slots
type RegisterSlotRequest struct {
	TenantID string `json:"tenant_id"`
	entities.SlotDescriptor
}

type SlotResponse struct {
	Slot entities.Slot `json:"slot"`
}

type SlotsResponse struct {
	Slots []entities.Slot `json:"slots"`
}

// Bookings
type BookingResponse struct {
	Booking entities.Booking `json:"booking"`
}

type BookingsResponse struct {
	Bookings []entities.Booking `json:"bookings"`
}

// Auth
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}
