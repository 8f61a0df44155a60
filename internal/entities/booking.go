package entities

import "time"

type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusApproved   BookingStatus = "approved"
	StatusRejected   BookingStatus = "rejected"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
)

var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusCheckedIn,
	StatusCheckedOut,
}

func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, st := range BookingStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

type Booking struct {
	ID            string        `json:"booking_id"`
	ParkerID      string        `json:"parker_id"`
	TenantID      string        `json:"tenant_id"`
	SlotID        string        `json:"slot_id"`
	ParkerName    string        `json:"parker_name"`
	PlateNumber   string        `json:"plate_number"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	CutoffLabel   string        `json:"cutoff_label,omitempty"`
	Status        BookingStatus `json:"status"`
	PaymentMethod string        `json:"payment_method"`
	QRCodeData    *string       `json:"qr_code_data"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (b Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

type BookingRequest struct {
	SlotID        string    `json:"slot_id" validate:"required"`
	StartTime     time.Time `json:"start_time" validate:"required"`
	EndTime       time.Time `json:"end_time" validate:"required"`
	ParkerName    string    `json:"parker_name" validate:"required"`
	PlateNumber   string    `json:"plate_number" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
	CutoffLabel   string    `json:"cutoff_label"`
}

type StatusUpdateRequest struct {
	Status string `json:"new_status" validate:"required"`
}

// ValidationResult is the gate checkpoint verdict for one booking.
type ValidationResult struct {
	Booking          Booking `json:"booking"`
	Slot             Slot    `json:"slot"`
	IsCurrentlyValid bool    `json:"is_currently_valid"`
}
