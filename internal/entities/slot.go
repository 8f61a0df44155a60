package entities

import "time"

type RateType string

const (
	RateOvernightFlat RateType = "overnight_flat"
	RateHourly        RateType = "hourly"
	RateDaily         RateType = "daily"
)

type Slot struct {
	ID            string    `json:"slot_id"`
	OwnerID       string    `json:"owner_id"`
	TenantID      string    `json:"tenant_id"`
	TenantName    string    `json:"tenant_name"`
	Tower         string    `json:"tower"`
	Floor         string    `json:"floor"`
	SlotNumber    string    `json:"slot_number"`
	RateType      RateType  `json:"rate_type"`
	Rate          int64     `json:"rate"`
	AvailableFrom time.Time `json:"available_from"`
	AvailableTo   time.Time `json:"available_to"`
	CutoffLabel   string    `json:"cutoff_label"`
	OwnerContact  string    `json:"owner_contact"`
	CreatedAt     time.Time `json:"created_at"`
}

func (s Slot) Window() Interval {
	return Interval{Start: s.AvailableFrom, End: s.AvailableTo}
}

// SlotDescriptor is the owner-supplied part of a slot. Rate is a pointer so a
// missing rate can be told apart from a free slot.
type SlotDescriptor struct {
	TenantName    string    `json:"tenant_name" validate:"required"`
	Tower         string    `json:"tower" validate:"required"`
	Floor         string    `json:"floor" validate:"required"`
	SlotNumber    string    `json:"slot_number" validate:"required"`
	RateType      RateType  `json:"rate_type" validate:"required"`
	Rate          *int64    `json:"rate" validate:"required,gte=0"`
	AvailableFrom time.Time `json:"available_from" validate:"required"`
	AvailableTo   time.Time `json:"available_to" validate:"required"`
	CutoffLabel   string    `json:"cutoff_label" validate:"required"`
	OwnerContact  string    `json:"owner_contact" validate:"required"`
}

// SlotFilter narrows a slot listing. An empty TenantID matches every tenant;
// a nil Interval disables the containment check.
type SlotFilter struct {
	TenantID string
	Interval *Interval
}

func (f SlotFilter) Matches(s Slot) bool {
	if f.TenantID != "" && s.TenantID != f.TenantID {
		return false
	}
	if f.Interval != nil && !s.Window().Contains(*f.Interval) {
		return false
	}
	return true
}
