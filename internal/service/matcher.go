package service

import (
	"context"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
)

// SlotLister is the read side of the slot registry the matcher needs.
type SlotLister interface {
	ListSlots(ctx context.Context, filter entities.SlotFilter) ([]entities.Slot, error)
}

// FindEligibleSlots returns the tenant's slots whose availability window fully
// contains interval, in registry insertion order. It has no side effects.
func FindEligibleSlots(ctx context.Context, slots SlotLister, tenantID string, interval entities.Interval) ([]entities.Slot, error) {
	if tenantID == "" {
		return nil, apperrors.NewValidationError("tenant_id", "is required")
	}
	if err := interval.Validate(); err != nil {
		return nil, err
	}
	return slots.ListSlots(ctx, entities.SlotFilter{TenantID: tenantID, Interval: &interval})
}

// Matcher binds FindEligibleSlots to a registry for the transport layer.
type Matcher struct {
	Slots *SlotService
}

func NewMatcher(slots *SlotService) *Matcher {
	return &Matcher{Slots: slots}
}

func (m *Matcher) FindEligibleSlots(ctx context.Context, tenantID string, interval entities.Interval) ([]entities.Slot, error) {
	return FindEligibleSlots(ctx, m.Slots, tenantID, interval)
}

// Eligible reports whether slotID is among the eligible slots of its own tenant
// for interval. Unknown slots yield a NotFoundError.
func (m *Matcher) Eligible(ctx context.Context, slotID string, interval entities.Interval) (bool, error) {
	slot, err := m.Slots.GetSlot(ctx, slotID)
	if err != nil {
		return false, err
	}
	eligible, err := m.FindEligibleSlots(ctx, slot.TenantID, interval)
	if err != nil {
		return false, err
	}
	for _, s := range eligible {
		if s.ID == slotID {
			return true, nil
		}
	}
	return false, nil
}
