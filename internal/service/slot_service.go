package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
	"condopark/internal/repository"
	"condopark/internal/utils"

	"github.com/sirupsen/logrus"
)

// SlotService is the slot registry: it owns slot records and the
// availability-window containment query.
type SlotService struct {
	Repo  repository.SlotRepository
	clock Clock
}

func NewSlotService(repo repository.SlotRepository, clock Clock) *SlotService {
	return &SlotService{Repo: repo, clock: clock}
}

// RegisterSlot validates the descriptor and stores a new slot owned by owner.
// Overlapping windows for the same physical space are accepted.
func (s *SlotService) RegisterSlot(ctx context.Context, owner entities.Identity, tenantID string, d entities.SlotDescriptor) (*entities.Slot, error) {
	if owner.UserID == "" {
		return nil, apperrors.NewValidationError("owner_id", "is required")
	}
	if tenantID == "" {
		return nil, apperrors.NewValidationError("tenant_id", "is required")
	}
	d.RateType = utils.NormalizeRateType(d.RateType)
	if err := utils.ValidateStruct(d); err != nil {
		return nil, err
	}
	if !strings.ContainsFunc(string(d.RateType), unicode.IsLetter) {
		return nil, apperrors.NewValidationError("rate_type", "is required")
	}
	if !d.AvailableFrom.Before(d.AvailableTo) {
		return nil, apperrors.NewValidationError("available_to", "must be after available_from")
	}

	slot := &entities.Slot{
		OwnerID:       owner.UserID,
		TenantID:      tenantID,
		TenantName:    d.TenantName,
		Tower:         d.Tower,
		Floor:         d.Floor,
		SlotNumber:    d.SlotNumber,
		RateType:      d.RateType,
		Rate:          *d.Rate,
		AvailableFrom: d.AvailableFrom.UTC(),
		AvailableTo:   d.AvailableTo.UTC(),
		CutoffLabel:   d.CutoffLabel,
		OwnerContact:  d.OwnerContact,
		CreatedAt:     s.clock(),
	}
	if err := s.Repo.Add(ctx, slot); err != nil {
		return nil, fmt.Errorf("could not register slot: %w", err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"slot_id":   slot.ID,
		"owner_id":  slot.OwnerID,
		"tenant_id": slot.TenantID,
	}).Info("Slot registered")
	return slot, nil
}

func (s *SlotService) GetSlot(ctx context.Context, id string) (*entities.Slot, error) {
	return s.Repo.Get(ctx, id)
}

// ListSlots returns slots in registration order. When the filter carries an
// interval only slots whose window fully contains it are returned.
func (s *SlotService) ListSlots(ctx context.Context, filter entities.SlotFilter) ([]entities.Slot, error) {
	if filter.Interval != nil {
		if err := filter.Interval.Validate(); err != nil {
			return nil, err
		}
	}
	return s.Repo.List(ctx, filter)
}
