package repository

import (
	"context"
	"sync"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
)

type memorySlotRepository struct {
	mu    sync.RWMutex
	ids   IDGenerator
	order []string
	slots map[string]entities.Slot
}

func NewMemorySlotRepository(ids IDGenerator) SlotRepository {
	return &memorySlotRepository{
		ids:   ids,
		slots: make(map[string]entities.Slot),
	}
}

func (r *memorySlotRepository) Add(_ context.Context, slot *entities.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slot.ID == "" {
		slot.ID = r.ids.NewID(PrefixSlot)
	}
	if _, exists := r.slots[slot.ID]; exists {
		return apperrors.NewConflictError("slot '" + slot.ID + "' already exists")
	}
	r.slots[slot.ID] = *slot
	r.order = append(r.order, slot.ID)
	return nil
}

func (r *memorySlotRepository) Get(_ context.Context, id string) (*entities.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("slot", id)
	}
	return &s, nil
}

func (r *memorySlotRepository) List(_ context.Context, filter entities.SlotFilter) ([]entities.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Slot, 0, len(r.order))
	for _, id := range r.order {
		s := r.slots[id]
		if filter.Matches(s) {
			result = append(result, s)
		}
	}
	return result, nil
}
