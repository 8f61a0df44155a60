package service_test

import (
	"context"
	"testing"
	"time"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
	"condopark/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEligibleSlotsContainment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	from, to := t0, t0.Add(12*time.Hour)

	slot, err := f.slots.RegisterSlot(ctx, ownerID, "T", descriptor(from, to))
	require.NoError(t, err)
	_, err = f.slots.RegisterSlot(ctx, ownerID, "OTHER", descriptor(from, to))
	require.NoError(t, err)

	for startH := -2; startH <= 13; startH++ {
		for length := 1; length <= 15; length++ {
			iv := entities.Interval{
				Start: t0.Add(time.Duration(startH) * time.Hour),
				End:   t0.Add(time.Duration(startH+length) * time.Hour),
			}
			got, err := service.FindEligibleSlots(ctx, f.slots, "T", iv)
			require.NoError(t, err)

			want := !from.After(iv.Start) && !to.Before(iv.End)
			if want {
				require.Len(t, got, 1, "interval %v", iv)
				assert.Equal(t, slot.ID, got[0].ID)
			} else {
				assert.Empty(t, got, "interval %v", iv)
			}
		}
	}
}

func TestFindEligibleSlotsKeepsInsertionOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	expensive := descriptor(t0, t0.Add(12*time.Hour))
	price := int64(900)
	expensive.Rate = &price
	a, err := f.slots.RegisterSlot(ctx, ownerID, "T", expensive)
	require.NoError(t, err)
	b, err := f.slots.RegisterSlot(ctx, ownerID, "T", descriptor(t0, t0.Add(12*time.Hour)))
	require.NoError(t, err)

	got, err := f.matcher.FindEligibleSlots(ctx, "T", entities.Interval{Start: t0.Add(time.Hour), End: t0.Add(2 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
}

func TestFindEligibleSlotsRequestBeforeAvailability(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.slots.RegisterSlot(ctx, ownerID, "T", descriptor(t0, t0.Add(12*time.Hour)))
	require.NoError(t, err)

	got, err := f.matcher.FindEligibleSlots(ctx, "T", entities.Interval{Start: t0.Add(-time.Hour), End: t0.Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindEligibleSlotsValidatesInput(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	var verr *apperrors.ValidationError

	_, err := f.matcher.FindEligibleSlots(ctx, "", entities.Interval{Start: t0, End: t0.Add(time.Hour)})
	assert.ErrorAs(t, err, &verr)

	_, err = f.matcher.FindEligibleSlots(ctx, "T", entities.Interval{Start: t0, End: t0})
	assert.ErrorAs(t, err, &verr)
}

func TestMatcherEligible(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	slot, err := f.slots.RegisterSlot(ctx, ownerID, "T", descriptor(t0, t0.Add(12*time.Hour)))
	require.NoError(t, err)

	ok, err := f.matcher.Eligible(ctx, slot.ID, entities.Interval{Start: t0.Add(time.Hour), End: t0.Add(10 * time.Hour)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.matcher.Eligible(ctx, slot.ID, entities.Interval{Start: t0.Add(11 * time.Hour), End: t0.Add(13 * time.Hour)})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.matcher.Eligible(ctx, "slot_nope", entities.Interval{Start: t0, End: t0.Add(time.Hour)})
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
