package service_test

import (
	"context"
	"testing"
	"time"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSlot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	slot, err := f.slots.RegisterSlot(ctx, ownerID, "prisma_residences", descriptor(t0, t0.Add(12*time.Hour)))
	require.NoError(t, err)
	assert.NotEmpty(t, slot.ID)
	assert.Equal(t, "user_owner_001", slot.OwnerID)
	assert.Equal(t, "prisma_residences", slot.TenantID)
	assert.Equal(t, int64(300), slot.Rate)
	assert.Equal(t, t0, slot.CreatedAt)

	got, err := f.slots.GetSlot(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, *slot, *got)
}

func TestRegisterSlotAllowsOverlappingWindows(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, err := f.slots.RegisterSlot(ctx, ownerID, "T", descriptor(t0, t0.Add(12*time.Hour)))
	require.NoError(t, err)
	b, err := f.slots.RegisterSlot(ctx, ownerID, "T", descriptor(t0.Add(time.Hour), t0.Add(6*time.Hour)))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	all, err := f.slots.ListSlots(ctx, entities.SlotFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRegisterSlotRejectsInvalidInput(t *testing.T) {
	negative := int64(-1)

	for _, tc := range []struct {
		name   string
		tenant string
		mutate func(d *entities.SlotDescriptor)
		field  string
	}{
		{
			name:   "window starts at its end",
			tenant: "T",
			mutate: func(d *entities.SlotDescriptor) { d.AvailableTo = d.AvailableFrom },
			field:  "available_to",
		},
		{
			name:   "window inverted",
			tenant: "T",
			mutate: func(d *entities.SlotDescriptor) { d.AvailableTo = d.AvailableFrom.Add(-time.Hour) },
			field:  "available_to",
		},
		{
			name:   "missing tower",
			tenant: "T",
			mutate: func(d *entities.SlotDescriptor) { d.Tower = "" },
			field:  "tower",
		},
		{
			name:   "missing rate",
			tenant: "T",
			mutate: func(d *entities.SlotDescriptor) { d.Rate = nil },
			field:  "rate",
		},
		{
			name:   "negative rate",
			tenant: "T",
			mutate: func(d *entities.SlotDescriptor) { d.Rate = &negative },
			field:  "rate",
		},
		{
			name:   "missing cutoff label",
			tenant: "T",
			mutate: func(d *entities.SlotDescriptor) { d.CutoffLabel = "" },
			field:  "cutoff_label",
		},
		{
			name:   "missing availability start",
			tenant: "T",
			mutate: func(d *entities.SlotDescriptor) { d.AvailableFrom = time.Time{} },
			field:  "available_from",
		},
		{
			name:   "blank rate type",
			tenant: "T",
			mutate: func(d *entities.SlotDescriptor) { d.RateType = "   " },
			field:  "rate_type",
		},
		{
			name:   "tab rate type",
			tenant: "T",
			mutate: func(d *entities.SlotDescriptor) { d.RateType = "\t" },
			field:  "rate_type",
		},
		{
			name:   "punctuation rate type",
			tenant: "T",
			mutate: func(d *entities.SlotDescriptor) { d.RateType = "-" },
			field:  "rate_type",
		},
		{
			name:   "missing tenant",
			tenant: "",
			mutate: func(*entities.SlotDescriptor) {},
			field:  "tenant_id",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			ctx := context.Background()
			d := descriptor(t0, t0.Add(12*time.Hour))
			tc.mutate(&d)

			_, err := f.slots.RegisterSlot(ctx, ownerID, tc.tenant, d)
			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)

			all, err := f.slots.ListSlots(ctx, entities.SlotFilter{})
			require.NoError(t, err)
			assert.Empty(t, all, "registry size must be unchanged")
		})
	}
}

func TestRegisterSlotNormalizesRateType(t *testing.T) {
	f := newFixture()
	d := descriptor(t0, t0.Add(time.Hour))
	d.RateType = "Hourly"

	slot, err := f.slots.RegisterSlot(context.Background(), ownerID, "T", d)
	require.NoError(t, err)
	assert.Equal(t, entities.RateHourly, slot.RateType)
}

func TestGetSlotNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.slots.GetSlot(context.Background(), "slot_missing")
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "slot", nf.Resource)
}

func TestListSlotsFiltersByTenantAndContainment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	inT, err := f.slots.RegisterSlot(ctx, ownerID, "T", descriptor(t0, t0.Add(12*time.Hour)))
	require.NoError(t, err)
	_, err = f.slots.RegisterSlot(ctx, ownerID, "OTHER", descriptor(t0, t0.Add(12*time.Hour)))
	require.NoError(t, err)
	short, err := f.slots.RegisterSlot(ctx, ownerID, "T", descriptor(t0.Add(2*time.Hour), t0.Add(4*time.Hour)))
	require.NoError(t, err)

	byTenant, err := f.slots.ListSlots(ctx, entities.SlotFilter{TenantID: "T"})
	require.NoError(t, err)
	require.Len(t, byTenant, 2)
	assert.Equal(t, inT.ID, byTenant[0].ID)
	assert.Equal(t, short.ID, byTenant[1].ID)

	iv := entities.Interval{Start: t0.Add(time.Hour), End: t0.Add(10 * time.Hour)}
	contained, err := f.slots.ListSlots(ctx, entities.SlotFilter{TenantID: "T", Interval: &iv})
	require.NoError(t, err)
	require.Len(t, contained, 1)
	assert.Equal(t, inT.ID, contained[0].ID)

	bad := entities.Interval{Start: t0.Add(time.Hour), End: t0}
	_, err = f.slots.ListSlots(ctx, entities.SlotFilter{Interval: &bad})
	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}
