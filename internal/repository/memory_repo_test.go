package repository_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
	"condopark/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, time.March, 1, 18, 0, 0, 0, time.UTC)

func TestUUIDGenerator(t *testing.T) {
	g := repository.UUIDGenerator{}
	a, b := g.NewID(repository.PrefixSlot), g.NewID(repository.PrefixSlot)
	assert.True(t, strings.HasPrefix(a, "slot_"))
	assert.NotEqual(t, a, b)
}

func TestMemorySlotRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemorySlotRepository(repository.UUIDGenerator{})

	tenants := []string{"A", "B", "A"}
	var ids []string
	for i, tenant := range tenants {
		s := &entities.Slot{
			TenantID:      tenant,
			SlotNumber:    fmt.Sprintf("P%d", i),
			AvailableFrom: t0,
			AvailableTo:   t0.Add(time.Duration(i+1) * time.Hour),
		}
		require.NoError(t, repo.Add(ctx, s))
		require.NotEmpty(t, s.ID)
		ids = append(ids, s.ID)
	}

	got, err := repo.Get(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "B", got.TenantID)

	_, err = repo.Get(ctx, "slot_missing")
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)

	dup := &entities.Slot{ID: ids[0]}
	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, repo.Add(ctx, dup), &conflict)

	all, err := repo.List(ctx, entities.SlotFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := range ids {
		assert.Equal(t, ids[i], all[i].ID)
	}

	tenantA, err := repo.List(ctx, entities.SlotFilter{TenantID: "A"})
	require.NoError(t, err)
	require.Len(t, tenantA, 2)
	assert.Equal(t, ids[0], tenantA[0].ID)
	assert.Equal(t, ids[2], tenantA[1].ID)

	iv := entities.Interval{Start: t0, End: t0.Add(2 * time.Hour)}
	fits, err := repo.List(ctx, entities.SlotFilter{TenantID: "A", Interval: &iv})
	require.NoError(t, err)
	require.Len(t, fits, 1)
	assert.Equal(t, ids[2], fits[0].ID)
}

func TestMemoryBookingRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryBookingRepository(repository.UUIDGenerator{})

	b := &entities.Booking{ParkerID: "user_parker_001", SlotID: "slot_001", Status: entities.StatusPending}
	require.NoError(t, repo.Add(ctx, b))

	_, err := repo.Update(ctx, b.ID, func(bk *entities.Booking) error {
		bk.Status = entities.StatusRejected
		return apperrors.NewValidationError("new_status", "nope")
	})
	require.Error(t, err)

	stored, err := repo.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, stored.Status)

	updated, err := repo.Update(ctx, b.ID, func(bk *entities.Booking) error {
		bk.Status = entities.StatusApproved
		qr := bk.ID
		bk.QRCodeData = &qr
		return nil
	})
	require.NoError(t, err)
	*updated.QRCodeData = "tampered"

	stored, err = repo.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusApproved, stored.Status)
	assert.Equal(t, b.ID, *stored.QRCodeData)

	_, err = repo.Update(ctx, "book_missing", func(*entities.Booking) error { return nil })
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestMemoryBookingRepositoryConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryBookingRepository(repository.UUIDGenerator{})
	b := &entities.Booking{Status: entities.StatusPending}
	require.NoError(t, repo.Add(ctx, b))

	const workers = 50
	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, b.ID, func(bk *entities.Booking) error {
				counter++
				bk.PlateNumber = fmt.Sprintf("%d", counter)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := repo.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d", workers), stored.PlateNumber)
}

func TestMemoryBookingRepositoryListings(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryBookingRepository(repository.UUIDGenerator{})

	for _, b := range []*entities.Booking{
		{ParkerID: "p1", Status: entities.StatusPending},
		{ParkerID: "p2", Status: entities.StatusApproved},
		{ParkerID: "p1", Status: entities.StatusApproved},
	} {
		require.NoError(t, repo.Add(ctx, b))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.ListByParker(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, entities.StatusPending, mine[0].Status)

	approved, err := repo.ListByStatus(ctx, entities.StatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 2)
	assert.Equal(t, "p2", approved[0].ParkerID)
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryUserRepository(repository.UUIDGenerator{})

	u := &entities.User{Name: "G", Email: " Guard@Example.com ", Role: entities.RoleGuard}
	require.NoError(t, repo.Create(ctx, u))
	assert.True(t, strings.HasPrefix(u.ID, "user_guard_"))
	assert.Equal(t, "guard@example.com", u.Email)

	found, err := repo.GetByEmail(ctx, "GUARD@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID, found.ID)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "G", byID.Name)

	_, err = repo.GetByID(ctx, "user_missing")
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)

	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, repo.Create(ctx, &entities.User{Email: "guard@example.com"}), &conflict)
}

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	ids := repository.UUIDGenerator{}
	users := repository.NewMemoryUserRepository(ids)
	slots := repository.NewMemorySlotRepository(ids)
	bookings := repository.NewMemoryBookingRepository(ids)

	require.NoError(t, repository.SeedDemo(ctx, users, slots, bookings, "hash", t0))

	owner, err := users.GetByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, "user_owner_001", owner.ID)
	assert.Equal(t, repository.DemoTenant, owner.Identity().Tenant())

	slot, err := slots.Get(ctx, "slot_001")
	require.NoError(t, err)
	assert.Equal(t, t0.Add(2*time.Hour), slot.AvailableFrom)
	assert.Equal(t, t0.Add(14*time.Hour), slot.AvailableTo)

	approved, err := bookings.Get(ctx, "book_sample_approved")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusApproved, approved.Status)
	require.NotNil(t, approved.QRCodeData)
	assert.Equal(t, approved.ID, *approved.QRCodeData)

	pending, err := bookings.Get(ctx, "book_sample_pending")
	require.NoError(t, err)
	assert.Nil(t, pending.QRCodeData)

	err = repository.SeedDemo(ctx, users, slots, bookings, "hash", t0)
	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflict)
}
