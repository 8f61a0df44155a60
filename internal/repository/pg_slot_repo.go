package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
)

const slotColumns = `id, owner_id, tenant_id, tenant_name, tower, floor, slot_number, rate_type, rate,
	available_from, available_to, cutoff_label, owner_contact, created_at`

type postgresSlotRepository struct {
	db  *sql.DB
	ids IDGenerator
}

func NewPostgresSlotRepository(db *sql.DB, ids IDGenerator) SlotRepository {
	return &postgresSlotRepository{db: db, ids: ids}
}

func (r *postgresSlotRepository) Add(ctx context.Context, slot *entities.Slot) error {
	if slot.ID == "" {
		slot.ID = r.ids.NewID(PrefixSlot)
	}
	query := `
		INSERT INTO slots
		(id, owner_id, tenant_id, tenant_name, tower, floor, slot_number, rate_type, rate,
		 available_from, available_to, cutoff_label, owner_contact, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query,
		slot.ID,
		slot.OwnerID,
		slot.TenantID,
		slot.TenantName,
		slot.Tower,
		slot.Floor,
		slot.SlotNumber,
		string(slot.RateType),
		slot.Rate,
		slot.AvailableFrom,
		slot.AvailableTo,
		slot.CutoffLabel,
		slot.OwnerContact,
		slot.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("slot '" + slot.ID + "' already exists")
		}
		return fmt.Errorf("error inserting slot: %w", err)
	}
	return nil
}

func (r *postgresSlotRepository) Get(ctx context.Context, id string) (*entities.Slot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+slotColumns+` FROM slots WHERE id = $1`, id)
	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("slot", id)
		}
		return nil, fmt.Errorf("error querying slot: %w", err)
	}
	return s, nil
}

func (r *postgresSlotRepository) List(ctx context.Context, filter entities.SlotFilter) ([]entities.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.TenantID != "" {
		query += " AND tenant_id = $" + strconv.Itoa(idx)
		args = append(args, filter.TenantID)
		idx++
	}
	if filter.Interval != nil {
		query += " AND available_from <= $" + strconv.Itoa(idx)
		args = append(args, filter.Interval.Start)
		idx++
		query += " AND available_to >= $" + strconv.Itoa(idx)
		args = append(args, filter.Interval.End)
	}
	query += " ORDER BY seq"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying slots: %w", err)
	}
	defer rows.Close()

	slots := []entities.Slot{}
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning slot: %w", err)
		}
		slots = append(slots, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating slot rows: %w", err)
	}
	return slots, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*entities.Slot, error) {
	var (
		s        entities.Slot
		rateType string
	)
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.TenantID, &s.TenantName, &s.Tower, &s.Floor, &s.SlotNumber, &rateType, &s.Rate,
		&s.AvailableFrom, &s.AvailableTo, &s.CutoffLabel, &s.OwnerContact, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.RateType = entities.RateType(rateType)
	return &s, nil
}
