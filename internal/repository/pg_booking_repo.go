package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
)

const bookingColumns = `id, parker_id, tenant_id, slot_id, parker_name, plate_number, start_time, end_time,
	cutoff_label, status, payment_method, qr_code_data, created_at, updated_at`

type postgresBookingRepository struct {
	db  *sql.DB
	ids IDGenerator
}

func NewPostgresBookingRepository(db *sql.DB, ids IDGenerator) BookingRepository {
	return &postgresBookingRepository{db: db, ids: ids}
}

func (r *postgresBookingRepository) Add(ctx context.Context, b *entities.Booking) error {
	if b.ID == "" {
		b.ID = r.ids.NewID(PrefixBooking)
	}
	query := `
		INSERT INTO bookings
		(id, parker_id, tenant_id, slot_id, parker_name, plate_number, start_time, end_time,
		 cutoff_label, status, payment_method, qr_code_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.ParkerID,
		b.TenantID,
		b.SlotID,
		b.ParkerName,
		b.PlateNumber,
		b.StartTime,
		b.EndTime,
		b.CutoffLabel,
		string(b.Status),
		b.PaymentMethod,
		nullString(b.QRCodeData),
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("booking '" + b.ID + "' already exists")
		}
		if isForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("slot", b.SlotID)
		}
		return fmt.Errorf("error inserting booking: %w", err)
	}
	return nil
}

func (r *postgresBookingRepository) Get(ctx context.Context, id string) (*entities.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("booking", id)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return b, nil
}

func (r *postgresBookingRepository) List(ctx context.Context) ([]entities.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY seq`)
}

func (r *postgresBookingRepository) ListByParker(ctx context.Context, parkerID string) ([]entities.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE parker_id = $1 ORDER BY seq`, parkerID)
}

func (r *postgresBookingRepository) ListByStatus(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE status = $1 ORDER BY seq`, string(status))
}

func (r *postgresBookingRepository) Update(ctx context.Context, id string, mutate BookingMutation) (*entities.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("booking", id)
		}
		return nil, fmt.Errorf("error locking booking: %w", err)
	}

	if err := mutate(b); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE bookings
		SET status = $2, qr_code_data = $3, updated_at = $4
		WHERE id = $1`,
		b.ID, string(b.Status), nullString(b.QRCodeData), b.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating booking %s: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing booking %s: %w", id, err)
	}
	return b, nil
}

func (r *postgresBookingRepository) query(ctx context.Context, query string, args ...interface{}) ([]entities.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	bookings := []entities.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

func scanBooking(row rowScanner) (*entities.Booking, error) {
	var (
		b      entities.Booking
		status string
		qr     sql.NullString
	)
	err := row.Scan(
		&b.ID, &b.ParkerID, &b.TenantID, &b.SlotID, &b.ParkerName, &b.PlateNumber, &b.StartTime, &b.EndTime,
		&b.CutoffLabel, &status, &b.PaymentMethod, &qr, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Status = entities.BookingStatus(status)
	if qr.Valid {
		v := qr.String
		b.QRCodeData = &v
	}
	return &b, nil
}
