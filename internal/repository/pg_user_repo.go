package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
	"condopark/internal/utils"

	"github.com/lib/pq"
)

type postgresUserRepository struct {
	db  *sql.DB
	ids IDGenerator
}

func NewPostgresUserRepository(db *sql.DB, ids IDGenerator) UserRepository {
	return &postgresUserRepository{db: db, ids: ids}
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, role, tenant_id, created_at FROM users WHERE email = $1",
		utils.NormalizeEmail(email))
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return u, nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, role, tenant_id, created_at FROM users WHERE id = $1", id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user", id)
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return u, nil
}

func (r *postgresUserRepository) Create(ctx context.Context, user *entities.User) error {
	user.Email = utils.NormalizeEmail(user.Email)
	if user.ID == "" {
		user.ID = r.ids.NewID(PrefixUser + "_" + string(user.Role))
	}
	query := "INSERT INTO users (id, name, email, password_hash, role, tenant_id, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)"
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role), nullString(user.TenantID), user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("email already exists")
		}
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

func scanUser(row rowScanner) (*entities.User, error) {
	var (
		u      entities.User
		role   string
		tenant sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &tenant, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = entities.Role(role)
	if tenant.Valid {
		t := tenant.String
		u.TenantID = &t
	}
	return &u, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
