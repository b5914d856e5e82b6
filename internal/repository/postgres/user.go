package postgres

import (
	"context"
	"database/sql"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, user_type, name, email, phone, address, password_hash, status, created_on`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.UserType, &u.Name, &u.Email, &u.Phone, &u.Address, &u.PasswordHash, &u.Status, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.Status == "" {
		u.Status = domain.UserStatusActive
	}
	query := `INSERT INTO users (user_type, name, email, phone, address, password_hash, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_on`
	logger.DatabaseCall("INSERT", "users", "userType", u.UserType, "email", u.Email)
	err := r.db.QueryRowContext(ctx, query, u.UserType, u.Name, u.Email, u.Phone, u.Address, u.PasswordHash, u.Status).Scan(&u.ID, &u.CreatedOn)
	logger.DatabaseResult("INSERT", 1, err, "userID", u.ID)
	return mapError(err, "user")
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "user")
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, mapError(err, "user")
	}
	return u, nil
}

// Delete removes the account. Dependent rows go with it through ON DELETE CASCADE.
func (r *userRepository) Delete(ctx context.Context, id int32) error {
	logger.DatabaseCall("DELETE", "users", "userID", id)
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "userID", id)
		return err
	}
	return requireRows(result, "user")
}

func (r *userRepository) UpdateProfile(ctx context.Context, u *domain.User) error {
	logger.DatabaseCall("UPDATE", "users", "userID", u.ID)
	result, err := r.db.ExecContext(ctx, `UPDATE users SET name = $1, phone = $2, address = $3 WHERE id = $4`,
		u.Name, u.Phone, u.Address, u.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "userID", u.ID)
		return err
	}
	return requireRows(result, "user")
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int32, hash string) error {
	logger.DatabaseCall("UPDATE", "users", "userID", id, "column", "password_hash")
	result, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return err
	}
	return requireRows(result, "user")
}

func (r *userRepository) SetStatus(ctx context.Context, id int32, status domain.UserStatus) error {
	logger.DatabaseCall("UPDATE", "users", "userID", id, "status", status)
	result, err := r.db.ExecContext(ctx, `UPDATE users SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "userID", id)
		return err
	}
	return requireRows(result, "user")
}

func (r *userRepository) HasAdmin(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE user_type = 'ADMIN')`).Scan(&exists)
	return exists, err
}

func (r *userRepository) AddRentalHistory(ctx context.Context, h *domain.RentalHistory) error {
	query := `INSERT INTO rental_history (tenant_id, property_id, booking_id) VALUES ($1, $2, $3) RETURNING id, started_on`
	return r.db.QueryRowContext(ctx, query, h.TenantID, h.PropertyID, h.BookingID).Scan(&h.ID, &h.StartedOn)
}

func (r *userRepository) DeleteRentalHistory(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rental_history WHERE id = $1`, id)
	return err
}

func (r *userRepository) HasRented(ctx context.Context, tenantID, propertyID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM rental_history WHERE tenant_id = $1 AND property_id = $2)`
	err := r.db.QueryRowContext(ctx, query, tenantID, propertyID).Scan(&exists)
	return exists, err
}
