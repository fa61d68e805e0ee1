package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	intconfig "travelbooking/internal/config"
	intdb "travelbooking/internal/db"
	"travelbooking/internal/domain"
	"travelbooking/internal/domain/models"

	"github.com/google/uuid"
)

const usersTable = "users"

const usersDDL = `CREATE TABLE IF NOT EXISTS users (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// UserRepository stores site accounts keyed by email.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) EnsureSchema(ctx context.Context) error {
	db := r.db()
	if db == nil {
		return domain.StorageError{Op: "ensure users schema", Err: errNoDB}
	}
	if intdb.HasTable(ctx, db, usersTable) {
		return nil
	}
	if _, err := db.ExecContext(ctx, usersDDL); err != nil {
		return domain.StorageError{Op: "ensure users schema", Err: err}
	}
	return nil
}

// Create inserts a user whose PasswordHash is already computed.
func (r UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	u.Email = strings.TrimSpace(u.Email)
	u.Name = strings.TrimSpace(u.Name)
	if u.Email == "" {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "is required"}
	}
	if u.PasswordHash == "" {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "is required"}
	}
	if u.ID == "" {
		u.ID = "USR-" + uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	db := r.db()
	if db == nil {
		return models.User{}, domain.StorageError{Op: "create user", Err: errNoDB}
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		if intdb.IsDuplicateKey(err) {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return models.User{}, domain.StorageError{Op: "create user", Err: err}
	}
	return u, nil
}

func (r UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	db := r.db()
	if db == nil {
		return models.User{}, domain.StorageError{Op: "find user", Err: errNoDB}
	}

	var u models.User
	err := db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ? LIMIT 1`,
		strings.TrimSpace(email),
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, domain.StorageError{Op: "find user", Err: err}
	}
	return u, nil
}
