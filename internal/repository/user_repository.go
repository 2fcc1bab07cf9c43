package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		email_confirmed_at TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure user schema: %w", err)
	}
	return nil
}

// GetByEmail looks up an account; sql.ErrNoRows passes through for the
// auth service to classify.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, email_confirmed_at FROM users WHERE email = ?",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.EmailConfirmedAt)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash, email_confirmed_at) VALUES (?, ?, ?, ?)",
		u.ID, u.Email, u.PasswordHash, u.EmailConfirmedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}
