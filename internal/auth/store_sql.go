package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/quizhive/quizhive/internal/apperr"
)

type SQLUserStore struct {
	db *sql.DB
}

func NewSQLUserStore(db *sql.DB) *SQLUserStore {
	return &SQLUserStore{db: db}
}

func (s *SQLUserStore) Create(ctx context.Context, u User) error {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE email=$1 OR username=$2`, u.Email, u.Username).Scan(&exists)
	if err == nil {
		return apperr.Conflict(conflictMsg)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	created := u.CreatedAt
	if created == 0 {
		created = time.Now().Unix()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id,username,email,password_hash,role,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role, created)
	if err != nil && isUniqueViolation(err) {
		// lost the race to a concurrent register; the constraint is
		// authoritative
		return apperr.Conflict(conflictMsg)
	}
	return err
}

func (s *SQLUserStore) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.getBy(ctx, `SELECT id,username,email,password_hash,role,created_at FROM users WHERE email=$1`, email)
}

func (s *SQLUserStore) GetByID(ctx context.Context, id string) (User, error) {
	return s.getBy(ctx, `SELECT id,username,email,password_hash,role,created_at FROM users WHERE id=$1`, id)
}

func (s *SQLUserStore) getBy(ctx context.Context, query, arg string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, apperr.NotFound("User not found")
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // sqlite
		strings.Contains(msg, "duplicate key") // postgres
}
