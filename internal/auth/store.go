package auth

import (
	"context"
	"sync"

	"github.com/quizhive/quizhive/internal/apperr"
)

type User struct {
	ID           string `json:"id" bson:"_id"`
	Username     string `json:"username" bson:"username"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Role         string `json:"role" bson:"role"`
	CreatedAt    int64  `json:"-" bson:"created_at"`
}

// PublicUser is the caller-facing view; the password hash never leaves the
// package.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// UserStore persists accounts. Duplicate detection is exact-match on email
// or username, as stored.
type UserStore interface {
	Create(ctx context.Context, u User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}

const conflictMsg = "User already exists with this email or username"

type memoryUsers struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string // email -> id
	byName  map[string]string // username -> id
}

func NewInMemoryUserStore() UserStore {
	return &memoryUsers{
		byID:    map[string]User{},
		byEmail: map[string]string{},
		byName:  map[string]string{},
	}
}

func (m *memoryUsers) Create(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[u.Email]; ok {
		return apperr.Conflict(conflictMsg)
	}
	if _, ok := m.byName[u.Username]; ok {
		return apperr.Conflict(conflictMsg)
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u.ID
	m.byName[u.Username] = u.ID
	return nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byEmail[email]
	if !ok {
		return User{}, apperr.NotFound("User not found")
	}
	return m.byID[id], nil
}

func (m *memoryUsers) GetByID(_ context.Context, id string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byID[id]
	if !ok {
		return User{}, apperr.NotFound("User not found")
	}
	return u, nil
}
