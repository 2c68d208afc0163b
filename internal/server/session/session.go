// Package session keeps logged-in users between requests. The browser only
// holds a signed reference to a Session; the data stays on the server.
package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// User returns the session owner without the password.
func (s *Session) User() *models.User {
	return &models.User{ID: s.UserID, Email: s.Email, Name: s.Name}
}

// Store creates, loads and invalidates sessions. Get reports
// common.ErrorNotFound for unknown ids and common.ErrSessionExpired for
// sessions past their expiry. Deleting an unknown id is not an error.
type Store interface {
	Create(ctx context.Context, user *models.User) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

var newID = func() (string, error) {
	return gonanoid.New()
}

func newSession(user *models.User, now time.Time, ttl time.Duration) (*Session, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        id,
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}
