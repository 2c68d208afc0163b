package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/logging"
	"github.com/dmitrijs2005/dreamjob/internal/server/auth"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	"github.com/dmitrijs2005/dreamjob/internal/server/session"
)

type ctxKey string

const (
	userKey      ctxKey = "user"
	sessionIDKey ctxKey = "sessionID"
)

// Sessions binds server-side sessions to a signed cookie.
type Sessions struct {
	store  session.Store
	secret []byte
	ttl    time.Duration
	logger logging.Logger
}

func NewSessions(store session.Store, secretKey string, ttl time.Duration, l logging.Logger) *Sessions {
	return &Sessions{
		store:  store,
		secret: []byte(secretKey),
		ttl:    ttl,
		logger: l.With("module", "sessions"),
	}
}

// Start opens a session for user and sets the cookie.
func (s *Sessions) Start(w http.ResponseWriter, r *http.Request, user *models.User) error {
	sess, err := s.store.Create(r.Context(), user)
	if err != nil {
		return err
	}

	token, err := auth.GenerateToken(sess.ID, s.secret, s.ttl)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// End invalidates the current session, if any, and clears the cookie.
func (s *Sessions) End(w http.ResponseWriter, r *http.Request) error {
	clearCookie(w)

	id, ok := r.Context().Value(sessionIDKey).(string)
	if !ok {
		return nil
	}
	return s.store.Delete(r.Context(), id)
}

// Middleware resolves the session cookie and stores the user in the
// request context. Invalid or stale cookies are dropped.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(common.SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := auth.GetSessionIDFromToken(cookie.Value, s.secret)
		if err != nil {
			clearCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		sess, err := s.store.Get(r.Context(), id)
		if err != nil {
			if !errors.Is(err, common.ErrorNotFound) && !errors.Is(err, common.ErrSessionExpired) {
				s.logger.Error(r.Context(), "session lookup failed", "error", err)
			}
			clearCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, sess.User())
		ctx = context.WithValue(ctx, sessionIDKey, sess.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth sends anonymous visitors to the login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/users/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok
}

// currentUser returns the logged-in user or a guest placeholder.
func currentUser(r *http.Request) *models.User {
	if u, ok := UserFromContext(r.Context()); ok {
		return u
	}
	return &models.User{Name: common.GuestName}
}

func clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
