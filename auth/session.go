// Package auth resolves inbound credentials to identities and owns the
// password and session primitives the user-facing endpoints build on.
package auth

import (
	"time"

	"github.com/google/uuid"

	"switchboard/domain"
	"switchboard/errors"
	"switchboard/storage"
)

// CookieName is the cookie carrying the opaque session identifier.
const CookieName = "session"

// SessionTTL is how long a session stays valid after login.
const SessionTTL = 7 * 24 * time.Hour

// SessionValidator resolves an opaque token to an identity. It is read-only:
// creating and deleting sessions belongs to the auth service.
type SessionValidator struct {
	sessions storage.ISessionRepository
	users    storage.IUserRepository
	now      func() time.Time
}

func NewSessionValidator(sessions storage.ISessionRepository, users storage.IUserRepository) *SessionValidator {
	return &SessionValidator{sessions: sessions, users: users, now: time.Now}
}

// Validate resolves a raw cookie value to the authenticated user.
//
// A missing or malformed token yields ErrNoSession: for endpoints with
// optional identity that simply means anonymous. A well-formed token that
// matches no fresh session yields ErrInvalidSession — the client once held a
// valid session and should clear its stale cookie.
func (v *SessionValidator) Validate(token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, errors.ErrNoSession
	}
	id, err := uuid.Parse(token)
	if err != nil {
		return domain.User{}, errors.ErrNoSession
	}

	session, ok, err := v.sessions.GetSession(id)
	if err != nil {
		return domain.User{}, err
	}
	if !ok || !session.Fresh(v.now()) {
		return domain.User{}, errors.ErrInvalidSession
	}

	return v.users.GetUserByID(session.UserID)
}
