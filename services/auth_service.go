package services

import (
	"time"

	"github.com/google/uuid"

	"switchboard/auth"
	"switchboard/domain"
	"switchboard/errors"
	"switchboard/storage"
)

type AuthService struct {
	users    storage.IUserRepository
	sessions storage.ISessionRepository
}

func NewAuthService(users storage.IUserRepository, sessions storage.ISessionRepository) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

func (s *AuthService) Register(username, password string) (domain.User, domain.Session, error) {
	req := auth.RegisterRequest{Username: username, Password: password}

	// Business rules first, before any expensive hashing.
	if err := auth.ValidateRegister(req); err != nil {
		return domain.User{}, domain.Session{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(user); err != nil {
		return domain.User{}, domain.Session{}, err
	}

	session, err := s.newSession(user.ID)
	return user, session, err
}

func (s *AuthService) Login(username, password string) (domain.User, domain.Session, error) {
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		// Same error for unknown user and bad password, to prevent
		// account enumeration.
		return domain.User{}, domain.Session{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return domain.User{}, domain.Session{}, errors.ErrInvalidCredentials
	}

	session, err := s.newSession(user.ID)
	return user, session, err
}

func (s *AuthService) Logout(sessionID uuid.UUID) error {
	return s.sessions.DeleteSession(sessionID)
}

func (s *AuthService) newSession(userID uuid.UUID) (domain.Session, error) {
	now := time.Now().UTC()
	session := domain.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Expires:   now.Add(auth.SessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.CreateSession(session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}
