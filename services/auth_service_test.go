package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"switchboard/errors"
)

func TestAuthService_Register(t *testing.T) {
	f := newFixture(t, nil)

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)

		user, session, err := f.auth.Register("alice", "Compl3x&Secret!pw")

		req.NoError(err)
		req.Equal("alice", user.Username)
		req.NotEqual("Compl3x&Secret!pw", user.PasswordHash)
		req.Equal(user.ID, session.UserID)
		req.True(session.Expires.After(time.Now().Add(6 * 24 * time.Hour)))
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)

		_, _, err := f.auth.Register("bob", "alllowercase1234")

		req.ErrorIs(err, errors.ErrInvalidPassword)
	})

	t.Run("should fail when the username is taken", func(t *testing.T) {
		req := require.New(t)

		_, _, err := f.auth.Register("alice", "An0ther&Secret!pw")

		req.ErrorIs(err, errors.ErrUsernameTaken)
	})
}

func TestAuthService_LoginAndLogout(t *testing.T) {
	f := newFixture(t, nil)

	_, _, err := f.auth.Register("carol", "Compl3x&Secret!pw")
	require.NoError(t, err)

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)

		user, session, err := f.auth.Login("carol", "Compl3x&Secret!pw")

		req.NoError(err)
		req.Equal("carol", user.Username)
		req.Equal(user.ID, session.UserID)
	})

	t.Run("should return invalid credentials for a wrong password", func(t *testing.T) {
		req := require.New(t)

		_, _, err := f.auth.Login("carol", "Wr0ng&Secret!pass")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should return invalid credentials for an unknown user", func(t *testing.T) {
		req := require.New(t)

		_, _, err := f.auth.Login("nobody", "Compl3x&Secret!pw")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should invalidate the session on logout", func(t *testing.T) {
		req := require.New(t)

		_, session, err := f.auth.Login("carol", "Compl3x&Secret!pw")
		req.NoError(err)

		req.NoError(f.auth.Logout(session.ID))
	})
}
