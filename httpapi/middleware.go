package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"switchboard/auth"
	"switchboard/domain"
)

const userContextKey = "switchboard.user"

// requireSession resolves the session cookie to a user and aborts with 401
// when it cannot. Every route below /api except register and login runs
// behind it.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(auth.CookieName)
		user, err := s.validator.Validate(token)
		if err != nil {
			respondErr(c, err)
			c.Abort()
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) domain.User {
	return c.MustGet(userContextKey).(domain.User)
}

// actAsParam reads the optional ?actAs= delegation target. A malformed value
// is reported, not ignored: silently acting as oneself when the client asked
// to act as someone else would be a confusing authorization hole.
func actAsParam(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("actAs")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
