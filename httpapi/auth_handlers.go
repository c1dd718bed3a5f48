package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"switchboard/auth"
	"switchboard/domain"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, session, err := s.auth.Register(req.Username, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	s.setSessionCookie(c, session)
	c.JSON(http.StatusCreated, user)
}

func (s *Server) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, session, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	s.setSessionCookie(c, session)
	c.JSON(http.StatusOK, user)
}

func (s *Server) logout(c *gin.Context) {
	token, _ := c.Cookie(auth.CookieName)
	if id, err := uuid.Parse(token); err == nil {
		if err := s.auth.Logout(id); err != nil {
			respondErr(c, err)
			return
		}
	}
	// Expire the cookie regardless; the client is logged out either way.
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (s *Server) setSessionCookie(c *gin.Context, session domain.Session) {
	c.SetCookie(auth.CookieName, session.ID.String(),
		int(auth.SessionTTL.Seconds()), "/", "", false, true)
}
