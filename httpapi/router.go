// Package httpapi exposes the application over HTTP: a JSON API for every
// operation and one server-sent-events stream per connection for real-time
// delivery. Handlers stay thin — bind, call a service, translate the error.
package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"switchboard/auth"
	"switchboard/runtime"
	"switchboard/services"
)

type Server struct {
	auth      *services.AuthService
	messaging *services.MessagingService
	posts     *services.PostService
	validator *auth.SessionValidator
	registry  *runtime.Registry
	keepAlive time.Duration
	log       *slog.Logger
}

func NewServer(
	authSvc *services.AuthService,
	messaging *services.MessagingService,
	posts *services.PostService,
	validator *auth.SessionValidator,
	registry *runtime.Registry,
	keepAlive time.Duration,
	log *slog.Logger,
) *Server {
	if keepAlive <= 0 {
		keepAlive = 15 * time.Second
	}
	return &Server{
		auth:      authSvc,
		messaging: messaging,
		posts:     posts,
		validator: validator,
		registry:  registry,
		keepAlive: keepAlive,
		log:       log,
	}
}

// Router builds the gin engine with every route mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/register", s.register)
	api.POST("/login", s.login)

	authed := api.Group("")
	authed.Use(s.requireSession())
	{
		authed.POST("/logout", s.logout)
		authed.GET("/events", s.streamEvents)

		authed.POST("/conversations", s.createConversation)
		authed.GET("/conversations", s.listConversations)
		authed.GET("/conversations/:id", s.getConversation)
		authed.PATCH("/conversations/:id", s.editConversationTitle)
		authed.POST("/conversations/:id/users", s.addUsers)
		authed.POST("/conversations/:id/messages", s.sendMessage)
		authed.GET("/conversations/:id/messages", s.listMessages)
		authed.GET("/conversations/:id/messages/categorized", s.listCategorizedMessages)
		authed.GET("/conversations/:id/messages/search", s.searchMessages)
		authed.POST("/conversations/:id/read", s.markRead)
		authed.GET("/conversations/:id/messages-with-status", s.listMessagesWithStatus)
		authed.GET("/messages/unread", s.listUnreadMessages)

		authed.POST("/posts", s.createPost)
		authed.DELETE("/posts/:id", s.deletePost)
		authed.GET("/users/:id/posts", s.listUserPosts)
		authed.GET("/feed", s.feed)

		authed.POST("/delegations", s.createDelegation)
		authed.GET("/delegations", s.listDelegations)
		authed.GET("/delegations/received", s.listReceivedDelegations)
		authed.DELETE("/delegations/:delegateId", s.revokeDelegation)
	}

	return r
}
