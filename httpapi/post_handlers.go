package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"switchboard/domain"
)

type createPostRequest struct {
	Content string `json:"content" binding:"required"`
}

type createDelegationRequest struct {
	DelegateID     uuid.UUID `json:"delegateId" binding:"required"`
	CanPost        bool      `json:"canPost"`
	CanMessage     bool      `json:"canMessage"`
	CanDeletePosts bool      `json:"canDeletePosts"`
}

func (s *Server) createPost(c *gin.Context) {
	actAs, ok := actAsParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid actAs"})
		return
	}
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := s.posts.CreatePost(currentUser(c).ID, actAs, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (s *Server) deletePost(c *gin.Context) {
	postID, ok := pathUUID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := s.posts.DeletePost(currentUser(c).ID, postID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) listUserPosts(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	posts, err := s.posts.UserPosts(userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

func (s *Server) feed(c *gin.Context) {
	feed, err := s.posts.UserFeed(currentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if feed.Posts == nil {
		feed.Posts = []domain.Post{}
	}
	c.JSON(http.StatusOK, feed)
}

func (s *Server) createDelegation(c *gin.Context) {
	var req createDelegationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := s.posts.CreateDelegation(currentUser(c).ID, req.DelegateID,
		req.CanPost, req.CanMessage, req.CanDeletePosts)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (s *Server) listDelegations(c *gin.Context) {
	ds, err := s.posts.Delegations(currentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if ds == nil {
		ds = []domain.Delegation{}
	}
	c.JSON(http.StatusOK, ds)
}

func (s *Server) listReceivedDelegations(c *gin.Context) {
	ds, err := s.posts.ReceivedDelegations(currentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if ds == nil {
		ds = []domain.Delegation{}
	}
	c.JSON(http.StatusOK, ds)
}

func (s *Server) revokeDelegation(c *gin.Context) {
	delegateID, ok := pathUUID(c, "delegateId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid delegate id"})
		return
	}

	if err := s.posts.RevokeDelegation(currentUser(c).ID, delegateID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
