package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"switchboard/domain"
)

type createConversationRequest struct {
	UserIDs []uuid.UUID `json:"userIds"`
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type editTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

type addUsersRequest struct {
	UserIDs []uuid.UUID `json:"userIds" binding:"required"`
}

func (s *Server) createConversation(c *gin.Context) {
	var req createConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := s.messaging.CreateConversation(currentUser(c).ID, req.UserIDs)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

func (s *Server) listConversations(c *gin.Context) {
	var filterUserID *uuid.UUID
	if raw := c.Query("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
			return
		}
		filterUserID = &id
	}

	convs, err := s.messaging.Conversations(currentUser(c).ID, filterUserID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, convs)
}

func (s *Server) getConversation(c *gin.Context) {
	conversationID, ok := pathUUID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	conv, err := s.messaging.Conversation(currentUser(c).ID, conversationID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (s *Server) editConversationTitle(c *gin.Context) {
	conversationID, ok := pathUUID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}
	var req editTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := s.messaging.EditConversationTitle(currentUser(c).ID, conversationID, req.Title)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (s *Server) addUsers(c *gin.Context) {
	conversationID, ok := pathUUID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}
	var req addUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := s.messaging.AddUsers(currentUser(c).ID, conversationID, req.UserIDs)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (s *Server) sendMessage(c *gin.Context) {
	conversationID, ok := pathUUID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}
	actAs, ok := actAsParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid actAs"})
		return
	}
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := s.messaging.SendMessage(currentUser(c).ID, actAs, conversationID, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (s *Server) listMessages(c *gin.Context) {
	conversationID, ok := pathUUID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	msgs, err := s.messaging.Messages(currentUser(c).ID, conversationID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (s *Server) listCategorizedMessages(c *gin.Context) {
	conversationID, ok := pathUUID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	msgs, err := s.messaging.CategorizedMessages(currentUser(c).ID, conversationID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (s *Server) searchMessages(c *gin.Context) {
	conversationID, ok := pathUUID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	msgs, err := s.messaging.SearchMessages(currentUser(c).ID, conversationID, query, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (s *Server) markRead(c *gin.Context) {
	conversationID, ok := pathUUID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	if err := s.messaging.MarkRead(currentUser(c).ID, conversationID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) listMessagesWithStatus(c *gin.Context) {
	conversationID, ok := pathUUID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	msgs, err := s.messaging.MessagesWithStatus(currentUser(c).ID, conversationID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (s *Server) listUnreadMessages(c *gin.Context) {
	msgs, err := s.messaging.UnreadMessages(currentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	c.JSON(http.StatusOK, msgs)
}
