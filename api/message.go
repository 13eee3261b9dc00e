package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/helpconnect/helpconnect-api/store"
)

// sendMessage is the API for sending a direct message to another user
func (s *Server) sendMessage(c *gin.Context) {
	sender := c.GetString("requester")

	var params struct {
		ReceiverID string `json:"receiver_id" binding:"required"`
		Content    string `json:"content" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	// the receiver must exist; a message to nowhere is a parameter error
	if _, err := s.store.GetAccount(params.ReceiverID); err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	m, err := s.store.CreateMessage(sender, params.ReceiverID, params.Content)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// listMessages returns every message the caller sent or received, newest first
func (s *Server) listMessages(c *gin.Context) {
	accountID := c.GetString("requester")

	messages, err := s.store.ListMessages(accountID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// markMessageRead flags a received message as read
func (s *Server) markMessageRead(c *gin.Context) {
	accountID := c.GetString("requester")
	id := c.Param("messageID")

	if err := s.store.MarkMessageRead(id, accountID); err != nil {
		if err == store.ErrMessageNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorMessageNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
