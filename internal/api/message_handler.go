package api

import (
	"alcyxob/nutrition-app/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type MessageRequest struct {
	Message      string `json:"message" binding:"required"`
	MessageType  string `json:"messageType" binding:"required"`
	ScheduledFor string `json:"scheduledFor"` // HH:MM, empty for general messages
}

func (h *MessageHandler) CreateMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	msg, err := h.messageService.CreateMessage(c.Request.Context(), userID, service.MessageInput{
		Message:      req.Message,
		MessageType:  req.MessageType,
		ScheduledFor: req.ScheduledFor,
	})
	if err != nil {
		writeMessageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GetMessages lists messages; ?unread=true keeps only unread ones.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	msgs, err := h.messageService.ListMessages(c.Request.Context(), userID, c.Query("unread") == "true")
	if err != nil {
		writeMessageError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *MessageHandler) GetTimedMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	msgs, err := h.messageService.GetTimedMessages(c.Request.Context(), userID)
	if err != nil {
		writeMessageError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *MessageHandler) GetFeed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	msgs, err := h.messageService.GetFeed(c.Request.Context(), userID)
	if err != nil {
		writeMessageError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *MessageHandler) MarkAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.messageService.MarkAsRead(c.Request.Context(), userID, id); err != nil {
		writeMessageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.messageService.DeleteMessage(c.Request.Context(), userID, id); err != nil {
		writeMessageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SeedDefaults adds the built-in reminders to the caller's messages.
func (h *MessageHandler) SeedDefaults(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	n, err := h.messageService.SeedDefaultMessages(c.Request.Context(), userID)
	if err != nil {
		writeMessageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": n})
}

func writeMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMessageNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidMessage):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithInternal(c, err, "Failed to process motivational message")
	}
}
