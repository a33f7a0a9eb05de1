package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"socialfeed-api/models"
	"socialfeed-api/repositories"
	"socialfeed-api/utils"
)

type MessageController struct {
	messages *repositories.MessageRepository
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{messages: repositories.NewMessageRepository(db)}
}

type CreateMessageRequest struct {
	SenderID   string `json:"sender_id" binding:"required"`
	ReceiverID string `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

func (mc *MessageController) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidContent(req.Content, 2000) {
		utils.SendValidationError(c, "Content must be between 1 and 2000 characters")
		return
	}

	message := models.Message{
		ID:         uuid.New().String(),
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}

	if err := mc.messages.Create(&message); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (mc *MessageController) GetConversations(c *gin.Context) {
	userID := c.Param("user_id")

	conversations, err := mc.messages.Conversations(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch conversations")
		return
	}

	c.JSON(http.StatusOK, conversations)
}

func (mc *MessageController) GetMessages(c *gin.Context) {
	userID := c.Param("user_id")
	otherUserID := c.Param("other_user_id")

	messages, err := mc.messages.Between(userID, otherUserID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}
