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

type CommentController struct {
	comments *repositories.CommentRepository
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{comments: repositories.NewCommentRepository(db)}
}

type CreateCommentRequest struct {
	AuthorID string `json:"author_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	postID := c.Param("id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidContent(req.Content, 1000) {
		utils.SendValidationError(c, "Content must be between 1 and 1000 characters")
		return
	}

	comment := models.Comment{
		ID:       uuid.New().String(),
		PostID:   postID,
		AuthorID: req.AuthorID,
		Content:  req.Content,
	}

	if err := cc.comments.Create(&comment); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (cc *CommentController) GetComments(c *gin.Context) {
	postID := c.Param("id")

	comments, err := cc.comments.GetForPost(postID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}
