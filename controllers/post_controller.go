package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"socialfeed-api/models"
	"socialfeed-api/repositories"
	"socialfeed-api/utils"
)

type PostController struct {
	posts *repositories.PostRepository
	likes *repositories.LikeRepository
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		posts: repositories.NewPostRepository(db),
		likes: repositories.NewLikeRepository(db),
	}
}

type CreatePostRequest struct {
	AuthorID string  `json:"author_id" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	ImageURI *string `json:"image_uri"`
}

type UpdatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

type ToggleLikeRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (pc *PostController) GetPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, err := pc.posts.GetPosts(limit, offset)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidContent(req.Content, 2000) {
		utils.SendValidationError(c, "Content must be between 1 and 2000 characters")
		return
	}

	post := models.Post{
		ID:       uuid.New().String(),
		AuthorID: req.AuthorID,
		Content:  req.Content,
		ImageURI: req.ImageURI,
	}

	if err := pc.posts.Create(&post); err != nil {
		if errors.Is(err, repositories.ErrAuthorNotFound) {
			utils.SendError(c, http.StatusNotFound, "Author not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) GetPost(c *gin.Context) {
	postID := c.Param("id")

	post, err := pc.posts.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	postID := c.Param("id")

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if err := pc.posts.UpdateContent(postID, req.Content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to update post")
		return
	}

	utils.SendSuccess(c, "Post updated successfully", nil)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	if err := pc.posts.Delete(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	utils.SendSuccess(c, "Post deleted successfully", nil)
}

func (pc *PostController) ToggleLike(c *gin.Context) {
	postID := c.Param("id")

	var req ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if _, err := pc.posts.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	liked, err := pc.likes.Toggle(postID, req.UserID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (pc *PostController) IsLiked(c *gin.Context) {
	postID := c.Param("id")
	userID := c.Query("user_id")
	if userID == "" {
		utils.SendValidationError(c, "user_id query parameter is required")
		return
	}

	liked, err := pc.likes.IsLiked(postID, userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch like state")
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
