package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"socialfeed-api/models"
	"socialfeed-api/repositories"
	"socialfeed-api/utils"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{users: repositories.NewUserRepository(db)}
}

type CreateUserRequest struct {
	ID           string  `json:"id"`
	Username     string  `json:"username" binding:"required"`
	ProfileImage *string `json:"profile_image"`
	Biography    *string `json:"biography"`
}

type UpdateUserRequest struct {
	Username     *string `json:"username"`
	ProfileImage *string `json:"profile_image"`
	Biography    *string `json:"biography"`
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidUsername(req.Username) {
		utils.SendValidationError(c, "Username must be 3-50 characters: letters, digits, underscores")
		return
	}

	user := models.User{
		ID:           req.ID,
		Username:     req.Username,
		ProfileImage: req.ProfileImage,
		Biography:    req.Biography,
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	if err := uc.users.Create(&user); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (uc *UserController) GetUser(c *gin.Context) {
	userID := c.Param("id")

	user, err := uc.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		if !utils.IsValidUsername(*req.Username) {
			utils.SendValidationError(c, "Username must be 3-50 characters: letters, digits, underscores")
			return
		}
		updates["username"] = *req.Username
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}
	if req.Biography != nil {
		updates["biography"] = *req.Biography
	}

	if err := uc.users.Update(userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	utils.SendSuccess(c, "User updated successfully", nil)
}
