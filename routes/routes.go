package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"socialfeed-api/controllers"
	"socialfeed-api/middleware"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Controllers
	userController := controllers.NewUserController(db)
	postController := controllers.NewPostController(db)
	commentController := controllers.NewCommentController(db)
	messageController := controllers.NewMessageController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// User routes
	users := v1.Group("/users")
	{
		users.POST("", userController.CreateUser)
		users.GET("/:id", userController.GetUser)
		users.PUT("/:id", userController.UpdateUser)
	}

	// Post routes (feed, likes, comments)
	posts := v1.Group("/posts")
	{
		posts.GET("", middleware.QueryDefaults(50), postController.GetPosts)
		posts.POST("", postController.CreatePost)
		posts.GET("/:id", postController.GetPost)
		posts.PUT("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
		posts.POST("/:id/like", postController.ToggleLike)
		posts.GET("/:id/liked", postController.IsLiked)
		posts.POST("/:id/comments", commentController.CreateComment)
		posts.GET("/:id/comments", commentController.GetComments)
	}

	// Message routes
	messages := v1.Group("/messages")
	{
		messages.POST("", messageController.CreateMessage)
		messages.GET("/:user_id/:other_user_id", messageController.GetMessages)
	}

	// Conversation summaries
	v1.GET("/conversations/:user_id", messageController.GetConversations)
}
