package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"socialfeed-api/models"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Toggle flips the like state for a (post, user) pair and keeps the post's
// likes_count in lock-step with row presence. Both statements run in one
// transaction so a rapid double-tap cannot leave the counter drifted.
// Returns the resulting state: true if the post is now liked.
func (r *LikeRepository) Toggle(postID, userID string) (bool, error) {
	var liked bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error

		if err == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error; err != nil {
				return err
			}
			liked = false
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like := models.Like{
			ID:     fmt.Sprintf("%s_%s_%d", postID, userID, time.Now().UnixNano()),
			PostID: postID,
			UserID: userID,
		}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})

	return liked, err
}

func (r *LikeRepository) IsLiked(postID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
