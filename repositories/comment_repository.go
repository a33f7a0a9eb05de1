package repositories

import (
	"gorm.io/gorm"
	"socialfeed-api/models"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts the comment and bumps the parent post's comments_count in
// the same transaction.
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", comment.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1)).Error
	})
}

func (r *CommentRepository) GetForPost(postID string) ([]models.CommentWithAuthor, error) {
	var comments []models.CommentWithAuthor
	err := r.db.Raw(`
SELECT
	c.id,
	c.post_id,
	c.author_id,
	c.content,
	c.created_at,
	c.edited_at,
	u.username,
	u.profile_image
FROM comments c
JOIN users u ON c.author_id = u.id
WHERE c.post_id = ?
ORDER BY c.created_at DESC`, postID).Scan(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
