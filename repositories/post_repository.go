package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"socialfeed-api/models"
)

// ErrAuthorNotFound is returned by Create when the post's author does not
// resolve to an existing user. The foreign-key constraint would reject the
// insert anyway; the explicit probe produces a clearer, catchable error.
var ErrAuthorNotFound = errors.New("author not found")

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *models.Post) error {
	var author models.User
	err := r.db.Select("id").First(&author, "id = ?", post.AuthorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s: %w", post.AuthorID, ErrAuthorNotFound)
		}
		return err
	}

	return r.db.Create(post).Error
}

// feedSelect recomputes like/comment counts from the live rows instead of
// trusting the stored counters, so the feed is resilient to counter drift.
const feedSelect = `
SELECT
	p.id,
	p.author_id,
	p.content,
	p.image_uri,
	p.created_at,
	p.edited_at,
	p.shares_count,
	(SELECT COUNT(*) FROM likes WHERE post_id = p.id) AS likes_count,
	(SELECT COUNT(*) FROM comments WHERE post_id = p.id) AS comments_count,
	u.username AS author_username,
	u.profile_image AS author_profile_image
FROM posts p
JOIN users u ON p.author_id = u.id`

func (r *PostRepository) GetPosts(limit, offset int) ([]models.FeedPost, error) {
	posts := make([]models.FeedPost, 0, limit)
	err := r.db.Raw(feedSelect+`
ORDER BY p.created_at DESC
LIMIT ? OFFSET ?`, limit, offset).Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) GetByID(postID string) (*models.FeedPost, error) {
	var post models.FeedPost
	result := r.db.Raw(feedSelect+`
WHERE p.id = ?`, postID).Scan(&post)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &post, nil
}

// UpdateContent rewrites the post body and stamps edited_at.
func (r *PostRepository) UpdateContent(postID, content string) error {
	result := r.db.Model(&models.Post{}).Where("id = ?", postID).Updates(map[string]interface{}{
		"content":   content,
		"edited_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the post; the store cascades to its comments and likes.
func (r *PostRepository) Delete(postID string) error {
	result := r.db.Delete(&models.Post{}, "id = ?", postID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
