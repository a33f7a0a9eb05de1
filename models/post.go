package models

import (
	"time"
)

type Post struct {
	ID            string     `json:"id" gorm:"primaryKey;size:191"`
	AuthorID      string     `json:"author_id" gorm:"not null;size:191"`
	Content       string     `json:"content" gorm:"not null"`
	ImageURI      *string    `json:"image_uri" gorm:"size:500"`
	CreatedAt     time.Time  `json:"created_at"`
	EditedAt      *time.Time `json:"edited_at"`
	LikesCount    int        `json:"likes_count" gorm:"default:0"`
	CommentsCount int        `json:"comments_count" gorm:"default:0"`
	SharesCount   int        `json:"shares_count" gorm:"default:0"`

	Author   User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:PostID"`
}

type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	PostID    string    `json:"post_id" gorm:"not null;size:191;uniqueIndex:uk_likes_post_user"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_likes_post_user"`
	CreatedAt time.Time `json:"created_at"`

	Post Post `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// FeedPost is the feed read model: a post row joined with its author's
// identity, with like/comment counts recomputed from the live rows rather
// than read from the stored counters.
type FeedPost struct {
	ID                 string     `json:"id"`
	AuthorID           string     `json:"author_id"`
	Content            string     `json:"content"`
	ImageURI           *string    `json:"image_uri"`
	CreatedAt          time.Time  `json:"created_at"`
	EditedAt           *time.Time `json:"edited_at"`
	LikesCount         int        `json:"likes_count"`
	CommentsCount      int        `json:"comments_count"`
	SharesCount        int        `json:"shares_count"`
	AuthorUsername     string     `json:"author_username"`
	AuthorProfileImage *string    `json:"author_profile_image"`
}
