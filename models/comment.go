package models

import (
	"time"
)

type Comment struct {
	ID        string     `json:"id" gorm:"primaryKey;size:191"`
	PostID    string     `json:"post_id" gorm:"not null;size:191"`
	AuthorID  string     `json:"author_id" gorm:"not null;size:191"`
	Content   string     `json:"content" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at"`

	Post   Post `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// CommentWithAuthor is a comment row joined with the author's identity.
type CommentWithAuthor struct {
	ID           string     `json:"id"`
	PostID       string     `json:"post_id"`
	AuthorID     string     `json:"author_id"`
	Content      string     `json:"content"`
	CreatedAt    time.Time  `json:"created_at"`
	EditedAt     *time.Time `json:"edited_at"`
	Username     string     `json:"username"`
	ProfileImage *string    `json:"profile_image"`
}
