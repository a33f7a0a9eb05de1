package models

import (
	"time"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	ProfileImage *string   `json:"profile_image" gorm:"size:500"`
	Biography    *string   `json:"biography"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:UserID"`
}
