package models

import (
	"time"
)

type Message struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	SenderID   string    `json:"sender_id" gorm:"not null;size:191"`
	ReceiverID string    `json:"receiver_id" gorm:"not null;size:191"`
	Content    string    `json:"content" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`

	Sender   User `json:"sender,omitempty" gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Receiver User `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
}

// Conversation is the most recent message exchanged with one counterpart,
// annotated with the counterpart's identity regardless of message direction.
type Conversation struct {
	ID                string    `json:"id"`
	SenderID          string    `json:"sender_id"`
	ReceiverID        string    `json:"receiver_id"`
	Content           string    `json:"content"`
	CreatedAt         time.Time `json:"created_at"`
	OtherUserID       string    `json:"other_user_id"`
	OtherUsername     string    `json:"other_username"`
	OtherProfileImage *string   `json:"other_profile_image"`
}

// ChatMessage is a message row joined with both participants' identities,
// used for rendering a two-party chat history.
type ChatMessage struct {
	ID                   string    `json:"id"`
	SenderID             string    `json:"sender_id"`
	ReceiverID           string    `json:"receiver_id"`
	Content              string    `json:"content"`
	CreatedAt            time.Time `json:"created_at"`
	SenderUsername       string    `json:"sender_username"`
	SenderProfileImage   *string   `json:"sender_profile_image"`
	ReceiverUsername     string    `json:"receiver_username"`
	ReceiverProfileImage *string   `json:"receiver_profile_image"`
}
