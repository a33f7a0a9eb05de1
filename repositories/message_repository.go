package repositories

import (
	"gorm.io/gorm"
	"socialfeed-api/models"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// Conversations returns, for the given user, the most recent message per
// distinct counterpart, annotated with the counterpart's identity. Rank-and-
// filter rather than GROUP BY MAX because the whole latest row is needed.
// Ties on created_at break on message id so the result is deterministic.
func (r *MessageRepository) Conversations(userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.Raw(`
WITH last_messages AS (
	SELECT
		m.*,
		ROW_NUMBER() OVER (
			PARTITION BY
				CASE
					WHEN m.sender_id = ? THEN m.receiver_id
					ELSE m.sender_id
				END
			ORDER BY m.created_at DESC, m.id DESC
		) AS rn
	FROM messages m
	WHERE m.sender_id = ? OR m.receiver_id = ?
)
SELECT
	lm.id,
	lm.sender_id,
	lm.receiver_id,
	lm.content,
	lm.created_at,
	CASE
		WHEN lm.sender_id = ? THEN lm.receiver_id
		ELSE lm.sender_id
	END AS other_user_id,
	CASE
		WHEN lm.sender_id = ? THEN u2.username
		ELSE u1.username
	END AS other_username,
	CASE
		WHEN lm.sender_id = ? THEN u2.profile_image
		ELSE u1.profile_image
	END AS other_profile_image
FROM last_messages lm
JOIN users u1 ON lm.sender_id = u1.id
JOIN users u2 ON lm.receiver_id = u2.id
WHERE lm.rn = 1
ORDER BY lm.created_at DESC`,
		userID, userID, userID, userID, userID, userID).Scan(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

// Between returns every message exchanged between exactly these two users,
// oldest first. Argument order does not matter.
func (r *MessageRepository) Between(userID, otherUserID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Raw(`
SELECT
	m.id,
	m.sender_id,
	m.receiver_id,
	m.content,
	m.created_at,
	u1.username AS sender_username,
	u1.profile_image AS sender_profile_image,
	u2.username AS receiver_username,
	u2.profile_image AS receiver_profile_image
FROM messages m
JOIN users u1 ON m.sender_id = u1.id
JOIN users u2 ON m.receiver_id = u2.id
WHERE (m.sender_id = ? AND m.receiver_id = ?)
   OR (m.sender_id = ? AND m.receiver_id = ?)
ORDER BY m.created_at ASC`,
		userID, otherUserID, otherUserID, userID).Scan(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
