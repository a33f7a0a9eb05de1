package repositories

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"socialfeed-api/database"
	"socialfeed-api/models"
)

// openTestDB gives each test its own in-memory store with the full schema
// and foreign keys enforced.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, username string) models.User {
	t.Helper()
	user := models.User{ID: id, Username: username}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, id, authorID string, createdAt time.Time) models.Post {
	t.Helper()
	post := models.Post{ID: id, AuthorID: authorID, Content: "content of " + id, CreatedAt: createdAt}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func seedMessage(t *testing.T, db *gorm.DB, id, senderID, receiverID string, createdAt time.Time) models.Message {
	t.Helper()
	message := models.Message{
		ID:         id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    "message " + id,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(&message).Error)
	return message
}
