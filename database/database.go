package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"socialfeed-api/models"
)

// Initialize opens the embedded store at the given path with foreign-key
// enforcement enabled on every pooled connection.
func Initialize(databasePath string) (*gorm.DB, error) {
	dsn := databasePath
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates the five tables and their supporting indexes if absent.
// Safe to call on every start.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Message{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_posts_author ON posts(author_id)",
		"CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id)",
		"CREATE INDEX IF NOT EXISTS idx_comments_author ON comments(author_id)",
		"CREATE INDEX IF NOT EXISTS idx_likes_post ON likes(post_id)",
		"CREATE INDEX IF NOT EXISTS idx_likes_user ON likes(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages(sender_id)",
		"CREATE INDEX IF NOT EXISTS idx_messages_receiver ON messages(receiver_id)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
