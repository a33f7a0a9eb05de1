package database

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// Manager owns the single shared store handle for the process lifetime.
// Open is lazy: the first caller runs migration and seeding, concurrent
// callers block on the lock until initialization finishes and then receive
// the same handle. A failed initialization leaves the manager empty so a
// later Open can retry from scratch.
type Manager struct {
	databasePath string

	mu sync.Mutex
	db *gorm.DB
}

func NewManager(databasePath string) *Manager {
	return &Manager{databasePath: databasePath}
}

func (m *Manager) Open() (*gorm.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	db, err := Initialize(m.databasePath)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		closeHandle(db)
		return nil, err
	}

	if err := Seed(db); err != nil {
		closeHandle(db)
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	m.db = db
	return m.db, nil
}

// Close releases the shared handle. A subsequent Open creates a fresh
// connection and re-runs migration and seeding (both idempotent).
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}

	db := m.db
	m.db = nil

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	return sqlDB.Close()
}

func closeHandle(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
