package store

import (
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Local is the durable per-device fallback: a synchronous string kv mirror,
// written best-effort on every Set and read when the remote is unreachable.
type Local interface {
	Get(key string) (value string, found bool)
	Set(key, value string) error
}

// ── SQLite implementation ────────────────────────────────────────────────────

// kvEntry is the single mirror table.
type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"not null;column:value"`
}

func (kvEntry) TableName() string { return "kv_entries" }

type sqliteLocal struct{ db *gorm.DB }

// NewSQLiteLocal opens (creating if needed) the mirror database at path.
func NewSQLiteLocal(path string) (Local, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &sqliteLocal{db: db}, nil
}

func (l *sqliteLocal) Get(key string) (string, bool) {
	var e kvEntry
	// Any error, including a missing row, means "absent": the fallback
	// path degrades, it never fails.
	if err := l.db.First(&e, "key = ?", key).Error; err != nil {
		return "", false
	}
	return e.Value, true
}

func (l *sqliteLocal) Set(key, value string) error {
	return l.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&kvEntry{Key: key, Value: value}).Error
}

// ── In-memory implementation (tests, ephemeral runs) ─────────────────────────

type memoryLocal struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemoryLocal returns a Local backed by a plain map.
func NewMemoryLocal() Local {
	return &memoryLocal{m: make(map[string]string)}
}

func (l *memoryLocal) Get(key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.m[key]
	return v, ok
}

func (l *memoryLocal) Set(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[key] = value
	return nil
}
