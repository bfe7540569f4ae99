// Package snapshot persists point-in-time copies of remote collections to a
// per-organization data directory. Each directory holds one record store
// (a sqlite file with a flat records table); collections are logical named
// buckets inside it holding JSON-serialized entity graphs.
//
// The store assumes a single writer per data directory. There is no file
// locking; concurrent processes on the same directory are out of scope.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bxgeo/portalmigrate/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Collection names used by the migration tooling.
const (
	CollectionUsers   = "users"
	CollectionGroups  = "groups"
	CollectionContent = "content"
)

const storeFilename = "snapshots.db"

// Record is one named collection inside a store.
type Record struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"uniqueIndex;not null"`
	Payload string `gorm:"type:text;not null"`
	SavedAt time.Time
}

// Store reads and writes snapshot records under one directory.
type Store struct {
	dir string
	db  *gorm.DB
}

// Open creates the directory if absent and opens its record store.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, storeFilename)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening record store: %w", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrating record store: %w", err)
	}

	return &Store{dir: dir, db: db}, nil
}

// Dir returns the directory this store is bound to.
func (s *Store) Dir() string {
	return s.dir
}

// Sub opens a store rooted at a subdirectory, creating it if absent.
func (s *Store) Sub(name string) (*Store, error) {
	return Open(filepath.Join(s.dir, name))
}

// Write serializes value and replaces any existing record under name. The
// old record is deleted before the new one is inserted; a crash between the
// two leaves the collection absent rather than stale.
func (s *Store) Write(ctx context.Context, name string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializing %s record: %w", name, err)
	}

	if err := s.db.WithContext(ctx).Where("name = ?", name).Delete(&Record{}).Error; err != nil {
		return fmt.Errorf("removing previous %s record: %w", name, err)
	}

	rec := &Record{Name: name, Payload: string(payload), SavedAt: time.Now().UTC()}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("writing %s record: %w", name, err)
	}
	return nil
}

// Read deserializes the record under name into out.
func (s *Store) Read(ctx context.Context, name string, out any) error {
	var rec Record
	result := s.db.WithContext(ctx).Where("name = ?", name).First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrSnapshotNotFound, name)
		}
		return fmt.Errorf("reading %s record: %w", name, result.Error)
	}

	if err := json.Unmarshal([]byte(rec.Payload), out); err != nil {
		return fmt.Errorf("deserializing %s record: %w", name, err)
	}
	return nil
}
