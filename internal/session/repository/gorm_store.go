package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/wastesmart-storefront/internal/session/domain"
)

// SessionRow is one stored record
type SessionRow struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"index"`
}

func (SessionRow) TableName() string {
	return "storefront_sessions"
}

// GormStore keeps session records in Postgres. Rows older than ttl are
// treated as absent.
type GormStore struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewGormStore(db *gorm.DB, ttl time.Duration) *GormStore {
	return &GormStore{db: db, ttl: ttl}
}

// AutoMigrate creates the sessions table
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&SessionRow{})
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var row SessionRow
	err := s.db.WithContext(ctx).
		Where("key = ? AND updated_at > ?", key, time.Now().Add(-s.ttl)).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s: %w", key, err)
	}
	return row.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	row := SessionRow{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write session %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&SessionRow{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to remove session %s: %w", key, err)
	}
	return nil
}

// PurgeExpired deletes rows past their ttl
func (s *GormStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("updated_at <= ?", time.Now().Add(-s.ttl)).
		Delete(&SessionRow{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
