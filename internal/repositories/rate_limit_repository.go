package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tripcraft/internal/models/db_models"
)

// RateLimitRepository is an append-and-scan log of request timestamps.
// Entries are never mutated; retention cleanup is the only delete path.
type RateLimitRepository interface {
	CountRequestsSince(ctx context.Context, ipAddress string, since time.Time) (int64, error)
	RecordRequest(ctx context.Context, ipAddress string, at time.Time) error
	DeleteEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type rateLimitRepository struct {
	db *gorm.DB
}

func NewRateLimitRepository(db *gorm.DB) RateLimitRepository {
	return &rateLimitRepository{db: db}
}

func (r *rateLimitRepository) CountRequestsSince(ctx context.Context, ipAddress string, since time.Time) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.RateLimitEntry{}).
		Where("ip_address = ? AND requested_at >= ?", ipAddress, since).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *rateLimitRepository) RecordRequest(ctx context.Context, ipAddress string, at time.Time) error {

	entry := db_models.RateLimitEntry{
		IPAddress:   ipAddress,
		RequestedAt: at,
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *rateLimitRepository) DeleteEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error) {

	result := r.db.WithContext(ctx).
		Where("requested_at < ?", cutoff).
		Delete(&db_models.RateLimitEntry{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
