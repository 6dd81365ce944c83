package db_models

import "time"

// RateLimitEntry is an append-only log row, one per admitted or attempted
// request. No soft delete: retention cleanup removes rows for real, and a
// DeletedAt column would distort the window counts.
type RateLimitEntry struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	IPAddress   string    `gorm:"index:idx_ip_requested"`
	RequestedAt time.Time `gorm:"index:idx_ip_requested"`
}
