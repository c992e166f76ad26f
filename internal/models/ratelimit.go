package models

import (
	"time"
)

// RateLimitCounter is one fixed-window submission counter: one row per
// (ip, window_date) pair, where window_date is the UTC calendar day.
// The composite unique index is what makes the upsert in
// internal/ratelimit atomic. Stale rows from past days are never deleted.
type RateLimitCounter struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	IP         string    `gorm:"column:ip;type:text;not null;index;uniqueIndex:idx_rate_limits_ip_window_date" json:"ip"`
	WindowDate string    `gorm:"type:date;not null;uniqueIndex:idx_rate_limits_ip_window_date" json:"window_date"`
	Count      int       `gorm:"not null;default:0" json:"count"`
	FirstAt    time.Time `gorm:"not null" json:"first_at"`
	LastAt     time.Time `gorm:"not null" json:"last_at"`
}

func (RateLimitCounter) TableName() string {
	return "rate_limits"
}
