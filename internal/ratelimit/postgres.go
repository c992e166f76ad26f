package ratelimit

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// One statement: insert the day's first counter row or bump the existing
// one, and hand back the post-increment count. The unique index on
// (ip, window_date) is what makes concurrent increments for the same key
// serialize without a read-modify-write race. Works unchanged on Postgres
// and SQLite.
const upsertSQL = `
INSERT INTO rate_limits (ip, window_date, count, first_at, last_at)
VALUES (?, ?, 1, ?, ?)
ON CONFLICT (ip, window_date)
DO UPDATE SET count = rate_limits.count + 1, last_at = excluded.last_at
RETURNING count`

// PostgresLimiter is the persistent strategy: a fixed window aligned to the
// UTC calendar day, backed by an atomic upsert on the rate_limits table.
// Safe across any number of server instances.
//
// Known quirk, preserved from the original site: the increment lands before
// the cap check, so a denied request still consumes the counter slot. The
// cap is still enforced; the row just over-counts denied attempts.
type PostgresLimiter struct {
	db    *gorm.DB
	limit int
}

func NewPostgres(db *gorm.DB, limit int) *PostgresLimiter {
	return &PostgresLimiter{db: db, limit: limit}
}

func (p *PostgresLimiter) Allow(ctx context.Context, key string) (Result, error) {
	return p.allow(ctx, key, time.Now())
}

func (p *PostgresLimiter) allow(ctx context.Context, key string, now time.Time) (Result, error) {
	utc := now.UTC()
	windowDate := utc.Format("2006-01-02")

	var count int
	err := p.db.WithContext(ctx).
		Raw(upsertSQL, key, windowDate, utc, utc).
		Scan(&count).Error
	if err != nil {
		return Result{}, fmt.Errorf("rate limit upsert: %w", err)
	}
	if count == 0 {
		// The upsert always returns the updated row; an empty result means
		// something is wrong with the table. Fail closed.
		return Result{}, fmt.Errorf("rate limit upsert returned no row for %s/%s", key, windowDate)
	}

	remaining := p.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   count <= p.limit,
		Count:     count,
		Limit:     p.limit,
		Remaining: remaining,
		ResetAt:   nextUTCMidnight(utc),
	}, nil
}

func (p *PostgresLimiter) Limit() int {
	return p.limit
}

func nextUTCMidnight(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.Add(24 * time.Hour)
}
