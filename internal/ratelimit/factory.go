package ratelimit

import (
	"gorm.io/gorm"
)

// New selects the limiter strategy by config string. The two strategies are
// deliberately not equivalent: "postgres" is a calendar-aligned UTC daily
// window shared across instances, "memory" is a rolling 24h window local to
// one process. A deployment picks exactly one.
func New(strategy string, db *gorm.DB, limit int) Limiter {
	if limit <= 0 {
		limit = DefaultMaxPerDay
	}

	switch strategy {
	case "memory":
		return NewMemory(limit)
	case "postgres":
		return NewPostgres(db, limit)
	default:
		return NewPostgres(db, limit)
	}
}
