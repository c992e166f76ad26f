package models

import (
	"time"
)

// SLA is a signed service-level agreement. Rows are append-only: nothing in
// the application updates or deletes them once inserted.
type SLA struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	EffectiveDate     time.Time `gorm:"type:date;not null" json:"effective_date"`
	ClientName        string    `gorm:"type:text;not null" json:"client_name"`
	ClientSignature   string    `gorm:"type:text;not null" json:"client_signature"`
	ProviderSignature string    `gorm:"type:text;not null" json:"provider_signature"`
	CreatedAt         time.Time `json:"created_at"`
}

func (SLA) TableName() string {
	return "slas"
}
