package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditRecord is an append-only trace of one verification run. Writes are
// best-effort: a failed audit insert never fails the parent verification.
type AuditRecord struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	WalletID      string    `json:"wallet_id" gorm:"index;not null"`
	Verified      bool      `json:"verified"`
	Source        string    `json:"source"`
	ClaimedCount  int       `json:"claimed_count"`
	VerifiedCount int       `json:"verified_count"`
	Timestamp     time.Time `json:"timestamp"`
}

func (a *AuditRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	return
}
