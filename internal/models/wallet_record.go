package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WalletRecord is the canonical per-wallet record. The verification pipeline
// only ever writes IsVerified and LastVerificationTime; LastAccrualTime is
// owned by the mining subsystem and must never be touched in the same write.
type WalletRecord struct {
	ID                   string    `json:"id" gorm:"primaryKey"`
	WalletID             string    `json:"wallet_id" gorm:"uniqueIndex;not null"`
	IsVerified           bool      `json:"is_verified"`
	LastVerificationTime time.Time `json:"last_verification_time"`
	LastAccrualTime      time.Time `json:"last_accrual_time"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (w *WalletRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	return
}
