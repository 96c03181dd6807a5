package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusCreating    ReservationStatus = "CREATING"
	StatusReserved    ReservationStatus = "RESERVED"
	StatusPaymentOpen ReservationStatus = "PAYMENT_OPEN"
	StatusProcessing  ReservationStatus = "PROCESSING"
	StatusCompleted   ReservationStatus = "COMPLETED"
	StatusReleased    ReservationStatus = "RELEASED"
	StatusExpired     ReservationStatus = "EXPIRED"
)

// Reservation is a time-boxed hold on one numbered inventory slot for one
// wallet. At most one reservation per wallet may be in a non-terminal state,
// and a slot number is held by at most one active reservation at a time.
//
// ExpiresAt is never mutated after creation. Time spent with the payment
// window open accumulates in AccumulatedOpenDuration and shifts the effective
// deadline instead, so pause/resume stays free of clock drift.
type Reservation struct {
	ID                      string            `json:"id" gorm:"primaryKey"`
	WalletID                string            `json:"wallet_id" gorm:"index;not null"`
	SlotNumber              int               `json:"slot_number" gorm:"index;not null"`
	Status                  ReservationStatus `json:"status"`
	CreatedAt               time.Time         `json:"created_at"`
	UpdatedAt               time.Time         `json:"updated_at"`
	ExpiresAt               time.Time         `json:"expires_at"`
	IsPaymentWindowOpen     bool              `json:"is_payment_window_open"`
	WindowOpenedAt          time.Time         `json:"window_opened_at,omitempty"`
	AccumulatedOpenDuration time.Duration     `json:"accumulated_open_duration"`
	ProofOfPayment          string            `json:"proof_of_payment,omitempty"`
	CompletedAt             time.Time         `json:"completed_at,omitempty"`
	ReleaseReason           string            `json:"release_reason,omitempty"`
	TraceID                 string            `json:"trace_id,omitempty"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	return
}

func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusReleased, StatusExpired:
		return true
	default:
		return false
	}
}

func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusCreating, StatusReserved, StatusPaymentOpen, StatusProcessing,
		StatusCompleted, StatusReleased, StatusExpired:
		return true
	default:
		return false
	}
}

// EffectiveDeadline is the nominal expiry shifted by the total time the
// payment window has been open so far.
func (r *Reservation) EffectiveDeadline() time.Time {
	return r.ExpiresAt.Add(r.AccumulatedOpenDuration)
}

// IsExpired reports whether the reservation has outlived its effective
// deadline plus the grace period. It never fires while the payment window is
// open, since the open interval has not been folded into the deadline yet.
func (r *Reservation) IsExpired(now time.Time, grace time.Duration) bool {
	if r.Status.IsTerminal() {
		return false
	}
	if r.IsPaymentWindowOpen {
		return false
	}
	return now.After(r.EffectiveDeadline().Add(grace))
}

// RemainingTime is the countdown value clients render. Zero-floored; while
// the payment window is open the value is frozen at the moment it opened.
func (r *Reservation) RemainingTime(now time.Time) time.Duration {
	reference := now
	if r.IsPaymentWindowOpen {
		reference = r.WindowOpenedAt
	}
	remaining := r.EffectiveDeadline().Sub(reference)
	if remaining < 0 {
		return 0
	}
	return remaining
}
