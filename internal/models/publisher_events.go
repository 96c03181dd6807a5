package models

import "time"

const (
	VerificationCompletedTopic = "verifications.completed"
	ReservationTerminalTopic   = "reservations.terminal"
	MintDLQTopic               = "mint.dlq"
)

type VerificationCompletedEvent struct {
	WalletID    string    `json:"wallet_id"`
	Verified    bool      `json:"verified"`
	Confidence  int       `json:"confidence"`
	Source      string    `json:"source"`
	TraceID     string    `json:"trace_id"`
	CompletedAt time.Time `json:"completed_at"`
}

type ReservationTerminalEvent struct {
	ReservationID string            `json:"reservation_id"`
	WalletID      string            `json:"wallet_id"`
	SlotNumber    int               `json:"slot_number"`
	Status        ReservationStatus `json:"status"`
	Reason        string            `json:"reason,omitempty"`
	TraceID       string            `json:"trace_id"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
