package models

const (
	SettlementTopic2Subscribe string = "settlements.detected"
)

// SettlementDetectedEvent arrives from the external settlement detector once
// an on-chain payment for a reservation has been observed.
type SettlementDetectedEvent struct {
	ReservationID  string `json:"reservation_id"`
	ProofOfPayment string `json:"proof_of_payment"`
	TraceID        string `json:"trace_id"`
}
