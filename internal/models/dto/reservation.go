package dto

type CreateReservationRequest struct {
	WalletID string `json:"wallet_id" binding:"required"`
}

type ReleaseReservationRequest struct {
	Reason string `json:"reason"`
}

type CompleteReservationRequest struct {
	ProofOfPayment string `json:"proof_of_payment" binding:"required"`
	TraceID        string `json:"trace_id"`
}
