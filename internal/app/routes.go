package app

import "github.com/nftforge/mint-service/internal/handlers"

func (a *App) RegisterRoutes(v *handlers.VerificationHandler, r *handlers.ReservationHandler) {
	verifications := a.Router.Group("/verifications")
	verifications.POST("", v.VerifyOwnership)
	verifications.GET("/:walletId/status", v.GetVerificationStatus)
	verifications.DELETE("/cache", v.ClearVerificationCache)

	reservations := a.Router.Group("/reservations")
	reservations.POST("", r.CreateReservation)
	reservations.POST("/:id/payment-window/open", r.OpenPaymentWindow)
	reservations.POST("/:id/payment-window/close", r.ClosePaymentWindow)
	reservations.POST("/:id/release", r.ReleaseReservation)
	reservations.POST("/:id/complete", r.CompleteReservation)
	reservations.GET("/active/:walletId", r.GetActiveReservation)
}
