package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nftforge/mint-service/internal/models"
	"github.com/nftforge/mint-service/internal/models/dto"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, walletID string) (*models.Reservation, error)
	OpenPaymentWindow(ctx context.Context, reservationID string) (*models.Reservation, error)
	ClosePaymentWindow(ctx context.Context, reservationID string) (*models.Reservation, error)
	ReleaseReservation(ctx context.Context, reservationID, reason string) (*models.Reservation, error)
	CompleteReservation(ctx context.Context, reservationID, proofOfPayment, traceID string) (*models.Reservation, error)
	GetActiveReservation(ctx context.Context, walletID string) (*models.Reservation, error)
}

type ReservationHandler struct {
	Service ReservationService
}

func NewReservationHandler(s ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: s}
}

// POST /reservations
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reservation, err := h.Service.CreateReservation(c.Request.Context(), req.WalletID)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "reservation": reservation})
}

// POST /reservations/:id/payment-window/open
func (h *ReservationHandler) OpenPaymentWindow(c *gin.Context) {
	reservation, err := h.Service.OpenPaymentWindow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// POST /reservations/:id/payment-window/close
func (h *ReservationHandler) ClosePaymentWindow(c *gin.Context) {
	reservation, err := h.Service.ClosePaymentWindow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// POST /reservations/:id/release
func (h *ReservationHandler) ReleaseReservation(c *gin.Context) {
	var req dto.ReleaseReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reservation, err := h.Service.ReleaseReservation(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// POST /reservations/:id/complete
func (h *ReservationHandler) CompleteReservation(c *gin.Context) {
	var req dto.CompleteReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reservation, err := h.Service.CompleteReservation(c.Request.Context(), c.Param("id"), req.ProofOfPayment, req.TraceID)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// GET /reservations/active/:walletId
func (h *ReservationHandler) GetActiveReservation(c *gin.Context) {
	reservation, err := h.Service.GetActiveReservation(c.Request.Context(), c.Param("walletId"))
	if err != nil {
		respondReservationError(c, err)
		return
	}
	if reservation == nil {
		c.JSON(http.StatusOK, gin.H{"reservation": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// HandleEvents processes settlement-detection events from Kafka and drives
// the reservation to completion.
func (h *ReservationHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.SettlementTopic2Subscribe:
		var event models.SettlementDetectedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing settlement detected event %s", err.Error())
			return fmt.Errorf("error parsing settlement detected event %w", err)
		}

		if _, err := h.Service.CompleteReservation(ctx, event.ReservationID, event.ProofOfPayment, event.TraceID); err != nil {
			return fmt.Errorf("error completing reservation %s: %w", event.ReservationID, err)
		}

		logrus.Infof("SettlementDetectedEvent handled successfully for reservation %s", event.ReservationID)
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}

	return nil
}

func respondReservationError(c *gin.Context, err error) {
	var resErr *models.ReservationError
	if !errors.As(err, &resErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	status := http.StatusInternalServerError
	switch resErr.Kind {
	case models.ErrAlreadyReserved, models.ErrInvalidTransition:
		status = http.StatusConflict
	case models.ErrReservationGone:
		status = http.StatusNotFound
	case models.ErrReservationLapsed:
		status = http.StatusGone
	case models.ErrSlotUnavailable:
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"success":      false,
		"error":        resErr.Message,
		"user_message": resErr.UserMessage,
		"retryable":    resErr.Retryable,
	})
}
