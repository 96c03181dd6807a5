package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nftforge/mint-service/internal/models"
	"github.com/nftforge/mint-service/internal/models/dto"
)

type VerificationService interface {
	VerifyOwnership(ctx context.Context, walletID, secondaryAddress, traceID string, claimed []models.ClaimedAsset) *models.VerificationResult
	GetVerificationStatus(ctx context.Context, walletID string) (*models.VerificationStatus, error)
	ClearVerificationCache() int
}

type VerificationHandler struct {
	Service VerificationService
}

func NewVerificationHandler(s VerificationService) *VerificationHandler {
	return &VerificationHandler{Service: s}
}

// POST /verifications
func (h *VerificationHandler) VerifyOwnership(c *gin.Context) {
	var req dto.VerifyOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Sanitize()

	result := h.Service.VerifyOwnership(c.Request.Context(), req.WalletID, req.SecondaryAddress, req.TraceID, req.ToClaimed())

	c.JSON(http.StatusOK, result)
}

// GET /verifications/:walletId/status
func (h *VerificationHandler) GetVerificationStatus(c *gin.Context) {
	walletID := c.Param("walletId")

	status, err := h.Service.GetVerificationStatus(c.Request.Context(), walletID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// DELETE /verifications/cache
func (h *VerificationHandler) ClearVerificationCache(c *gin.Context) {
	cleared := h.Service.ClearVerificationCache()

	c.JSON(http.StatusOK, gin.H{"cleared_entries": cleared})
}
